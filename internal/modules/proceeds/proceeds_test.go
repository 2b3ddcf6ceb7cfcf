package proceeds

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aristath/relocate/internal/domain"
)

func TestNet(t *testing.T) {
	// 2.8M RMB at 7.27 RMB/USD with 3.6% selling costs nets about $371k.
	src := domain.SourceProperty{
		MarketValue:     2800000,
		MonthlyRent:     2800,
		ExchangeRate:    7.27,
		SellingCostRate: 0.036,
	}

	got := Net(src)

	expected := 2800000.0 / 7.27 * 0.964
	assert.InDelta(t, expected, got, 1e-9)
	assert.InDelta(t, 371279, got, 1)
}

func TestNet_NoSellingCosts(t *testing.T) {
	src := domain.SourceProperty{MarketValue: 1000, ExchangeRate: 2}
	assert.InDelta(t, 500, Net(src), 1e-9)
}
