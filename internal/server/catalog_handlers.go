package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/aristath/relocate/internal/domain"
	"github.com/aristath/relocate/internal/modules/catalog"
)

// CatalogHandlers serves the stored candidate properties and borrowers.
type CatalogHandlers struct {
	properties *catalog.PropertyRepository
	borrowers  *catalog.BorrowerRepository
	log        zerolog.Logger
}

// NewCatalogHandlers creates catalog handlers.
func NewCatalogHandlers(properties *catalog.PropertyRepository, borrowers *catalog.BorrowerRepository, log zerolog.Logger) *CatalogHandlers {
	return &CatalogHandlers{
		properties: properties,
		borrowers:  borrowers,
		log:        log.With().Str("handler", "catalog").Logger(),
	}
}

// HandleListProperties returns every stored candidate property.
func (h *CatalogHandlers) HandleListProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.properties.List()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list properties")
		http.Error(w, "failed to list properties", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"properties": properties})
}

// HandleAddProperty stores a new candidate property.
func (h *CatalogHandlers) HandleAddProperty(w http.ResponseWriter, r *http.Request) {
	var p domain.CandidateProperty
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if p.Category == "" || p.Price <= 0 || p.UnitCount < 0 {
		http.Error(w, "category, positive price and non-negative unit_count required", http.StatusBadRequest)
		return
	}

	if err := h.properties.Add(p); err != nil {
		h.log.Error().Err(err).Str("category", p.Category).Msg("Failed to add property")
		http.Error(w, "failed to add property", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// HandleListBorrowers returns every stored borrower with loan products.
func (h *CatalogHandlers) HandleListBorrowers(w http.ResponseWriter, r *http.Request) {
	borrowers, err := h.borrowers.List()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list borrowers")
		http.Error(w, "failed to list borrowers", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"borrowers": borrowers})
}

// HandleAddBorrower stores a new borrower and their loan products.
func (h *CatalogHandlers) HandleAddBorrower(w http.ResponseWriter, r *http.Request) {
	var b domain.Borrower
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if b.Name == "" || b.MonthlyIncome <= 0 {
		http.Error(w, "name and positive monthly_income required", http.StatusBadRequest)
		return
	}

	if err := h.borrowers.Add(b); err != nil {
		h.log.Error().Err(err).Str("name", b.Name).Msg("Failed to add borrower")
		http.Error(w, "failed to add borrower", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}
