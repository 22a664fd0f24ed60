// internal/handler/outfit_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/stitchline/tailorshop-backend/internal/errors"
	"github.com/stitchline/tailorshop-backend/internal/repository"
)

// Outfits are the garment types the order screen offers. Every outfit
// route resolves the same customer lookup; they only differ in path.
var Outfits = []string{"blouse", "pant", "shirt", "kurta", "indowestern"}

// OutfitHandler serves GET /create-order-select-outfit/{id}/<outfit>.
type OutfitHandler struct {
	Customers repository.CustomerRepositoryInterface
}

// GetCustomerForOutfit fetches the measurement record backing the order
// form. A non-numeric id is malformed and rejected with 400.
func (h *OutfitHandler) GetCustomerForOutfit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid ID"})
		return
	}

	customer, err := h.Customers.GetByID(id)
	if err != nil {
		if appErrors.IsNotFound(err) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "Details not found"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{"message": "Server error", "error": err.Error()})
		return
	}

	json.NewEncoder(w).Encode(customer)
}

// Register mounts the handler on all outfit path suffixes.
func (h *OutfitHandler) Register(r chi.Router) {
	for _, outfit := range Outfits {
		r.Get("/create-order-select-outfit/{id}/"+outfit, h.GetCustomerForOutfit)
	}
}
