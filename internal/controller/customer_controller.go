// internal/controller/customer_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/stitchline/tailorshop-backend/internal/errors"
	"github.com/stitchline/tailorshop-backend/internal/model"
	"github.com/stitchline/tailorshop-backend/internal/service"
)

type CustomerController struct {
	CustomerService *service.CustomerService
}

// CreateCustomer handles POST /api/customers. Validation and id
// allocation failures both surface as 400 before anything is written.
func (c *CustomerController) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var body model.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Error adding customer", err)
		return
	}

	customer, err := c.CustomerService.CreateCustomer(&body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Error adding customer", err)
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

// ListCustomers handles GET /api/customers
func (c *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.CustomerService.ListCustomers()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching customers", err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

// GetCustomer handles GET /api/customers/{id}
func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid customer id", err)
		return
	}

	customer, err := c.CustomerService.GetCustomer(id)
	if err != nil {
		if appErrors.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Customer not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// UpdateCustomer handles PUT /api/customers/{id}; omitted fields keep
// their stored values.
func (c *CustomerController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid customer id", err)
		return
	}

	var body model.CustomerUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	customer, err := c.CustomerService.UpdateCustomer(id, &body)
	if err != nil {
		if appErrors.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Customer not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /api/customers/{id}
func (c *CustomerController) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid customer id", err)
		return
	}

	if err := c.CustomerService.DeleteCustomer(id); err != nil {
		if appErrors.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Customer not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Customer deleted successfully"})
}
