package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/stitchline/tailorshop-backend/internal/errors"
	"github.com/stitchline/tailorshop-backend/internal/handler"
	"github.com/stitchline/tailorshop-backend/internal/model"
)

// stubCustomerRepo serves a single fixed customer
type stubCustomerRepo struct {
	customer model.Customer
}

func (s *stubCustomerRepo) GetByID(id int) (*model.Customer, error) {
	if id != s.customer.ID {
		return nil, appErrors.NewCustomerNotFound(id)
	}
	c := s.customer
	return &c, nil
}

func (s *stubCustomerRepo) Create(*model.Customer) error                    { return nil }
func (s *stubCustomerRepo) ListAll() ([]model.Customer, error)              { return nil, nil }
func (s *stubCustomerRepo) GetByCustomerID(string) (*model.Customer, error) { return nil, nil }
func (s *stubCustomerRepo) Update(int, *model.CustomerUpdate) (*model.Customer, error) {
	return nil, nil
}
func (s *stubCustomerRepo) Delete(int) error { return nil }

func newOutfitRouter() chi.Router {
	h := &handler.OutfitHandler{
		Customers: &stubCustomerRepo{
			customer: model.Customer{
				ID:          7,
				CustomerID:  "A001",
				FullName:    "Aarti Sharma",
				Gender:      "female",
				PhoneNumber: "9876543210",
				DOB:         time.Date(1992, 5, 14, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestOutfitRoutesReturnCustomer(t *testing.T) {
	r := newOutfitRouter()

	// every outfit path resolves the same lookup
	for _, outfit := range handler.Outfits {
		req := httptest.NewRequest("GET", "/create-order-select-outfit/7/"+outfit, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", outfit, w.Code)
		}
		var c model.Customer
		if err := json.NewDecoder(w.Body).Decode(&c); err != nil {
			t.Fatal(err)
		}
		if c.CustomerID != "A001" {
			t.Errorf("%s: expected A001, got %s", outfit, c.CustomerID)
		}
	}
}

func TestOutfitRouteInvalidID(t *testing.T) {
	r := newOutfitRouter()

	req := httptest.NewRequest("GET", "/create-order-select-outfit/not-an-id/blouse", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var res map[string]string
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res["message"] != "Invalid ID" {
		t.Errorf("unexpected message %q", res["message"])
	}
}

func TestOutfitRouteCustomerMissing(t *testing.T) {
	r := newOutfitRouter()

	req := httptest.NewRequest("GET", "/create-order-select-outfit/99/shirt", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var res map[string]string
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res["message"] != "Details not found" {
		t.Errorf("unexpected message %q", res["message"])
	}
}
