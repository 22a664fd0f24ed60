// internal/service/order_service.go
package service

import (
	"fmt"
	"log"
	"time"

	"github.com/stitchline/tailorshop-backend/internal/model"
	"github.com/stitchline/tailorshop-backend/internal/queue"
	"github.com/stitchline/tailorshop-backend/internal/repository"
)

type OrderService struct {
	Repo      repository.OrderRepositoryInterface
	Customers repository.CustomerRepositoryInterface
	Sequences *SequenceService
	Queue     queue.Queue

	// EmbedCustomer controls whether GetOrder joins in the referenced
	// customer record (ORDER_EMBED_CUSTOMER).
	EmbedCustomer bool
}

// OrderDetails is an order plus the optionally embedded customer record.
type OrderDetails struct {
	model.Order
	Customer *model.Customer `json:"customer,omitempty"`
}

// CreateOrder validates the payload, allocates the composite order id for
// the current financial year and persists the order. Urgent orders are
// announced on the in-process queue; a publish failure is logged and never
// fails the creation.
func (s *OrderService) CreateOrder(in *model.OrderInput) (*model.Order, error) {
	if in.CustomerID == "" {
		return nil, fmt.Errorf("customerId is required")
	}

	var deliveryDate time.Time
	if in.DeliveryDate != nil && *in.DeliveryDate != "" {
		t, err := parseDate(*in.DeliveryDate)
		if err != nil {
			return nil, fmt.Errorf("invalid deliveryDate: %w", err)
		}
		deliveryDate = t
	}

	orderID, err := s.Sequences.NextOrderID()
	if err != nil {
		return nil, err
	}

	o := &model.Order{
		ID:            orderID,
		Measurements:  in.Measurements,
		Description:   in.Description,
		TotalAmount:   in.TotalAmount,
		AdvancePaid:   in.AdvancePaid,
		PaymentMethod: in.PaymentMethod,
		IsEmbroidery:  in.IsEmbroidery,
		Embroidery:    in.Embroidery,
		DeliveryDate:  deliveryDate,
		Images:        in.Images,
		Status:        "active",
		CustomerName:  in.CustomerName,
		MobileNumber:  in.MobileNumber,
		OutfitType:    in.OutfitType,
		CustomerID:    in.CustomerID,
		IsUrgent:      in.IsUrgent,
	}

	if err := s.Repo.Create(o); err != nil {
		return nil, err
	}

	if o.IsUrgent && s.Queue != nil {
		if err := s.Queue.Publish("urgent_orders", o.ID); err != nil {
			log.Println("⚠️ failed to announce urgent order", o.ID, ":", err)
		}
	}

	return o, nil
}

// ListOrders fetches orders with an optional status filter ("" or "all"
// means unfiltered).
func (s *OrderService) ListOrders(status string) ([]model.Order, error) {
	return s.Repo.List(status)
}

// GetOrder fetches one order, embedding the referenced customer when
// configured to.
func (s *OrderService) GetOrder(id string) (*OrderDetails, error) {
	order, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	details := &OrderDetails{Order: *order}
	if s.EmbedCustomer && order.CustomerID != "" {
		customer, err := s.Customers.GetByCustomerID(order.CustomerID)
		if err != nil {
			log.Println("⚠️ failed to embed customer", order.CustomerID, ":", err)
		} else {
			details.Customer = customer
		}
	}
	return details, nil
}

// UpdateStatus mutates only the order's status.
func (s *OrderService) UpdateStatus(id, status string) (*model.Order, error) {
	if status == "" {
		return nil, fmt.Errorf("status is required")
	}
	return s.Repo.UpdateStatus(id, status)
}

// DeleteOrder removes an order
func (s *OrderService) DeleteOrder(id string) error {
	return s.Repo.Delete(id)
}
