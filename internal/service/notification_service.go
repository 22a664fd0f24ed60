// internal/service/notification_service.go
package service

import (
	"fmt"
	"time"

	"github.com/stitchline/tailorshop-backend/internal/repository"
)

const (
	statusTemplate = "Hi {name}, your order {order_id} ({outfit}) is now {status}."
	urgentTemplate = "Urgent order {order_id} ({outfit}) for {name}, delivery {delivery}."
)

// NotificationService composes and sends SMS notifications about orders.
// SendFunc is injected so tests and the worker can swap the transport.
type NotificationService struct {
	Orders   repository.OrderRepositoryInterface
	SendFunc func(to, message string) error

	// StaffNumber receives urgent-order alerts.
	StaffNumber string
}

// NotifyStatusChange texts the customer about the order's new status and
// stamps the order as notified.
func (s *NotificationService) NotifyStatusChange(orderID string) error {
	order, err := s.Orders.GetByID(orderID)
	if err != nil {
		return err
	}
	if order.MobileNumber == "" {
		return fmt.Errorf("order %s has no mobile number", orderID)
	}

	message := RenderTemplate(statusTemplate, map[string]string{
		"name":     order.CustomerName,
		"order_id": order.ID,
		"outfit":   order.OutfitType,
		"status":   order.Status,
	})

	if err := s.SendFunc(order.MobileNumber, message); err != nil {
		return err
	}
	return s.Orders.SetNotified(order.ID, time.Now())
}

// NotifyUrgentOrder alerts the shop staff about a freshly created urgent
// order.
func (s *NotificationService) NotifyUrgentOrder(orderID string) error {
	order, err := s.Orders.GetByID(orderID)
	if err != nil {
		return err
	}

	message := RenderTemplate(urgentTemplate, map[string]string{
		"name":     order.CustomerName,
		"order_id": order.ID,
		"outfit":   order.OutfitType,
		"delivery": order.DeliveryDate.Format("2006-01-02"),
	})

	return s.SendFunc(s.StaffNumber, message)
}
