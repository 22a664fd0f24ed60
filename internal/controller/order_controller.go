// internal/controller/order_controller.go
package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/streadway/amqp"

	appErrors "github.com/stitchline/tailorshop-backend/internal/errors"
	"github.com/stitchline/tailorshop-backend/internal/model"
	"github.com/stitchline/tailorshop-backend/internal/service"
)

type OrderController struct {
	OrderService *service.OrderService

	// AMQPURL, when set, is where status-change notification jobs are
	// published for the worker to pick up.
	AMQPURL string
}

// orderIDParam returns the {id} path value. Order ids contain a slash
// ("1/2024-25"), so clients send them percent-encoded and chi hands back
// the escaped form.
func orderIDParam(r *http.Request) string {
	id := chi.URLParam(r, "id")
	if unescaped, err := url.PathUnescape(id); err == nil {
		id = unescaped
	}
	return id
}

// CreateOrder handles POST /api/orders
func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var body model.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Error adding order", err)
		return
	}

	order, err := c.OrderService.CreateOrder(&body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Error adding order", err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// ListOrders handles GET /api/orders?status=; "all" or an absent filter
// returns everything.
func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	orders, err := c.OrderService.ListOrders(status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/{id}
func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := orderIDParam(r)

	order, err := c.OrderService.GetOrder(id)
	if err != nil {
		if appErrors.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Order not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// UpdateOrderStatus handles PUT /api/orders/{id}; only the status field is
// mutated. The notification job is queued best-effort after the update —
// a broker failure never fails the request.
func (c *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := orderIDParam(r)

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if body.Status == "" {
		writeError(w, http.StatusBadRequest, "Status is required", nil)
		return
	}

	order, err := c.OrderService.UpdateStatus(id, body.Status)
	if err != nil {
		if appErrors.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Order not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Server error", err)
		return
	}

	if c.AMQPURL != "" {
		if err := c.publishNotificationJob(order.ID, order.Status); err != nil {
			log.Println("⚠️ Failed to queue notification for order", order.ID, ":", err)
		}
	}

	writeJSON(w, http.StatusOK, order)
}

// DeleteOrder handles DELETE /api/orders/{id}
func (c *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := orderIDParam(r)

	if err := c.OrderService.DeleteOrder(id); err != nil {
		if appErrors.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Order not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Server error", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}

func (c *OrderController) publishNotificationJob(orderID, status string) error {
	conn, err := amqp.Dial(c.AMQPURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"order_notifications",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	body, _ := json.Marshal(map[string]string{"order_id": orderID, "status": status})
	return ch.Publish(
		"",
		q.Name,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
