package queue

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"
)

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue is an in-process pub/sub queue with retry
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	job := JobPayload{
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: 3,
	}

	for _, handler := range handlers {
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			return // ACK
		}

		job.RetryCount++
		log.Printf("Job failed (attempt %d/%d): %+v, error: %v\n", job.RetryCount, job.MaxRetries, job.Payload, err)

		if job.RetryCount > job.MaxRetries {
			log.Printf("Job permanently failed after %d attempts: %+v\n", job.MaxRetries, job.Payload)
			return // No requeue
		}

		// Exponential backoff before retry
		time.Sleep(time.Duration(job.RetryCount*500) * time.Millisecond)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// Notifier is what the urgent-order subscriber needs from the
// notification service.
type Notifier interface {
	NotifyUrgentOrder(orderID string) error
}

// StartUrgentOrderSubscriber alerts staff whenever an urgent order id is
// published on the urgent_orders topic.
func StartUrgentOrderSubscriber(q Queue, notifier Notifier) {
	err := q.Subscribe("urgent_orders", func(payload any) error {
		orderID, ok := payload.(string)
		if !ok {
			log.Println("⚠️ Invalid payload type, expected order id string")
			return nil // no retry
		}

		log.Println("📩 Processing urgent order alert:", orderID)

		if err := notifier.NotifyUrgentOrder(orderID); err != nil {
			log.Println("⚠️ Failed to send urgent order alert:", err)
			return err // triggers retry in queue
		}

		log.Println("✅ Urgent order alert sent:", orderID)
		return nil
	})

	if err != nil {
		log.Println("⚠️ Failed to start subscriber for urgent_orders:", err)
	}
}

//////////////////////////
// Example Mock Sender  //
//////////////////////////

// MockSMSSender simulates sending an SMS with 90% success
func MockSMSSender(to, message string) error {
	if rand.Float64() < 0.9 {
		log.Printf("📱 SMS to %s: %s\n", to, message)
		return nil // success
	}
	return fmt.Errorf("mock sending failed")
}
