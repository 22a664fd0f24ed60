// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/stitchline/tailorshop-backend/internal/controller"
	"github.com/stitchline/tailorshop-backend/internal/db"
	"github.com/stitchline/tailorshop-backend/internal/handler"
	"github.com/stitchline/tailorshop-backend/internal/queue"
	"github.com/stitchline/tailorshop-backend/internal/repository"
	"github.com/stitchline/tailorshop-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	dbConn, err := db.Connect()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	defer dbConn.Close()

	q := queue.NewInMemoryQueue()

	counterRepo := &repository.CounterRepository{DB: dbConn}
	customerRepo := &repository.CustomerRepository{DB: dbConn}
	orderRepo := &repository.OrderRepository{DB: dbConn}

	sequenceService := service.NewSequenceService(counterRepo)

	customerService := &service.CustomerService{
		Repo:      customerRepo,
		Sequences: sequenceService,
	}

	orderService := &service.OrderService{
		Repo:          orderRepo,
		Customers:     customerRepo,
		Sequences:     sequenceService,
		Queue:         q,
		EmbedCustomer: os.Getenv("ORDER_EMBED_CUSTOMER") == "true",
	}

	notificationService := &service.NotificationService{
		Orders:      orderRepo,
		SendFunc:    queue.MockSMSSender,
		StaffNumber: os.Getenv("STAFF_NUMBER"),
	}
	queue.StartUrgentOrderSubscriber(q, notificationService)

	customerController := &controller.CustomerController{
		CustomerService: customerService,
	}
	orderController := &controller.OrderController{
		OrderService: orderService,
		AMQPURL:      os.Getenv("AMQP_URL"),
	}
	outfitHandler := &handler.OutfitHandler{
		Customers: customerRepo,
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Customer routes
	r.Post("/api/customers", customerController.CreateCustomer)
	r.Get("/api/customers", customerController.ListCustomers)
	r.Get("/api/customers/{id}", customerController.GetCustomer)
	r.Put("/api/customers/{id}", customerController.UpdateCustomer)
	r.Delete("/api/customers/{id}", customerController.DeleteCustomer)

	// Order routes
	r.Post("/api/orders", orderController.CreateOrder)
	r.Get("/api/orders", orderController.ListOrders)
	r.Get("/api/orders/{id}", orderController.GetOrder)
	r.Put("/api/orders/{id}", orderController.UpdateOrderStatus)
	r.Delete("/api/orders/{id}", orderController.DeleteOrder)

	// Outfit selection routes: one handler, five paths
	outfitHandler.Register(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	srv := &http.Server{Addr: ":" + port, Handler: r}

	go func() {
		log.Println("🚀 Server running on :" + port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("⚠️ Shutdown error:", err)
	}
}
