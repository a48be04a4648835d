package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/propdesk/buyer-leads-api/internal/infra/database"
	"github.com/propdesk/buyer-leads-api/internal/infra/http/handlers"
	"github.com/propdesk/buyer-leads-api/internal/infra/http/middleware"
	"github.com/propdesk/buyer-leads-api/internal/infra/mail"
	"github.com/propdesk/buyer-leads-api/internal/infra/queue"
	"github.com/propdesk/buyer-leads-api/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// Repositories
	buyerRepo := database.NewBuyerRepository(db)
	historyRepo := database.NewHistoryRepository(db)
	userRepo := database.NewUserRepository(db)
	sessionRepo := database.NewSessionRepository(db)

	// Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "no-reply@propdesk.example"),
	)

	// Worker: consumes lead events and notifies owners of conversions.
	worker := queue.NewWorker(rabbitMQ, mailSender)
	go worker.Start(queue.QueueName)

	// UseCases
	createUC := usecase.NewCreateBuyerUseCase(buyerRepo, historyRepo, producer)
	updateUC := usecase.NewUpdateBuyerUseCase(buyerRepo, historyRepo, producer)
	deleteUC := usecase.NewDeleteBuyerUseCase(buyerRepo, producer)
	getUC := usecase.NewGetBuyerUseCase(buyerRepo, historyRepo)
	listUC := usecase.NewListBuyersUseCase(buyerRepo)
	importUC := usecase.NewImportCSVUseCase(createUC)
	exportUC := usecase.NewExportCSVUseCase(buyerRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo, sessionRepo)
	buyerHandler := handlers.NewBuyerHandler(createUC, updateUC, deleteUC, getUC, listUC)
	ioHandler := handlers.NewImportExportHandler(importUC, exportUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{envOr("CORS_ORIGIN", "http://localhost:3000")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Post("/auth/login", authHandler.HandleLogin)
	r.Get("/healthz", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticator(sessionRepo))

		r.Get("/buyers", buyerHandler.HandleList)
		r.Post("/buyers", buyerHandler.HandleCreate)
		r.Get("/buyers/export", ioHandler.HandleExport)
		r.Post("/buyers/import", ioHandler.HandleImport)
		r.Get("/buyers/{id}", buyerHandler.HandleGet)
		r.Put("/buyers/{id}", buyerHandler.HandleUpdate)
		r.Delete("/buyers/{id}", buyerHandler.HandleDelete)
	})

	port := ":" + envOr("PORT", "8080")
	log.Printf("buyer leads API listening on %s", port)
	if err := http.ListenAndServe(port, r); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
