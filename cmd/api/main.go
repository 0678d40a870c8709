package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"captaleads/internal/infra/database"
	"captaleads/internal/infra/http/handlers"
	appmiddleware "captaleads/internal/infra/http/middleware"
	"captaleads/internal/infra/mail"
	"captaleads/internal/infra/queue"
	"captaleads/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no banco: %v", err)
	}

	rabbitMQ, err := queue.NewRabbitMQ(
		getenv("RABBITMQ_USER", "guest"),
		getenv("RABBITMQ_PASSWORD", "guest"),
		getenv("RABBITMQ_HOST", "localhost"),
		getenv("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no RabbitMQ: %v", err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositório
	leadRepo := database.NewLeadRepository(db)

	// 2. Fila e notificação
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailPort, _ := strconv.Atoi(getenv("MAIL_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		getenv("MAIL_FROM", "nao-responda@captaleads.com"),
		getenv("SALES_INBOX", "comercial@captaleads.com"),
	)

	// 3. Worker (consome a fila e dispara o alerta por email)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	createUC := usecase.NewCreateLeadUseCase(leadRepo, producer)
	listUC := usecase.NewListLeadsUseCase(leadRepo)
	statsUC := usecase.NewLeadStatsUseCase(leadRepo)
	updateStatusUC := usecase.NewUpdateLeadStatusUseCase(leadRepo)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(
		createUC, listUC, statsUC, updateStatusUC,
		getenv("WHATSAPP_NUMBER", "5581999898306"),
	)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))
	r.Use(appmiddleware.Metrics)

	r.Route("/api/leads", func(r chi.Router) {
		r.Post("/", leadHandler.Create)
		r.Get("/", leadHandler.List)
		r.Get("/stats", leadHandler.Stats)
		r.Get("/whatsapp", leadHandler.WhatsApp)
		r.Put("/{id}/status", leadHandler.UpdateStatus)
	})
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.NotFound(handlers.NotFoundHandler)

	port := getenv("PORT", "8000")
	log.Printf("🔥 API de captação de leads rodando na porta %s", port)
	http.ListenAndServe(":"+port, r)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
