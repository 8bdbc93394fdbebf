package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/growthx-admin/internal/infra/cache"
	"github.com/xavierca1/growthx-admin/internal/infra/database"
	"github.com/xavierca1/growthx-admin/internal/infra/http/handlers"
	"github.com/xavierca1/growthx-admin/internal/infra/http/middleware"
	"github.com/xavierca1/growthx-admin/internal/infra/integration/bot"
	"github.com/xavierca1/growthx-admin/internal/infra/integration/telegram"
	"github.com/xavierca1/growthx-admin/internal/infra/mail"
	"github.com/xavierca1/growthx-admin/internal/infra/queue"
	"github.com/xavierca1/growthx-admin/internal/infra/scheduler"
	"github.com/xavierca1/growthx-admin/internal/usecase"
)

func main() {
	godotenv.Load()

	// Every external dependency is optional: with no DATABASE_URL the
	// server still boots and serves empty data instead of crashing.
	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}
	if db != nil {
		defer db.Close()
	} else {
		log.Println("⚠️ DATABASE_URL not set, running without persistence")
	}

	rabbitMQ, err := queue.NewRabbitMQ(os.Getenv("RABBITMQ_URL"))
	if err != nil {
		log.Fatalf("❌ RabbitMQ connection failed: %v", err)
	}
	if rabbitMQ != nil {
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
	}

	redisClient, err := cache.NewRedisClient(os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD"), 0)
	if err != nil {
		log.Fatalf("❌ Redis connection failed: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// 1. Repositories (all of them tolerate a nil db)
	leadRepo := database.NewLeadRepository(db)
	paymentRepo := database.NewPaymentRepository(db)
	followupRepo := database.NewFollowupRepository(db)
	signalRepo := database.NewSignalRepository(db)
	tradeRepo := database.NewTradeRepository(db)
	metricsRepo := database.NewMetricsRepository(db)

	// 2. Gateways and adapters
	chatSender := telegram.NewClient(os.Getenv("TELEGRAM_BOT_TOKEN"))
	botGateway := bot.NewClient(os.Getenv("BOT_API_URL"), os.Getenv("BOT_ADMIN_TOKEN"))
	emailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"), os.Getenv("EMAIL_FOLLOWUPS_ENABLED") == "true",
	)

	var deduper usecase.SignalDeduperInterface
	if redisClient != nil {
		deduper = cache.NewSignalDeduper(redisClient, 5*time.Minute)
	}

	// 3. Use cases
	recordLeadUC := usecase.NewRecordLeadUseCase(leadRepo)
	recordPaymentUC := usecase.NewRecordPaymentUseCase(paymentRepo)
	recordFollowupUC := usecase.NewRecordFollowupUseCase(followupRepo)
	approveUC := usecase.NewApproveUserUseCase(paymentRepo, leadRepo, botGateway)
	dispatchUC := usecase.NewDispatchFollowupsUseCase(followupRepo, leadRepo, chatSender, emailSender)
	broadcastUC := usecase.NewBroadcastSignalUseCase(leadRepo, paymentRepo, signalRepo, chatSender, deduper)

	// 4. Queue plumbing (only when RabbitMQ is up)
	var producer queue.QueueProducerInterface
	if rabbitMQ != nil {
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		worker := queue.NewWorker(rabbitMQ.Ch, &queue.UseCaseRecorder{
			Leads:     recordLeadUC,
			Payments:  recordPaymentUC,
			Followups: recordFollowupUC,
		})
		go worker.Start(queue.QueueName)
	}

	// 5. Scheduler
	sched := scheduler.New(dispatchUC, schedulerInterval(), usecase.ChannelTelegram)
	go sched.Start(context.Background())
	defer sched.Stop()

	// 6. Handlers
	botHandler := handlers.NewBotHandler(recordLeadUC, recordPaymentUC, recordFollowupUC, producer)
	adminHandler := handlers.NewAdminHandler(
		leadRepo, paymentRepo, followupRepo, signalRepo,
		approveUC, dispatchUC, broadcastUC,
	)
	webhookHandler := handlers.NewWebhookHandler(broadcastUC, os.Getenv("TRADINGVIEW_WEBHOOK_SECRET"))
	tradingHandler := handlers.NewTradingHandler(tradeRepo, metricsRepo)
	healthHandler := handlers.NewHealthHandler(db, connOrNil(rabbitMQ), redisClient)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Admin-Token", "X-Webhook-Secret"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/bot", func(r chi.Router) {
			r.Post("/leads", botHandler.RecordLead)
			r.Post("/payments", botHandler.RecordPayment)
			r.Post("/followups", botHandler.RecordFollowup)
		})

		r.Route("/webhooks", func(r chi.Router) {
			r.Post("/tradingview", webhookHandler.HandleTradingView)
			r.Get("/test", webhookHandler.HandleTest)
		})

		r.Route("/trading", func(r chi.Router) {
			r.Get("/metrics", tradingHandler.GetMetrics)
			r.Post("/metrics", tradingHandler.UpsertMetrics)
			r.Get("/trades", tradingHandler.GetTrades)
			r.Get("/trades/open", tradingHandler.GetOpenTrades)
			r.Post("/trades", tradingHandler.UpsertTrade)
			r.Get("/projection", tradingHandler.GetProjection)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminAuth(os.Getenv("ADMIN_TOKEN")))

			r.Get("/leads", adminHandler.GetLeads)
			r.Get("/leads/stats", adminHandler.GetLeadStats)
			r.Get("/leads/{telegramId}", adminHandler.GetLeadDetails)
			r.Post("/leads/{telegramId}/inactive", adminHandler.DeactivateLead)
			r.Get("/payments", adminHandler.GetPayments)
			r.Get("/revenue", adminHandler.GetRevenue)
			r.Get("/followups/pending", adminHandler.GetPendingFollowups)
			r.Post("/followups/dispatch", adminHandler.DispatchFollowups)
			r.Post("/approve", adminHandler.ApproveUser)
			r.Post("/signals/broadcast", adminHandler.BroadcastSignal)
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 GrowthX admin server running on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

func schedulerInterval() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("FOLLOWUP_INTERVAL_HOURS"))
	if err != nil || hours <= 0 {
		return 6 * time.Hour
	}
	return time.Duration(hours) * time.Hour
}

func connOrNil(r *queue.RabbitMQ) *amqp.Connection {
	if r == nil {
		return nil
	}
	return r.Conn
}
