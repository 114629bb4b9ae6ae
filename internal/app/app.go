package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"clientdesk/internal/config"
	"clientdesk/internal/handlers"
	"clientdesk/internal/middleware"
	"clientdesk/internal/pdf"
	"clientdesk/internal/queue"
	"clientdesk/internal/repositories"
	"clientdesk/internal/routes"
	"clientdesk/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	_ "clientdesk/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("database connection: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("database close: %v", err)
		}
	}()

	// === Repos ===
	leadRepo := repositories.NewLeadRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	dealRepo := repositories.NewDealRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	pipelineRepo := repositories.NewPipelineRepository(db)
	userRepo := repositories.NewUserRepository(db)
	preferenceRepo := repositories.NewPreferenceRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// === Queue (optional) ===
	// With no broker configured activities are written straight to the DB.
	var producer *queue.Producer
	if cfg.Queue.URL != "" {
		mq, err := queue.NewRabbitMQ(cfg.Queue.URL)
		if err != nil {
			log.Printf("rabbitmq unavailable, activities go direct to DB: %v", err)
		} else {
			defer mq.Close()
			producer = queue.NewProducer(mq.Ch)
			worker := queue.NewWorker(mq.Ch, activityRepo)
			go func() {
				if err := worker.Start(ctx); err != nil {
					log.Printf("activity worker stopped: %v", err)
				}
			}()
		}
	}

	// === Telegram (optional) ===
	var tg *services.TelegramService
	if cfg.Telegram.BotToken != "" {
		tg, err = services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.ManagementChatID)
		if err != nil {
			log.Printf("telegram disabled: %v", err)
			tg = nil
		}
	}

	// === Services ===
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	activityService := services.NewActivityService(activityRepo, producer)

	leadService := services.NewLeadService(leadRepo, dealRepo, customerRepo, pipelineRepo, activityService)
	customerService := services.NewCustomerService(customerRepo)
	dealService := services.NewDealService(dealRepo, customerRepo, activityService)
	taskService := services.NewTaskService(taskRepo, activityService)
	appointmentService := services.NewAppointmentService(appointmentRepo, activityService)

	receiptGen := pdf.NewReceiptGenerator(cfg.Files.RootDir)
	paymentService := services.NewPaymentService(paymentRepo, customerRepo, activityService, receiptGen)

	pipelineService := services.NewPipelineService(pipelineRepo)
	dashboardService := services.NewDashboardService(leadRepo, dealRepo, appointmentRepo, paymentRepo, activityRepo)
	userService := services.NewUserService(userRepo)
	preferenceService := services.NewPreferenceService(preferenceRepo)

	reminderService := services.NewReminderService(taskRepo, userRepo, emailService, tg)
	go reminderService.Run(ctx, time.Minute)

	// === Handlers ===
	leadHandler := handlers.NewLeadHandler(leadService, customerService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	dealHandler := handlers.NewDealHandler(dealService, tg)
	taskHandler := handlers.NewTaskHandler(taskService, tg, userRepo)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	activityHandler := handlers.NewActivityHandler(activityService)
	pipelineHandler := handlers.NewPipelineHandler(pipelineService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	userHandler := handlers.NewUserHandler(userService)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(middleware.Metrics())

	routes.SetupRoutes(
		router,
		cfg.Files.RootDir,
		leadHandler,
		customerHandler,
		dealHandler,
		taskHandler,
		appointmentHandler,
		paymentHandler,
		activityHandler,
		pipelineHandler,
		dashboardHandler,
		userHandler,
		preferenceHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
