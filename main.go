package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"eventify/internal/config"
	"eventify/internal/handlers"
	"eventify/internal/kafka"
	"eventify/internal/logger"
	"eventify/internal/middleware"
	"eventify/internal/models"
	rediswrap "eventify/internal/redis"
	"eventify/internal/services"
	"eventify/internal/storage"
	"eventify/internal/token"

	"github.com/gin-gonic/gin"
)

// Global logger instance
var log *logger.Logger

func main() {
	log = logger.NewLogger()
	defer log.Close()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn("ENV", "Error loading .env file, using environment variables")
	}

	log.LogProcess("STARTUP", "Eventify backend starting up...")
	log.Info("SYSTEM", "Initializing components...")

	// Load configuration
	cfg := config.Load()
	log.Info("CONFIG", "Configuration loaded successfully")

	log.LogProcess("DATABASE", "Initializing MySQL database...")
	store, err := storage.NewMySQLStore(cfg.Database, log)
	if err != nil {
		log.Fatal("DATABASE", "Failed to initialize MySQL: "+err.Error())
	}
	defer store.Close()
	log.LogDatabase("INIT", "mysql", "MySQL storage initialized successfully")

	// Initialize Kafka
	log.LogProcess("KAFKA", "Initializing Kafka producer...")
	kafkaProducer, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.MockMode, log)
	if err != nil {
		log.Fatal("KAFKA", "Failed to create Kafka producer: "+err.Error())
	}
	defer kafkaProducer.Close()
	log.LogKafka("INIT", "producer", "Kafka producer initialized successfully")

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})
	eventCache := rediswrap.NewEventCache(redisClient)
	log.LogProcess("SERVICE", "Redis event cache initialized")

	// Token service signs every access credential with the server key
	tokens := token.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if os.Getenv("JWT_SECRET") == "" {
		log.Warn("AUTH", "JWT_SECRET not set, using development default")
	}

	// Initialize services
	authService := services.NewAuthService(store, tokens, log)
	userService := services.NewUserService(store, log)
	eventService := services.NewEventService(store, eventCache, log)
	categoryService := services.NewCategoryService(store, log)
	orderService := services.NewOrderService(store, kafkaProducer, log)
	ticketService := services.NewTicketService(store, kafkaProducer, log)
	statsService := services.NewStatsService(store, log)
	log.LogProcess("SERVICE", "All services initialized")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	eventHandler := handlers.NewEventHandler(eventService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	orderHandler := handlers.NewOrderHandler(orderService)
	ticketHandler := handlers.NewTicketHandler(ticketService)
	adminHandler := handlers.NewAdminHandler(statsService)
	log.LogProcess("HANDLER", "All handlers initialized")

	// Setup router
	router := setupRouter(tokens, store, authHandler, userHandler, eventHandler,
		categoryHandler, orderHandler, ticketHandler, adminHandler)
	log.LogProcess("ROUTER", "HTTP router configured")

	// Create server
	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.LogProcess("SERVER", "Starting HTTP server on "+cfg.Server.Port)
		log.Info("STARTUP", "Eventify backend is ready to accept requests")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("SERVER", "Server failed to start: "+err.Error())
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Warn("SHUTDOWN", "Received shutdown signal, initiating graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("SHUTDOWN", "Server forced to shutdown: "+err.Error())
	}

	log.Info("SHUTDOWN", "Eventify backend shutdown completed successfully")
}

func setupRouter(
	tokens *token.Service,
	store storage.Store,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	eventHandler *handlers.EventHandler,
	categoryHandler *handlers.CategoryHandler,
	orderHandler *handlers.OrderHandler,
	ticketHandler *handlers.TicketHandler,
	adminHandler *handlers.AdminHandler,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.EnhancedLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit(log))
	router.Use(middleware.SecurityHeaders(log))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
			"service":   "eventify-backend",
			"version":   "1.0.0",
		})
	})

	authRequired := middleware.RequireAuth(tokens, store, log)
	activeRequired := middleware.RequireActive()
	adminRequired := middleware.RequireRole(models.RoleAdmin)

	// API routes
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		users := api.Group("/users", authRequired)
		{
			users.GET("/me", activeRequired, userHandler.Me)
			users.PUT("/me", activeRequired, userHandler.UpdateMe)
			users.GET("", activeRequired, adminRequired, userHandler.List)
			users.PUT("/:id", activeRequired, adminRequired, userHandler.Update)
			users.PATCH("/:id/activate", activeRequired, adminRequired, userHandler.Activate)
			users.DELETE("/:id", activeRequired, adminRequired, userHandler.Delete)
		}

		events := api.Group("/events")
		{
			events.GET("", eventHandler.List)
			events.GET("/:id", eventHandler.Get)
			events.POST("", authRequired, activeRequired, adminRequired, eventHandler.Create)
			events.PUT("/:id", authRequired, activeRequired, adminRequired, eventHandler.Update)
			events.DELETE("/:id", authRequired, activeRequired, adminRequired, eventHandler.Delete)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.Get)
			categories.POST("", authRequired, activeRequired, adminRequired, categoryHandler.Create)
			categories.PUT("/:id", authRequired, activeRequired, adminRequired, categoryHandler.Update)
			categories.DELETE("/:id", authRequired, activeRequired, adminRequired, categoryHandler.Delete)
		}

		orders := api.Group("/orders", authRequired, activeRequired)
		{
			orders.POST("", orderHandler.Create)
			orders.GET("", orderHandler.List)
			orders.GET("/:id", orderHandler.Get)
		}

		tickets := api.Group("/tickets", authRequired, activeRequired)
		{
			tickets.GET("/my-tickets", ticketHandler.MyTickets)
			tickets.DELETE("/:id", ticketHandler.Cancel)
		}

		admin := api.Group("/admin", authRequired, activeRequired, adminRequired)
		{
			admin.GET("/stats", adminHandler.Stats)
		}
	}

	log.LogProcess("ROUTER", "All routes registered successfully")
	return router
}
