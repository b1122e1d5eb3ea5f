package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/gofiber/swagger"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/shopstack/studio-api/docs"
	"github.com/shopstack/studio-api/internal/auth"
	"github.com/shopstack/studio-api/internal/client"
	"github.com/shopstack/studio-api/internal/config"
	"github.com/shopstack/studio-api/internal/handler"
	"github.com/shopstack/studio-api/internal/middleware"
	"github.com/shopstack/studio-api/internal/service"
	ws "github.com/shopstack/studio-api/internal/websocket"
	"github.com/shopstack/studio-api/internal/worker"
)

// @title          Shopstack Studio API
// @version        1.0
// @description    Back-office API for Shopstack Studio — AI-assisted product video production.
// @host           localhost:8000
// @BasePath       /
// @schemes        http https
// @securityDefinitions.apikey BearerAuth
// @in             header
// @name           Authorization
// @description    Enter your bearer token in the format **Bearer &lt;token&gt;**
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Configure Swagger host/scheme based on environment
	if cfg.Server.ApiDomain != "" {
		docs.SwaggerInfo.Host = cfg.Server.ApiDomain
		docs.SwaggerInfo.Schemes = []string{"https"}
	} else {
		docs.SwaggerInfo.Host = "localhost:" + cfg.Server.Port
		docs.SwaggerInfo.Schemes = []string{"http"}
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test Redis connection
	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Redis not available: %v", err)
	}

	// Initialize Asynq client
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer asynqClient.Close()

	// Initialize validator
	validate := validator.New()

	// Initialize WebSocket hub
	hub := ws.NewHub()
	go hub.Run()

	// Initialize external clients
	scriptClient := client.NewScriptClient(&cfg.Script)
	mediaClient := client.NewMediaClient(&cfg.Media)
	composeClient := client.NewComposeClient(&cfg.Composer)

	// Initialize R2 client (optional - continues if not configured)
	var r2Client *client.R2Client
	if cfg.R2.AccessKeyID != "" && cfg.R2.SecretAccessKey != "" {
		var err error
		r2Client, err = client.NewR2Client(&cfg.R2)
		if err != nil {
			log.Printf("Warning: R2 client not initialized: %v", err)
		}
	} else {
		log.Println("Info: R2 storage not configured, outputs stay on the composer")
	}

	// Initialize Zitadel JWKS verifier (optional - falls back to HMAC session tokens)
	var jwksVerifier *auth.JWKSVerifier
	if cfg.Zitadel.Issuer != "" {
		var err error
		jwksVerifier, err = auth.NewJWKSVerifier(&cfg.Zitadel)
		if err != nil {
			log.Printf("Warning: JWKS verifier not initialized: %v", err)
		} else {
			defer jwksVerifier.Close()
		}
	}

	// Initialize services
	scriptService := service.NewScriptService(scriptClient)
	planService := service.NewPlanService(redisClient, scriptService)
	productionService := service.NewProductionService(redisClient, asynqClient, planService)

	// Initialize handlers
	scriptHandler := handler.NewScriptHandler(scriptService, planService, validate)
	planHandler := handler.NewPlanHandler(planService, validate)
	// Keep the interface nil when R2 is not configured
	var storage client.StorageClient
	if r2Client != nil {
		storage = r2Client
	}
	productionHandler := handler.NewProductionHandler(productionService, composeClient, storage, validate)

	// Initialize auth handler for ForwardAuth verification
	var tokenVerifier auth.TokenVerifier
	if jwksVerifier != nil {
		tokenVerifier = jwksVerifier
	}
	authHandler := handler.NewAuthHandler(tokenVerifier, cfg.JWT.Secret)

	// Initialize middleware (with fallback support)
	var apiAuthMiddleware fiber.Handler
	if cfg.Gateway.Enabled {
		// Behind Traefik: auth is handled by ForwardAuth, read X-User-* headers
		log.Println("Info: Gateway mode enabled — using header-based auth")
		apiAuthMiddleware = middleware.GatewayAuthMiddleware()
	} else {
		// Direct mode: auth is handled by the backend itself
		apiAuthMiddleware = middleware.NewAuthMiddleware(tokenVerifier, cfg.JWT.Secret).Authenticate()
	}
	rateLimiter := middleware.NewRateLimiter(redisClient)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    50 * 1024 * 1024, // 50MB
	})

	// Global middleware
	app.Use(recover.New())
	isDebug := strings.EqualFold(cfg.Server.LogLevel, "debug")
	logFormat := "[${time}] ${status} - ${latency} ${method} ${path}\n"
	if isDebug {
		logFormat = "[${time}] ${status} - ${latency} ${method} ${path} ${queryParams} ${body} ${reqHeaders}\n"
		log.Println("Debug logging enabled")
	}
	app.Use(logger.New(logger.Config{
		Format: logFormat,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Base URL - timestamp
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"timestamp": time.Now().Unix(),
		})
	})

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"services": fiber.Map{
				"script":   scriptClient.IsConfigured(),
				"media":    mediaClient.IsConfigured(),
				"composer": composeClient.IsConfigured(),
				"r2":       r2Client != nil,
				"auth":     jwksVerifier != nil || cfg.JWT.Secret != "",
			},
		})
	})

	// Swagger UI
	app.Get("/swagger/*", fiberSwagger.HandlerDefault)

	// ForwardAuth verification endpoint (internal, called by Traefik)
	app.Get("/auth/verify", authHandler.Verify)

	// API routes
	api := app.Group("/api", apiAuthMiddleware)

	// Script routes
	script := api.Group("/script", rateLimiter.ScriptLimit(cfg.RateLimit.ScriptPerMin))
	script.Post("/generate", scriptHandler.Generate)
	script.Post("/suggest-visuals", scriptHandler.SuggestVisuals)

	// Visual plan routes
	plans := api.Group("/plans", rateLimiter.PlanLimit(cfg.RateLimit.PlanPerMin))
	plans.Get("/:planId", planHandler.Get)
	plans.Post("/:planId/approve", planHandler.Approve)
	plans.Post("/:planId/select", planHandler.Select)
	plans.Post("/:planId/regenerate", planHandler.Regenerate)

	// Production routes
	productions := api.Group("/productions")
	productions.Post("/start", rateLimiter.ProductionLimit(cfg.RateLimit.ProductionPerHour), productionHandler.Start)
	productions.Get("/status/:productionId", productionHandler.Status)
	productions.Get("/result/:productionId", productionHandler.Result)
	productions.Get("/logs/:productionId", productionHandler.Logs)
	productions.Post("/cancel/:productionId", productionHandler.Cancel)
	productions.Get("/download/:productionId", rateLimiter.DownloadLimit(cfg.RateLimit.DownloadPerHour), productionHandler.Download)

	// WebSocket routes
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/productions/:productionId", websocket.New(func(c *websocket.Conn) {
		productionID := c.Params("productionId")
		hub.HandleConnection(c, productionID)
	}))

	// Start Asynq worker server
	go startWorkerServer(cfg, productionService, planService, mediaClient, scriptClient, composeClient, r2Client, hub)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// Start server
	addr := ":" + cfg.Server.Port
	log.Printf("Server starting on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func startWorkerServer(
	cfg *config.Config,
	productionService *service.ProductionService,
	planService *service.PlanService,
	mediaClient *client.MediaClient,
	scriptClient *client.ScriptClient,
	composeClient *client.ComposeClient,
	r2Client *client.R2Client,
	hub *ws.Hub,
) {
	asynqLogLevel := asynq.InfoLevel
	if strings.EqualFold(cfg.Server.LogLevel, "debug") {
		asynqLogLevel = asynq.DebugLevel
	} else if strings.EqualFold(cfg.Server.LogLevel, "warn") {
		asynqLogLevel = asynq.WarnLevel
	} else if strings.EqualFold(cfg.Server.LogLevel, "error") {
		asynqLogLevel = asynq.ErrorLevel
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"production": 10,
			},
			LogLevel: asynqLogLevel,
		},
	)

	// Keep the interface nil when R2 is not configured
	var storage client.StorageClient
	if r2Client != nil {
		storage = r2Client
	}

	productionWorker := worker.NewProductionWorker(
		productionService,
		planService,
		mediaClient,
		scriptClient,
		composeClient,
		storage,
		hub,
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(service.TaskTypeProduction, productionWorker.ProcessTask)

	if err := srv.Run(mux); err != nil {
		log.Printf("Asynq worker error: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "SERVICE_ERROR",
			"message": message,
		},
	})
}
