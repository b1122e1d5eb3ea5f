package e2e

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/shopstack/studio-api/internal/auth"
	"github.com/shopstack/studio-api/internal/client"
	"github.com/shopstack/studio-api/internal/config"
	"github.com/shopstack/studio-api/internal/handler"
	"github.com/shopstack/studio-api/internal/middleware"
	"github.com/shopstack/studio-api/internal/service"
)

const testJWTSecret = "test-secret-for-e2e"

// testApp holds all components needed for testing
type testApp struct {
	app *fiber.App
}

// setupApp creates a Fiber app identical to main.go but with unconfigured
// external clients, so all services fall back to their mock paths. Tests are
// skipped when Redis is not reachable.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	// Redis (localhost — must be running)
	redisClient := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15, // use DB 15 for tests to avoid collision
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis not available: %v", err)
	}

	// Asynq client
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr: "localhost:6379",
		DB:   15,
	})
	t.Cleanup(func() { asynqClient.Close() })

	validate := validator.New()

	// External clients — all unconfigured so services use mock fallbacks
	scriptClient := client.NewScriptClient(&config.ScriptConfig{})     // no API key → mock
	composeClient := client.NewComposeClient(&config.ComposerConfig{}) // no URL → redirect path

	// Services
	scriptService := service.NewScriptService(scriptClient)
	planService := service.NewPlanService(redisClient, scriptService)
	productionService := service.NewProductionService(redisClient, asynqClient, planService)

	// Handlers
	scriptHandler := handler.NewScriptHandler(scriptService, planService, validate)
	planHandler := handler.NewPlanHandler(planService, validate)
	productionHandler := handler.NewProductionHandler(productionService, composeClient, nil, validate)

	// Auth handler (for /auth/verify)
	authHandler := handler.NewAuthHandler(nil, testJWTSecret)

	// Auth middleware — HMAC session tokens only
	authMiddleware := middleware.NewAuthMiddleware(nil, testJWTSecret)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024,
	})

	// Base routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"timestamp": 1234567890})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"services": fiber.Map{
				"script":   false,
				"media":    false,
				"composer": false,
				"r2":       false,
				"auth":     true,
			},
		})
	})
	app.Get("/auth/verify", authHandler.Verify)

	// API routes (authenticated)
	api := app.Group("/api", authMiddleware.Authenticate())

	// Use very high rate limits so tests don't get blocked
	script := api.Group("/script", rateLimiter.ScriptLimit(10000))
	script.Post("/generate", scriptHandler.Generate)
	script.Post("/suggest-visuals", scriptHandler.SuggestVisuals)

	plans := api.Group("/plans", rateLimiter.PlanLimit(10000))
	plans.Get("/:planId", planHandler.Get)
	plans.Post("/:planId/approve", planHandler.Approve)
	plans.Post("/:planId/select", planHandler.Select)
	plans.Post("/:planId/regenerate", planHandler.Regenerate)

	productions := api.Group("/productions")
	productions.Post("/start", rateLimiter.ProductionLimit(10000), productionHandler.Start)
	productions.Get("/status/:productionId", productionHandler.Status)
	productions.Get("/result/:productionId", productionHandler.Result)
	productions.Get("/logs/:productionId", productionHandler.Logs)
	productions.Post("/cancel/:productionId", productionHandler.Cancel)
	productions.Get("/download/:productionId", rateLimiter.DownloadLimit(10000), productionHandler.Download)

	return &testApp{app: app}
}

// generateToken creates an HMAC session token for test requests.
func generateToken(t *testing.T) string {
	t.Helper()
	claims := auth.SessionClaims{
		UserID: "test-user-123",
		Email:  "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "studio-api",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}
	return signed
}

// doRequest is a helper to perform HTTP requests against the test app.
func doRequest(app *fiber.App, method, path string, body string, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, path, bodyReader)
	if err != nil {
		return nil, err
	}

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.Test(req, -1)
}

// doAuthRequest performs an authenticated request.
func doAuthRequest(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, error) {
	t.Helper()
	token := generateToken(t)
	return doRequest(app, method, path, body, map[string]string{
		"Authorization": "Bearer " + token,
	})
}

// readBody reads and returns the response body as a string.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return string(b)
}

// parseJSON parses response body into a map.
func parseJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	body := readBody(t, resp)
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, body)
	}
	return result
}

// assertStatus checks the HTTP status code.
func assertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("expected status %d, got %d", expected, resp.StatusCode)
	}
}
