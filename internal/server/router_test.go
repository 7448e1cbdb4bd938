package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"spendly/internal/assistant"
	"spendly/internal/config"
	"spendly/internal/database"
	"spendly/internal/logger"
	"spendly/internal/middleware"
	"spendly/internal/testutil"
	"spendly/internal/validator"
)

const testJWTSecret = "router-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// testApp holds the full application stack for end-to-end tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

type noopMigrator struct{}

func (noopMigrator) RunMigrations() error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		CORSAllowOrigin: "*",
		AuthMode:        config.AuthModeNone,
		JWTSecret:       testJWTSecret,
		AdminAPIKey:     "admin-key",
	}
}

// setupApp creates a full application stack backed by an isolated,
// initially empty, in-memory SQLite database.
func setupApp(t *testing.T, cfg *config.Config) *testApp {
	t.Helper()

	db := testutil.OpenTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	router := NewRouter(Dependencies{
		Config:    cfg,
		Sync:      NewServices(testutil.Provider(db)),
		Assistant: assistant.New(nil),
		Migrator:  noopMigrator{},
	})
	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func TestSyncFlow_PushThenPull(t *testing.T) {
	app := setupApp(t, testConfig())

	// Step 1: Push one expense into a fresh database.
	rec := app.request("POST", "/api/sync",
		`{"userId":"u1","expenses":[{"id":"e1","amount":12.50,"category":"food","description":"lunch","date":"2024-01-05"}]}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	synced := parseJSON(t, rec)["synced"].(map[string]interface{})
	if synced["expenses"].(float64) != 1 {
		t.Fatalf("expected synced.expenses 1, got %v", synced["expenses"])
	}

	// Step 2: Pull it back.
	rec = app.request("GET", "/api/sync?userId=u1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["success"] != true {
		t.Errorf("expected success, got %v", result["success"])
	}
	data := result["data"].(map[string]interface{})
	expenses := data["expenses"].([]interface{})
	if len(expenses) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(expenses))
	}
	expense := expenses[0].(map[string]interface{})
	if expense["amount"].(float64) != 12.5 {
		t.Errorf("expected amount 12.5, got %v", expense["amount"])
	}
	if expense["category"] != "food" || expense["date"] != "2024-01-05" {
		t.Errorf("unexpected expense: %v", expense)
	}
	if data["profile"] != nil {
		t.Errorf("expected null profile, got %v", data["profile"])
	}
}

func TestSyncFlow_FullSnapshot(t *testing.T) {
	app := setupApp(t, testConfig())

	body := `{
		"userId": "u1",
		"expenses": [
			{"id": "e1", "amount": 40, "category": "food", "date": "2024-02-01"},
			{"id": "e2", "amount": 0.1, "category": "fun", "date": "2024-02-03"}
		],
		"budgets": [{"id": "b1", "category": "food", "limit": 300, "spent": 40, "period": "monthly"}],
		"goals": [{"id": "g1", "name": "Trip", "targetAmount": 2000, "currentAmount": 150.75, "deadline": "2025-06-30", "color": "#3b82f6"}],
		"profile": {"name": "Ada", "email": "ada@example.com", "monthlyIncome": 4200, "currency": "EUR", "onboardingCompleted": true}
	}`
	rec := app.request("POST", "/api/sync", body, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	synced := parseJSON(t, rec)["synced"].(map[string]interface{})
	if synced["expenses"].(float64) != 2 || synced["budgets"].(float64) != 1 || synced["goals"].(float64) != 1 || synced["profile"] != true {
		t.Errorf("unexpected synced counts: %v", synced)
	}

	// Pushing the same snapshot again must not duplicate anything.
	rec = app.request("POST", "/api/sync", body, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on repeat, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/sync?userId=u1", "", nil)
	data := parseJSON(t, rec)["data"].(map[string]interface{})

	expenses := data["expenses"].([]interface{})
	if len(expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(expenses))
	}
	// Newest date first.
	if expenses[0].(map[string]interface{})["id"] != "e2" {
		t.Errorf("expected e2 first, got %v", expenses[0])
	}
	if expenses[0].(map[string]interface{})["amount"].(float64) != 0.1 {
		t.Errorf("expected amount 0.1, got %v", expenses[0].(map[string]interface{})["amount"])
	}

	budget := data["budgets"].([]interface{})[0].(map[string]interface{})
	if budget["spent"].(float64) != 0 || budget["limit"].(float64) != 300 || budget["period"] != "monthly" {
		t.Errorf("unexpected budget: %v", budget)
	}

	goal := data["goals"].([]interface{})[0].(map[string]interface{})
	if goal["currentAmount"].(float64) != 150.75 || goal["deadline"] != "2025-06-30" || goal["color"] != "#3b82f6" {
		t.Errorf("unexpected goal: %v", goal)
	}

	profile := data["profile"].(map[string]interface{})
	if profile["name"] != "Ada" || profile["currency"] != "EUR" || profile["monthlyIncome"].(float64) != 4200 || profile["onboardingCompleted"] != true {
		t.Errorf("unexpected profile: %v", profile)
	}
}

func TestSyncFlow_Validation(t *testing.T) {
	app := setupApp(t, testConfig())

	rec := app.request("POST", "/api/sync", `{"expenses":[]}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["error"] != "User ID is required" {
		t.Errorf("unexpected error %v", result["error"])
	}

	rec = app.request("GET", "/api/sync", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	if app.DB.Migrator().HasTable("expenses") {
		t.Error("expected rejected requests not to touch the database")
	}
}

func TestSyncFlow_DatabaseNotConfigured(t *testing.T) {
	router := NewRouter(Dependencies{
		Config:    testConfig(),
		Sync:      NewServices(database.NewManager(&database.Config{})),
		Assistant: assistant.New(nil),
		Migrator:  noopMigrator{},
	})
	app := &testApp{Router: router}

	rec := app.request("GET", "/api/sync?userId=u1", "", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["code"] != "DATABASE_NOT_CONFIGURED" || result["error"] != "DATABASE_URL is not configured" {
		t.Errorf("unexpected error body: %v", result)
	}
}

func TestSyncFlow_JWTMode(t *testing.T) {
	cfg := testConfig()
	cfg.AuthMode = config.AuthModeJWT
	app := setupApp(t, cfg)

	token, err := middleware.GenerateSessionToken(testJWTSecret, "u1", "", time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	auth := map[string]string{"Authorization": "Bearer " + token}

	// No token
	rec := app.request("GET", "/api/sync?userId=u1", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	// Someone else's data
	rec = app.request("POST", "/api/sync", `{"userId":"u2"}`, auth)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	// Own data, user id taken from the token
	rec = app.request("POST", "/api/sync",
		`{"goals":[{"id":"g1","name":"Fund","targetAmount":100,"currentAmount":0}]}`, auth)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/sync", "", auth)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	goals := parseJSON(t, rec)["data"].(map[string]interface{})["goals"].([]interface{})
	if len(goals) != 1 {
		t.Errorf("expected 1 goal, got %d", len(goals))
	}
}

func TestChat_NotConfigured(t *testing.T) {
	app := setupApp(t, testConfig())

	rec := app.request("POST", "/api/chat", `{"message":"How am I doing?"}`, nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if parseJSON(t, rec)["code"] != "ASSISTANT_NOT_CONFIGURED" {
		t.Error("expected ASSISTANT_NOT_CONFIGURED")
	}

	rec = app.request("POST", "/api/chat", `{}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminMigrate(t *testing.T) {
	app := setupApp(t, testConfig())

	rec := app.request("POST", "/api/admin/migrate", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = app.request("POST", "/api/admin/migrate", "", map[string]string{"X-API-Key": "admin-key"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHealthAndCORS(t *testing.T) {
	app := setupApp(t, testConfig())

	rec := app.request("GET", "/api/health", "", nil)
	if rec.Code != http.StatusOK || parseJSON(t, rec)["status"] != "ok" {
		t.Fatalf("unexpected health response: %d %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}

	rec = app.request("OPTIONS", "/api/sync", "", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS header")
	}
}
