package e2e

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
)

const productionScript = "Meet the AeroBrew coffee maker, built for small kitchens.\n\nBrew a full pot in under three minutes.\n\nOrder yours today."

// startProduction enqueues a production and returns the start response map.
func startProduction(t *testing.T, ta *testApp, body string) map[string]interface{} {
	t.Helper()

	resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/productions/start", body)
	if err != nil {
		t.Fatalf("start request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusAccepted)
	return parseJSON(t, resp)
}

func TestProductionStart_Success(t *testing.T) {
	ta := setupApp(t)

	body := fmt.Sprintf(`{"title": "AeroBrew launch", "script": %q, "style": "retail"}`, productionScript)
	result := startProduction(t, ta, body)

	productionID, ok := result["productionId"].(string)
	if !ok || productionID == "" {
		t.Fatal("expected 'productionId' in response")
	}
	if result["jobId"] != productionID {
		t.Errorf("expected jobId to equal productionId, got %v", result["jobId"])
	}
	if result["status"] != "queued" {
		t.Errorf("expected status queued, got %v", result["status"])
	}
}

func TestProductionStart_NoAuth(t *testing.T) {
	ta := setupApp(t)

	resp, err := doRequest(ta.app, http.MethodPost, "/api/productions/start", `{"script": "anything"}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusUnauthorized)
}

func TestProductionStart_MissingScript(t *testing.T) {
	ta := setupApp(t)

	resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/productions/start", `{"title": "No script"}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusBadRequest)

	result := parseJSON(t, resp)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %v", errObj["code"])
	}
}

func TestProductionStart_PlanNotApproved(t *testing.T) {
	ta := setupApp(t)

	plan := createPlan(t, ta)
	planID := plan["id"].(string)

	// Plan is still under review, so starting must be refused
	body := fmt.Sprintf(`{"script": %q, "planId": "%s"}`, productionScript, planID)
	resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/productions/start", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusConflict)

	result := parseJSON(t, resp)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "CONFLICT" {
		t.Errorf("expected CONFLICT, got %v", errObj["code"])
	}
}

func TestProductionStart_ApprovedPlan(t *testing.T) {
	ta := setupApp(t)

	plan := createPlan(t, ta)
	planID := plan["id"].(string)
	approvePlan(t, ta, planID)

	body := fmt.Sprintf(`{"script": %q, "planId": "%s"}`, productionScript, planID)
	result := startProduction(t, ta, body)
	if result["productionId"] == nil || result["productionId"] == "" {
		t.Error("expected productionId after starting with approved plan")
	}
}

func TestProductionStart_PlanNotFound(t *testing.T) {
	ta := setupApp(t)

	body := fmt.Sprintf(`{"script": %q, "planId": "%s"}`, productionScript, uuid.New().String())
	resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/productions/start", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusNotFound)
}

func TestProductionStatus_Success(t *testing.T) {
	ta := setupApp(t)

	body := fmt.Sprintf(`{"script": %q}`, productionScript)
	started := startProduction(t, ta, body)
	productionID := started["productionId"].(string)

	resp, err := doAuthRequest(t, ta.app, http.MethodGet, "/api/productions/status/"+productionID, "")
	if err != nil {
		t.Fatalf("status request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	if result["productionId"] != productionID {
		t.Errorf("expected productionId %s, got %v", productionID, result["productionId"])
	}

	// No worker is running in e2e, so the record still shows all five
	// phases pending.
	phases, ok := result["phases"].([]interface{})
	if !ok || len(phases) != 5 {
		t.Fatalf("expected 5 phases, got %v", result["phases"])
	}
	first := phases[0].(map[string]interface{})
	if first["id"] != "analyze" {
		t.Errorf("expected first phase analyze, got %v", first["id"])
	}
	if first["status"] != "pending" {
		t.Errorf("expected pending phase, got %v", first["status"])
	}
}

func TestProductionStatus_NotFound(t *testing.T) {
	ta := setupApp(t)

	resp, err := doAuthRequest(t, ta.app, http.MethodGet, "/api/productions/status/"+uuid.New().String(), "")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusNotFound)

	result := parseJSON(t, resp)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND, got %v", errObj["code"])
	}
}

func TestProductionResult_NotCompleted(t *testing.T) {
	ta := setupApp(t)

	body := fmt.Sprintf(`{"script": %q}`, productionScript)
	started := startProduction(t, ta, body)
	productionID := started["productionId"].(string)

	resp, err := doAuthRequest(t, ta.app, http.MethodGet, "/api/productions/result/"+productionID, "")
	if err != nil {
		t.Fatalf("result request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusBadRequest)
}

func TestProductionLogs_Success(t *testing.T) {
	ta := setupApp(t)

	body := fmt.Sprintf(`{"script": %q}`, productionScript)
	started := startProduction(t, ta, body)
	productionID := started["productionId"].(string)

	resp, err := doAuthRequest(t, ta.app, http.MethodGet, "/api/productions/logs/"+productionID, "")
	if err != nil {
		t.Fatalf("logs request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	if result["productionId"] != productionID {
		t.Errorf("expected productionId %s, got %v", productionID, result["productionId"])
	}
	if _, ok := result["logs"]; !ok {
		t.Error("expected 'logs' in response")
	}
}

func TestProductionCancel_Success(t *testing.T) {
	ta := setupApp(t)

	body := fmt.Sprintf(`{"script": %q}`, productionScript)
	started := startProduction(t, ta, body)
	productionID := started["productionId"].(string)

	resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/productions/cancel/"+productionID, "")
	if err != nil {
		t.Fatalf("cancel request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	if result["success"] != true {
		t.Errorf("expected success true, got %v", result["success"])
	}
	if result["status"] != "canceled" {
		t.Errorf("expected status canceled, got %v", result["status"])
	}

	// The job record now reports canceled
	resp, err = doAuthRequest(t, ta.app, http.MethodGet, "/api/productions/status/"+productionID, "")
	if err != nil {
		t.Fatalf("status request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)
	status := parseJSON(t, resp)
	if status["jobStatus"] != "canceled" {
		t.Errorf("expected jobStatus canceled, got %v", status["jobStatus"])
	}
}

func TestProductionCancel_NotFound(t *testing.T) {
	ta := setupApp(t)

	resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/productions/cancel/"+uuid.New().String(), "")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusNotFound)
}

func TestProductionDownload_NoOutput(t *testing.T) {
	ta := setupApp(t)

	body := fmt.Sprintf(`{"script": %q}`, productionScript)
	started := startProduction(t, ta, body)
	productionID := started["productionId"].(string)

	// Nothing has been assembled yet
	resp, err := doAuthRequest(t, ta.app, http.MethodGet, "/api/productions/download/"+productionID, "")
	if err != nil {
		t.Fatalf("download request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusNotFound)
}
