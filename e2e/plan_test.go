package e2e

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
)

// createPlan creates a plan through the suggest-visuals endpoint and returns
// the plan map from the response.
func createPlan(t *testing.T, ta *testApp) map[string]interface{} {
	t.Helper()

	body := `{"script": "Opening paragraph introducing the product.\n\nClosing paragraph with the offer.", "style": "retail"}`
	resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/script/suggest-visuals", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	plan, ok := result["visualPlan"].(map[string]interface{})
	if !ok {
		t.Fatal("expected 'visualPlan' in response")
	}
	return plan
}

// approvePlan approves the given plan and returns the updated plan map.
func approvePlan(t *testing.T, ta *testApp, planID string) map[string]interface{} {
	t.Helper()

	resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/plans/"+planID+"/approve", "")
	if err != nil {
		t.Fatalf("approve request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	plan, ok := result["visualPlan"].(map[string]interface{})
	if !ok {
		t.Fatal("expected 'visualPlan' in approve response")
	}
	return plan
}

func TestPlanGet_Success(t *testing.T) {
	ta := setupApp(t)

	created := createPlan(t, ta)
	planID := created["id"].(string)

	resp, err := doAuthRequest(t, ta.app, http.MethodGet, "/api/plans/"+planID, "")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	plan := result["visualPlan"].(map[string]interface{})
	if plan["id"] != planID {
		t.Errorf("expected plan id %s, got %v", planID, plan["id"])
	}
	if plan["status"] != "under_review" {
		t.Errorf("expected plan under_review, got %v", plan["status"])
	}
}

func TestPlanGet_NotFound(t *testing.T) {
	ta := setupApp(t)

	resp, err := doAuthRequest(t, ta.app, http.MethodGet, "/api/plans/"+uuid.New().String(), "")
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

func TestPlanApprove_Success(t *testing.T) {
	ta := setupApp(t)

	created := createPlan(t, ta)
	planID := created["id"].(string)

	plan := approvePlan(t, ta, planID)
	if plan["status"] != "approved" {
		t.Errorf("expected plan approved, got %v", plan["status"])
	}
}

func TestPlanApprove_Idempotent(t *testing.T) {
	ta := setupApp(t)

	created := createPlan(t, ta)
	planID := created["id"].(string)

	approvePlan(t, ta, planID)

	// Approving twice is a no-op, not an error
	plan := approvePlan(t, ta, planID)
	if plan["status"] != "approved" {
		t.Errorf("expected plan to stay approved, got %v", plan["status"])
	}
}

func TestPlanApprove_NotFound(t *testing.T) {
	ta := setupApp(t)

	resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/plans/"+uuid.New().String()+"/approve", "")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusNotFound)
}

func TestPlanSelect_Success(t *testing.T) {
	ta := setupApp(t)

	created := createPlan(t, ta)
	planID := created["id"].(string)

	sections := created["sections"].([]interface{})
	first := sections[0].(map[string]interface{})
	alternatives := first["alternatives"].([]interface{})
	if len(alternatives) < 2 {
		t.Fatalf("expected at least 2 alternatives, got %d", len(alternatives))
	}
	altID := alternatives[1].(map[string]interface{})["id"].(string)

	body := fmt.Sprintf(`{"sectionIndex": 0, "alternativeId": "%s"}`, altID)
	resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/plans/"+planID+"/select", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	plan := result["visualPlan"].(map[string]interface{})
	updated := plan["sections"].([]interface{})[0].(map[string]interface{})
	if updated["selectedId"] != altID {
		t.Errorf("expected selectedId %s, got %v", altID, updated["selectedId"])
	}
}

func TestPlanSelect_DropsApproval(t *testing.T) {
	ta := setupApp(t)

	created := createPlan(t, ta)
	planID := created["id"].(string)

	sections := created["sections"].([]interface{})
	first := sections[0].(map[string]interface{})
	altID := first["alternatives"].([]interface{})[0].(map[string]interface{})["id"].(string)

	approvePlan(t, ta, planID)

	// Editing an approved plan puts it back under review
	body := fmt.Sprintf(`{"sectionIndex": 0, "alternativeId": "%s"}`, altID)
	resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/plans/"+planID+"/select", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	plan := result["visualPlan"].(map[string]interface{})
	if plan["status"] != "under_review" {
		t.Errorf("expected plan back under_review after edit, got %v", plan["status"])
	}

	// And it can be approved again afterwards
	plan = approvePlan(t, ta, planID)
	if plan["status"] != "approved" {
		t.Errorf("expected plan approved after re-approval, got %v", plan["status"])
	}
}

func TestPlanSelect_UnknownAlternative(t *testing.T) {
	ta := setupApp(t)

	created := createPlan(t, ta)
	planID := created["id"].(string)

	body := `{"sectionIndex": 0, "alternativeId": "no-such-alternative"}`
	resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/plans/"+planID+"/select", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusBadRequest)
}

func TestPlanSelect_InvalidBody(t *testing.T) {
	ta := setupApp(t)

	created := createPlan(t, ta)
	planID := created["id"].(string)

	// Missing alternativeId
	resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/plans/"+planID+"/select", `{"sectionIndex": 0}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusBadRequest)
}

func TestPlanRegenerate_Success(t *testing.T) {
	ta := setupApp(t)

	created := createPlan(t, ta)
	planID := created["id"].(string)

	approvePlan(t, ta, planID)

	resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/plans/"+planID+"/regenerate", "")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	plan := result["visualPlan"].(map[string]interface{})
	if plan["id"] != planID {
		t.Errorf("expected plan to keep id %s, got %v", planID, plan["id"])
	}
	if plan["status"] != "under_review" {
		t.Errorf("expected regenerated plan under_review, got %v", plan["status"])
	}
	if sections, ok := plan["sections"].([]interface{}); !ok || len(sections) == 0 {
		t.Errorf("expected regenerated sections, got %v", plan["sections"])
	}
}

func TestPlan_NoAuth(t *testing.T) {
	ta := setupApp(t)

	resp, err := doRequest(ta.app, http.MethodGet, "/api/plans/"+uuid.New().String(), "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusUnauthorized)
}
