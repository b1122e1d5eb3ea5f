package e2e

import (
	"net/http"
	"testing"
)

func TestScriptGenerate_Success(t *testing.T) {
	ta := setupApp(t)

	body := `{"topic": "AeroBrew coffee maker", "keywords": ["fast", "compact"], "style": "retail"}`
	resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/script/generate", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	script, ok := result["script"].(string)
	if !ok || script == "" {
		t.Fatal("expected non-empty 'script' in response")
	}

	// Mock fallback also drafts a visual plan, already persisted and in review.
	plan, ok := result["visualPlan"].(map[string]interface{})
	if !ok {
		t.Fatal("expected 'visualPlan' in response")
	}
	if plan["status"] != "under_review" {
		t.Errorf("expected plan under_review, got %v", plan["status"])
	}
	if plan["id"] == nil || plan["id"] == "" {
		t.Error("expected plan id")
	}
}

func TestScriptGenerate_NoAuth(t *testing.T) {
	ta := setupApp(t)

	resp, err := doRequest(ta.app, http.MethodPost, "/api/script/generate", `{"topic": "anything here"}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusUnauthorized)
}

func TestScriptGenerate_InvalidBody(t *testing.T) {
	ta := setupApp(t)

	// Topic too short
	resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/script/generate", `{"topic": "ab"}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusBadRequest)
}

func TestSuggestVisuals_Success(t *testing.T) {
	ta := setupApp(t)

	body := `{"script": "First paragraph about the product.\n\nSecond paragraph with a call to action.", "style": "minimal"}`
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

	sections, ok := plan["sections"].([]interface{})
	if !ok || len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %v", plan["sections"])
	}

	first := sections[0].(map[string]interface{})
	alternatives, ok := first["alternatives"].([]interface{})
	if !ok || len(alternatives) < 2 {
		t.Errorf("expected at least 2 alternatives per section, got %v", first["alternatives"])
	}
}

func TestSuggestVisuals_MissingScript(t *testing.T) {
	ta := setupApp(t)

	resp, err := doAuthRequest(t, ta.app, http.MethodPost, "/api/script/suggest-visuals", `{"style": "minimal"}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusBadRequest)
}
