package integration

import (
	"errors"
	"net/http"
	"testing"

	"smartwealth/internal/advisor"
)

func TestAdvisoryFlow(t *testing.T) {
	t.Run("serves generated advisory", func(t *testing.T) {
		app := setupApp(t)
		token, _ := app.registerUser(t, "advised@example.com", "password123")

		accountID := app.createAccount(t, token, "Main", 80000)
		foodID := app.createCategory(t, token, "Eating Out", "expense")
		app.createTransaction(t, token, accountID, foodID, "expense", 12000, "")

		app.Generator.Advisory = &advisor.Advisory{
			Summary: "Dining is your biggest discretionary spend.",
			Advice: []string{
				"Cap restaurant visits at twice a week.",
				"Move 10% of each paycheck to savings.",
				"Review subscriptions this weekend.",
			},
		}

		rec := app.request("GET", "/api/v1/advisory", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["fallback"].(bool) {
			t.Error("expected fallback false for a generated advisory")
		}
		if result["summary"] != "Dining is your biggest discretionary spend." {
			t.Errorf("unexpected summary: %v", result["summary"])
		}
		advice := result["advice"].([]interface{})
		if len(advice) != 3 {
			t.Errorf("expected 3 advice items, got %d", len(advice))
		}
	})

	t.Run("falls back when generation fails", func(t *testing.T) {
		app := setupApp(t)
		token, _ := app.registerUser(t, "fallback@example.com", "password123")
		app.Generator.Err = errors.New("upstream unavailable")

		rec := app.request("GET", "/api/v1/advisory", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 even when generation fails, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if !result["fallback"].(bool) {
			t.Error("expected fallback true when generation fails")
		}
		if result["summary"] == "" {
			t.Error("expected a non-empty fallback summary")
		}
		advice := result["advice"].([]interface{})
		if len(advice) != 3 {
			t.Errorf("expected 3 fallback tips, got %d", len(advice))
		}
	})

	t.Run("fallback is stable across calls", func(t *testing.T) {
		app := setupApp(t)
		token, _ := app.registerUser(t, "stable@example.com", "password123")
		app.Generator.Err = errors.New("upstream unavailable")

		first := parseJSON(t, app.request("GET", "/api/v1/advisory", "", token))
		second := parseJSON(t, app.request("GET", "/api/v1/advisory", "", token))
		if first["summary"] != second["summary"] {
			t.Error("expected the fallback summary to be identical across calls")
		}
	})

	t.Run("requires auth", func(t *testing.T) {
		app := setupApp(t)
		rec := app.request("GET", "/api/v1/advisory", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
