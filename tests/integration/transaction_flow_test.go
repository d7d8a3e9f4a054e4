package integration

import (
	"net/http"
	"testing"
)

func TestTransactionFlow(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "transactions@example.com", "password123")

	accountBalance := func(t *testing.T, accountID string) float64 {
		t.Helper()
		rec := app.request("GET", "/api/v1/accounts/"+accountID, "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed to fetch account: %d", rec.Code)
		}
		return parseJSON(t, rec)["balance"].(float64)
	}

	t.Run("income increases balance", func(t *testing.T) {
		accountID := app.createAccount(t, token, "Salary Account", 10000)
		app.createTransaction(t, token, accountID, "", "income", 50000, "")

		if got := accountBalance(t, accountID); got != 60000 {
			t.Errorf("expected balance 60000 after income, got %v", got)
		}
	})

	t.Run("expense decreases balance and may overdraw", func(t *testing.T) {
		accountID := app.createAccount(t, token, "Spending", 1000)
		app.createTransaction(t, token, accountID, "", "expense", 2500, "")

		if got := accountBalance(t, accountID); got != -1500 {
			t.Errorf("expected balance -1500 after overdraft, got %v", got)
		}
	})

	t.Run("transaction carries category name", func(t *testing.T) {
		accountID := app.createAccount(t, token, "Groceries Account", 50000)
		categoryID := app.createCategory(t, token, "Groceries", "expense")

		txID := app.createTransaction(t, token, accountID, categoryID, "expense", 3200, "")

		rec := app.request("GET", "/api/v1/transactions/"+txID, "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["category_name"] != "Groceries" {
			t.Errorf("expected category name Groceries, got %v", result["category_name"])
		}
		if result["account_name"] != "Groceries Account" {
			t.Errorf("expected account name, got %v", result["account_name"])
		}
	})

	t.Run("deleted category renders placeholder", func(t *testing.T) {
		accountID := app.createAccount(t, token, "Placeholder Account", 50000)
		categoryID := app.createCategory(t, token, "Doomed Category", "expense")
		txID := app.createTransaction(t, token, accountID, categoryID, "expense", 100, "")

		rec := app.request("DELETE", "/api/v1/categories/"+categoryID, "", token)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}

		rec = app.request("GET", "/api/v1/transactions/"+txID, "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["category_name"] != "Uncategorized" {
			t.Errorf("expected Uncategorized placeholder, got %v", result["category_name"])
		}
	})

	t.Run("list newest first with filters", func(t *testing.T) {
		app2 := setupApp(t)
		token2, _ := app2.registerUser(t, "filters@example.com", "password123")
		accountID := app2.createAccount(t, token2, "Filtered", 100000)

		app2.createTransaction(t, token2, accountID, "", "expense", 100, "2026-01-10")
		app2.createTransaction(t, token2, accountID, "", "income", 200, "2026-03-05")
		app2.createTransaction(t, token2, accountID, "", "expense", 300, "2026-02-20")

		rec := app2.request("GET", "/api/v1/transactions", "", token2)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(data))
		}
		first := data[0].(map[string]interface{})
		if first["amount"].(float64) != 200 {
			t.Errorf("expected newest transaction (amount 200) first, got %v", first["amount"])
		}

		rec = app2.request("GET", "/api/v1/transactions?type=expense", "", token2)
		result = parseJSON(t, rec)
		data = result["data"].([]interface{})
		if len(data) != 2 {
			t.Errorf("expected 2 expenses, got %d", len(data))
		}

		rec = app2.request("GET", "/api/v1/transactions?from=2026-02-01&to=2026-02-28", "", token2)
		result = parseJSON(t, rec)
		data = result["data"].([]interface{})
		if len(data) != 1 {
			t.Fatalf("expected 1 transaction in February, got %d", len(data))
		}
		if data[0].(map[string]interface{})["amount"].(float64) != 300 {
			t.Errorf("expected February transaction amount 300")
		}
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		accountID := app.createAccount(t, token, "Strict", 1000)
		body := `{"account_id":"` + accountID + `","type":"expense","amount":0}`
		rec := app.request("POST", "/api/v1/transactions", body, token)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for zero amount, got %d", rec.Code)
		}
	})

	t.Run("invalid type rejected", func(t *testing.T) {
		accountID := app.createAccount(t, token, "Typed", 1000)
		body := `{"account_id":"` + accountID + `","type":"transfer","amount":100}`
		rec := app.request("POST", "/api/v1/transactions", body, token)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for invalid type, got %d", rec.Code)
		}
	})

	t.Run("other user's account rejected", func(t *testing.T) {
		otherToken, _ := app.registerUser(t, "othertx@example.com", "password123")
		accountID := app.createAccount(t, token, "Not Yours", 1000)

		body := `{"account_id":"` + accountID + `","type":"expense","amount":100}`
		rec := app.request("POST", "/api/v1/transactions", body, otherToken)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for another user's account, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "ACCOUNT_NOT_FOUND" {
			t.Errorf("expected ACCOUNT_NOT_FOUND, got %s", code)
		}
	})

	t.Run("delete reverses balance adjustment", func(t *testing.T) {
		accountID := app.createAccount(t, token, "Reversible", 10000)
		txID := app.createTransaction(t, token, accountID, "", "expense", 4000, "")

		if got := accountBalance(t, accountID); got != 6000 {
			t.Fatalf("expected balance 6000 after expense, got %v", got)
		}

		rec := app.request("DELETE", "/api/v1/transactions/"+txID, "", token)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
		}

		if got := accountBalance(t, accountID); got != 10000 {
			t.Errorf("expected balance restored to 10000, got %v", got)
		}
	})

	t.Run("delete after account deletion skips reversal", func(t *testing.T) {
		accountID := app.createAccount(t, token, "Gone Soon", 10000)
		txID := app.createTransaction(t, token, accountID, "", "income", 5000, "")

		rec := app.request("DELETE", "/api/v1/accounts/"+accountID, "", token)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}

		rec = app.request("DELETE", "/api/v1/transactions/"+txID, "", token)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204 deleting orphaned transaction, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("delete missing transaction", func(t *testing.T) {
		rec := app.request("DELETE", "/api/v1/transactions/0198b3f2-0000-7000-8000-000000000000", "", token)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "TRANSACTION_NOT_FOUND" {
			t.Errorf("expected TRANSACTION_NOT_FOUND, got %s", code)
		}
	})
}
