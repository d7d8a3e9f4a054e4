package services

import (
	"testing"
	"time"

	"smartwealth/internal/models"
	"smartwealth/internal/testutil"
)

func TestGetMonthlySummary(t *testing.T) {
	t.Run("headline_figures", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		accountSvc := NewAccountService(db)
		categorySvc := NewCategoryService(db)
		transactionSvc := NewTransactionService(db, accountSvc)
		svc := NewReportService(accountSvc, categorySvc, transactionSvc)
		user := testutil.CreateTestUser(t, db)

		checking := testutil.CreateTestAccountWithBalance(t, db, user.ID, 50000)
		testutil.CreateTestAccountWithBalance(t, db, user.ID, -5000)

		month := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestTransactionOn(t, db, user.ID, checking.ID, models.TransactionTypeIncome, 60000,
			time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestTransactionOn(t, db, user.ID, checking.ID, models.TransactionTypeExpense, 12000,
			time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC))
		// Activity outside the requested month is not counted.
		testutil.CreateTestTransactionOn(t, db, user.ID, checking.ID, models.TransactionTypeExpense, 99999,
			time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC))

		summary, err := svc.GetMonthlySummary(user.ID, month)
		testutil.AssertNoError(t, err)

		if summary.Month != "2026-06" {
			t.Errorf("expected month 2026-06, got %s", summary.Month)
		}
		if summary.TotalBalance != 45000 {
			t.Errorf("expected total balance 45000, got %d", summary.TotalBalance)
		}
		if summary.MonthlyIncome != 60000 {
			t.Errorf("expected monthly income 60000, got %d", summary.MonthlyIncome)
		}
		if summary.MonthlyExpense != 12000 {
			t.Errorf("expected monthly expense 12000, got %d", summary.MonthlyExpense)
		}
		if summary.SavingsRate != 80 {
			t.Errorf("expected savings rate 80, got %d", summary.SavingsRate)
		}
	})

	t.Run("no_income_zero_savings_rate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		accountSvc := NewAccountService(db)
		categorySvc := NewCategoryService(db)
		transactionSvc := NewTransactionService(db, accountSvc)
		svc := NewReportService(accountSvc, categorySvc, transactionSvc)
		user := testutil.CreateTestUser(t, db)

		account := testutil.CreateTestAccount(t, db, user.ID)
		month := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestTransactionOn(t, db, user.ID, account.ID, models.TransactionTypeExpense, 5000,
			time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC))

		summary, err := svc.GetMonthlySummary(user.ID, month)
		testutil.AssertNoError(t, err)
		if summary.SavingsRate != 0 {
			t.Errorf("expected savings rate 0 without income, got %d", summary.SavingsRate)
		}
	})

	t.Run("empty_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		accountSvc := NewAccountService(db)
		categorySvc := NewCategoryService(db)
		transactionSvc := NewTransactionService(db, accountSvc)
		svc := NewReportService(accountSvc, categorySvc, transactionSvc)
		user := testutil.CreateTestUser(t, db)

		summary, err := svc.GetMonthlySummary(user.ID, time.Now())
		testutil.AssertNoError(t, err)
		if summary.TotalBalance != 0 || summary.MonthlyIncome != 0 || summary.MonthlyExpense != 0 {
			t.Errorf("expected all-zero summary, got %+v", summary)
		}
	})
}

func TestGetExpenseBreakdown(t *testing.T) {
	t.Run("totals_and_top", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		accountSvc := NewAccountService(db)
		categorySvc := NewCategoryService(db)
		transactionSvc := NewTransactionService(db, accountSvc)
		svc := NewReportService(accountSvc, categorySvc, transactionSvc)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		food := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		transport := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		// A category with no spending is excluded from the breakdown.
		testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		for _, tc := range []struct {
			categoryID string
			amount     int64
		}{
			{food.ID, 3000},
			{food.ID, 2000},
			{transport.ID, 1500},
		} {
			tx := testutil.CreateTestTransaction(t, db, user.ID, account.ID, models.TransactionTypeExpense, tc.amount)
			if err := db.Model(tx).Update("category_id", tc.categoryID).Error; err != nil {
				t.Fatalf("failed to set category: %v", err)
			}
		}

		breakdown, err := svc.GetExpenseBreakdown(user.ID)
		testutil.AssertNoError(t, err)

		if len(breakdown.Categories) != 2 {
			t.Fatalf("expected 2 categories with spending, got %d", len(breakdown.Categories))
		}

		totals := make(map[string]int64, len(breakdown.Categories))
		for _, c := range breakdown.Categories {
			totals[c.CategoryID] = c.Total
		}
		if totals[food.ID] != 5000 {
			t.Errorf("expected food total 5000, got %d", totals[food.ID])
		}
		if totals[transport.ID] != 1500 {
			t.Errorf("expected transport total 1500, got %d", totals[transport.ID])
		}

		if breakdown.Top == nil {
			t.Fatal("expected a top category")
		}
		if breakdown.Top.CategoryID != food.ID {
			t.Errorf("expected top category %s, got %s", food.ID, breakdown.Top.CategoryID)
		}
	})

	t.Run("no_expenses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		accountSvc := NewAccountService(db)
		categorySvc := NewCategoryService(db)
		transactionSvc := NewTransactionService(db, accountSvc)
		svc := NewReportService(accountSvc, categorySvc, transactionSvc)
		user := testutil.CreateTestUser(t, db)

		breakdown, err := svc.GetExpenseBreakdown(user.ID)
		testutil.AssertNoError(t, err)

		if breakdown.Categories == nil {
			t.Error("expected empty slice, not nil")
		}
		if len(breakdown.Categories) != 0 {
			t.Errorf("expected no categories, got %d", len(breakdown.Categories))
		}
		if breakdown.Top != nil {
			t.Errorf("expected nil top category, got %+v", breakdown.Top)
		}
	})
}

func TestGetMonthlySeries(t *testing.T) {
	t.Run("active_months_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		accountSvc := NewAccountService(db)
		categorySvc := NewCategoryService(db)
		transactionSvc := NewTransactionService(db, accountSvc)
		svc := NewReportService(accountSvc, categorySvc, transactionSvc)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		testutil.CreateTestTransactionOn(t, db, user.ID, account.ID, models.TransactionTypeIncome, 60000,
			time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestTransactionOn(t, db, user.ID, account.ID, models.TransactionTypeExpense, 20000,
			time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestTransactionOn(t, db, user.ID, account.ID, models.TransactionTypeExpense, 5000,
			time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC))
		// Another year is ignored.
		testutil.CreateTestTransactionOn(t, db, user.ID, account.ID, models.TransactionTypeIncome, 9999,
			time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))

		series, err := svc.GetMonthlySeries(user.ID, 2026)
		testutil.AssertNoError(t, err)

		if len(series) != 2 {
			t.Fatalf("expected 2 active months, got %d", len(series))
		}
		if series[0].Month != 2 || series[0].Income != 60000 || series[0].Expense != 20000 {
			t.Errorf("unexpected February activity: %+v", series[0])
		}
		if series[1].Month != 7 || series[1].Income != 0 || series[1].Expense != 5000 {
			t.Errorf("unexpected July activity: %+v", series[1])
		}
	})

	t.Run("empty_year", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		accountSvc := NewAccountService(db)
		categorySvc := NewCategoryService(db)
		transactionSvc := NewTransactionService(db, accountSvc)
		svc := NewReportService(accountSvc, categorySvc, transactionSvc)
		user := testutil.CreateTestUser(t, db)

		series, err := svc.GetMonthlySeries(user.ID, 1999)
		testutil.AssertNoError(t, err)
		if len(series) != 0 {
			t.Errorf("expected empty series, got %d entries", len(series))
		}
	})
}
