package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"smartwealth/internal/advisor"
	"smartwealth/internal/models"
	"smartwealth/internal/pagination"
	"smartwealth/internal/report"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
}

// AccountUpdateFields holds the optional fields of an account update.
// Nil pointers leave the current value untouched.
type AccountUpdateFields struct {
	Name     *string
	Type     *string
	Balance  *int64
	Currency *string
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(userID, name, accountType, currency string, balance int64) (*models.Account, error)
	GetUserAccounts(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	ListUserAccounts(userID string) ([]models.Account, error)
	GetAccountByID(userID, accountID string) (*models.Account, error)
	UpdateAccount(userID, accountID string, fields AccountUpdateFields) (*models.Account, error)
	DeleteAccount(userID, accountID string) error
	UpdateAccountBalance(tx *gorm.DB, account *models.Account, transactionType models.TransactionType, amount int64) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name string, categoryType models.CategoryType, color string) (*models.Category, error)
	GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	ListUserCategories(userID string) ([]models.Category, error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	UpdateCategory(userID, categoryID, name, color string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *string
	MinAmount  *int64
	MaxAmount  *int64
}

// TransactionServicer defines the contract for transaction-related business logic.
// Transactions are immutable once created; there is no update operation.
type TransactionServicer interface {
	CreateTransaction(userID, accountID string, categoryID *string, transactionType models.TransactionType, amount int64, note string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetAccountTransactions(userID, accountID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	GetRecentTransactions(userID string, limit int) ([]models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// MonthlySummary holds the dashboard headline figures for one calendar month.
type MonthlySummary struct {
	Month          string `json:"month"` // YYYY-MM
	TotalBalance   int64  `json:"total_balance"`
	MonthlyIncome  int64  `json:"monthly_income"`
	MonthlyExpense int64  `json:"monthly_expense"`
	SavingsRate    int    `json:"savings_rate"`
}

// ExpenseBreakdown pairs the per-category expense totals with the top
// category. Top is nil when there is no expense data at all.
type ExpenseBreakdown struct {
	Categories []report.CategoryTotal `json:"categories"`
	Top        *report.CategoryTotal  `json:"top,omitempty"`
}

// ReportServicer defines the contract for aggregated reporting.
type ReportServicer interface {
	GetMonthlySummary(userID string, month time.Time) (*MonthlySummary, error)
	GetExpenseBreakdown(userID string) (*ExpenseBreakdown, error)
	GetMonthlySeries(userID string, year int) ([]report.MonthActivity, error)
}

// AdvisoryServicer defines the contract for the AI advisory gateway. Advise
// never fails: any upstream error is absorbed into the fixed fallback
// payload.
type AdvisoryServicer interface {
	Advise(ctx context.Context, userID string) *advisor.Result
}
