package services

import (
	"time"

	"smartwealth/internal/models"
	"smartwealth/internal/pagination"
	"smartwealth/internal/report"
)

// reportService assembles aggregated reports by loading the user's data
// and handing it to the pure functions in the report package.
type reportService struct {
	accountService     AccountServicer
	categoryService    CategoryServicer
	transactionService TransactionServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(accountService AccountServicer, categoryService CategoryServicer, transactionService TransactionServicer) ReportServicer {
	return &reportService{
		accountService:     accountService,
		categoryService:    categoryService,
		transactionService: transactionService,
	}
}

// GetMonthlySummary returns the headline figures for the given calendar
// month: total balance across accounts, income, expense, and savings rate.
func (s *reportService) GetMonthlySummary(userID string, month time.Time) (*MonthlySummary, error) {
	accounts, err := s.accountService.ListUserAccounts(userID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.listAllTransactions(userID)
	if err != nil {
		return nil, err
	}

	income := report.MonthlyIncome(transactions, month)
	expense := report.MonthlyExpense(transactions, month)

	return &MonthlySummary{
		Month:          month.Format("2006-01"),
		TotalBalance:   report.TotalBalance(accounts),
		MonthlyIncome:  income,
		MonthlyExpense: expense,
		SavingsRate:    report.SavingsRate(income, expense),
	}, nil
}

// GetExpenseBreakdown returns the per-category expense totals across the
// user's whole history, with the top category when one exists.
func (s *reportService) GetExpenseBreakdown(userID string) (*ExpenseBreakdown, error) {
	categories, err := s.categoryService.ListUserCategories(userID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.listAllTransactions(userID)
	if err != nil {
		return nil, err
	}

	breakdown := report.ExpenseByCategory(transactions, categories)
	result := &ExpenseBreakdown{Categories: breakdown}
	if top, ok := report.TopExpenseCategory(breakdown); ok {
		result.Top = &top
	}
	if result.Categories == nil {
		result.Categories = []report.CategoryTotal{}
	}
	return result, nil
}

// GetMonthlySeries returns the per-month income/expense pairs for a year,
// omitting months with no activity.
func (s *reportService) GetMonthlySeries(userID string, year int) ([]report.MonthActivity, error) {
	transactions, err := s.listAllTransactions(userID)
	if err != nil {
		return nil, err
	}

	series := make([]report.MonthActivity, 0, 12)
	for activity := range report.MonthlySeries(transactions, year) {
		series = append(series, activity)
	}
	return series, nil
}

// listAllTransactions pages through the user's full transaction history.
func (s *reportService) listAllTransactions(userID string) ([]models.Transaction, error) {
	var all []models.Transaction
	page := 1
	for {
		resp, err := s.transactionService.GetUserTransactions(userID,
			pagination.PageRequest{Page: page, PageSize: 100}, TransactionFilter{})
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Data...)
		if page >= resp.TotalPages {
			return all, nil
		}
		page++
	}
}
