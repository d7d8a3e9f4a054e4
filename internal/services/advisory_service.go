package services

import (
	"context"
	"fmt"
	"strings"

	"smartwealth/internal/advisor"
	"smartwealth/internal/logger"
)

// recentTransactionLimit bounds how much history goes into the advisory
// prompt.
const recentTransactionLimit = 15

// advisoryService builds the financial summary prompt and delegates to a
// text-generation backend. Failures never escape: every error path yields
// the fixed fallback payload.
type advisoryService struct {
	generator          advisor.Generator
	accountService     AccountServicer
	categoryService    CategoryServicer
	transactionService TransactionServicer
}

// NewAdvisoryService creates a new AdvisoryServicer.
func NewAdvisoryService(generator advisor.Generator, accountService AccountServicer, categoryService CategoryServicer, transactionService TransactionServicer) AdvisoryServicer {
	return &advisoryService{
		generator:          generator,
		accountService:     accountService,
		categoryService:    categoryService,
		transactionService: transactionService,
	}
}

// Advise produces the advisory for a user. The result is either the
// generated payload or the fixed fallback, never an error.
func (s *advisoryService) Advise(ctx context.Context, userID string) *advisor.Result {
	prompt, err := s.buildPrompt(userID)
	if err != nil {
		logger.Get().Warnw("advisory prompt build failed, serving fallback", "user_id", userID, "error", err)
		fb := advisor.Fallback()
		return &fb
	}

	advisory, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Get().Warnw("advisory generation failed, serving fallback", "user_id", userID, "error", err)
		fb := advisor.Fallback()
		return &fb
	}

	return &advisor.Result{
		Summary:  advisory.Summary,
		Advice:   advisory.Advice,
		Fallback: false,
	}
}

// buildPrompt renders the user's accounts and recent transactions into the
// instruction for the text-generation service.
func (s *advisoryService) buildPrompt(userID string) (string, error) {
	accounts, err := s.accountService.ListUserAccounts(userID)
	if err != nil {
		return "", err
	}
	categories, err := s.categoryService.ListUserCategories(userID)
	if err != nil {
		return "", err
	}
	transactions, err := s.transactionService.GetRecentTransactions(userID, recentTransactionLimit)
	if err != nil {
		return "", err
	}

	categoryNames := make(map[string]string, len(categories))
	for i := range categories {
		categoryNames[categories[i].ID] = categories[i].Name
	}

	accountParts := make([]string, 0, len(accounts))
	for i := range accounts {
		a := &accounts[i]
		accountParts = append(accountParts, fmt.Sprintf("%s: %d %s", a.Name, a.Balance, a.Currency))
	}

	transactionParts := make([]string, 0, len(transactions))
	for i := range transactions {
		t := &transactions[i]
		name := "uncategorized"
		if t.CategoryID != nil {
			if n, ok := categoryNames[*t.CategoryID]; ok {
				name = n
			}
		}
		transactionParts = append(transactionParts, fmt.Sprintf("%s: %s %d (%s) - %s",
			t.Date.Format("2006-01-02"), t.Type, t.Amount, name, t.Note))
	}

	var b strings.Builder
	b.WriteString("You are an experienced personal finance advisor.\n")
	b.WriteString("Current account balances: ")
	b.WriteString(strings.Join(accountParts, ", "))
	b.WriteString("\nRecent transactions: ")
	b.WriteString(strings.Join(transactionParts, "; "))
	b.WriteString("\n\nAnalyze the user's spending habits in depth, paying particular attention to ")
	b.WriteString("overspending, reliance on a single source of income, and an insufficient savings rate. ")
	b.WriteString("Based on the data, give exactly 3 concrete, actionable suggestions with professional ")
	b.WriteString("financial reasoning, along with a summary of the user's current financial position.")
	return b.String(), nil
}
