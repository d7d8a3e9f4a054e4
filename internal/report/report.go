// Package report derives summary figures from account and transaction
// lists. Every function here is a pure function of its inputs: no caching,
// no database access, results recomputed fresh on each call.
package report

import (
	"iter"
	"math"
	"time"

	"smartwealth/internal/models"
)

// CategoryTotal is one slice of an expense breakdown.
type CategoryTotal struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Total      int64  `json:"total"`
}

// MonthActivity is the income/expense pair for one calendar month.
type MonthActivity struct {
	Month   time.Month `json:"month"`
	Income  int64      `json:"income"`
	Expense int64      `json:"expense"`
}

// TotalBalance returns the arithmetic sum of all account balances.
// Negative balances (credit card debt) reduce the total.
func TotalBalance(accounts []models.Account) int64 {
	var total int64
	for i := range accounts {
		total += accounts[i].Balance
	}
	return total
}

// MonthlyIncome sums income transactions dated within the calendar month of
// ref. The comparison is by year and month component, not a rolling
// 30-day window.
func MonthlyIncome(transactions []models.Transaction, ref time.Time) int64 {
	return monthlyTotal(transactions, models.TransactionTypeIncome, ref)
}

// MonthlyExpense sums expense transactions dated within the calendar month
// of ref.
func MonthlyExpense(transactions []models.Transaction, ref time.Time) int64 {
	return monthlyTotal(transactions, models.TransactionTypeExpense, ref)
}

func monthlyTotal(transactions []models.Transaction, txType models.TransactionType, ref time.Time) int64 {
	var total int64
	for i := range transactions {
		t := &transactions[i]
		if t.Type != txType {
			continue
		}
		if t.Date.Year() == ref.Year() && t.Date.Month() == ref.Month() {
			total += t.Amount
		}
	}
	return total
}

// SavingsRate returns round((income-expense)/income*100) as a whole
// percentage. Zero income resolves to 0 regardless of expense; the result
// is negative when expenses exceed income.
func SavingsRate(income, expense int64) int {
	if income <= 0 {
		return 0
	}
	return int(math.Round(float64(income-expense) / float64(income) * 100))
}

// ExpenseByCategory returns, for each expense-type category, the sum of
// expense transactions referencing it. Categories with a zero total are
// excluded. Output order follows the category list order, so ties and
// ordering are deterministic given stable input.
//
// Filtering is on the transaction's own type first: an expense transaction
// pointing at an income category is simply never counted, and a dangling
// category reference matches nothing.
func ExpenseByCategory(transactions []models.Transaction, categories []models.Category) []CategoryTotal {
	var breakdown []CategoryTotal
	for i := range categories {
		c := &categories[i]
		if c.Type != models.CategoryTypeExpense {
			continue
		}

		var total int64
		for j := range transactions {
			t := &transactions[j]
			if t.Type != models.TransactionTypeExpense || t.CategoryID == nil {
				continue
			}
			if *t.CategoryID == c.ID {
				total += t.Amount
			}
		}
		if total > 0 {
			breakdown = append(breakdown, CategoryTotal{
				CategoryID: c.ID,
				Name:       c.Name,
				Color:      c.Color,
				Total:      total,
			})
		}
	}
	return breakdown
}

// MonthlySeries yields the (income, expense) pair for each calendar month
// of the given year, in month order. Months with no activity are omitted,
// so the sequence is finite with 0 to 12 entries.
func MonthlySeries(transactions []models.Transaction, year int) iter.Seq[MonthActivity] {
	return func(yield func(MonthActivity) bool) {
		for month := time.January; month <= time.December; month++ {
			var income, expense int64
			for i := range transactions {
				t := &transactions[i]
				if t.Date.Year() != year || t.Date.Month() != month {
					continue
				}
				switch t.Type {
				case models.TransactionTypeIncome:
					income += t.Amount
				case models.TransactionTypeExpense:
					expense += t.Amount
				}
			}
			if income == 0 && expense == 0 {
				continue
			}
			if !yield(MonthActivity{Month: month, Income: income, Expense: expense}) {
				return
			}
		}
	}
}

// TopExpenseCategory returns the breakdown entry with the largest total.
// Ties resolve to the first entry encountered. The second return value is
// false when the breakdown is empty; callers must handle the no-data case
// explicitly.
func TopExpenseCategory(breakdown []CategoryTotal) (CategoryTotal, bool) {
	if len(breakdown) == 0 {
		return CategoryTotal{}, false
	}
	top := breakdown[0]
	for _, entry := range breakdown[1:] {
		if entry.Total > top.Total {
			top = entry
		}
	}
	return top, true
}
