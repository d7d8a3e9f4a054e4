package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single dated money movement against an account
// and category. Amount is a non-negative magnitude in minor currency units;
// direction is carried by Type, not sign. Transactions are immutable once
// created: there is no update path, only create and delete.
//
// AccountID and CategoryID are plain references without enforced integrity.
// Deleting the referenced account or category leaves them dangling, and
// readers degrade to "unknown"/"uncategorized" rather than failing.
type Transaction struct {
	Base
	UserID     string          `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID  string          `gorm:"type:uuid;not null;index" json:"account_id"`
	CategoryID *string         `gorm:"type:uuid" json:"category_id,omitempty"`
	Type       TransactionType `gorm:"not null" json:"type"`
	Amount     int64           `gorm:"type:bigint;not null" json:"amount"`
	Date       time.Time       `gorm:"not null;index" json:"date"`
	Note       string          `json:"note"`

	Account  *Account  `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
