package models

// Account represents a bank account owned by a user. The type is a
// free-text label ("Savings", "Checking", "Credit Card") rather than an
// enum. Balance is a signed amount in minor currency units; credit card
// debt is represented as a negative balance.
type Account struct {
	Base
	UserID   string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name     string `gorm:"not null" json:"name"`
	Type     string `json:"type"`
	Balance  int64  `gorm:"type:bigint;not null;default:0" json:"balance"`
	Currency string `gorm:"not null;default:'USD'" json:"currency"`

	// Transactions are intentionally not cascade-deleted with the account.
	// A deleted account leaves dangling account_id references that readers
	// must render as "unknown account".
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"transactions,omitempty"`
}
