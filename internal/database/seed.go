package database

import (
	"time"

	"smartwealth/internal/models"

	"gorm.io/gorm"
)

// defaultCategories is the fixed classification taxonomy every user starts
// with. Categories are seeded once per user and treated as immutable in
// practice.
var defaultCategories = []models.Category{
	{Name: "Salary", Type: models.CategoryTypeIncome, Color: "#10B981"},
	{Name: "Food & Dining", Type: models.CategoryTypeExpense, Color: "#EF4444"},
	{Name: "Transport", Type: models.CategoryTypeExpense, Color: "#3B82F6"},
	{Name: "Entertainment", Type: models.CategoryTypeExpense, Color: "#F59E0B"},
	{Name: "Shopping", Type: models.CategoryTypeExpense, Color: "#8B5CF6"},
	{Name: "Housing", Type: models.CategoryTypeExpense, Color: "#6B7280"},
	{Name: "Investment", Type: models.CategoryTypeIncome, Color: "#059669"},
}

// SeedDefaultCategories creates the default category set for a user that
// has no categories yet. Safe to call repeatedly.
func SeedDefaultCategories(db *gorm.DB, userID string) error {
	var count int64
	if err := db.Model(&models.Category{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := make([]models.Category, len(defaultCategories))
	for i, c := range defaultCategories {
		c.UserID = userID
		categories[i] = c
	}
	return db.Create(&categories).Error
}

// SeedDemoData populates sample accounts and transactions for a user with
// an empty ledger, so a fresh login has something to look at. No-op when
// the user already owns any account.
func SeedDemoData(db *gorm.DB, userID string) error {
	var count int64
	if err := db.Model(&models.Account{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var categories []models.Category
	if err := db.Where("user_id = ?", userID).Find(&categories).Error; err != nil {
		return err
	}
	categoryID := func(name string) *string {
		for i := range categories {
			if categories[i].Name == name {
				return &categories[i].ID
			}
		}
		return nil
	}

	checking := models.Account{UserID: userID, Name: "Main Checking", Type: "Checking", Balance: 50000, Currency: "USD"}
	card := models.Account{UserID: userID, Name: "Cashback Card", Type: "Credit Card", Balance: -5000, Currency: "USD"}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&checking).Error; err != nil {
			return err
		}
		if err := tx.Create(&card).Error; err != nil {
			return err
		}

		monthStart := time.Now().AddDate(0, 0, 1-time.Now().Day()).Truncate(24 * time.Hour)
		demo := []models.Transaction{
			{UserID: userID, AccountID: checking.ID, CategoryID: categoryID("Salary"), Type: models.TransactionTypeIncome, Amount: 60000, Date: monthStart, Note: "Monthly salary"},
			{UserID: userID, AccountID: checking.ID, CategoryID: categoryID("Food & Dining"), Type: models.TransactionTypeExpense, Amount: 120, Date: monthStart.AddDate(0, 0, 1), Note: "Lunch"},
			{UserID: userID, AccountID: checking.ID, CategoryID: categoryID("Transport"), Type: models.TransactionTypeExpense, Amount: 45, Date: monthStart.AddDate(0, 0, 1), Note: "Metro"},
			{UserID: userID, AccountID: card.ID, CategoryID: categoryID("Shopping"), Type: models.TransactionTypeExpense, Amount: 2500, Date: monthStart.AddDate(0, 0, 2), Note: "New shoes"},
		}
		return tx.Create(&demo).Error
	})
}
