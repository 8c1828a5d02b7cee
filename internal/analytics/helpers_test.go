package analytics

import (
	"time"

	"ledgerly/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func category(id, name string, parentID *string, catType models.CategoryType) models.Category {
	c := models.Category{UserID: "user-1", Name: name, Type: catType, ParentID: parentID}
	c.ID = id
	return c
}

func expense(id string, amount float64, categoryID string, date time.Time) models.Transaction {
	t := models.Transaction{
		UserID:     "user-1",
		CategoryID: categoryID,
		Type:       models.TransactionTypeExpense,
		Amount:     amount,
		Date:       date,
	}
	t.ID = id
	return t
}

func income(id string, amount float64, categoryID string, date time.Time) models.Transaction {
	t := expense(id, amount, categoryID, date)
	t.Type = models.TransactionTypeIncome
	return t
}

// testCategories is a small taxonomy used across the analytics tests:
// Food (main) with Groceries under it, Housing (main), Salary (income).
func testCategories() []models.Category {
	foodID := "cat-food"
	return []models.Category{
		category(foodID, "Food", nil, models.CategoryTypeExpense),
		category("cat-groceries", "Groceries", &foodID, models.CategoryTypeExpense),
		category("cat-housing", "Housing", nil, models.CategoryTypeExpense),
		category("cat-salary", "Salary", nil, models.CategoryTypeIncome),
	}
}
