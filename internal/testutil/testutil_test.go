package testutil_test

import (
	"testing"
	"time"

	"ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "categories", "transactions"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have a non-empty ID")
	}
	if user.Preferences.Currency != "USD" {
		t.Errorf("expected default currency USD, got %s", user.Preferences.Currency)
	}

	category := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
	if category.Type != models.CategoryTypeExpense {
		t.Errorf("expected expense category, got %s", category.Type)
	}

	sub := testutil.CreateTestSubcategory(t, db, category)
	if sub.ParentID == nil || *sub.ParentID != category.ID {
		t.Error("subcategory should reference its parent")
	}

	budgeted := testutil.CreateTestCategoryWithBudget(t, db, user.ID, 250)
	if budgeted.Budget != 250 {
		t.Errorf("expected budget 250, got %f", budgeted.Budget)
	}

	tx := testutil.CreateTestTransaction(t, db, user.ID, category.ID, models.TransactionTypeIncome, 10.50)
	if tx.Amount != 10.50 {
		t.Errorf("expected amount 10.50, got %f", tx.Amount)
	}

	recurring := testutil.CreateTestRecurringTransaction(t, db, user.ID, category.ID, 15.99, models.RecurringMonthly, time.Now())
	if !recurring.Recurring || recurring.RecurringPeriod != models.RecurringMonthly {
		t.Errorf("unexpected recurring fields: %+v", recurring)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrCategoryNotFound, "custom message")
	testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
