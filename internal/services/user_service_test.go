package services

import (
	"testing"

	"ledgerly/internal/models"
	"ledgerly/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("Alice@Example.com", "password123", "Alice", "Smith")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected non-empty user ID")
		}
		if user.Email != "alice@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
		if user.Password == "password123" {
			t.Error("password must not be stored in plaintext")
		}
		if user.Preferences.Currency != "USD" {
			t.Errorf("expected default currency USD, got %s", user.Preferences.Currency)
		}
	})

	t.Run("seeds_default_categories", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("bob@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)

		var mains int64
		if err := db.Model(&models.Category{}).
			Where("user_id = ? AND parent_id IS NULL", user.ID).
			Count(&mains).Error; err != nil {
			t.Fatalf("counting categories: %v", err)
		}
		if mains != 10 {
			t.Errorf("expected 10 main categories seeded, got %d", mains)
		}

		var subs int64
		if err := db.Model(&models.Category{}).
			Where("user_id = ? AND parent_id IS NOT NULL", user.ID).
			Count(&subs).Error; err != nil {
			t.Fatalf("counting subcategories: %v", err)
		}
		if subs == 0 {
			t.Error("expected subcategories seeded")
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("carol@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("carol@example.com", "different456", "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "password123", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser("dave@example.com", "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestAttemptLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	created, err := svc.CreateUser("erin@example.com", "password123", "Erin", "")
	testutil.AssertNoError(t, err)

	t.Run("valid", func(t *testing.T) {
		user, err := svc.AttemptLogin("erin@example.com", "password123")
		testutil.AssertNoError(t, err)
		if user.ID != created.ID {
			t.Errorf("expected user %s, got %s", created.ID, user.ID)
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := svc.AttemptLogin("erin@example.com", "wrong")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, err := svc.AttemptLogin("nobody@example.com", "password123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}

func TestUpdatePreferences(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user, err := svc.CreateUser("frank@example.com", "password123", "", "")
	testutil.AssertNoError(t, err)

	updated, err := svc.UpdatePreferences(user.ID, models.Preferences{
		Currency:   "EUR",
		Theme:      "dark",
		DateFormat: "02.01.2006",
	})
	testutil.AssertNoError(t, err)

	if updated.Preferences.Currency != "EUR" || updated.Preferences.Theme != "dark" {
		t.Errorf("preferences not updated: %+v", updated.Preferences)
	}

	reloaded, err := svc.GetUserByID(user.ID)
	testutil.AssertNoError(t, err)
	if reloaded.Preferences.Currency != "EUR" {
		t.Errorf("preferences not persisted: %+v", reloaded.Preferences)
	}
}
