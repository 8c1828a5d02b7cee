package integration

import (
	"net/http"
	"testing"

	"ledgerly/internal/models"
)

// seedGlobalCategory inserts a shared category with no owner directly into
// the database, the way a deployment seed would.
func seedGlobalCategory(t *testing.T, app *testApp, name string) {
	t.Helper()
	category := models.Category{Name: name, Type: models.CategoryTypeExpense}
	if err := app.DB.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed global category: %v", err)
	}
}

// findCategoryID looks up a visible category by name through the API.
func findCategoryID(t *testing.T, app *testApp, token, name string) string {
	t.Helper()
	rec := app.request("GET", "/api/v1/categories?page_size=100", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list categories failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	for _, item := range result["data"].([]interface{}) {
		category := item.(map[string]interface{})
		if category["name"] == name {
			return category["id"].(string)
		}
	}
	t.Fatalf("category %q not found in listing", name)
	return ""
}

func TestCategoryFlow_DefaultsSeededOnRegister(t *testing.T) {
	app := setupApp(t)

	token, _, _ := app.registerUser(t, "seeded@test.com", "password123")

	rec := app.request("GET", "/api/v1/categories?page_size=100", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	data := result["data"].([]interface{})
	if len(data) < 10 {
		t.Fatalf("expected the default taxonomy to be visible, got %d categories", len(data))
	}

	names := make(map[string]bool)
	for _, item := range data {
		category := item.(map[string]interface{})
		names[category["name"].(string)] = true
	}
	for _, want := range []string{"Food", "Housing", "Transportation", "Salary"} {
		if !names[want] {
			t.Errorf("expected default category %q in listing", want)
		}
	}
}

func TestCategoryFlow_CreateNestedAndResolvePath(t *testing.T) {
	app := setupApp(t)

	token, _, _ := app.registerUser(t, "nested@test.com", "password123")

	parentID := app.createCategory(t, token,
		`{"name":"Hobbies","type":"expense","icon":"🎨","color":"#AA00FF"}`)
	childID := app.createCategory(t, token,
		`{"name":"Painting","type":"expense","parent_id":"`+parentID+`"}`)

	rec := app.request("GET", "/api/v1/categories/"+childID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["path"] != "Hobbies > Painting" {
		t.Errorf("expected path Hobbies > Painting, got %v", result["path"])
	}
}

func TestCategoryFlow_UpdateAndDelete(t *testing.T) {
	app := setupApp(t)

	token, _, _ := app.registerUser(t, "catcrud@test.com", "password123")

	id := app.createCategory(t, token, `{"name":"Gadgets","type":"expense"}`)

	rec := app.request("PUT", "/api/v1/categories/"+id, `{"name":"Electronics"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	category := result["category"].(map[string]interface{})
	if category["name"] != "Electronics" {
		t.Errorf("expected renamed category, got %v", category["name"])
	}

	rec = app.request("DELETE", "/api/v1/categories/"+id, "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/categories/"+id, "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestCategoryFlow_GlobalCategoriesAreProtected(t *testing.T) {
	app := setupApp(t)

	// Seed a shared global category directly.
	seedGlobalCategory(t, app, "Shared Fees")

	token, _, _ := app.registerUser(t, "global@test.com", "password123")

	globalID := findCategoryID(t, app, token, "Shared Fees")

	rec := app.request("PUT", "/api/v1/categories/"+globalID, `{"name":"Mine"}`, token)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 updating global category, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("DELETE", "/api/v1/categories/"+globalID, "", token)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 deleting global category, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCategoryFlow_UsersAreIsolated(t *testing.T) {
	app := setupApp(t)

	aliceToken, _, _ := app.registerUser(t, "alice@test.com", "password123")
	bobToken, _, _ := app.registerUser(t, "bob@test.com", "password123")

	id := app.createCategory(t, aliceToken, `{"name":"Alice Only","type":"expense"}`)

	rec := app.request("GET", "/api/v1/categories/"+id, "", bobToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's category, got %d", rec.Code)
	}
}
