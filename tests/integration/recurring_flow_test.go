package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestRecurringFlow_GenerateDueInstances(t *testing.T) {
	app := setupApp(t)

	token, _, _ := app.registerUser(t, "recurring@test.com", "password123")
	categoryID := findCategoryID(t, app, token, "Groceries")

	// A monthly series anchored on the first of the month two months ago.
	// Anchoring on day 1 keeps the date stable regardless of which day the
	// test runs on; AddDate on a month-end day would normalize forward.
	now := time.Now().UTC()
	seriesDate := time.Date(now.Year(), now.Month()-2, 1, 12, 0, 0, 0, time.UTC).Format(time.RFC3339)
	app.createTransaction(t, token, fmt.Sprintf(
		`{"category_id":%q,"type":"expense","amount":9.99,"date":%q,"description":"Streaming service","recurring":true,"recurring_period":"monthly"}`,
		categoryID, seriesDate))

	// First pass materializes exactly one instance.
	rec := app.request("POST", "/api/v1/transactions/recurring/generate", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("generate failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["count"] != float64(1) {
		t.Fatalf("expected 1 generated transaction, got %v", result["count"])
	}
	generated := result["generated"].([]interface{})
	tx := generated[0].(map[string]interface{})
	if tx["description"] != "Streaming service" {
		t.Errorf("expected template description carried over, got %v", tx["description"])
	}
	if tx["recurring"] != true {
		t.Error("expected generated instance to stay recurring")
	}

	// Second pass materializes the next step of the backlog.
	rec = app.request("POST", "/api/v1/transactions/recurring/generate", "", token)
	result = parseJSON(t, rec)
	if result["count"] != float64(1) {
		t.Fatalf("expected 1 more generated transaction, got %v", result["count"])
	}

	// Third pass: the series is caught up.
	rec = app.request("POST", "/api/v1/transactions/recurring/generate", "", token)
	result = parseJSON(t, rec)
	if result["count"] != float64(0) {
		t.Fatalf("expected no generated transactions once caught up, got %v", result["count"])
	}

	// All instances persisted.
	listRec := app.request("GET", "/api/v1/transactions?recurring=true", "", token)
	listResult := parseJSON(t, listRec)
	if data := listResult["data"].([]interface{}); len(data) != 3 {
		t.Errorf("expected 3 transactions in the series, got %d", len(data))
	}
}

func TestRecurringFlow_EndedSeriesStaysQuiet(t *testing.T) {
	app := setupApp(t)

	token, _, _ := app.registerUser(t, "ended@test.com", "password123")
	categoryID := findCategoryID(t, app, token, "Groceries")

	now := time.Now().UTC()
	seriesDate := time.Date(now.Year(), now.Month()-2, 1, 12, 0, 0, 0, time.UTC).Format(time.RFC3339)
	endDate := time.Date(now.Year(), now.Month()-1, 15, 12, 0, 0, 0, time.UTC).Format(time.RFC3339)
	app.createTransaction(t, token, fmt.Sprintf(
		`{"category_id":%q,"type":"expense","amount":15,"date":%q,"description":"Old gym","recurring":true,"recurring_period":"monthly","recurring_end_date":%q}`,
		categoryID, seriesDate, endDate))

	rec := app.request("POST", "/api/v1/transactions/recurring/generate", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("generate failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["count"] != float64(0) {
		t.Errorf("expected no instances after the series end date, got %v", result["count"])
	}
}
