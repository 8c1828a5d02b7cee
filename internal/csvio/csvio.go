// Package csvio implements CSV import and export of transactions.
//
// Import is tolerant by design: a malformed row is recorded with its line
// number and skipped, and never aborts the rest of the file. Export writes
// signed amounts (negative for expenses) so a file round-trips through
// Import.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"ledgerly/internal/models"
)

// Column headers, matched case-insensitively on import.
const (
	columnDate          = "Date"
	columnAmount        = "Amount"
	columnCategory      = "Category"
	columnDescription   = "Description"
	columnPaymentMethod = "Payment Method"
	columnTags          = "Tags"
)

// dateFormats are tried in order when parsing the date column.
var dateFormats = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"02-01-2006",
}

// fallbackCategoryNames are tried, in order, when a row's category name
// does not match any known category.
var fallbackCategoryNames = []string{"other", "miscellaneous", "general"}

// RowError records why one CSV row could not be imported. Row is the
// 1-based line number in the file, counting the header.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult summarizes one import pass. Transactions holds the parsed
// rows ready to persist; rows listed in Errors are not included.
type ImportResult struct {
	Transactions []models.Transaction `json:"-"`
	Imported     int                  `json:"imported"`
	Failed       int                  `json:"failed"`
	Errors       []RowError           `json:"errors"`
}

// Import parses transactions from CSV. The first row must be a header
// containing at least Date, Amount and Category columns. The amount's sign
// carries the type: positive is income, negative (or zero) is an expense,
// matching what Export writes. Unparseable dates fall back to now's date
// rather than failing the row. Unknown category names map to a fallback
// category ("Other", "Miscellaneous" or "General" when present, the first
// known category otherwise).
func Import(r io.Reader, userID string, categories []models.Category, now time.Time) ImportResult {
	result := ImportResult{Errors: []RowError{}}

	if len(categories) == 0 {
		result.Failed = 1
		result.Errors = append(result.Errors, RowError{Row: 0, Message: "no categories available to import into"})
		return result
	}

	byName := make(map[string]string, len(categories))
	for _, c := range categories {
		byName[strings.ToLower(c.Name)] = c.ID
	}
	fallbackID := categories[0].ID
	for _, name := range fallbackCategoryNames {
		if id, ok := byName[name]; ok {
			fallbackID = id
			break
		}
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		result.Failed = 1
		result.Errors = append(result.Errors, RowError{Row: 0, Message: fmt.Sprintf("error reading CSV file: %v", err)})
		return result
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{columnDate, columnAmount, columnCategory} {
		if _, ok := columns[strings.ToLower(required)]; !ok {
			result.Failed = 1
			result.Errors = append(result.Errors, RowError{Row: 1, Message: fmt.Sprintf("missing required column %q", required)})
			return result
		}
	}

	field := func(row []string, column string) string {
		i, ok := columns[strings.ToLower(column)]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	// Line 1 is the header.
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, RowError{Row: line, Message: err.Error()})
			continue
		}

		amount, isIncome, err := parseAmount(field(row, columnAmount))
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, RowError{Row: line, Message: err.Error()})
			continue
		}

		categoryID := fallbackID
		if id, ok := byName[strings.ToLower(field(row, columnCategory))]; ok {
			categoryID = id
		}

		txType := models.TransactionTypeExpense
		if isIncome {
			txType = models.TransactionTypeIncome
		}

		tx := models.Transaction{
			UserID:        userID,
			CategoryID:    categoryID,
			Type:          txType,
			Amount:        amount,
			Date:          parseDate(field(row, columnDate), now),
			Description:   field(row, columnDescription),
			PaymentMethod: field(row, columnPaymentMethod),
			Tags:          parseTags(field(row, columnTags)),
		}
		result.Transactions = append(result.Transactions, tx)
		result.Imported++
	}

	return result
}

// Export writes transactions as CSV with signed amounts. The category
// column holds the category's name, or is empty for dangling references.
func Export(w io.Writer, transactions []models.Transaction, categories []models.Category) error {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	writer := csv.NewWriter(w)
	header := []string{columnDate, columnAmount, columnCategory, columnDescription, columnPaymentMethod, columnTags}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, tx := range transactions {
		record := []string{
			tx.Date.Format("2006-01-02"),
			strconv.FormatFloat(tx.Signed(), 'f', 2, 64),
			names[tx.CategoryID],
			tx.Description,
			tx.PaymentMethod,
			strings.Join(tx.Tags, ", "),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// parseAmount cleans currency symbols and thousands separators, then
// parses the value. The sign determines income versus expense; the
// returned amount is always non-negative.
func parseAmount(raw string) (amount float64, isIncome bool, err error) {
	cleaned := strings.NewReplacer("$", "", "€", "", "£", "", ",", "").Replace(raw)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, false, fmt.Errorf("missing amount")
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid amount %q", raw)
	}

	if value < 0 {
		return -value, false, nil
	}
	return value, value > 0, nil
}

// parseDate tries the supported layouts in order, falling back to now's
// date when none match.
func parseDate(raw string, now time.Time) time.Time {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// parseTags splits a comma-separated tag list, dropping empty entries.
func parseTags(raw string) models.StringList {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make(models.StringList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
