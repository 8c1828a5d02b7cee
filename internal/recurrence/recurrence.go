// Package recurrence materializes due instances of recurring transaction
// series. A series is the logical sequence of transactions sharing
// (description, amount, category); it advances by a fixed period from its
// most recent instance. The generator is pure: callers pass a snapshot of
// the user's transactions and "today", and persist whatever comes back.
package recurrence

import (
	"time"

	"ledgerly/internal/models"
)

// seriesKey identifies a recurring series within one user's transactions.
type seriesKey struct {
	Description string
	Amount      float64
	CategoryID  string
}

// GenerateDue returns the new transactions due as of today, at most one per
// series. It does not catch up multiple missed periods in a single call: a
// series three months behind yields one instance now and the next on a
// later call.
func GenerateDue(transactions []models.Transaction, today time.Time) []models.Transaction {
	today = truncateToDay(today)

	// Latest instance per series. Instances are matched across all of the
	// user's transactions, recurring or not, since older data may predate
	// the recurring flag.
	latest := make(map[seriesKey]*models.Transaction)
	for i := range transactions {
		tx := &transactions[i]
		key := seriesKey{tx.Description, tx.Amount, tx.CategoryID}
		if cur, ok := latest[key]; !ok || tx.Date.After(cur.Date) {
			latest[key] = tx
		}
	}

	// Recurring templates, one per series. When several rows of a series
	// carry recurring metadata the most recent one wins.
	templates := make(map[seriesKey]*models.Transaction)
	var order []seriesKey
	for i := range transactions {
		tx := &transactions[i]
		if !tx.Recurring || !tx.RecurringPeriod.Valid() {
			continue
		}
		key := seriesKey{tx.Description, tx.Amount, tx.CategoryID}
		if cur, ok := templates[key]; !ok {
			templates[key] = tx
			order = append(order, key)
		} else if tx.Date.After(cur.Date) {
			templates[key] = tx
		}
	}

	var generated []models.Transaction
	for _, key := range order {
		template := templates[key]

		// Terminated series: end date strictly before today.
		if template.RecurringEndDate != nil && truncateToDay(*template.RecurringEndDate).Before(today) {
			continue
		}

		last, ok := latest[key]
		if !ok {
			// Corrupted data; a template is always its own first instance.
			continue
		}

		nextDue := NextDate(truncateToDay(last.Date), template.RecurringPeriod)
		if nextDue.After(today) {
			continue
		}

		generated = append(generated, materialize(template, nextDue))
	}

	return generated
}

// NextDate advances a series date by one period. Monthly advances to the
// same day-of-month in the next calendar month (December rolls to January
// of the next year); day-of-month overflow normalizes forward per
// time.Date.
func NextDate(date time.Time, period models.RecurringPeriod) time.Time {
	switch period {
	case models.RecurringDaily:
		return date.AddDate(0, 0, 1)
	case models.RecurringWeekly:
		return date.AddDate(0, 0, 7)
	case models.RecurringMonthly:
		return time.Date(date.Year(), date.Month()+1, date.Day(), 0, 0, 0, 0, date.Location())
	case models.RecurringYearly:
		return date.AddDate(1, 0, 0)
	}
	return date
}

// materialize copies the template into a fresh instance dated nextDue.
func materialize(template *models.Transaction, nextDue time.Time) models.Transaction {
	return models.Transaction{
		UserID:           template.UserID,
		CategoryID:       template.CategoryID,
		Type:             template.Type,
		Amount:           template.Amount,
		Date:             nextDue,
		Description:      template.Description,
		PaymentMethod:    template.PaymentMethod,
		Tags:             append(models.StringList(nil), template.Tags...),
		Recurring:        true,
		RecurringPeriod:  template.RecurringPeriod,
		RecurringEndDate: template.RecurringEndDate,
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
