package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
	"unicode"

	"ledgerly/internal/models"
)

// Suggestion thresholds. Amounts are in the account's currency units.
const (
	budgetWarningPercent   = 90.0
	increaseFactor         = 1.3
	increaseMinSpend       = 50.0
	missingBudgetMinSpend  = 100.0
	subscriptionMinCount   = 3
	subscriptionTolerance  = 0.05
	subscriptionMinDayGap  = 25.0
	subscriptionMaxDayGap  = 35.0
)

// SuggestionType discriminates the advisor's output.
type SuggestionType string

const (
	SuggestionBudgetWarning    SuggestionType = "budget_warning"
	SuggestionSpendingIncrease SuggestionType = "spending_increase"
	SuggestionSubscription     SuggestionType = "potential_subscription"
	SuggestionMissingBudget    SuggestionType = "missing_budget"
)

// Suggestion is one piece of generated spending advice. Only the fields
// relevant to its type are populated; Message is always set.
type Suggestion struct {
	Type            SuggestionType `json:"type"`
	Category        string         `json:"category,omitempty"`
	Description     string         `json:"description,omitempty"`
	AmountSpent     float64        `json:"amount_spent,omitempty"`
	Budget          float64        `json:"budget,omitempty"`
	PercentUsed     float64        `json:"percent_used,omitempty"`
	LastMonth       float64        `json:"last_month,omitempty"`
	CurrentMonth    float64        `json:"current_month,omitempty"`
	PercentIncrease float64        `json:"percent_increase,omitempty"`
	AverageAmount   float64        `json:"average_amount,omitempty"`
	Occurrences     int            `json:"occurrences,omitempty"`
	Message         string         `json:"message"`
}

// CategoryBudgetProgress reports current-month spending against a
// category's monthly budget.
type CategoryBudgetProgress struct {
	CategoryID string  `json:"category_id"`
	Category   string  `json:"category"`
	Budgeted   float64 `json:"budgeted"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// Suggest generates spending advice for the calendar month containing now:
// budget warnings, month-over-month category increases, potential
// subscriptions, and categories that look like they need a budget.
// Deterministic over its inputs; an empty snapshot yields no suggestions.
func Suggest(transactions []models.Transaction, categories []models.Category, now time.Time) []Suggestion {
	ds := newDataset(transactions, categories)
	if len(ds.records) == 0 {
		return []Suggestion{}
	}

	suggestions := []Suggestion{}

	currentMonth := now.Format(monthLayout)
	lastMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0).Format(monthLayout)

	currentSpend := expensesByCategory(ds, currentMonth)
	lastSpend := expensesByCategory(ds, lastMonth)

	// Budget warnings: over 90% of a category's monthly budget used.
	// Categories are walked in display order so output is stable.
	for _, cat := range ds.index.Sorted {
		if cat.Budget <= 0 {
			continue
		}
		spent, ok := currentSpend[cat.Name]
		if !ok {
			continue
		}
		percentUsed := spent / cat.Budget * 100
		if percentUsed <= budgetWarningPercent {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Type:        SuggestionBudgetWarning,
			Category:    cat.Name,
			AmountSpent: spent,
			Budget:      cat.Budget,
			PercentUsed: percentUsed,
			Message:     fmt.Sprintf("You've used %.1f%% of your %s budget for this month.", percentUsed, cat.Name),
		})
	}

	// Significant month-over-month spending growth.
	for _, category := range sortedKeys(currentSpend) {
		current := currentSpend[category]
		last, ok := lastSpend[category]
		if !ok || last <= 0 {
			continue
		}
		if current > last*increaseFactor && current > increaseMinSpend {
			increase := (current/last - 1) * 100
			suggestions = append(suggestions, Suggestion{
				Type:            SuggestionSpendingIncrease,
				Category:        category,
				LastMonth:       last,
				CurrentMonth:    current,
				PercentIncrease: increase,
				Message:         fmt.Sprintf("Your spending in %s has increased by %.1f%% compared to last month.", category, increase),
			})
		}
	}

	suggestions = append(suggestions, detectSubscriptions(ds)...)

	// Categories with notable spending but no budget set.
	for _, cat := range ds.index.Sorted {
		if cat.Budget > 0 {
			continue
		}
		spent, ok := currentSpend[cat.Name]
		if !ok || spent <= missingBudgetMinSpend {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Type:        SuggestionMissingBudget,
			Category:    cat.Name,
			AmountSpent: spent,
			Message:     fmt.Sprintf("Consider setting a budget for '%s' based on your spending of %.2f this month.", cat.Name, spent),
		})
	}

	return suggestions
}

// BudgetProgress reports current-month spending against each budgeted
// category, in display order.
func BudgetProgress(transactions []models.Transaction, categories []models.Category, now time.Time) []CategoryBudgetProgress {
	ds := newDataset(transactions, categories)
	currentSpend := expensesByCategory(ds, now.Format(monthLayout))

	progress := []CategoryBudgetProgress{}
	for _, cat := range ds.index.Sorted {
		if cat.Budget <= 0 {
			continue
		}
		spent := currentSpend[cat.Name]
		progress = append(progress, CategoryBudgetProgress{
			CategoryID: cat.ID,
			Category:   cat.Name,
			Budgeted:   cat.Budget,
			Spent:      spent,
			Remaining:  cat.Budget - spent,
			Percentage: math.Min(100, spent/cat.Budget*100),
		})
	}
	return progress
}

// expensesByCategory sums expense magnitudes per direct category name for
// one calendar month.
func expensesByCategory(ds *dataset, month string) map[string]float64 {
	sums := make(map[string]float64)
	for _, r := range ds.records {
		if r.month != month || r.signed >= 0 {
			continue
		}
		sums[r.category] += -r.signed
	}
	return sums
}

// payment is one expense occurrence grouped under a normalized description.
type payment struct {
	date   time.Time
	amount float64
}

// detectSubscriptions finds groups of same-description expenses with
// near-identical amounts recurring at roughly monthly intervals.
func detectSubscriptions(ds *dataset) []Suggestion {
	groups := make(map[string][]payment)
	categoryFor := make(map[string]string)
	for _, r := range ds.records {
		if r.signed >= 0 {
			continue
		}
		desc := normalizeDescription(r.tx.Description)
		if desc == "" {
			continue
		}
		groups[desc] = append(groups[desc], payment{date: r.tx.Date, amount: -r.signed})
		if _, ok := categoryFor[desc]; !ok {
			categoryFor[desc] = r.category
		}
	}

	suggestions := []Suggestion{}
	for _, desc := range sortedKeys(groups) {
		payments := groups[desc]
		if len(payments) < subscriptionMinCount {
			continue
		}

		amounts := make([]float64, len(payments))
		for i, p := range payments {
			amounts[i] = p.amount
		}
		avg := mean(amounts)
		if avg == 0 {
			continue
		}
		similar := true
		for _, a := range amounts {
			if math.Abs(a-avg)/avg >= subscriptionTolerance {
				similar = false
				break
			}
		}
		if !similar {
			continue
		}

		sort.Slice(payments, func(i, j int) bool { return payments[i].date.Before(payments[j].date) })
		var intervalSum float64
		for i := 1; i < len(payments); i++ {
			intervalSum += payments[i].date.Sub(payments[i-1].date).Hours() / 24
		}
		avgInterval := intervalSum / float64(len(payments)-1)
		if avgInterval < subscriptionMinDayGap || avgInterval > subscriptionMaxDayGap {
			continue
		}

		suggestions = append(suggestions, Suggestion{
			Type:          SuggestionSubscription,
			Description:   desc,
			Category:      categoryFor[desc],
			AverageAmount: avg,
			Occurrences:   len(payments),
			Message:       fmt.Sprintf("You may have a monthly subscription to '%s' for approximately %.2f.", desc, avg),
		})
	}

	return suggestions
}

// normalizeDescription lowercases a description and strips digits and
// punctuation so "Netflix 03/2024" and "Netflix 04/2024" group together.
func normalizeDescription(desc string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(desc) {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
