package analytics

import (
	"time"

	"ledgerly/internal/models"
)

// CategoryBucket is the per-category aggregate of signed amounts.
type CategoryBucket struct {
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// Bucket is a time-bucket aggregate of signed amounts.
type Bucket struct {
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Summary is the monthly overview of a transaction snapshot.
//
// ByCategory groups by each transaction's direct category name;
// ByRootCategory rolls subcategories up into their top-level ancestor for
// chart purposes. The two groupings are deliberately distinct: "Groceries"
// and "Restaurants" stay separate in ByCategory but merge into "Food" in
// ByRootCategory.
type Summary struct {
	TotalIncome    float64                   `json:"total_income"`
	TotalExpenses  float64                   `json:"total_expenses"`
	Net            float64                   `json:"net"`
	ByCategory     map[string]CategoryBucket `json:"by_category"`
	ByRootCategory map[string]CategoryBucket `json:"by_root_category"`
	ByMonth        map[string]Bucket         `json:"by_month"`
	Months         []string                  `json:"months"`
	ByWeekday      map[string]Bucket         `json:"by_weekday"`
}

// Summarize buckets the snapshot by category, calendar month, and, for the
// calendar month containing now, by weekday. An empty snapshot yields zero
// totals and empty groupings, never an error. The result depends only on
// its inputs; repeated calls on the same snapshot are identical.
func Summarize(transactions []models.Transaction, categories []models.Category, now time.Time) Summary {
	ds := newDataset(transactions, categories)

	s := Summary{
		ByCategory:     make(map[string]CategoryBucket),
		ByRootCategory: make(map[string]CategoryBucket),
		ByMonth:        make(map[string]Bucket),
		Months:         []string{},
		ByWeekday:      make(map[string]Bucket),
	}

	currentMonth := now.Format(monthLayout)
	monthSums := make(map[string]float64)
	monthCounts := make(map[string]int)
	weekdaySums := make(map[string]float64)
	weekdayCounts := make(map[string]int)

	for _, r := range ds.records {
		if r.signed > 0 {
			s.TotalIncome += r.signed
		} else {
			s.TotalExpenses += -r.signed
		}

		cb := s.ByCategory[r.category]
		cb.Amount += r.signed
		cb.Count++
		s.ByCategory[r.category] = cb

		rb := s.ByRootCategory[r.root]
		rb.Amount += r.signed
		rb.Count++
		s.ByRootCategory[r.root] = rb

		monthSums[r.month] += r.signed
		monthCounts[r.month]++

		if r.month == currentMonth {
			weekday := r.tx.Date.Weekday().String()
			weekdaySums[weekday] += r.signed
			weekdayCounts[weekday]++
		}
	}

	s.Net = s.TotalIncome - s.TotalExpenses

	for _, month := range sortedKeys(monthSums) {
		count := monthCounts[month]
		s.ByMonth[month] = Bucket{
			Total:   monthSums[month],
			Average: monthSums[month] / float64(count),
			Count:   count,
		}
		s.Months = append(s.Months, month)
	}

	for weekday, sum := range weekdaySums {
		count := weekdayCounts[weekday]
		s.ByWeekday[weekday] = Bucket{
			Total:   sum,
			Average: sum / float64(count),
			Count:   count,
		}
	}

	return s
}
