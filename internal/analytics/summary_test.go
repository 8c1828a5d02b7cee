package analytics

import (
	"math"
	"reflect"
	"testing"
	"time"

	"ledgerly/internal/models"
)

func TestSummarize(t *testing.T) {
	now := day(2024, time.March, 20)
	cats := testCategories()

	t.Run("totals_and_net", func(t *testing.T) {
		txs := []models.Transaction{
			income("t1", 3000, "cat-salary", day(2024, time.March, 1)),
			expense("t2", 120.50, "cat-groceries", day(2024, time.March, 5)),
			expense("t3", 900, "cat-housing", day(2024, time.March, 2)),
		}

		s := Summarize(txs, cats, now)

		if s.TotalIncome != 3000 {
			t.Errorf("expected income 3000, got %f", s.TotalIncome)
		}
		if s.TotalExpenses != 1020.50 {
			t.Errorf("expected expenses 1020.50, got %f", s.TotalExpenses)
		}
		if got := s.TotalIncome - s.TotalExpenses; math.Abs(s.Net-got) > 1e-9 {
			t.Errorf("net invariant violated: net=%f, income-expenses=%f", s.Net, got)
		}
	})

	t.Run("direct_category_grouping_vs_root_rollup", func(t *testing.T) {
		txs := []models.Transaction{
			expense("t1", 50, "cat-groceries", day(2024, time.March, 5)),
			expense("t2", 30, "cat-food", day(2024, time.March, 6)),
		}

		s := Summarize(txs, cats, now)

		// Direct grouping keeps Groceries and Food separate.
		if got := s.ByCategory["Groceries"]; got.Amount != -50 || got.Count != 1 {
			t.Errorf("unexpected Groceries bucket: %+v", got)
		}
		if got := s.ByCategory["Food"]; got.Amount != -30 || got.Count != 1 {
			t.Errorf("unexpected Food bucket: %+v", got)
		}

		// Rollup merges the subcategory into its main category.
		if got := s.ByRootCategory["Food"]; got.Amount != -80 || got.Count != 2 {
			t.Errorf("unexpected Food rollup: %+v", got)
		}
		if _, ok := s.ByRootCategory["Groceries"]; ok {
			t.Error("rollup must not contain subcategory names")
		}
	})

	t.Run("by_month", func(t *testing.T) {
		txs := []models.Transaction{
			expense("t1", 100, "cat-housing", day(2024, time.January, 10)),
			expense("t2", 200, "cat-housing", day(2024, time.February, 10)),
			expense("t3", 100, "cat-housing", day(2024, time.February, 20)),
		}

		s := Summarize(txs, cats, now)

		if !reflect.DeepEqual(s.Months, []string{"2024-01", "2024-02"}) {
			t.Errorf("expected sorted month keys, got %v", s.Months)
		}
		feb := s.ByMonth["2024-02"]
		if feb.Total != -300 || feb.Count != 2 || feb.Average != -150 {
			t.Errorf("unexpected February bucket: %+v", feb)
		}
	})

	t.Run("weekday_restricted_to_current_month", func(t *testing.T) {
		txs := []models.Transaction{
			// 2024-03-04 is a Monday, 2024-02-05 is a Monday of the prior month.
			expense("t1", 10, "cat-food", day(2024, time.March, 4)),
			expense("t2", 99, "cat-food", day(2024, time.February, 5)),
		}

		s := Summarize(txs, cats, now)

		monday := s.ByWeekday["Monday"]
		if monday.Total != -10 || monday.Count != 1 {
			t.Errorf("expected only current-month Monday spending, got %+v", monday)
		}
	})

	t.Run("dangling_category_reference", func(t *testing.T) {
		txs := []models.Transaction{
			expense("t1", 25, "cat-missing", day(2024, time.March, 5)),
		}

		s := Summarize(txs, cats, now)

		if got := s.ByCategory["Unknown"]; got.Amount != -25 || got.Count != 1 {
			t.Errorf("expected dangling reference in Unknown bucket, got %+v", got)
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		s := Summarize(nil, cats, now)

		if s.TotalIncome != 0 || s.TotalExpenses != 0 || s.Net != 0 {
			t.Errorf("expected zero totals, got %+v", s)
		}
		if len(s.ByCategory) != 0 || len(s.ByMonth) != 0 || len(s.ByWeekday) != 0 {
			t.Errorf("expected empty groupings, got %+v", s)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		txs := []models.Transaction{
			income("t1", 3000, "cat-salary", day(2024, time.March, 1)),
			expense("t2", 120.50, "cat-groceries", day(2024, time.March, 5)),
		}

		first := Summarize(txs, cats, now)
		second := Summarize(txs, cats, now)

		if !reflect.DeepEqual(first, second) {
			t.Error("expected identical results for repeated summarization of the same snapshot")
		}
	})
}
