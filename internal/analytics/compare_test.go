package analytics

import (
	"math"
	"testing"
	"time"

	"ledgerly/internal/models"
)

func TestComparePeriods(t *testing.T) {
	now := day(2024, time.March, 15)
	cats := testCategories()

	t.Run("month_over_month", func(t *testing.T) {
		txs := []models.Transaction{
			expense("t1", 200, "cat-groceries", day(2024, time.March, 5)),
			expense("t2", 100, "cat-groceries", day(2024, time.February, 5)),
			income("t3", 3000, "cat-salary", day(2024, time.March, 1)),
			income("t4", 3000, "cat-salary", day(2024, time.February, 1)),
		}

		cmp := ComparePeriods(txs, cats, PeriodMonth, "2024-03", "2024-02", now)

		if cmp.Current.Label != "2024-03" || cmp.Previous.Label != "2024-02" {
			t.Fatalf("unexpected labels: %q vs %q", cmp.Current.Label, cmp.Previous.Label)
		}
		if cmp.Current.Expenses != 200 || cmp.Previous.Expenses != 100 {
			t.Errorf("unexpected expenses: %f vs %f", cmp.Current.Expenses, cmp.Previous.Expenses)
		}
		if cmp.Change.Expenses != 100 {
			t.Errorf("expected expense change 100, got %f", cmp.Change.Expenses)
		}
		if cmp.PercentChange.Expenses == nil || *cmp.PercentChange.Expenses != 100 {
			t.Errorf("expected expense percent change 100, got %v", cmp.PercentChange.Expenses)
		}
		if cmp.PercentChange.Income == nil || *cmp.PercentChange.Income != 0 {
			t.Errorf("expected income percent change 0, got %v", cmp.PercentChange.Income)
		}
	})

	t.Run("no_baseline_yields_nil_percent", func(t *testing.T) {
		txs := []models.Transaction{
			expense("t1", 200, "cat-groceries", day(2024, time.March, 5)),
		}

		cmp := ComparePeriods(txs, cats, PeriodMonth, "2024-03", "2024-02", now)

		if cmp.Change.Expenses != 200 {
			t.Errorf("expected expense change 200, got %f", cmp.Change.Expenses)
		}
		if cmp.PercentChange.Expenses != nil {
			t.Errorf("expected nil percent change with empty previous period, got %v", *cmp.PercentChange.Expenses)
		}
	})

	t.Run("category_union_counts_absent_side_as_zero", func(t *testing.T) {
		txs := []models.Transaction{
			expense("t1", 200, "cat-groceries", day(2024, time.March, 5)),
			expense("t2", 900, "cat-housing", day(2024, time.February, 5)),
		}

		cmp := ComparePeriods(txs, cats, PeriodMonth, "2024-03", "2024-02", now)

		groceries, ok := cmp.Categories["Groceries"]
		if !ok {
			t.Fatal("expected Groceries in category comparison")
		}
		if groceries.Current != -200 || groceries.Previous != 0 {
			t.Errorf("unexpected Groceries comparison: %+v", groceries)
		}
		if groceries.PercentChange != nil {
			t.Error("expected nil percent change for category absent from previous period")
		}

		housing, ok := cmp.Categories["Housing"]
		if !ok {
			t.Fatal("expected Housing in category comparison")
		}
		if housing.Current != 0 || housing.Previous != -900 || housing.Change != 900 {
			t.Errorf("unexpected Housing comparison: %+v", housing)
		}
	})

	t.Run("defaults_from_now", func(t *testing.T) {
		cmp := ComparePeriods(nil, cats, PeriodMonth, "", "", now)

		if cmp.Current.Label != "2024-03" {
			t.Errorf("expected current label 2024-03, got %q", cmp.Current.Label)
		}
		if cmp.Previous.Label != "2024-02" {
			t.Errorf("expected previous label 2024-02, got %q", cmp.Previous.Label)
		}
	})

	t.Run("previous_derived_from_current_label", func(t *testing.T) {
		cmp := ComparePeriods(nil, cats, PeriodMonth, "2023-01", "", now)

		if cmp.Previous.Label != "2022-12" {
			t.Errorf("expected previous label 2022-12, got %q", cmp.Previous.Label)
		}
	})

	t.Run("iso_week_boundaries", func(t *testing.T) {
		// 2024-01-01 (Monday) is ISO week 2024-W01; the preceding week is
		// 2023-W52, which spans into December 2023.
		txs := []models.Transaction{
			expense("t1", 40, "cat-food", day(2024, time.January, 1)),
			expense("t2", 60, "cat-food", day(2023, time.December, 28)),
		}

		cmp := ComparePeriods(txs, cats, PeriodWeek, "2024-W01", "", now)

		if cmp.Previous.Label != "2023-W52" {
			t.Fatalf("expected previous label 2023-W52, got %q", cmp.Previous.Label)
		}
		if cmp.Current.Expenses != 40 || cmp.Previous.Expenses != 60 {
			t.Errorf("unexpected week expenses: %f vs %f", cmp.Current.Expenses, cmp.Previous.Expenses)
		}
	})

	t.Run("year_comparison", func(t *testing.T) {
		txs := []models.Transaction{
			expense("t1", 500, "cat-housing", day(2024, time.January, 10)),
			expense("t2", 400, "cat-housing", day(2023, time.June, 10)),
		}

		cmp := ComparePeriods(txs, cats, PeriodYear, "2024", "2023", now)

		if cmp.Current.Expenses != 500 || cmp.Previous.Expenses != 400 {
			t.Errorf("unexpected year expenses: %f vs %f", cmp.Current.Expenses, cmp.Previous.Expenses)
		}
		if cmp.PercentChange.Expenses == nil || math.Abs(*cmp.PercentChange.Expenses-25) > 1e-9 {
			t.Errorf("expected expense percent change 25, got %v", cmp.PercentChange.Expenses)
		}
	})

	t.Run("invalid_period_type_falls_back_to_month", func(t *testing.T) {
		cmp := ComparePeriods(nil, cats, PeriodType("quarter"), "", "", now)

		if cmp.PeriodType != PeriodMonth {
			t.Errorf("expected month fallback, got %q", cmp.PeriodType)
		}
	})

	t.Run("unparseable_label_falls_back_to_default", func(t *testing.T) {
		cmp := ComparePeriods(nil, cats, PeriodMonth, "March 2024", "", now)

		if cmp.Current.Label != "2024-03" {
			t.Errorf("expected default current label, got %q", cmp.Current.Label)
		}
	})
}

func TestIsoWeekStart(t *testing.T) {
	cases := []struct {
		year, week int
		want       time.Time
	}{
		{2024, 1, day(2024, time.January, 1)},
		{2023, 52, day(2023, time.December, 25)},
		{2015, 53, day(2015, time.December, 28)},
	}
	for _, tc := range cases {
		got := isoWeekStart(tc.year, tc.week)
		if !got.Equal(tc.want) {
			t.Errorf("isoWeekStart(%d, %d) = %v, want %v", tc.year, tc.week, got, tc.want)
		}
		if gotYear, gotWeek := got.ISOWeek(); gotYear != tc.year || gotWeek != tc.week {
			t.Errorf("isoWeekStart(%d, %d) round-trips to %d-W%02d", tc.year, tc.week, gotYear, gotWeek)
		}
	}
}
