package analytics

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"ledgerly/internal/models"
)

// PeriodType is the bucketing granularity for period comparison.
type PeriodType string

const (
	PeriodDay   PeriodType = "day"
	PeriodWeek  PeriodType = "week"
	PeriodMonth PeriodType = "month"
	PeriodYear  PeriodType = "year"
)

// Valid reports whether p is a supported period type.
func (p PeriodType) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// PeriodTotals holds one side of a comparison.
type PeriodTotals struct {
	Label      string             `json:"label"`
	Income     float64            `json:"income"`
	Expenses   float64            `json:"expenses"`
	Net        float64            `json:"net"`
	ByCategory map[string]float64 `json:"by_category"`
}

// Delta holds absolute current-minus-previous changes per metric.
type Delta struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// PercentDelta holds percentage changes per metric. A nil entry means the
// previous period had no baseline (value was zero), which is distinct from
// a zero change.
type PercentDelta struct {
	Income   *float64 `json:"income"`
	Expenses *float64 `json:"expenses"`
	Net      *float64 `json:"net"`
}

// CategoryComparison compares one category across the two periods.
type CategoryComparison struct {
	Current       float64  `json:"current"`
	Previous      float64  `json:"previous"`
	Change        float64  `json:"change"`
	PercentChange *float64 `json:"percent_change"`
}

// Comparison is the full current-vs-previous period result.
type Comparison struct {
	PeriodType    PeriodType                    `json:"period_type"`
	Current       PeriodTotals                  `json:"current_period"`
	Previous      PeriodTotals                  `json:"previous_period"`
	Change        Delta                         `json:"change"`
	PercentChange PercentDelta                  `json:"percent_change"`
	Categories    map[string]CategoryComparison `json:"categories"`
}

// ComparePeriods compares the period labelled currentLabel against
// previousLabel at the given granularity. Empty labels default to the
// period containing now and the period immediately preceding the current
// one. Week identity uses ISO year-week labels ("2024-W05") to avoid
// month-boundary ambiguity. Unparseable labels fall back to the defaults
// rather than failing.
func ComparePeriods(
	transactions []models.Transaction,
	categories []models.Category,
	periodType PeriodType,
	currentLabel, previousLabel string,
	now time.Time,
) Comparison {
	if !periodType.Valid() {
		periodType = PeriodMonth
	}

	if currentLabel == "" || !validPeriodLabel(periodType, currentLabel) {
		currentLabel = periodLabel(periodType, now)
	}
	if previousLabel == "" || !validPeriodLabel(periodType, previousLabel) {
		previousLabel = previousPeriodLabel(periodType, currentLabel)
	}

	ds := newDataset(transactions, categories)

	current := collectPeriod(ds, periodType, currentLabel)
	previous := collectPeriod(ds, periodType, previousLabel)

	cmp := Comparison{
		PeriodType: periodType,
		Current:    current,
		Previous:   previous,
		Change: Delta{
			Income:   current.Income - previous.Income,
			Expenses: current.Expenses - previous.Expenses,
			Net:      current.Net - previous.Net,
		},
		Categories: make(map[string]CategoryComparison),
	}
	cmp.PercentChange = PercentDelta{
		Income:   percentChange(current.Income, previous.Income),
		Expenses: percentChange(current.Expenses, previous.Expenses),
		Net:      percentChange(current.Net, previous.Net),
	}

	// Union of categories seen in either period; an absent side counts 0.
	union := make(map[string]struct{})
	for name := range current.ByCategory {
		union[name] = struct{}{}
	}
	for name := range previous.ByCategory {
		union[name] = struct{}{}
	}
	for name := range union {
		cur := current.ByCategory[name]
		prev := previous.ByCategory[name]
		cmp.Categories[name] = CategoryComparison{
			Current:       cur,
			Previous:      prev,
			Change:        cur - prev,
			PercentChange: percentChange(cur, prev),
		}
	}

	return cmp
}

// percentChange returns (current-previous)/|previous|*100, or nil when the
// previous value is zero ("no prior baseline").
func percentChange(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	v := (current - previous) / math.Abs(previous) * 100
	return &v
}

// collectPeriod sums the records matching the labelled period.
func collectPeriod(ds *dataset, periodType PeriodType, label string) PeriodTotals {
	totals := PeriodTotals{
		Label:      label,
		ByCategory: make(map[string]float64),
	}

	isoYear, isoWeek := 0, 0
	if periodType == PeriodWeek {
		isoYear, isoWeek, _ = parseWeekLabel(label)
	}

	for _, r := range ds.records {
		var match bool
		switch periodType {
		case PeriodDay:
			match = r.day == label
		case PeriodWeek:
			match = r.isoYear == isoYear && r.isoWeek == isoWeek
		case PeriodMonth:
			match = r.month == label
		case PeriodYear:
			match = strconv.Itoa(r.tx.Date.Year()) == label
		}
		if !match {
			continue
		}

		if r.signed > 0 {
			totals.Income += r.signed
		} else {
			totals.Expenses += -r.signed
		}
		totals.ByCategory[r.category] += r.signed
	}

	totals.Net = totals.Income - totals.Expenses
	return totals
}

// periodLabel formats the period containing t.
func periodLabel(periodType PeriodType, t time.Time) string {
	switch periodType {
	case PeriodDay:
		return t.Format(dayLayout)
	case PeriodWeek:
		year, week := t.ISOWeek()
		return weekLabel(year, week)
	case PeriodYear:
		return strconv.Itoa(t.Year())
	default:
		return t.Format(monthLayout)
	}
}

// previousPeriodLabel derives the period immediately preceding the given
// label. Deriving from the label, not from "now", keeps explicit
// currentLabel arguments consistent with their computed previous period.
func previousPeriodLabel(periodType PeriodType, label string) string {
	switch periodType {
	case PeriodDay:
		t, err := time.Parse(dayLayout, label)
		if err != nil {
			return label
		}
		return t.AddDate(0, 0, -1).Format(dayLayout)

	case PeriodWeek:
		year, week, err := parseWeekLabel(label)
		if err != nil {
			return label
		}
		prev := isoWeekStart(year, week).AddDate(0, 0, -7)
		prevYear, prevWeek := prev.ISOWeek()
		return weekLabel(prevYear, prevWeek)

	case PeriodYear:
		year, err := strconv.Atoi(label)
		if err != nil {
			return label
		}
		return strconv.Itoa(year - 1)

	default:
		t, err := time.Parse(monthLayout, label)
		if err != nil {
			return label
		}
		return t.AddDate(0, -1, 0).Format(monthLayout)
	}
}

func validPeriodLabel(periodType PeriodType, label string) bool {
	switch periodType {
	case PeriodDay:
		_, err := time.Parse(dayLayout, label)
		return err == nil
	case PeriodWeek:
		_, _, err := parseWeekLabel(label)
		return err == nil
	case PeriodYear:
		_, err := strconv.Atoi(label)
		return err == nil
	default:
		_, err := time.Parse(monthLayout, label)
		return err == nil
	}
}

// weekLabel formats an ISO year-week pair as "2024-W05".
func weekLabel(year, week int) string {
	return fmt.Sprintf("%d-W%02d", year, week)
}

// parseWeekLabel parses a "2024-W05" label.
func parseWeekLabel(label string) (year, week int, err error) {
	parts := strings.SplitN(label, "-W", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid week label %q", label)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid week label %q", label)
	}
	week, err = strconv.Atoi(parts[1])
	if err != nil || week < 1 || week > 53 {
		return 0, 0, fmt.Errorf("invalid week label %q", label)
	}
	return year, week, nil
}

// isoWeekStart returns the Monday of the given ISO year-week.
// January 4th always falls in ISO week 1.
func isoWeekStart(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	week1Monday := jan4.AddDate(0, 0, 1-weekday)
	return week1Monday.AddDate(0, 0, (week-1)*7)
}
