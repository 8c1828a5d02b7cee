// Package analytics is the pure aggregation and statistics core: monthly
// summaries, period-over-period comparison, anomaly detection, linear
// forecasting, and spending suggestions. All functions operate on
// already-loaded snapshots, perform no I/O, and never fail on
// data-quality problems; bad references degrade to an "Unknown" bucket.
package analytics

import (
	"math"
	"sort"

	"ledgerly/internal/models"
	"ledgerly/internal/taxonomy"
)

const (
	monthLayout = "2006-01"
	dayLayout   = "2006-01-02"

	// unknownCategory buckets transactions whose category reference is
	// dangling.
	unknownCategory = "Unknown"
)

// record is one transaction with its derived analytic attributes
// precomputed: signed amount, resolved category names, and calendar
// bucket keys.
type record struct {
	tx       *models.Transaction
	signed   float64
	category string // direct category name
	root     string // top-level rollup name
	month    string // YYYY-MM
	day      string // YYYY-MM-DD
	isoYear  int
	isoWeek  int
}

// dataset is the denormalized view the analytics functions share.
type dataset struct {
	records []record
	index   *taxonomy.Index
}

func newDataset(transactions []models.Transaction, categories []models.Category) *dataset {
	idx := taxonomy.NewIndex(categories)
	ds := &dataset{
		index:   idx,
		records: make([]record, 0, len(transactions)),
	}

	for i := range transactions {
		tx := &transactions[i]
		name, root := unknownCategory, unknownCategory
		if cat := idx.Get(tx.CategoryID); cat != nil {
			name = cat.Name
			root = taxonomy.RootName(cat, idx)
		}
		year, week := tx.Date.ISOWeek()
		ds.records = append(ds.records, record{
			tx:       tx,
			signed:   tx.Signed(),
			category: name,
			root:     root,
			month:    tx.Date.Format(monthLayout),
			day:      tx.Date.Format(dayLayout),
			isoYear:  year,
			isoWeek:  week,
		})
	}

	return ds
}

// sortedKeys returns the map's keys in ascending order so results never
// depend on map iteration order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// mean returns the arithmetic mean, 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev returns the sample standard deviation (n-1 denominator),
// 0 when fewer than two values are given.
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var ss float64
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1))
}
