package analytics

import (
	"math"

	"ledgerly/internal/models"
)

// DefaultThresholdFactor is the multiplier applied to the deviation when
// no factor is supplied.
const DefaultThresholdFactor = 2.0

// AnomalyType discriminates the two kinds of detected anomalies.
type AnomalyType string

const (
	AnomalyLargeTransaction AnomalyType = "large_transaction"
	AnomalyHighFrequency    AnomalyType = "high_frequency"
)

// Anomaly is one flagged observation. Large-transaction anomalies carry the
// transaction fields; high-frequency anomalies carry the day and its count.
// Threshold and Mean are always set so the flag is explainable.
type Anomaly struct {
	Type          AnomalyType `json:"type"`
	TransactionID string      `json:"transaction_id,omitempty"`
	Date          string      `json:"date"`
	Amount        float64     `json:"amount,omitempty"`
	Category      string      `json:"category,omitempty"`
	Description   string      `json:"description,omitempty"`
	Count         int         `json:"count,omitempty"`
	Threshold     float64     `json:"threshold"`
	Mean          float64     `json:"mean"`
}

// DetectAnomalies flags transactions that are statistical outliers within
// their category and days with abnormally many transactions. It is a
// descriptive-statistics pass with no hidden state: deterministic and
// re-runnable over any subset. factor <= 0 falls back to
// DefaultThresholdFactor.
//
// Per category, the threshold is |mean| * factor when the sample standard
// deviation is undefined (a single transaction) or zero, and
// |mean| + std * factor otherwise; a transaction whose absolute amount
// exceeds the threshold is flagged. Daily transaction counts are screened
// with the same rule.
func DetectAnomalies(transactions []models.Transaction, categories []models.Category, factor float64) []Anomaly {
	if factor <= 0 {
		factor = DefaultThresholdFactor
	}

	ds := newDataset(transactions, categories)
	if len(ds.records) == 0 {
		return []Anomaly{}
	}

	anomalies := []Anomaly{}

	// Unusually large transactions, per category.
	byCategory := make(map[string][]record)
	for _, r := range ds.records {
		byCategory[r.category] = append(byCategory[r.category], r)
	}

	for _, category := range sortedKeys(byCategory) {
		group := byCategory[category]
		amounts := make([]float64, len(group))
		for i, r := range group {
			amounts[i] = r.signed
		}

		m := mean(amounts)
		std := sampleStdDev(amounts)

		var threshold float64
		if len(amounts) < 2 || std == 0 {
			threshold = math.Abs(m) * factor
		} else {
			threshold = math.Abs(m) + std*factor
		}

		for _, r := range group {
			if math.Abs(r.signed) <= threshold {
				continue
			}
			anomalies = append(anomalies, Anomaly{
				Type:          AnomalyLargeTransaction,
				TransactionID: r.tx.ID,
				Date:          r.day,
				Amount:        r.signed,
				Category:      category,
				Description:   r.tx.Description,
				Threshold:     threshold,
				Mean:          m,
			})
		}
	}

	// Days with unusual transaction frequency, across the full set.
	countsByDay := make(map[string]int)
	for _, r := range ds.records {
		countsByDay[r.day]++
	}
	counts := make([]float64, 0, len(countsByDay))
	for _, c := range countsByDay {
		counts = append(counts, float64(c))
	}

	countMean := mean(counts)
	countStd := sampleStdDev(counts)

	var freqThreshold float64
	if len(counts) < 2 || countStd == 0 {
		freqThreshold = countMean * factor
	} else {
		freqThreshold = countMean + countStd*factor
	}

	for _, day := range sortedKeys(countsByDay) {
		count := countsByDay[day]
		if float64(count) <= freqThreshold {
			continue
		}
		anomalies = append(anomalies, Anomaly{
			Type:      AnomalyHighFrequency,
			Date:      day,
			Count:     count,
			Threshold: freqThreshold,
			Mean:      countMean,
		})
	}

	return anomalies
}
