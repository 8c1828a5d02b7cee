package analytics

import (
	"time"

	"ledgerly/internal/models"
)

// DefaultForecastMonths is the number of future months predicted when no
// horizon is supplied.
const DefaultForecastMonths = 3

// Confidence grades a forecast by its R² fit quality.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Trend is the direction of the fitted expense trend.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// Forecast holds projected monthly expense totals. Predictions maps future
// YYYY-MM keys to predicted totals; PredictedMonths carries the same keys
// in calendar order. ByCategory holds independent per-category fits,
// restricted to categories with enough history.
type Forecast struct {
	Predictions     map[string]float64            `json:"predictions"`
	PredictedMonths []string                      `json:"predicted_months"`
	ByCategory      map[string]map[string]float64 `json:"by_category"`
	Confidence      Confidence                    `json:"confidence"`
	RSquared        float64                       `json:"r_squared"`
	Trend           Trend                         `json:"trend"`
	MonthsAnalyzed  int                           `json:"months_analyzed"`
	Message         string                        `json:"message,omitempty"`
}

// ForecastExpenses fits an ordinary least-squares line to monthly expense
// totals (expense transactions only) and projects monthsToPredict future
// months, overall and per category. Fewer than three distinct months of
// history yields an empty, low-confidence result with an explanatory
// message; insufficient history is a structured outcome here, never an
// error. Predictions are clamped to be non-negative.
func ForecastExpenses(transactions []models.Transaction, categories []models.Category, monthsToPredict int) Forecast {
	if monthsToPredict <= 0 {
		monthsToPredict = DefaultForecastMonths
	}

	ds := newDataset(transactions, categories)

	// Monthly expense totals as positive magnitudes.
	monthTotals := make(map[string]float64)
	categoryMonthTotals := make(map[string]map[string]float64)
	for _, r := range ds.records {
		if r.signed >= 0 {
			continue
		}
		monthTotals[r.month] += -r.signed
		if categoryMonthTotals[r.category] == nil {
			categoryMonthTotals[r.category] = make(map[string]float64)
		}
		categoryMonthTotals[r.category][r.month] += -r.signed
	}

	empty := Forecast{
		Predictions:     map[string]float64{},
		PredictedMonths: []string{},
		ByCategory:      map[string]map[string]float64{},
		Confidence:      ConfidenceLow,
		MonthsAnalyzed:  len(monthTotals),
	}
	if len(monthTotals) == 0 {
		empty.Message = "Not enough data for prediction"
		return empty
	}
	if len(monthTotals) < 3 {
		empty.Message = "Need at least 3 months of data for prediction"
		return empty
	}

	months := sortedKeys(monthTotals)
	totals := make([]float64, len(months))
	for i, m := range months {
		totals[i] = monthTotals[m]
	}

	slope, intercept := linearFit(totals)
	r2 := rSquared(totals, slope, intercept)

	confidence := ConfidenceMedium
	if r2 > 0.7 {
		confidence = ConfidenceHigh
	} else if r2 < 0.3 {
		confidence = ConfidenceLow
	}

	trend := TrendStable
	if slope > 0 {
		trend = TrendIncreasing
	} else if slope < 0 {
		trend = TrendDecreasing
	}

	lastMonth, _ := time.Parse(monthLayout, months[len(months)-1])
	lastIndex := len(totals) - 1

	fc := Forecast{
		Predictions:     make(map[string]float64, monthsToPredict),
		PredictedMonths: make([]string, 0, monthsToPredict),
		ByCategory:      make(map[string]map[string]float64),
		Confidence:      confidence,
		RSquared:        r2,
		Trend:           trend,
		MonthsAnalyzed:  len(months),
	}

	for i := 1; i <= monthsToPredict; i++ {
		key := lastMonth.AddDate(0, i, 0).Format(monthLayout)
		predicted := intercept + slope*float64(lastIndex+i)
		if predicted < 0 {
			predicted = 0
		}
		fc.Predictions[key] = predicted
		fc.PredictedMonths = append(fc.PredictedMonths, key)
	}

	// Independent per-category fits; categories with fewer than three
	// months of data are omitted, not reported as errors.
	for _, category := range sortedKeys(categoryMonthTotals) {
		catMonths := sortedKeys(categoryMonthTotals[category])
		if len(catMonths) < 3 {
			continue
		}
		catTotals := make([]float64, len(catMonths))
		for i, m := range catMonths {
			catTotals[i] = categoryMonthTotals[category][m]
		}

		catSlope, catIntercept := linearFit(catTotals)
		catLastIndex := len(catTotals) - 1

		preds := make(map[string]float64, monthsToPredict)
		for i := 1; i <= monthsToPredict; i++ {
			key := lastMonth.AddDate(0, i, 0).Format(monthLayout)
			predicted := catIntercept + catSlope*float64(catLastIndex+i)
			if predicted < 0 {
				predicted = 0
			}
			preds[key] = predicted
		}
		fc.ByCategory[category] = preds
	}

	return fc
}

// linearFit computes closed-form OLS slope and intercept for y over the
// index 0..n-1. Zero index variance degenerates to a flat fit at the mean.
func linearFit(y []float64) (slope, intercept float64) {
	n := len(y)
	if n == 0 {
		return 0, 0
	}

	xMean := float64(n-1) / 2
	yMean := mean(y)

	var num, den float64
	for i, v := range y {
		dx := float64(i) - xMean
		num += dx * (v - yMean)
		den += dx * dx
	}

	if den == 0 {
		return 0, yMean
	}
	slope = num / den
	intercept = yMean - slope*xMean
	return slope, intercept
}

// rSquared computes the coefficient of determination for the fitted line.
// Zero total variance is treated as R² = 0.
func rSquared(y []float64, slope, intercept float64) float64 {
	yMean := mean(y)
	var ssTotal, ssResidual float64
	for i, v := range y {
		predicted := intercept + slope*float64(i)
		ssTotal += (v - yMean) * (v - yMean)
		ssResidual += (v - predicted) * (v - predicted)
	}
	if ssTotal == 0 {
		return 0
	}
	return 1 - ssResidual/ssTotal
}
