package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/types"
)

// Palette holds the chart colors, assigned by cycling over the category
// buckets in order.
var Palette = []string{
	"#F87171",
	"#FBBF24",
	"#34D399",
	"#7C3AED",
	"#60A5FA",
	"#0284C7",
	"#F472B6",
	"#FACC15",
}

// PiePoint is one slice of the category breakdown chart.
type PiePoint struct {
	Label   string          `json:"label" example:"Food"`
	Value   decimal.Decimal `json:"value" example:"420"`
	Percent decimal.Decimal `json:"percent" example:"62.7"`
	Display string          `json:"display" example:"₹420"`
	Color   string          `json:"color" example:"#F87171"`
}

// BarPoint is one bar of the monthly spend chart.
type BarPoint struct {
	Month   string          `json:"month" example:"2024-03"`
	Label   string          `json:"label" example:"Mar 2024"`
	Value   decimal.Decimal `json:"value" example:"670.5"`
	Display string          `json:"display" example:"₹670.5"`
}

// MonthlySeries is the shared-axis data for the income vs. expense chart.
type MonthlySeries struct {
	Months  []string          `json:"months" example:"2024-01,2024-02"`
	Labels  []string          `json:"labels" example:"Jan 2024,Feb 2024"`
	Income  []decimal.Decimal `json:"income" example:"0,200"`
	Expense []decimal.Decimal `json:"expense" example:"50,0"`
}

// CategoryBreakdown maps expenses into pie slices, one per distinct category
// in first-seen order, with palette colors cycling by position. An empty
// expense set yields an empty series which consumers render as a "no data"
// state.
func CategoryBreakdown(expenses []Record, currency string) []PiePoint {
	buckets := ByCategory(expenses)
	total := Sum(expenses)

	points := make([]PiePoint, 0, len(buckets))
	for i, bucket := range buckets {
		points = append(points, PiePoint{
			Label:   bucket.Key,
			Value:   bucket.Total,
			Percent: Percent(bucket.Total, total),
			Display: Display(currency, bucket.Total),
			Color:   Palette[i%len(Palette)],
		})
	}

	return points
}

// MonthlySpend maps expenses into chronologically ordered bars, one per month
// present in the data. Months of different years stay separate bars.
func MonthlySpend(expenses []Record, currency string) []BarPoint {
	buckets := ByMonth(expenses)

	points := make([]BarPoint, 0, len(buckets))
	for _, bucket := range buckets {
		points = append(points, BarPoint{
			Month:   bucket.Key,
			Label:   monthLabel(bucket.Key),
			Value:   bucket.Total,
			Display: Display(currency, bucket.Total),
		})
	}

	return points
}

// IncomeVsExpense builds the dual series over the union of months present in
// either record set. A month present on one side only gets a zero on the
// other, so both series share one axis.
func IncomeVsExpense(expenses, incomes []Record, currency string) MonthlySeries {
	expenseBuckets := ByMonth(expenses)
	incomeBuckets := ByMonth(incomes)

	months := unionMonths(expenseBuckets, incomeBuckets)

	series := MonthlySeries{
		Months:  months,
		Labels:  make([]string, 0, len(months)),
		Income:  make([]decimal.Decimal, 0, len(months)),
		Expense: make([]decimal.Decimal, 0, len(months)),
	}

	expenseByMonth := totalsByKey(expenseBuckets)
	incomeByMonth := totalsByKey(incomeBuckets)

	for _, month := range months {
		series.Labels = append(series.Labels, monthLabel(month))
		series.Income = append(series.Income, incomeByMonth[month])
		series.Expense = append(series.Expense, expenseByMonth[month])
	}

	return series
}

// Display prefixes the currency symbol directly against the amount. No
// locale-aware formatting, the symbol is whatever the user configured.
func Display(currency string, amount decimal.Decimal) string {
	return currency + amount.String()
}

func unionMonths(a, b []Bucket) []string {
	var months []string
	seen := make(map[string]bool)

	// Both inputs are sorted, so a two-pointer merge keeps the union sorted.
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		var key string
		switch {
		case i >= len(a):
			key = b[j].Key
			j++
		case j >= len(b):
			key = a[i].Key
			i++
		case a[i].Key <= b[j].Key:
			key = a[i].Key
			i++
		default:
			key = b[j].Key
			j++
		}

		if !seen[key] {
			seen[key] = true
			months = append(months, key)
		}
	}

	return months
}

func totalsByKey(buckets []Bucket) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(buckets))
	for _, bucket := range buckets {
		totals[bucket.Key] = bucket.Total
	}
	return totals
}

func monthLabel(key string) string {
	month, err := types.ParseMonth(key)
	if err != nil {
		return key
	}
	return month.Label()
}
