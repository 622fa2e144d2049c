package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// FallbackCategory is the bucket for records with a blank category.
const FallbackCategory = "Other"

// Bucket is one group of records reduced to a sum.
type Bucket struct {
	Key   string
	Total decimal.Decimal
}

// GroupAndSum buckets records by the key function and sums each bucket's
// amounts. Buckets appear in the order their key is first seen, so category
// grouping stays visually stable across repeated renders of the same data.
func GroupAndSum(records []Record, key func(Record) string) []Bucket {
	var buckets []Bucket
	index := make(map[string]int)

	for _, record := range records {
		k := key(record)

		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, Bucket{Key: k})
		}

		buckets[i].Total = buckets[i].Total.Add(record.Amount)
	}

	return buckets
}

// ByCategory groups records by category, blank categories fall back to
// FallbackCategory. Bucket order is the insertion order of the records.
func ByCategory(records []Record) []Bucket {
	return GroupAndSum(records, func(r Record) string {
		if r.Category == "" {
			return FallbackCategory
		}
		return r.Category
	})
}

// ByMonth groups records by the YYYY-MM prefix of their date, sorted
// ascending. Since the key is zero padded, lexicographic order is
// chronological order.
func ByMonth(records []Record) []Bucket {
	buckets := GroupAndSum(records, monthKey)

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Key < buckets[j].Key
	})

	return buckets
}

func monthKey(r Record) string {
	if len(r.Date) < 7 {
		return r.Date
	}
	return r.Date[:7]
}

// Sum adds up the amounts of all records.
func Sum(records []Record) decimal.Decimal {
	var total decimal.Decimal
	for _, record := range records {
		total = total.Add(record.Amount)
	}
	return total
}

// Totals holds the derived summary figures for a set of records.
type Totals struct {
	Income  decimal.Decimal `json:"income" example:"1500"`
	Expense decimal.Decimal `json:"expense" example:"670.5"`
	Balance decimal.Decimal `json:"balance" example:"829.5"`
}

// ComputeTotals derives income, expense and balance sums.
func ComputeTotals(expenses, incomes []Record) Totals {
	income := Sum(incomes)
	expense := Sum(expenses)

	return Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// Percent returns value as a share of total in percent, rounded to one
// decimal place. A zero total yields zero instead of a division error.
func Percent(value, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}

	return value.Div(total).Mul(decimal.NewFromInt(100)).Round(1)
}
