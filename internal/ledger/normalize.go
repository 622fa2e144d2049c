// Package ledger implements the aggregation logic that turns raw income and
// expense records into chart series and export tables.
//
// All functions are pure. The database models are converted into the
// canonical Record shape once at the boundary, everything downstream operates
// on that shape only.
package ledger

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/models"
)

// Record is the canonical in-memory shape of one income or expense entry.
type Record struct {
	Date        string          // YYYY-MM-DD, empty when the source had no date
	Time        string          // HH:MM, empty when the source had no time
	Category    string
	Amount      decimal.Decimal
	Description string
}

// RawRecord is a record as it arrives from storage or an import, before
// normalization. Date may be a combined ISO 8601 timestamp or a bare date,
// Amount may be a string, a number or absent.
type RawRecord struct {
	Date        string
	Time        string
	Category    string
	Amount      any
	Description string
}

// SplitDateTime splits a record's point in time into a bare date and a five
// character HH:MM clock time.
//
// The date field may carry a combined timestamp ("2024-03-01T09:30:00"), in
// which case the part after the "T" wins over a separately stored time. When
// neither source is present, the corresponding output is empty.
func SplitDateTime(date, clock string) (string, string) {
	if before, after, found := strings.Cut(date, "T"); found {
		date = before
		if after != "" {
			clock = after
		}
	}

	if len(clock) > 5 {
		clock = clock[:5]
	}

	return date, clock
}

// CoerceAmount converts an amount of unknown shape into a decimal.
//
// Nil, malformed strings and unsupported types coerce to zero. This lenient
// policy means malformed input silently contributes zero to sums, it never
// fails. Use CoerceAmountStrict when the caller wants to surface bad input.
func CoerceAmount(v any) decimal.Decimal {
	amount, err := CoerceAmountStrict(v)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// CoerceAmountStrict converts an amount of unknown shape into a decimal and
// reports input it cannot interpret. Nil coerces to zero without error since
// an absent amount is a valid empty value, not a malformed one.
func CoerceAmountStrict(v any) (decimal.Decimal, error) {
	switch amount := v.(type) {
	case nil:
		return decimal.Zero, nil

	case decimal.Decimal:
		return amount, nil

	case string:
		if strings.TrimSpace(amount) == "" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(strings.TrimSpace(amount))

	case json.Number:
		return decimal.NewFromString(amount.String())

	case float64:
		return decimal.NewFromFloat(amount), nil

	case float32:
		return decimal.NewFromFloat32(amount), nil

	case int:
		return decimal.NewFromInt(int64(amount)), nil

	case int64:
		return decimal.NewFromInt(amount), nil

	default:
		return decimal.Zero, fmt.Errorf("cannot interpret %T as an amount", v)
	}
}

// Normalize converts a raw record into the canonical shape.
func Normalize(raw RawRecord) Record {
	date, clock := SplitDateTime(raw.Date, raw.Time)

	return Record{
		Date:        date,
		Time:        clock,
		Category:    raw.Category,
		Amount:      CoerceAmount(raw.Amount),
		Description: raw.Description,
	}
}

// FromExpenses converts stored expenses into canonical records, preserving
// their order.
func FromExpenses(expenses []models.Expense) []Record {
	records := make([]Record, 0, len(expenses))
	for _, expense := range expenses {
		records = append(records, fromModel(expense.Record))
	}
	return records
}

// FromIncomes converts stored incomes into canonical records, preserving
// their order.
func FromIncomes(incomes []models.Income) []Record {
	records := make([]Record, 0, len(incomes))
	for _, income := range incomes {
		records = append(records, fromModel(income.Record))
	}
	return records
}

func fromModel(r models.Record) Record {
	date, clock := SplitDateTime(r.Date, r.Time)

	return Record{
		Date:        date,
		Time:        clock,
		Category:    r.Category,
		Amount:      r.Amount,
		Description: r.Description,
	}
}
