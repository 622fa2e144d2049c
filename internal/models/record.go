package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Record holds the fields shared by expense and income entries.
//
// Date may hold a combined ISO 8601 timestamp ("2024-03-01T09:30:00") for
// records created through the entry forms, or a bare date ("2024-03-01") with
// the time stored split in Time for records imported from statements. The
// ledger normalizer accepts both shapes.
type Record struct {
	UserID      uuid.UUID       `json:"userId" gorm:"index"`
	Date        string          `json:"date" example:"2024-03-01T09:30:00"`
	Time        string          `json:"time" example:"09:30" default:""`
	Category    string          `json:"category" example:"Food"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"12.5"`
	Description string          `json:"description" example:"Lunch" default:""`
}

// BeforeSave validates the shared record fields and defaults the date to now.
func (r *Record) BeforeSave(_ *gorm.DB) error {
	if r.Amount.IsNegative() {
		return ErrRecordAmountNegative
	}

	if r.Date == "" {
		r.Date = time.Now().In(time.UTC).Format("2006-01-02T15:04:05")
	}

	return nil
}

// Expense is money leaving the user's pocket.
type Expense struct {
	DefaultModel
	Record
}

// Income is money entering the user's pocket.
type Income struct {
	DefaultModel
	Record
}

// ExpensesForUser returns all expenses of a user, newest first.
func ExpensesForUser(userID uuid.UUID) ([]Expense, error) {
	var expenses []Expense
	err := DB.
		Where(&Expense{Record: Record{UserID: userID}}).
		Order("date DESC").
		Find(&expenses).Error
	return expenses, err
}

// IncomesForUser returns all incomes of a user, newest first.
func IncomesForUser(userID uuid.UUID) ([]Income, error) {
	var incomes []Income
	err := DB.
		Where(&Income{Record: Record{UserID: userID}}).
		Order("date DESC").
		Find(&incomes).Error
	return incomes, err
}
