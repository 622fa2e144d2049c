package v1

import (
	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// RecordEditable represents all user configurable parameters of an expense
// or income entry.
//
// Amount accepts both a JSON number and a numeric string. Malformed values
// coerce to zero instead of failing, keeping the lenient entry behavior.
type RecordEditable struct {
	Date        string `json:"date" example:"2024-03-01T09:30:00" default:""`
	Time        string `json:"time" example:"09:30" default:""`
	Category    string `json:"category" example:"Food" default:""`
	Amount      any    `json:"amount" swaggertype:"number" example:"12.5"`
	Description string `json:"description" example:"Lunch" default:""`
}

func (editable RecordEditable) model(userID uuid.UUID) models.Record {
	return models.Record{
		UserID:      userID,
		Date:        editable.Date,
		Time:        editable.Time,
		Category:    editable.Category,
		Amount:      ledger.CoerceAmount(editable.Amount),
		Description: editable.Description,
	}
}

type ExpenseResponse struct {
	Data  *models.Expense `json:"data"`
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type ExpenseListResponse struct {
	Data  []models.Expense `json:"data"`
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type IncomeResponse struct {
	Data  *models.Income `json:"data"`
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type IncomeListResponse struct {
	Data  []models.Income `json:"data"`
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"`
}
