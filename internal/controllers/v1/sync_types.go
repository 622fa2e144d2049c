package v1

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/analyzer"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// SyncRow is one reviewed statement row submitted for import.
type SyncRow struct {
	Date        string `json:"date" example:"01/03/2024"` // DD/MM/YYYY or YYYY-MM-DD
	Merchant    string `json:"merchant" example:"Cafe Coffee Day"`
	Category    string `json:"category" example:"Food" default:""`
	Amount      any    `json:"amount" swaggertype:"number" example:"12.5"`
	Description string `json:"description" default:""`
	Type        string `json:"type" example:"debit"` // debit or credit
}

// record converts the row into a stored record, applying date normalization
// and the user's match rules.
func (row SyncRow) record(userID uuid.UUID, rules []models.MatchRule, autoCategorize bool) models.Record {
	category := row.Category
	if autoCategorize {
		if match, ok := models.MatchCategory(rules, row.Merchant); ok {
			category = match
		}
	}

	description := row.Description
	if description == "" {
		description = row.Merchant
	}

	return models.Record{
		UserID:      userID,
		Date:        normalizeDate(row.Date),
		Category:    category,
		Amount:      ledger.CoerceAmount(row.Amount),
		Description: description,
	}
}

var slashDate = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

// normalizeDate converts DD/MM/YYYY statement dates to YYYY-MM-DD. Dates in
// any other shape pass through unchanged.
func normalizeDate(date string) string {
	match := slashDate.FindStringSubmatch(date)
	if match == nil {
		return date
	}

	return match[3] + "-" + match[2] + "-" + match[1]
}

type AnalysisResponse struct {
	Data  *analyzer.Result `json:"data"`
	Error *string          `json:"error" example:"the statement analysis service could not process the request"`
}

// ImportResult reports how many records an import created.
type ImportResult struct {
	Expenses int `json:"expenses" example:"12"` // Number of expense records created
	Incomes  int `json:"incomes" example:"2"`   // Number of income records created
}

type ImportResponse struct {
	Data  *ImportResult `json:"data"`
	Error *string       `json:"error" example:"the row type must be either debit or credit"`
}

type ChatQuestion struct {
	Question string `json:"question" binding:"required" example:"How much did I spend on food this month?"`
}

type ChatAnswer struct {
	Answer string `json:"answer"`
}

type ChatResponse struct {
	Data  *ChatAnswer `json:"data"`
	Error *string     `json:"error" example:"the question must be set"`
}
