package v1

import (
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/models"
)

// ProfileEditable represents all user configurable profile and preference
// fields. Preferences are saved wholesale: clients send the full set on
// every save.
type ProfileEditable struct {
	Name           string           `json:"name" example:"Jane Doe" default:""`
	Contact        string           `json:"contact" example:"+91 98765 43210" default:""`
	DateOfBirth    string           `json:"dateOfBirth" example:"1995-08-15" default:""`
	Address        string           `json:"address" default:""`
	Occupation     string           `json:"occupation" example:"Engineer" default:""`
	IncomeSource   string           `json:"incomeSource" example:"Job" default:""`
	AnnualIncome   *decimal.Decimal `json:"annualIncome" example:"600000"`
	MonthlyExpense *decimal.Decimal `json:"monthlyExpense" example:"20000"`
	Savings        *decimal.Decimal `json:"savings" example:"150000"`

	Currency        string          `json:"currency" example:"₹" default:"₹"`
	Language        string          `json:"language" example:"en" default:"en"`
	Theme           string          `json:"theme" example:"dark" default:"dark"`
	AlertLargeTx    bool            `json:"alertLargeTx" default:"true"`
	MonthlyReport   bool            `json:"monthlyReport" default:"false"`
	Reminders       bool            `json:"reminders" default:"true"`
	DefaultCategory string          `json:"defaultCategory" example:"Food" default:"Food"`
	BudgetLimit     decimal.Decimal `json:"budgetLimit" example:"25000"`
	AutoCategorize  bool            `json:"autoCategorize" default:"true"`
	Shared          bool            `json:"shared" default:"false"`
	TwoFA           bool            `json:"twoFA" default:"false"`
}

// apply copies the editable fields onto the stored profile.
func (editable ProfileEditable) apply(profile *models.Profile) {
	profile.Name = editable.Name
	profile.Contact = editable.Contact
	profile.DateOfBirth = editable.DateOfBirth
	profile.Address = editable.Address
	profile.Occupation = editable.Occupation
	profile.IncomeSource = editable.IncomeSource
	profile.AnnualIncome = editable.AnnualIncome
	profile.MonthlyExpense = editable.MonthlyExpense
	profile.Savings = editable.Savings

	profile.Currency = editable.Currency
	profile.Language = editable.Language
	profile.Theme = editable.Theme
	profile.AlertLargeTx = editable.AlertLargeTx
	profile.MonthlyReport = editable.MonthlyReport
	profile.Reminders = editable.Reminders
	profile.DefaultCategory = editable.DefaultCategory
	profile.BudgetLimit = editable.BudgetLimit
	profile.AutoCategorize = editable.AutoCategorize
	profile.Shared = editable.Shared
	profile.TwoFA = editable.TwoFA
}

type ProfileResponse struct {
	Data  *models.Profile `json:"data"`
	Error *string         `json:"error" example:"the language must be a valid BCP 47 tag"`
}
