package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Profile holds the personal details and the display preferences of a user.
// There is exactly one profile per user, created together with the account.
//
// Preference fields are saved wholesale: clients compare against the last
// loaded snapshot and PATCH the full set when anything differs.
type Profile struct {
	DefaultModel
	UserID uuid.UUID `json:"userId" gorm:"uniqueIndex"`

	// Personal details, set on the "create profile" step
	Name           string           `json:"name" example:"Jane Doe" default:""`
	Contact        string           `json:"contact" example:"+91 98765 43210" default:""`
	DateOfBirth    string           `json:"dateOfBirth" example:"1995-08-15" default:""`
	Address        string           `json:"address" default:""`
	Occupation     string           `json:"occupation" example:"Engineer" default:""`
	IncomeSource   string           `json:"incomeSource" example:"Job" default:""`
	AnnualIncome   *decimal.Decimal `json:"annualIncome" gorm:"type:DECIMAL(20,8)" example:"600000"`
	MonthlyExpense *decimal.Decimal `json:"monthlyExpense" gorm:"type:DECIMAL(20,8)" example:"20000"`
	Savings        *decimal.Decimal `json:"savings" gorm:"type:DECIMAL(20,8)" example:"150000"`
	AvatarURL      string           `json:"avatarUrl" default:""` // Public URL of the uploaded avatar

	// Display and behavior preferences
	Currency        string          `json:"currency" gorm:"default:'₹'" example:"₹"`        // Symbol prefixed to all monetary values
	Language        string          `json:"language" gorm:"default:'en'" example:"en"`      // BCP 47 tag of the display language
	Theme           string          `json:"theme" gorm:"default:'dark'" example:"dark"`     // dark or light
	AlertLargeTx    bool            `json:"alertLargeTx" gorm:"default:true"`             // Notify on unusually large transactions
	MonthlyReport   bool            `json:"monthlyReport" gorm:"default:false"`           // Send a monthly summary
	Reminders       bool            `json:"reminders" gorm:"default:true"`                // Send payment reminders
	DefaultCategory string          `json:"defaultCategory" gorm:"default:'Food'"`          // Preselected category for new expenses
	BudgetLimit     decimal.Decimal `json:"budgetLimit" gorm:"type:DECIMAL(20,8);default:25000" example:"25000"`
	AutoCategorize  bool            `json:"autoCategorize" gorm:"default:true"` // Apply match rules to imported statement rows
	Shared          bool            `json:"shared" gorm:"default:false"`        // Shared/family account
	TwoFA           bool            `json:"twoFA" gorm:"default:false"`
}

// Complete reports whether the user has finished the profile creation step.
func (p Profile) Complete() bool {
	return p.Name != ""
}

// ProfileForUser returns the profile belonging to a user.
func ProfileForUser(userID uuid.UUID) (Profile, error) {
	var profile Profile
	err := DB.Where(&Profile{UserID: userID}).First(&profile).Error
	return profile, err
}
