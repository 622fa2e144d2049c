package models

import (
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// MatchRule maps a merchant name glob to a category.
//
// When a user has auto-categorization enabled, imported statement rows are
// matched against their rules in priority order and the first match wins.
type MatchRule struct {
	DefaultModel
	UserID   uuid.UUID `json:"userId" gorm:"index"`
	Priority uint      `json:"priority" example:"1"`                // Lower number means higher priority
	Match    string    `json:"match" example:"Amazon*"`             // Glob pattern matched against the merchant
	Category string    `json:"category" example:"Shopping"`         // Category to set on a match
}

func (m *MatchRule) BeforeSave(_ *gorm.DB) error {
	if m.Match == "" {
		return ErrMatchRuleMatchNotSet
	}

	return nil
}

// MatchRulesForUser returns the match rules of a user in priority order.
func MatchRulesForUser(userID uuid.UUID) ([]MatchRule, error) {
	var rules []MatchRule
	err := DB.
		Where(&MatchRule{UserID: userID}).
		Order("priority ASC").
		Find(&rules).Error
	return rules, err
}

// MatchCategory returns the category of the first rule whose pattern matches
// the merchant. Rules are expected in priority order.
func MatchCategory(rules []MatchRule, merchant string) (string, bool) {
	for _, rule := range rules {
		if glob.Glob(rule.Match, merchant) {
			return rule.Category, true
		}
	}

	return "", false
}
