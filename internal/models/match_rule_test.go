package models_test

import (
	"github.com/pocketledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestMatchRuleMatchRequired() {
	user := suite.createTestUser("jane@example.com")

	err := models.DB.Create(&models.MatchRule{UserID: user.ID, Category: "Shopping"}).Error
	suite.Assert().ErrorIs(err, models.ErrMatchRuleMatchNotSet)
}

func (suite *TestSuiteStandard) TestMatchRulesForUserPriorityOrder() {
	user := suite.createTestUser("jane@example.com")

	suite.createTestMatchRule(models.MatchRule{UserID: user.ID, Priority: 2, Match: "Uber*", Category: "Travel"})
	suite.createTestMatchRule(models.MatchRule{UserID: user.ID, Priority: 1, Match: "Amazon*", Category: "Shopping"})

	rules, err := models.MatchRulesForUser(user.ID)
	suite.Assert().Nil(err)
	suite.Require().Len(rules, 2)
	suite.Assert().Equal("Amazon*", rules[0].Match)
}

func (suite *TestSuiteStandard) TestMatchCategory() {
	rules := []models.MatchRule{
		{Priority: 1, Match: "Amazon*", Category: "Shopping"},
		{Priority: 2, Match: "*Coffee*", Category: "Food"},
	}

	tests := []struct {
		merchant string
		category string
		matched  bool
	}{
		{"Amazon Marketplace", "Shopping", true},
		{"Cafe Coffee Day", "Food", true},
		{"Unknown Store", "", false},
	}

	for _, tt := range tests {
		category, ok := models.MatchCategory(rules, tt.merchant)
		suite.Assert().Equal(tt.matched, ok, tt.merchant)
		suite.Assert().Equal(tt.category, category, tt.merchant)
	}
}
