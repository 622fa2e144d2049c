package models_test

import (
	"github.com/pocketledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserPassword() {
	user := models.User{Email: "jane@example.com"}

	err := user.SetPassword("correct horse battery staple")
	suite.Assert().Nil(err)
	suite.Assert().NotEqual("correct horse battery staple", user.PasswordHash)

	suite.Assert().True(user.CheckPassword("correct horse battery staple"))
	suite.Assert().False(user.CheckPassword("wrong password"))
}

func (suite *TestSuiteStandard) TestUserCreatesProfile() {
	user := suite.createTestUser("jane@example.com")

	profile, err := models.ProfileForUser(user.ID)
	suite.Assert().Nil(err)
	suite.Assert().Equal(user.ID, profile.UserID)

	// Preference defaults
	suite.Assert().Equal("₹", profile.Currency)
	suite.Assert().Equal("dark", profile.Theme)
	suite.Assert().Equal("Food", profile.DefaultCategory)
	suite.Assert().True(profile.AutoCategorize)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	_ = suite.createTestUser("jane@example.com")

	duplicate := models.User{Email: "jane@example.com"}
	err := duplicate.SetPassword("some password")
	suite.Assert().Nil(err)

	err = models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrEmailNotUnique)
}
