package models_test

import (
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestResourceNotFoundMessage() {
	var category models.Category
	err := models.DB.First(&category, "id = ?", uuid.New()).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no category matching your query", err.Error())

	var expense models.Expense
	err = models.DB.First(&expense, "id = ?", uuid.New()).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no expense matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestClosedDBReturnsGeneralError() {
	suite.CloseDB()

	var category models.Category
	err := models.DB.First(&category).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
