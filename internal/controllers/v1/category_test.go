package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
)

func (suite *TestSuiteStandard) TestGetCategoriesDefaults() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Len(response.Data.Defaults, 15)
	suite.Assert().Empty(response.Data.Personal)

	names := make([]string, 0)
	for _, category := range response.Data.Defaults {
		names = append(names, category.Name)
	}
	suite.Assert().Contains(names, "Fuel")
	suite.Assert().Contains(names, "Salary")
}

func (suite *TestSuiteStandard) TestCreateCategory() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{
		Name: "Pets",
		Type: models.CategoryTypeExpense,
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().NotNil(response.Data.UserID)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/categories", "", headers)
	var list v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Assert().Len(list.Data.Personal, 1)
	suite.Assert().Equal("Pets", list.Data.Personal[0].Name)
}

func (suite *TestSuiteStandard) TestCreateCategoryInvalid() {
	_, headers := suite.createSession()

	tests := []struct {
		name     string
		editable v1.CategoryEditable
	}{
		{"missing name", v1.CategoryEditable{Type: models.CategoryTypeExpense}},
		{"invalid type", v1.CategoryEditable{Name: "Pets", Type: "neither"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "/v1/categories", tt.editable, headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{
		Name: "Pets",
		Type: models.CategoryTypeExpense,
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var created v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &created)

	recorder = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/categories/%s", created.Data.ID), v1.CategoryEditable{
		Name: "Pet care",
		Type: models.CategoryTypeExpense,
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	suite.Assert().Equal("Pet care", updated.Data.Name)
}

func (suite *TestSuiteStandard) TestUpdateDefaultCategoryFails() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories", "", headers)
	var list v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	defaultCategory := list.Data.Defaults[0]

	recorder = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/categories/%s", defaultCategory.ID), v1.CategoryEditable{
		Name: "Hijacked",
		Type: models.CategoryTypeExpense,
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/categories/%s", defaultCategory.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{
		Name: "Pets",
		Type: models.CategoryTypeExpense,
	}, headers)
	var created v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &created)

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/categories/%s", created.Data.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/categories/%s", created.Data.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesIsolated() {
	_, headers := suite.createSession()
	_, otherHeaders := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{
		Name: "Pets",
		Type: models.CategoryTypeExpense,
	}, headers)
	var created v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &created)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/categories/%s", created.Data.ID), "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/categories", "", otherHeaders)
	var list v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Assert().Empty(list.Data.Personal)
}

func (suite *TestSuiteStandard) TestCategoryInvalidUUID() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories/not-a-uuid", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
