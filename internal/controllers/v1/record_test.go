package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/test"
)

func (suite *TestSuiteStandard) TestCreateExpense() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/expenses", map[string]any{
		"date":        "2024-03-01T09:30:00",
		"category":    "Food",
		"amount":      "12.5",
		"description": "Lunch",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("12.5", response.Data.Amount.String())
	suite.Assert().Equal("Food", response.Data.Category)
}

func (suite *TestSuiteStandard) TestCreateExpenseLenientAmount() {
	_, headers := suite.createSession()

	tests := []struct {
		name   string
		amount any
		want   string
	}{
		{"numeric string", "42.5", "42.5"},
		{"number", 50, "50"},
		{"malformed string", "abc", "0"},
		{"null", nil, "0"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "/v1/expenses", map[string]any{
				"date":     "2024-03-01",
				"category": "Food",
				"amount":   tt.amount,
			}, headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusCreated)

			var response v1.ExpenseResponse
			test.DecodeResponse(t, &recorder, &response)
			suite.Assert().Equal(tt.want, response.Data.Amount.String())
		})
	}
}

func (suite *TestSuiteStandard) TestCreateExpenseNegativeAmount() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/expenses", map[string]any{
		"date":   "2024-03-01",
		"amount": "-5",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), recorder.Body.Bytes()), "must not be negative")
}

func (suite *TestSuiteStandard) TestCreateExpenseDefaultsDate() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/expenses", map[string]any{
		"category": "Food",
		"amount":   1,
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().NotEmpty(response.Data.Date)
}

func (suite *TestSuiteStandard) TestGetExpenses() {
	_, headers := suite.createSession()

	for _, date := range []string{"2024-01-05", "2024-02-01"} {
		recorder := test.Request(suite.T(), http.MethodPost, "/v1/expenses", map[string]any{
			"date":   date,
			"amount": 10,
		}, headers)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
	}

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/expenses", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)

	// Newest first
	suite.Assert().Equal("2024-02-01", response.Data[0].Date)
	suite.Assert().Equal("2024-01-05", response.Data[1].Date)
}

func (suite *TestSuiteStandard) TestGetExpensesEmpty() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/expenses", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"data": [], "error": null}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestGetExpense() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/expenses", map[string]any{
		"date":   "2024-03-01",
		"amount": 10,
	}, headers)
	var created v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &created)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/expenses/%s", created.Data.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestExpensesIsolated() {
	_, headers := suite.createSession()
	_, otherHeaders := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/expenses", map[string]any{
		"date":   "2024-03-01",
		"amount": 10,
	}, headers)
	var created v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &created)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/expenses/%s", created.Data.ID), "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/expenses", "", otherHeaders)
	var list v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Assert().Empty(list.Data)
}

func (suite *TestSuiteStandard) TestCreateIncome() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/incomes", map[string]any{
		"date":     "2024-03-05",
		"category": "Salary",
		"amount":   200,
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("200", response.Data.Amount.String())

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/incomes", "", headers)
	var list v1.IncomeListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Assert().Len(list.Data, 1)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/incomes/%s", response.Data.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}
