package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/test"
)

func (suite *TestSuiteStandard) TestCreateMatchRule() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/match-rules", v1.MatchRuleEditable{
		Priority: 2,
		Match:    "Amazon*",
		Category: "Shopping",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Amazon*", response.Data.Match)
	suite.Assert().Equal("Shopping", response.Data.Category)
	suite.Assert().Equal(uint(2), response.Data.Priority)
}

func (suite *TestSuiteStandard) TestCreateMatchRuleNoMatch() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/match-rules", v1.MatchRuleEditable{
		Category: "Shopping",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetMatchRulesOrdered() {
	_, headers := suite.createSession()

	for priority, match := range map[uint]string{3: "C*", 1: "A*", 2: "B*"} {
		recorder := test.Request(suite.T(), http.MethodPost, "/v1/match-rules", v1.MatchRuleEditable{
			Priority: priority,
			Match:    match,
		}, headers)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
	}

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/match-rules", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 3)
	for i, match := range []string{"A*", "B*", "C*"} {
		suite.Assert().Equal(match, response.Data[i].Match)
	}
}

func (suite *TestSuiteStandard) TestGetMatchRulesEmpty() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/match-rules", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"data": [], "error": null}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestDeleteMatchRule() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/match-rules", v1.MatchRuleEditable{
		Match: "Uber*",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	path := fmt.Sprintf("/v1/match-rules/%s", response.Data.ID)
	recorder = test.Request(suite.T(), http.MethodDelete, path, "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodDelete, path, "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteMatchRuleOfOtherUser() {
	_, headers := suite.createSession()
	_, otherHeaders := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/match-rules", v1.MatchRuleEditable{
		Match: "Uber*",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/match-rules/%s", response.Data.ID), "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteMatchRuleInvalidID() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodDelete, "/v1/match-rules/not-a-uuid", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
