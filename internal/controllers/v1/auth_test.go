package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/test"
)

func (suite *TestSuiteStandard) TestRegister() {
	session, _ := suite.createSession()

	suite.Assert().NotEmpty(session.Token)
	suite.Assert().NotEmpty(session.User.ID)
	suite.Assert().Contains(session.User.Email, "@example.com")
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	body := map[string]string{"email": "jane@example.com", "password": "hunter22"}

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/register", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/register", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), recorder.Body.Bytes()), "already registered")
}

func (suite *TestSuiteStandard) TestRegisterInvalidBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/register", `{ "email": `)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/register", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestLogin() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/register", map[string]string{
		"email":    "jane@example.com",
		"password": "hunter22",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	// The email is matched case-insensitively
	recorder = test.Request(suite.T(), http.MethodPost, "/v1/login", map[string]string{
		"email":    "Jane@Example.com",
		"password": "hunter22",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().NotEmpty(response.Data.Token)
}

func (suite *TestSuiteStandard) TestLoginWrongCredentials() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/register", map[string]string{
		"email":    "jane@example.com",
		"password": "hunter22",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	tests := []struct {
		name  string
		email string
	}{
		{"wrong password", "jane@example.com"},
		{"unknown email", "nobody@example.com"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "/v1/login", map[string]string{
				"email":    tt.email,
				"password": "wrong",
			})
			test.AssertHTTPStatus(t, &recorder, http.StatusUnauthorized)
			suite.Assert().Equal("the email or password is incorrect", test.DecodeError(t, recorder.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestUpdatePassword() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/register", map[string]string{
		"email":    "jane@example.com",
		"password": "hunter22",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var session v1.SessionResponse
	test.DecodeResponse(suite.T(), &recorder, &session)
	headers := map[string]string{"Authorization": "Bearer " + session.Data.Token}

	recorder = test.Request(suite.T(), http.MethodPatch, "/v1/password", map[string]string{
		"currentPassword": "wrong",
		"newPassword":     "correct horse",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)

	recorder = test.Request(suite.T(), http.MethodPatch, "/v1/password", map[string]string{
		"currentPassword": "hunter22",
		"newPassword":     "correct horse",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/login", map[string]string{
		"email":    "jane@example.com",
		"password": "correct horse",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestAuthRequired() {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/expenses"},
		{http.MethodGet, "/v1/incomes"},
		{http.MethodGet, "/v1/categories"},
		{http.MethodGet, "/v1/profile"},
		{http.MethodGet, "/v1/dashboard"},
		{http.MethodGet, "/v1/export/csv"},
		{http.MethodPost, "/v1/sync/chat"},
		{http.MethodGet, "/v1/match-rules"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, tt.method, tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusUnauthorized)
		})
	}
}

func (suite *TestSuiteStandard) TestInvalidToken() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/expenses", "", map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/expenses", "", map[string]string{
		"Authorization": "Basic dXNlcjpwYXNz",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}
