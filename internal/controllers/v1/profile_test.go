package v1_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetProfileDefaults() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/profile", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("₹", response.Data.Currency)
	suite.Assert().Equal("en", response.Data.Language)
	suite.Assert().Equal("dark", response.Data.Theme)
	suite.Assert().Equal("Food", response.Data.DefaultCategory)
	suite.Assert().True(response.Data.BudgetLimit.Equal(decimal.NewFromInt(25000)))
	suite.Assert().True(response.Data.AlertLargeTx)
	suite.Assert().True(response.Data.Reminders)
	suite.Assert().True(response.Data.AutoCategorize)
	suite.Assert().False(response.Data.Complete())
}

func (suite *TestSuiteStandard) TestUpdateProfile() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/profile", v1.ProfileEditable{
		Name:            "Jane Doe",
		Occupation:      "Engineer",
		Currency:        "$",
		Language:        "en-US",
		Theme:           "light",
		DefaultCategory: "Travel",
		BudgetLimit:     decimal.NewFromInt(30000),
		Reminders:       true,
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Jane Doe", response.Data.Name)
	suite.Assert().Equal("$", response.Data.Currency)
	suite.Assert().Equal("light", response.Data.Theme)
	suite.Assert().True(response.Data.Complete())

	// Preferences are saved wholesale, unset booleans become false
	suite.Assert().False(response.Data.AutoCategorize)
}

func (suite *TestSuiteStandard) TestUpdateProfileInvalid() {
	_, headers := suite.createSession()

	tests := []struct {
		name     string
		editable v1.ProfileEditable
		message  string
	}{
		{"invalid language", v1.ProfileEditable{Language: "this is not a language tag"}, "BCP 47"},
		{"invalid theme", v1.ProfileEditable{Theme: "solarized"}, "dark or light"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPatch, "/v1/profile", tt.editable, headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			suite.Assert().Contains(test.DecodeError(t, recorder.Body.Bytes()), tt.message)
		})
	}
}

func (suite *TestSuiteStandard) TestUploadAvatar() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/profile/avatar", avatarUpload(suite.T(), headers, pngBytes()), headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Contains(response.Data.AvatarURL, "/avatars/")
	suite.Assert().Contains(response.Data.AvatarURL, ".png")
}

func (suite *TestSuiteStandard) TestUploadAvatarNotImage() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/profile/avatar", avatarUpload(suite.T(), headers, []byte("plain text, not an image")), headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUploadAvatarNoFile() {
	_, headers := suite.createSession()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/profile/avatar", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

// avatarUpload builds a multipart body with the given file content and sets
// the matching Content-Type header on the passed header map.
func avatarUpload(t *testing.T, headers map[string]string, content []byte) *bytes.Buffer {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "avatar.png")
	if err != nil {
		t.Fatalf("creating form file failed: %v", err)
	}
	_, _ = part.Write(content)
	_ = writer.Close()

	headers["Content-Type"] = writer.FormDataContentType()
	return &body
}

// pngBytes returns the PNG file signature, which is enough for content type
// detection.
func pngBytes() []byte {
	return []byte("\x89PNG\r\n\x1a\n")
}
