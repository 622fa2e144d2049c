package v1

import (
	"errors"
	"net/http"

	"github.com/pocketledger/backend/internal/analyzer"
	"github.com/pocketledger/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, errInvalidCredentials) || errors.Is(err, errNoToken) || errors.Is(err, errInvalidToken) || errors.Is(err, errWrongPassword) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, models.ErrCategoryNotOwned) {
		return http.StatusForbidden
	}

	if errors.Is(err, analyzer.ErrNotConfigured) || errors.Is(err, errAnalyzerFailed) {
		return http.StatusBadGateway
	}

	return http.StatusBadRequest
}

// Auth errors
var (
	errInvalidCredentials = errors.New("the email or password is incorrect")
	errNoToken            = errors.New("authentication is required, send a Bearer token")
	errInvalidToken       = errors.New("the provided token is invalid or expired")
	errWrongPassword      = errors.New("the current password is incorrect")
	errCredentialsNotSet  = errors.New("email and password must be set")
)

// Profile errors
var (
	errLanguageInvalid = errors.New("the language must be a valid BCP 47 tag")
	errThemeInvalid    = errors.New("the theme must be either dark or light")
	errAvatarTooLarge  = errors.New("the avatar file must not be larger than 2 MiB")
	errAvatarNotImage  = errors.New("the avatar must be a PNG or JPEG image")
)

// Sync errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
	errQuestionNotSet  = errors.New("the question must be set")
	errAnalyzerFailed  = errors.New("the statement analysis service could not process the request")
)
