package v1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// tokenLifetime is how long a session token stays valid.
const tokenLifetime = 24 * time.Hour

const userIDContextKey = "pocketledger-user-id"

type Credentials struct {
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

type PasswordUpdate struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type Session struct {
	Token string      `json:"token"` // Bearer token for subsequent requests
	User  models.User `json:"user"`
}

type SessionResponse struct {
	Data  *Session `json:"data"`
	Error *string  `json:"error" example:"the email or password is incorrect"`
}

// @Summary		Register
// @Description	Creates a new user account and returns a session for it
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/v1/register [post]
func RegisterUser(c *gin.Context) {
	var credentials Credentials

	err := httputil.BindData(c, &credentials)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{Error: &s})
		return
	}

	if credentials.Email == "" || credentials.Password == "" {
		s := errCredentialsNotSet.Error()
		c.JSON(http.StatusBadRequest, SessionResponse{Error: &s})
		return
	}

	user := models.User{Email: strings.ToLower(strings.TrimSpace(credentials.Email))}
	if err := user.SetPassword(credentials.Password); err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{Error: &s})
		return
	}

	if err := models.DB.Create(&user).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{Error: &s})
		return
	}

	session, err := newSession(user)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Data: &session})
}

// @Summary		Login
// @Description	Verifies the credentials and returns a session token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		401			{object}	SessionResponse
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/v1/login [post]
func Login(c *gin.Context) {
	var credentials Credentials

	err := httputil.BindData(c, &credentials)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{Error: &s})
		return
	}

	var user models.User
	err = models.DB.
		Where(&models.User{Email: strings.ToLower(strings.TrimSpace(credentials.Email))}).
		First(&user).Error

	// Same error for unknown email and wrong password, so the endpoint does
	// not leak which addresses are registered
	if err != nil || !user.CheckPassword(credentials.Password) {
		s := errInvalidCredentials.Error()
		c.JSON(status(errInvalidCredentials), SessionResponse{Error: &s})
		return
	}

	session, err := newSession(user)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Data: &session})
}

// @Summary		Change password
// @Description	Replaces the password of the authenticated user
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Param			update	body		PasswordUpdate	true	"Passwords"
// @Security		BearerAuth
// @Router			/v1/password [patch]
func UpdatePassword(c *gin.Context) {
	var update PasswordUpdate

	err := httputil.BindData(c, &update)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var user models.User
	err = models.DB.First(&user, currentUserID(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if !user.CheckPassword(update.CurrentPassword) {
		c.JSON(status(errWrongPassword), httpError{Error: errWrongPassword.Error()})
		return
	}

	if err := user.SetPassword(update.NewPassword); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	err = models.DB.Model(&user).Select("PasswordHash").Updates(user).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// RequireAuth verifies the Bearer token and stores the authenticated user's
// ID in the request context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(status(errNoToken), httpError{Error: errNoToken.Error()})
			return
		}

		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(status(errNoToken), httpError{Error: errNoToken.Error()})
			return
		}

		userID, err := parseToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(status(errInvalidToken), httpError{Error: errInvalidToken.Error()})
			return
		}

		c.Set(userIDContextKey, userID)
		c.Next()
	}
}

// currentUserID returns the ID RequireAuth stored for this request.
func currentUserID(c *gin.Context) uuid.UUID {
	return c.MustGet(userIDContextKey).(uuid.UUID)
}

func newSession(user models.User) (Session, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
	})

	signed, err := token.SignedString(cfg.JWTSecret)
	if err != nil {
		return Session{}, err
	}

	return Session{Token: signed, User: user}, nil
}

func parseToken(raw string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return cfg.JWTSecret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, errInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.Join(errInvalidToken, err)
	}

	return userID, nil
}
