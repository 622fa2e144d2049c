package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// MatchRuleEditable represents all user configurable parameters
type MatchRuleEditable struct {
	Priority uint   `json:"priority" example:"1" default:"0"`
	Match    string `json:"match" binding:"required" example:"Amazon*"`
	Category string `json:"category" example:"Shopping"`
}

func (editable MatchRuleEditable) model(userID uuid.UUID) models.MatchRule {
	return models.MatchRule{
		UserID:   userID,
		Priority: editable.Priority,
		Match:    editable.Match,
		Category: editable.Category,
	}
}

type MatchRuleResponse struct {
	Data  *models.MatchRule `json:"data"`
	Error *string           `json:"error" example:"the match pattern of a match rule must be set"`
}

type MatchRuleListResponse struct {
	Data  []models.MatchRule `json:"data"`
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// RegisterMatchRuleRoutes registers the routes for match rules with
// the RouterGroup that is passed.
func RegisterMatchRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetMatchRules)
		r.POST("", CreateMatchRule)
	}

	// MatchRule with ID
	{
		r.OPTIONS("/:id", OptionsMatchRuleDetail)
		r.DELETE("/:id", DeleteMatchRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MatchRules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/match-rules/{id} [options]
func OptionsMatchRuleDetail(c *gin.Context) {
	var rule models.MatchRule
	if err := ownedRecord(c, &rule); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Header("allow", "DELETE")
	c.Status(http.StatusNoContent)
}

// @Summary		List match rules
// @Description	Returns the match rules of the authenticated user in priority order
// @Tags			MatchRules
// @Produce		json
// @Success		200	{object}	MatchRuleListResponse
// @Failure		500	{object}	MatchRuleListResponse
// @Security		BearerAuth
// @Router			/v1/match-rules [get]
func GetMatchRules(c *gin.Context) {
	rules, err := models.MatchRulesForUser(currentUserID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MatchRuleListResponse{Error: &s})
		return
	}

	// When there are no resources, we want an empty list, not null
	if rules == nil {
		rules = make([]models.MatchRule, 0)
	}

	c.JSON(http.StatusOK, MatchRuleListResponse{Data: rules})
}

// @Summary		Create match rule
// @Description	Creates a new match rule for imported statement rows
// @Tags			MatchRules
// @Accept			json
// @Produce		json
// @Success		201		{object}	MatchRuleResponse
// @Failure		400		{object}	MatchRuleResponse
// @Param			rule	body		MatchRuleEditable	true	"Match rule"
// @Security		BearerAuth
// @Router			/v1/match-rules [post]
func CreateMatchRule(c *gin.Context) {
	var editable MatchRuleEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MatchRuleResponse{Error: &s})
		return
	}

	rule := editable.model(currentUserID(c))
	if err := models.DB.Create(&rule).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), MatchRuleResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, MatchRuleResponse{Data: &rule})
}

// @Summary		Delete match rule
// @Description	Deletes a match rule
// @Tags			MatchRules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/match-rules/{id} [delete]
func DeleteMatchRule(c *gin.Context) {
	var rule models.MatchRule
	if err := ownedRecord(c, &rule); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&rule).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
