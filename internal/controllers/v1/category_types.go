package v1

import (
	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/models"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name string              `json:"name" example:"Groceries"`
	Type models.CategoryType `json:"type" example:"expense"`
}

func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	return models.Category{
		UserID: &userID,
		Name:   editable.Name,
		Type:   editable.Type,
	}
}

// CategoryGroups is the effective category list grouped by origin.
type CategoryGroups struct {
	Defaults []models.Category `json:"defaults"` // Global default categories
	Personal []models.Category `json:"personal"` // Categories the user created
}

type CategoryListResponse struct {
	Data  *CategoryGroups `json:"data"`
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type CategoryResponse struct {
	Data  *models.Category `json:"data"`
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"`
}
