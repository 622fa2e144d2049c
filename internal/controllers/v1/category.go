package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.PATCH("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	_, err := visibleCategory(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List categories
// @Description	Returns the effective category list: global defaults plus the user's own, grouped by origin
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Security		BearerAuth
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	categories, err := models.CategoriesForUser(currentUserID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &s})
		return
	}

	// When there are no resources, we want an empty list, not null
	groups := CategoryGroups{
		Defaults: make([]models.Category, 0),
		Personal: make([]models.Category, 0),
	}
	for _, category := range categories {
		if category.UserID == nil {
			groups.Defaults = append(groups.Defaults, category)
		} else {
			groups.Personal = append(groups.Personal, category)
		}
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: &groups})
}

// @Summary		Create category
// @Description	Creates a new category for the authenticated user
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Security		BearerAuth
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	category := editable.model(currentUserID(c))
	if err := models.DB.Create(&category).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: &category})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	category, err := visibleCategory(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// @Summary		Update category
// @Description	Updates a category the user owns. Global defaults cannot be changed.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		403			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Security		BearerAuth
// @Router			/v1/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	category, err := ownedCategory(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	category.Name = editable.Name
	category.Type = editable.Type
	if err := models.DB.Save(&category).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// @Summary		Delete category
// @Description	Deletes a category the user owns. Records keep their label since categories are stored denormalized.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	category, err := ownedCategory(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&category).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// visibleCategory returns the category from the URI if the user may see it,
// meaning it is a global default or their own.
func visibleCategory(c *gin.Context) (models.Category, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return models.Category{}, httputil.ErrInvalidUUID
	}

	var category models.Category
	err := models.DB.
		Where("id = ? AND (user_id IS NULL OR user_id = ?)", uri.ID.UUID, currentUserID(c)).
		First(&category).Error

	return category, err
}

// ownedCategory is visibleCategory restricted to categories the user created.
func ownedCategory(c *gin.Context) (models.Category, error) {
	category, err := visibleCategory(c)
	if err != nil {
		return models.Category{}, err
	}

	if category.UserID == nil {
		return models.Category{}, models.ErrCategoryNotOwned
	}

	return category, nil
}
