package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
	}
}

// RegisterIncomeRoutes registers the routes for incomes with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetIncomes)
		r.POST("", CreateIncome)
	}

	// Income with ID
	{
		r.OPTIONS("/:id", OptionsIncomeDetail)
		r.GET("/:id", GetIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	var expense models.Expense
	if err := ownedRecord(c, &expense); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/incomes/{id} [options]
func OptionsIncomeDetail(c *gin.Context) {
	var income models.Income
	if err := ownedRecord(c, &income); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		List expenses
// @Description	Returns the expenses of the authenticated user, newest first
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Security		BearerAuth
// @Router			/v1/expenses [get]
func GetExpenses(c *gin.Context) {
	expenses, err := models.ExpensesForUser(currentUserID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &s})
		return
	}

	// When there are no resources, we want an empty list, not null
	if expenses == nil {
		expenses = make([]models.Expense, 0)
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

// @Summary		Create expense
// @Description	Creates a new expense entry
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Param			expense	body		RecordEditable	true	"Expense"
// @Security		BearerAuth
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable RecordEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	expense := models.Expense{Record: editable.model(currentUserID(c))}
	if err := models.DB.Create(&expense).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: &expense})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var expense models.Expense
	if err := ownedRecord(c, &expense); err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// @Summary		List incomes
// @Description	Returns the incomes of the authenticated user, newest first
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeListResponse
// @Failure		500	{object}	IncomeListResponse
// @Security		BearerAuth
// @Router			/v1/incomes [get]
func GetIncomes(c *gin.Context) {
	incomes, err := models.IncomesForUser(currentUserID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{Error: &s})
		return
	}

	// When there are no resources, we want an empty list, not null
	if incomes == nil {
		incomes = make([]models.Income, 0)
	}

	c.JSON(http.StatusOK, IncomeListResponse{Data: incomes})
}

// @Summary		Create income
// @Description	Creates a new income entry
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		201		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Param			income	body		RecordEditable	true	"Income"
// @Security		BearerAuth
// @Router			/v1/incomes [post]
func CreateIncome(c *gin.Context) {
	var editable RecordEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &s})
		return
	}

	income := models.Income{Record: editable.model(currentUserID(c))}
	if err := models.DB.Create(&income).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, IncomeResponse{Data: &income})
}

// @Summary		Get income
// @Description	Returns a specific income
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		400	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/incomes/{id} [get]
func GetIncome(c *gin.Context) {
	var income models.Income
	if err := ownedRecord(c, &income); err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, IncomeResponse{Data: &income})
}

// ownedRecord loads the resource from the URI into dest, scoped to the
// authenticated user.
func ownedRecord(c *gin.Context, dest any) error {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return httputil.ErrInvalidUUID
	}

	return models.DB.
		Where("id = ? AND user_id = ?", uri.ID.UUID, currentUserID(c)).
		First(dest).Error
}
