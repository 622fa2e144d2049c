package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// Dashboard bundles the summary figures and the three chart series the
// dashboard page renders.
type Dashboard struct {
	Totals            ledger.Totals        `json:"totals"`
	CategoryBreakdown []ledger.PiePoint    `json:"categoryBreakdown"` // Pie, expenses by category
	MonthlySpend      []ledger.BarPoint    `json:"monthlySpend"`      // Bars, expenses by month
	IncomeVsExpense   ledger.MonthlySeries `json:"incomeVsExpense"`   // Dual line over the union month axis
	Currency          string               `json:"currency" example:"₹"`
	Theme             string               `json:"theme" example:"dark"`
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`
	Error *string    `json:"error" example:"an error occurred on the server during your request"`
}

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetDashboard)
}

// @Summary		Dashboard
// @Description	Returns totals and render-ready chart series for the authenticated user
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Security		BearerAuth
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	userID := currentUserID(c)

	profile, err := models.ProfileForUser(userID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	storedExpenses, err := models.ExpensesForUser(userID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	storedIncomes, err := models.IncomesForUser(userID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	expenses := ledger.FromExpenses(storedExpenses)
	incomes := ledger.FromIncomes(storedIncomes)

	dashboard := Dashboard{
		Totals:            ledger.ComputeTotals(expenses, incomes),
		CategoryBreakdown: ledger.CategoryBreakdown(expenses, profile.Currency),
		MonthlySpend:      ledger.MonthlySpend(expenses, profile.Currency),
		IncomeVsExpense:   ledger.IncomeVsExpense(expenses, incomes, profile.Currency),
		Currency:          profile.Currency,
		Theme:             profile.Theme,
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &dashboard})
}
