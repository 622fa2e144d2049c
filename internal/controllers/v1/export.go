package v1

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/export"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/csv", httputil.OptionsGet)
	r.GET("/csv", ExportCSV)

	r.OPTIONS("/pdf", httputil.OptionsGet)
	r.GET("/pdf", ExportPDF)
}

// @Summary		Export CSV
// @Description	Downloads all expenses and incomes as a two-section CSV file
// @Tags			Export
// @Produce		text/csv
// @Success		200	{string}	string
// @Failure		500	{object}	httpError
// @Security		BearerAuth
// @Router			/v1/export/csv [get]
func ExportCSV(c *gin.Context) {
	expenses, incomes, err := exportRecords(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.CSVFileName))
	c.Data(http.StatusOK, "text/csv", export.CSV(expenses, incomes))
}

// @Summary		Export PDF
// @Description	Downloads all expenses and incomes as a paginated PDF document
// @Tags			Export
// @Produce		application/pdf
// @Success		200	{string}	string
// @Failure		500	{object}	httpError
// @Security		BearerAuth
// @Router			/v1/export/pdf [get]
func ExportPDF(c *gin.Context) {
	expenses, incomes, err := exportRecords(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	profile, err := models.ProfileForUser(currentUserID(c))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// The font is read per request so it can be swapped without a restart
	font, err := exportFont()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	document, err := export.PDF(expenses, incomes, profile.Currency, font)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.PDFFileName))
	c.Data(http.StatusOK, "application/pdf", document)
}

func exportRecords(c *gin.Context) ([]ledger.Record, []ledger.Record, error) {
	userID := currentUserID(c)

	expenses, err := models.ExpensesForUser(userID)
	if err != nil {
		return nil, nil, err
	}

	incomes, err := models.IncomesForUser(userID)
	if err != nil {
		return nil, nil, err
	}

	return ledger.FromExpenses(expenses), ledger.FromIncomes(incomes), nil
}

func exportFont() ([]byte, error) {
	if cfg.FontPath == "" {
		return nil, export.ErrFontMissing
	}

	font, err := os.ReadFile(cfg.FontPath)
	if err != nil {
		return nil, fmt.Errorf("reading export font: %w", err)
	}

	return font, nil
}
