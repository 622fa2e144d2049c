package v1

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/analyzer"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

var errRowTypeInvalid = errors.New("the row type must be either debit or credit")

// RegisterSyncRoutes registers the routes for statement sync with
// the RouterGroup that is passed.
func RegisterSyncRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/statement", httputil.OptionsPost)
	r.POST("/statement", AnalyzeStatement)

	r.OPTIONS("/import", httputil.OptionsPost)
	r.POST("/import", ImportRows)

	r.OPTIONS("/chat", httputil.OptionsPost)
	r.POST("/chat", Chat)
}

// @Summary		Analyze statement
// @Description	Submits a bank statement to the external analysis service. PDFs are forwarded as-is, Excel workbooks are extracted to rows first.
// @Tags			Sync
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	AnalysisResponse
// @Failure		400		{object}	AnalysisResponse
// @Failure		502		{object}	AnalysisResponse
// @Param			file	formData	file	true	"Statement file (.pdf, .xlsx or .xls)"
// @Security		BearerAuth
// @Router			/v1/sync/statement [post]
func AnalyzeStatement(c *gin.Context) {
	formFile, err := c.FormFile("file")
	if formFile == nil || err != nil {
		s := errNoFilePost.Error()
		c.JSON(status(errNoFilePost), AnalysisResponse{Error: &s})
		return
	}

	file, err := formFile.Open()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, AnalysisResponse{Error: &s})
		return
	}
	defer file.Close()

	result, err := analyze(c, formFile.Filename, file)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AnalysisResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, AnalysisResponse{Data: &result})
}

func analyze(c *gin.Context, fileName string, file multipart.File) (analyzer.Result, error) {
	ctx := c.Request.Context()

	switch {
	case strings.HasSuffix(fileName, ".pdf"):
		result, err := cfg.Analyzer.AnalyzeStatement(ctx, fileName, file)
		if err != nil {
			return analyzer.Result{}, analyzerError(err)
		}
		return result, nil

	case strings.HasSuffix(fileName, ".xlsx"), strings.HasSuffix(fileName, ".xls"):
		rows, err := analyzer.ExtractRows(file)
		if err != nil {
			return analyzer.Result{}, err
		}

		result, err := cfg.Analyzer.AnalyzeRows(ctx, rows)
		if err != nil {
			return analyzer.Result{}, analyzerError(err)
		}
		return result, nil

	default:
		return analyzer.Result{}, fmt.Errorf("%w: .pdf, .xlsx, .xls", errWrongFileSuffix)
	}
}

// @Summary		Import rows
// @Description	Creates expense and income records from reviewed statement rows. Debit rows become expenses, credit rows become incomes. When auto-categorization is enabled, the user's match rules are applied to the merchant names.
// @Tags			Sync
// @Accept			json
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	ImportResponse
// @Param			rows	body		[]SyncRow	true	"Reviewed rows"
// @Security		BearerAuth
// @Router			/v1/sync/import [post]
func ImportRows(c *gin.Context) {
	var rows []SyncRow

	err := httputil.BindData(c, &rows)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{Error: &s})
		return
	}

	userID := currentUserID(c)

	profile, err := models.ProfileForUser(userID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{Error: &s})
		return
	}

	var rules []models.MatchRule
	if profile.AutoCategorize {
		rules, err = models.MatchRulesForUser(userID)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ImportResponse{Error: &s})
			return
		}
	}

	// Validate before writing anything, an import is all-or-nothing
	for _, row := range rows {
		if row.Type != analyzer.EntryDebit && row.Type != analyzer.EntryCredit {
			s := errRowTypeInvalid.Error()
			c.JSON(status(errRowTypeInvalid), ImportResponse{Error: &s})
			return
		}
	}

	result := ImportResult{}
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			record := row.record(userID, rules, profile.AutoCategorize)

			if row.Type == analyzer.EntryDebit {
				if err := tx.Create(&models.Expense{Record: record}).Error; err != nil {
					return err
				}
				result.Expenses++
			} else {
				if err := tx.Create(&models.Income{Record: record}).Error; err != nil {
					return err
				}
				result.Incomes++
			}
		}
		return nil
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, ImportResponse{Data: &result})
}

// @Summary		Chat
// @Description	Forwards a natural-language question about the user's finances to the external analysis service
// @Tags			Sync
// @Accept			json
// @Produce		json
// @Success		200			{object}	ChatResponse
// @Failure		400			{object}	ChatResponse
// @Failure		502			{object}	ChatResponse
// @Param			question	body		ChatQuestion	true	"Question"
// @Security		BearerAuth
// @Router			/v1/sync/chat [post]
func Chat(c *gin.Context) {
	var question ChatQuestion

	err := httputil.BindData(c, &question)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ChatResponse{Error: &s})
		return
	}

	if strings.TrimSpace(question.Question) == "" {
		s := errQuestionNotSet.Error()
		c.JSON(status(errQuestionNotSet), ChatResponse{Error: &s})
		return
	}

	answer, err := cfg.Analyzer.Chat(c.Request.Context(), currentUserID(c).String(), question.Question)
	if err != nil {
		err = analyzerError(err)
		s := err.Error()
		c.JSON(status(err), ChatResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Data: &ChatAnswer{Answer: answer}})
}

// analyzerError keeps ErrNotConfigured visible and wraps everything else so
// upstream failures map to a gateway error.
func analyzerError(err error) error {
	if errors.Is(err, analyzer.ErrNotConfigured) {
		return err
	}

	return fmt.Errorf("%w: %s", errAnalyzerFailed, err)
}
