// Package analyzer is the typed boundary to the external statement analysis
// service. The service does the actual parsing and categorization, this
// package only speaks its request and response shapes.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Entry directions as reported by the analysis service.
const (
	EntryDebit  = "debit"
	EntryCredit = "credit"
)

// ErrNotConfigured is returned when no service URL is set.
var ErrNotConfigured = errors.New("no analyzer service configured")

// Entry is one transaction the service extracted from a statement.
type Entry struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Merchant    string          `json:"merchant"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Type        string          `json:"type" example:"debit"`
	Flagged     bool            `json:"flagged"`
	Reason      string          `json:"reason,omitempty"`
}

// CategoryTotal is one name and total pair of the service's category summary.
type CategoryTotal struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// Summary holds the statement-wide totals.
type Summary struct {
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Count       int             `json:"count"`
}

// Result is the full analysis response.
type Result struct {
	Summary    Summary         `json:"summary"`
	Flagged    int             `json:"flagged"`
	Categories []CategoryTotal `json:"categories"`
	Expenses   []Entry         `json:"expenses"`
	Unparsed   []string        `json:"unparsed,omitempty"`
}

// Client calls the analysis service.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the service at baseURL. An empty baseURL yields a
// client whose calls fail with ErrNotConfigured, so callers do not need to
// special-case a missing configuration.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: time.Minute,
		},
	}
}

// AnalyzeStatement uploads a statement file for analysis.
func (c *Client) AnalyzeStatement(ctx context.Context, fileName string, file io.Reader) (Result, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return Result{}, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return Result{}, err
	}
	if err := writer.Close(); err != nil {
		return Result{}, err
	}

	return c.analyze(ctx, writer.FormDataContentType(), &body)
}

// AnalyzeRows submits already extracted statement rows as JSON.
func (c *Client) AnalyzeRows(ctx context.Context, rows [][]string) (Result, error) {
	body, err := json.Marshal(map[string]any{"rows": rows})
	if err != nil {
		return Result{}, err
	}

	return c.analyze(ctx, "application/json", bytes.NewReader(body))
}

func (c *Client) analyze(ctx context.Context, contentType string, body io.Reader) (Result, error) {
	var result Result
	err := c.post(ctx, "/analyze", contentType, body, &result)
	return result, err
}

// Chat sends a natural-language question about the user's finances and
// returns the service's free-text answer.
func (c *Client) Chat(ctx context.Context, userID, question string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"user_id":  userID,
		"question": question,
	})
	if err != nil {
		return "", err
	}

	var response struct {
		Answer string `json:"answer"`
	}
	err = c.post(ctx, "/chat", "application/json", bytes.NewReader(body), &response)
	return response.Answer, err
}

func (c *Client) post(ctx context.Context, path, contentType string, body io.Reader, into any) error {
	if c.baseURL == "" {
		return ErrNotConfigured
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", contentType)

	response, err := c.http.Do(request)
	if err != nil {
		return fmt.Errorf("calling analyzer: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		message, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return fmt.Errorf("analyzer returned %s: %s", response.Status, message)
	}

	if err := json.NewDecoder(response.Body).Decode(into); err != nil {
		return fmt.Errorf("decoding analyzer response: %w", err)
	}

	return nil
}
