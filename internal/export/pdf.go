package export

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/signintech/gopdf"

	"github.com/pocketledger/backend/internal/ledger"
)

// ErrFontMissing is returned when no TTF font is configured. The built-in
// PDF typefaces omit many currency glyphs, so rendering without an embedded
// Unicode font would silently produce blank symbols.
var ErrFontMissing = errors.New("no TTF font configured for PDF export")

const fontName = "export"

// A4 geometry and table layout, in points.
const (
	pageHeight   = 841.89
	marginTop    = 40.0
	marginBottom = 40.0
	marginLeft   = 40.0
	tableWidth   = 515.0
	rowHeight    = 22.0
	cellPadding  = 5.0
)

var columnOffsets = []float64{0, 90, 150, 260, 360}

type color struct {
	r, g, b uint8
}

var (
	expenseHeaderColor = color{24, 35, 61}
	incomeHeaderColor  = color{25, 174, 54}
	stripeColor        = color{245, 245, 245}
	textColor          = color{33, 33, 33}
)

// PDF renders expenses and incomes as a paginated document with two styled
// tables sharing the CSV column layout. Amounts carry the user's currency
// symbol, which is why font must be a TTF covering the needed glyph range.
func PDF(expenses, incomes []ledger.Record, currency string, font []byte) ([]byte, error) {
	if len(font) == 0 {
		return nil, ErrFontMissing
	}

	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})

	if err := pdf.AddTTFFontData(fontName, font); err != nil {
		return nil, fmt.Errorf("loading export font: %w", err)
	}

	doc := &document{pdf: pdf, currency: currency}
	pdf.AddPage()
	doc.y = marginTop

	if err := doc.table("Expenses", expenseHeaderColor, expenses); err != nil {
		return nil, err
	}
	doc.y += rowHeight

	if err := doc.table("Income", incomeHeaderColor, incomes); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}

	return buf.Bytes(), nil
}

type document struct {
	pdf      *gopdf.GoPdf
	currency string
	y        float64
}

func (d *document) table(title string, header color, records []ledger.Record) error {
	d.ensureSpace(3 * rowHeight)

	if err := d.pdf.SetFont(fontName, "", 13); err != nil {
		return err
	}
	d.setTextColor(textColor)
	d.text(0, title)
	d.y += rowHeight

	if err := d.pdf.SetFont(fontName, "", 10); err != nil {
		return err
	}
	d.headerRow(header)

	if len(records) == 0 {
		d.setTextColor(textColor)
		d.text(0, "No records")
		d.y += rowHeight
		return nil
	}

	for i, record := range records {
		// Continue the column layout on the next page, header band included
		if d.ensureSpace(rowHeight) {
			d.headerRow(header)
		}

		if i%2 == 1 {
			d.fillRow(stripeColor)
		}

		d.setTextColor(textColor)
		d.row([]string{
			record.Date,
			record.Time,
			record.Category,
			ledger.Display(d.currency, record.Amount),
			record.Description,
		})
	}

	return nil
}

func (d *document) headerRow(band color) {
	d.fillRow(band)
	d.setTextColor(color{255, 255, 255})
	d.row(Columns)
}

func (d *document) row(values []string) {
	for i, value := range values {
		d.text(columnOffsets[i], value)
	}
	d.y += rowHeight
}

func (d *document) text(offset float64, value string) {
	d.pdf.SetX(marginLeft + offset + cellPadding)
	d.pdf.SetY(d.y + cellPadding)
	_ = d.pdf.Cell(nil, value)
}

func (d *document) fillRow(c color) {
	d.pdf.SetFillColor(c.r, c.g, c.b)
	d.pdf.RectFromUpperLeftWithStyle(marginLeft, d.y, tableWidth, rowHeight, "F")
}

func (d *document) setTextColor(c color) {
	d.pdf.SetTextColor(c.r, c.g, c.b)
}

// ensureSpace starts a new page when fewer than needed points remain and
// reports whether it did.
func (d *document) ensureSpace(needed float64) bool {
	if d.y+needed <= pageHeight-marginBottom {
		return false
	}

	d.pdf.AddPage()
	d.y = marginTop
	return true
}
