// Package pdfrender lays a compiled report out across fixed-size pages. It is
// the lossy projection of the report: cells longer than their column
// threshold are truncated, unlike the delimited renderer which never loses
// data. The two must not be treated as equivalent.
package pdfrender

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/secnet-tools/nsg-report/pkg/models/domain"
	"github.com/secnet-tools/nsg-report/pkg/services/report/normalize"
)

const (
	margin     = 20.0
	bannerH    = 10.0
	rowH       = 7.0
	sectionGap = 6.0
)

// layout owns the document and the vertical cursor for one render call.
// It is never shared, so concurrent exports cannot interfere.
type layout struct {
	pdf      *gofpdf.Fpdf
	cursor   float64
	pageH    float64
	contentW float64
}

// Render produces the paginated document for one analysis result.
func Render(res domain.AnalysisResult, secs []domain.Section, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.AliasNbPages("")

	// "Page X of N" stamp, substituted once total layout is known.
	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pageW, pageH := pdf.GetPageSize()
	l := &layout{
		pdf:      pdf,
		pageH:    pageH,
		contentW: pageW - 2*margin,
	}

	pdf.AddPage()
	l.cursor = margin

	l.drawCover(res, now)
	for _, s := range secs {
		l.drawSection(s)
	}
	l.drawClosing(now)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}
	return buf.Bytes(), nil
}

// ensure starts a new page when a block of height h would cross the bottom
// margin. Invoked before every banner and every table, never mid-table.
func (l *layout) ensure(h float64) {
	if l.cursor+h > l.pageH-margin {
		l.pdf.AddPage()
		l.cursor = margin
	}
}

func (l *layout) drawCover(res domain.AnalysisResult, now time.Time) {
	pdf := l.pdf

	pdf.SetFillColor(33, 37, 41)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(margin, l.cursor)
	pdf.CellFormat(l.contentW, 14, "NSG Analysis Report", "", 0, "C", true, 0, "")
	l.cursor += 14 + 4

	summary := [][2]string{
		{"NSG", normalize.StrOr(res.Name)},
		{"Resource Group", normalize.StrOr(res.ResourceGroup)},
		{"Subscription", normalize.StrOr(res.SubscriptionID)},
		{"Location", normalize.StrOr(res.Location)},
		{"Total Rules", normalize.Int(res.TotalRules)},
		{"Violations", normalize.Int(len(res.Violations))},
		{"Recommendations", normalize.Int(len(res.Recommendations))},
		{"Generated", now.Format("2006-01-02 15:04:05")},
	}

	boxH := float64(len(summary))*rowH + 4
	pdf.SetDrawColor(33, 37, 41)
	pdf.Rect(margin, l.cursor, l.contentW, boxH, "D")
	l.cursor += 2

	pdf.SetTextColor(0, 0, 0)
	for _, kv := range summary {
		pdf.SetXY(margin+3, l.cursor)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, rowH, kv[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(l.contentW-66, rowH, kv[1], "", 0, "L", false, 0, "")
		l.cursor += rowH
	}
	l.cursor += 2 + sectionGap
}

func (l *layout) drawSection(s domain.Section) {
	l.ensure(bannerH)
	l.drawBanner(s.Title, s.Color)

	tableH := float64(len(s.Table.Rows)+1) * rowH
	l.ensure(tableH)
	l.drawTable(s.Table, s.Color)
	l.cursor += sectionGap
}

func (l *layout) drawBanner(title string, c domain.RGB) {
	pdf := l.pdf
	pdf.SetFillColor(c.R, c.G, c.B)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(margin, l.cursor)
	pdf.CellFormat(l.contentW, bannerH, title, "", 0, "L", true, 0, "")
	l.cursor += bannerH + 1
}

// drawTable is the table primitive. It performs no re-check of the host
// page-break rule; rows that run past the bottom margin roll onto a fresh
// page with the header repeated.
func (l *layout) drawTable(t domain.Table, accent domain.RGB) {
	l.drawHeaderRow(t, accent)

	pdf := l.pdf
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 9)
	for i, row := range t.Rows {
		if l.cursor+rowH > l.pageH-margin {
			pdf.AddPage()
			l.cursor = margin
			l.drawHeaderRow(t, accent)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "", 9)
		}
		if i%2 == 0 {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(241, 243, 245)
		}
		pdf.SetXY(margin, l.cursor)
		for col, cell := range row {
			pdf.CellFormat(t.Widths[col], rowH, truncate(cell, t.Truncation[col]), "1", 0, "L", true, 0, "")
		}
		l.cursor += rowH
	}
}

func (l *layout) drawHeaderRow(t domain.Table, accent domain.RGB) {
	pdf := l.pdf
	pdf.SetFillColor(accent.R, accent.G, accent.B)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(margin, l.cursor)
	for col, h := range t.Headers {
		pdf.CellFormat(t.Widths[col], rowH, h, "1", 0, "L", true, 0, "")
	}
	l.cursor += rowH
}

func (l *layout) drawClosing(now time.Time) {
	l.ensure(2 * rowH)
	pdf := l.pdf
	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetXY(margin, l.cursor)
	pdf.CellFormat(l.contentW, rowH, "Generated at "+now.Format("2006-01-02 15:04:05"), "", 0, "L", false, 0, "")
	l.cursor += rowH
	pdf.SetXY(margin, l.cursor)
	pdf.CellFormat(l.contentW, rowH, "Total pages: {nb}", "", 0, "L", false, 0, "")
	l.cursor += rowH
}

// truncate cuts a cell to its column threshold with a trailing ellipsis.
// This is the single place the paginated output is lossy.
func truncate(s string, threshold int) string {
	if threshold <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= threshold {
		return s
	}
	return string(runes[:threshold-3]) + "..."
}
