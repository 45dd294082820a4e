// Package csvrender serializes a compiled report into the lossless delimited
// text format. Nothing is ever truncated here; this is the archival output.
package csvrender

import (
	"strings"
	"time"

	"github.com/secnet-tools/nsg-report/pkg/models/domain"
	"github.com/secnet-tools/nsg-report/pkg/services/report/normalize"
)

// Render produces the full delimited document for one analysis result.
// The date is calendar-only so that same-day exports are byte-identical.
func Render(res domain.AnalysisResult, secs []domain.Section, date time.Time) []byte {
	var b strings.Builder

	writeRow(&b, []string{"NSG ANALYSIS REPORT"})
	writeRow(&b, []string{"NSG", normalize.StrOr(res.Name)})
	writeRow(&b, []string{"Resource Group", normalize.StrOr(res.ResourceGroup)})
	writeRow(&b, []string{"Subscription", normalize.StrOr(res.SubscriptionID)})
	writeRow(&b, []string{"Location", normalize.StrOr(res.Location)})
	writeRow(&b, []string{"Total Rules", normalize.Int(res.TotalRules)})
	writeRow(&b, []string{"Date", date.Format("2006-01-02")})
	b.WriteString("\n")

	for _, s := range secs {
		writeRow(&b, []string{s.Title})
		writeRow(&b, s.Table.Headers)
		for _, row := range s.Table.Rows {
			writeRow(&b, row)
		}
		b.WriteString("\n")
	}

	return []byte(b.String())
}

// writeRow emits one delimited row. Every cell is quote-wrapped
// unconditionally, with internal quotes doubled, so the output parses
// unambiguously regardless of embedded commas, quotes or newlines.
func writeRow(b *strings.Builder, cells []string) {
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(c, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
