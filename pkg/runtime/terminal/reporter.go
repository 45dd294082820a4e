package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/secnet-tools/nsg-report/pkg/models/domain"
)

// Reporter prints an analysis summary to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(res *domain.AnalysisResult) error {
	tmpl := `
NSG Analysis: {{.Name}}
Resource Group: {{.ResourceGroup}}
Location: {{.Location}}
Rules: {{.TotalRules}} total ({{.InboundRules}} inbound / {{.OutboundRules}} outbound)

{{if .Violations}}=== Violations ===
{{range .Violations}}
- [{{.Severity}}] {{.Kind}}: {{.Message}}
{{end}}{{else}}No violations.
{{end}}
{{if .Recommendations}}=== Recommendations ===
{{range .Recommendations}}
- ({{.Priority}}) {{.Title}}
  {{.Description}}
{{end}}{{end}}
{{if .AIAnalysis}}AI analysis present: run an export for the full report.
{{else}}AI analysis absent: only violations and recommendations are available.
{{end}}
`
	t, err := template.New("summary").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, res)
}
