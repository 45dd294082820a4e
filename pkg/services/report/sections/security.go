package sections

import (
	"github.com/secnet-tools/nsg-report/pkg/models/domain"
	"github.com/secnet-tools/nsg-report/pkg/services/report/normalize"
)

// maxOptimizationDetailRows caps the removable/modifiable detail sections to
// bound document size. The first entries win; input order is preserved.
const maxOptimizationDetailRows = 10

func buildSecurityRisks(res domain.AnalysisResult) []domain.Section {
	if res.AIAnalysis == nil || len(res.AIAnalysis.SecurityRisks) == 0 {
		return nil
	}

	// One row per individual finding: a rule with N findings contributes N
	// rows, each repeating the rule identity.
	var rows [][]string
	for _, r := range res.AIAnalysis.SecurityRisks {
		for _, f := range r.Risks {
			portService := f.Port
			if portService == nil {
				portService = f.Service
			}
			rows = append(rows, []string{
				normalize.StrOr(r.RuleName),
				normalize.Str(r.Direction),
				normalize.Count(r.Priority),
				normalize.StrOr(f.Severity),
				normalize.StrOr(f.Description),
				normalize.Str(portService),
				normalize.Count64(f.EstimatedIPs),
			})
		}
	}
	if len(rows) == 0 {
		return nil
	}

	return []domain.Section{{
		Title: "SECURITY RISKS",
		Color: colorRisks,
		Table: domain.Table{
			Headers:    []string{"Rule", "Direction", "Priority", "Severity", "Risk", "Port/Service", "Estimated IPs"},
			Rows:       rows,
			Widths:     []float64{40, 25, 20, 25, 90, 32, 25},
			Truncation: []int{38, 35, 35, 35, 90, 35, 35},
		},
	}}
}

func buildConsolidations(res domain.AnalysisResult) []domain.Section {
	if res.AIAnalysis == nil || len(res.AIAnalysis.Consolidations) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(res.AIAnalysis.Consolidations))
	for _, c := range res.AIAnalysis.Consolidations {
		rows = append(rows, []string{
			normalize.StrOr(c.Kind),
			normalize.Join(c.Rules, "; "),
			normalize.Str(c.Description),
			normalize.Str(c.SuggestedRule),
		})
	}

	return []domain.Section{{
		Title: "CONSOLIDATION OPPORTUNITIES",
		Color: colorConsolidation,
		Table: domain.Table{
			Headers:    []string{"Type", "Affected Rules", "Description", "Suggested Rule"},
			Rows:       rows,
			Widths:     []float64{35, 70, 92, 60},
			Truncation: []int{35, 60, 90, 55},
		},
	}}
}

func buildServiceTagInventory(res domain.AnalysisResult) []domain.Section {
	if res.AIAnalysis == nil || res.AIAnalysis.ServiceTags == nil || len(res.AIAnalysis.ServiceTags.Tags) == 0 {
		return nil
	}

	tags := res.AIAnalysis.ServiceTags.Tags
	rows := make([][]string, 0, len(tags))
	for _, t := range tags {
		rows = append(rows, []string{
			normalize.StrOr(t.Tag),
			normalize.Count(t.UsageCount),
			normalize.Join(t.Rules, "; "),
			normalize.Str(t.ConsolidationPotential),
		})
	}

	return []domain.Section{{
		Title: "SERVICE TAG INVENTORY",
		Color: colorTagInventory,
		Table: domain.Table{
			Headers:    []string{"Service Tag", "Usage Count", "Rules", "Consolidation Potential"},
			Rows:       rows,
			Widths:     []float64{45, 30, 122, 60},
			Truncation: []int{40, 35, 110, 55},
		},
	}}
}

func buildServiceTagRecommendations(res domain.AnalysisResult) []domain.Section {
	if res.AIAnalysis == nil || res.AIAnalysis.ServiceTags == nil || len(res.AIAnalysis.ServiceTags.Recommendations) == 0 {
		return nil
	}

	recs := res.AIAnalysis.ServiceTags.Recommendations
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{
			normalize.StrOr(r.Text),
			normalize.Join(r.AffectedRules, "; "),
			normalize.Str(r.EstimatedSavings),
		})
	}

	return []domain.Section{{
		Title: "SERVICE TAG RECOMMENDATIONS",
		Color: colorTagRecs,
		Table: domain.Table{
			Headers:    []string{"Recommendation", "Affected Rules", "Estimated Savings"},
			Rows:       rows,
			Widths:     []float64{115, 82, 60},
			Truncation: []int{110, 75, 55},
		},
	}}
}

func buildOptimizationSummary(res domain.AnalysisResult) []domain.Section {
	if res.AIAnalysis == nil || res.AIAnalysis.RuleOptimization == nil {
		return nil
	}
	opt := res.AIAnalysis.RuleOptimization

	rows := [][]string{
		{"Removable Rules", normalize.Int(len(opt.Removable))},
		{"Modifiable Rules", normalize.Int(len(opt.Modifiable))},
		{"Consolidatable Rules", normalize.Int(len(opt.Consolidatable))},
		{"Total Rules Analyzed", normalize.Count(opt.TotalAnalyzed)},
	}

	return []domain.Section{{
		Title: "RULE OPTIMIZATION SUMMARY",
		Color: colorOptSummary,
		Table: metricTable(rows),
	}}
}

func buildRemovableRules(res domain.AnalysisResult) []domain.Section {
	if res.AIAnalysis == nil || res.AIAnalysis.RuleOptimization == nil {
		return nil
	}
	removable := res.AIAnalysis.RuleOptimization.Removable
	if len(removable) == 0 {
		return nil
	}
	if len(removable) > maxOptimizationDetailRows {
		removable = removable[:maxOptimizationDetailRows]
	}

	rows := make([][]string, 0, len(removable))
	for _, r := range removable {
		rows = append(rows, []string{
			normalize.StrOr(r.RuleName),
			normalize.Str(r.Reason),
			normalize.Str(r.RiskLevel),
		})
	}

	return []domain.Section{{
		Title: "REMOVABLE RULES",
		Color: colorRemovable,
		Table: domain.Table{
			Headers:    []string{"Rule", "Reason", "Risk Level"},
			Rows:       rows,
			Widths:     []float64{60, 157, 40},
			Truncation: []int{50, 120, 35},
		},
	}}
}

func buildModifiableRules(res domain.AnalysisResult) []domain.Section {
	if res.AIAnalysis == nil || res.AIAnalysis.RuleOptimization == nil {
		return nil
	}
	modifiable := res.AIAnalysis.RuleOptimization.Modifiable
	if len(modifiable) == 0 {
		return nil
	}
	if len(modifiable) > maxOptimizationDetailRows {
		modifiable = modifiable[:maxOptimizationDetailRows]
	}

	rows := make([][]string, 0, len(modifiable))
	for _, m := range modifiable {
		rows = append(rows, []string{
			normalize.StrOr(m.RuleName),
			normalize.Str(m.Current),
			normalize.Str(m.Suggested),
			normalize.Str(m.Reason),
		})
	}

	return []domain.Section{{
		Title: "MODIFIABLE RULES",
		Color: colorModifiable,
		Table: domain.Table{
			Headers:    []string{"Rule", "Current", "Suggested", "Reason"},
			Rows:       rows,
			Widths:     []float64{50, 60, 60, 87},
			Truncation: []int{45, 55, 55, 80},
		},
	}}
}
