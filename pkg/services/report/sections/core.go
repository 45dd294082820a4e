package sections

import (
	"github.com/secnet-tools/nsg-report/pkg/models/domain"
	"github.com/secnet-tools/nsg-report/pkg/services/report/normalize"
)

// excludedCategories lists recommendation categories that already have
// dedicated sections; matching is case-sensitive on the category token.
var excludedCategories = map[string]bool{
	"ready-to-implement": true,
	"optimization":       true,
	"consolidation":      true,
}

func buildViolations(res domain.AnalysisResult) []domain.Section {
	if len(res.Violations) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(res.Violations))
	for _, v := range res.Violations {
		rows = append(rows, []string{
			normalize.StrOr(v.Kind),
			normalize.StrOr(v.Severity),
			normalize.StrOr(v.Message),
			normalize.Count(v.CurrentCount),
			normalize.Count(v.MaxAllowed),
		})
	}

	return []domain.Section{{
		Title: "VIOLATIONS",
		Color: colorViolations,
		Table: domain.Table{
			Headers:    []string{"Type", "Severity", "Message", "Current Count", "Max Allowed"},
			Rows:       rows,
			Widths:     []float64{45, 25, 117, 35, 35},
			Truncation: []int{40, 35, 120, 35, 35},
		},
	}}
}

func buildRecommendations(res domain.AnalysisResult) []domain.Section {
	var rows [][]string
	for _, r := range res.Recommendations {
		if excludedCategories[r.Category] {
			continue
		}
		rows = append(rows, []string{
			normalize.StrOr(r.Title),
			normalize.StrOr(r.Category),
			normalize.StrOr(r.Priority),
			normalize.StrOr(r.Description),
			normalize.StrOr(r.Impact),
		})
	}
	if len(rows) == 0 {
		return nil
	}

	return []domain.Section{{
		Title: "AI RECOMMENDATIONS",
		Color: colorRecommendation,
		Table: domain.Table{
			Headers:    []string{"Title", "Category", "Priority", "Description", "Impact"},
			Rows:       rows,
			Widths:     []float64{55, 35, 22, 85, 60},
			Truncation: []int{50, 35, 35, 80, 60},
		},
	}}
}

func buildAnalytics(res domain.AnalysisResult) []domain.Section {
	if res.AIAnalysis == nil || res.AIAnalysis.VisualAnalytics == nil {
		return nil
	}
	va := res.AIAnalysis.VisualAnalytics

	var rows [][]string
	appendCounters := func(prefix string, counters map[string]int) {
		for _, k := range sortedKeys(counters) {
			rows = append(rows, []string{prefix + k, normalize.Int(counters[k])})
		}
	}
	appendCounters("Rules: ", va.RuleDistribution)
	appendCounters("Access: ", va.AccessTypes)
	appendCounters("Risk: ", va.RiskLevels)
	if len(rows) == 0 {
		return nil
	}

	return []domain.Section{{
		Title: "ANALYTICS OVERVIEW",
		Color: colorAnalytics,
		Table: metricTable(rows),
	}}
}

// metricTable is the shared two-column layout for counter sections.
func metricTable(rows [][]string) domain.Table {
	return domain.Table{
		Headers:    []string{"Metric", "Value"},
		Rows:       rows,
		Widths:     []float64{160, 97},
		Truncation: []int{60, 35},
	}
}
