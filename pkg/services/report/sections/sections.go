// Package sections turns an analysis result into the ordered list of report
// sections shared by every renderer. Each analysis category has its own
// builder; a builder returns no sections when its sub-report is absent, so
// partial data degrades the report instead of failing it.
package sections

import (
	"sort"

	"github.com/secnet-tools/nsg-report/pkg/models/domain"
)

// Builder produces the sections for one analysis category. Builders must not
// fail: absent input means an empty result.
type Builder func(domain.AnalysisResult) []domain.Section

// registry fixes the section order of every compiled report. Adding a
// category means adding one entry here.
var registry = []Builder{
	buildViolations,
	buildRecommendations,
	buildAnalytics,
	buildIPInventory,
	buildIPUsage,
	buildDuplicateIPs,
	buildCIDROverlaps,
	buildRedundantRules,
	buildSecurityRisks,
	buildConsolidations,
	buildServiceTagInventory,
	buildServiceTagRecommendations,
	buildOptimizationSummary,
	buildRemovableRules,
	buildModifiableRules,
}

// Build compiles the full ordered section list for one analysis result.
func Build(res domain.AnalysisResult) []domain.Section {
	var out []domain.Section
	for _, b := range registry {
		out = append(out, b(res)...)
	}
	return out
}

// sortedKeys gives counter maps a deterministic row order.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
