package sections

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secnet-tools/nsg-report/pkg/models/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func findSection(secs []domain.Section, title string) *domain.Section {
	for i := range secs {
		if secs[i].Title == title {
			return &secs[i]
		}
	}
	return nil
}

func TestBuildViolations_PreservesInputOrder(t *testing.T) {
	res := domain.AnalysisResult{
		Violations: []domain.Violation{
			{Kind: "rule-limit", Severity: "High", Message: "too many rules", CurrentCount: intPtr(1200), MaxAllowed: intPtr(1000)},
			{Kind: "source-ip-limit", Severity: "Critical", Message: "too many source IPs"},
		},
	}

	secs := Build(res)
	sec := findSection(secs, "VIOLATIONS")
	require.NotNil(t, sec)
	require.Len(t, sec.Table.Rows, 2)
	assert.Equal(t, []string{"rule-limit", "High", "too many rules", "1200", "1000"}, sec.Table.Rows[0])
	// Absent counters normalize to "0", never an empty cell.
	assert.Equal(t, []string{"source-ip-limit", "Critical", "too many source IPs", "0", "0"}, sec.Table.Rows[1])
}

func TestBuildViolations_AbsentOmitsSection(t *testing.T) {
	secs := Build(domain.AnalysisResult{})
	assert.Nil(t, findSection(secs, "VIOLATIONS"))
}

func TestBuildRecommendations_FiltersDedicatedCategories(t *testing.T) {
	res := domain.AnalysisResult{
		Recommendations: []domain.Recommendation{
			{Title: "keep me", Category: "security", Priority: "High", Description: "d", Impact: "i"},
			{Title: "drop 1", Category: "ready-to-implement"},
			{Title: "drop 2", Category: "optimization"},
			{Title: "drop 3", Category: "consolidation"},
			{Title: "keep too", Category: "Optimization"}, // case-sensitive match
		},
	}

	sec := findSection(Build(res), "AI RECOMMENDATIONS")
	require.NotNil(t, sec)
	require.Len(t, sec.Table.Rows, 2)
	assert.Equal(t, "keep me", sec.Table.Rows[0][0])
	assert.Equal(t, "keep too", sec.Table.Rows[1][0])
	for _, row := range sec.Table.Rows {
		assert.False(t, excludedCategories[row[1]], "excluded category leaked into section: %v", row)
	}
}

func TestBuildRecommendations_AllFilteredOmitsSection(t *testing.T) {
	res := domain.AnalysisResult{
		Recommendations: []domain.Recommendation{
			{Title: "a", Category: "optimization"},
			{Title: "b", Category: "consolidation"},
		},
	}
	assert.Nil(t, findSection(Build(res), "AI RECOMMENDATIONS"))
}

func TestBuildDuplicateIPs_JoinsRuleNames(t *testing.T) {
	res := domain.AnalysisResult{
		AIAnalysis: &domain.AIAnalysis{
			DuplicateIPs: []domain.DuplicateIP{
				{
					Address: "10.0.0.4",
					Usages: []domain.RuleUsage{
						{RuleName: "allow-web"},
						{RuleName: "allow-db"},
					},
				},
			},
		},
	}

	sec := findSection(Build(res), "DUPLICATE IP ADDRESSES")
	require.NotNil(t, sec)
	require.Len(t, sec.Table.Rows, 1)
	// Usage count absent -> "0"; rules joined in input order.
	assert.Equal(t, []string{"10.0.0.4", "0", "allow-web; allow-db"}, sec.Table.Rows[0])
}

func TestBuildCIDROverlaps_LabelsAddressesWithRules(t *testing.T) {
	res := domain.AnalysisResult{
		AIAnalysis: &domain.AIAnalysis{
			CIDROverlaps: []domain.CIDROverlap{
				{CIDR1: "10.0.0.0/16", Rule1: "allow-vnet", CIDR2: "10.0.1.0/24", Rule2: "allow-subnet", OverlapType: strPtr("contains")},
			},
		},
	}

	sec := findSection(Build(res), "CIDR OVERLAPS")
	require.NotNil(t, sec)
	assert.Equal(t, []string{"10.0.0.0/16 (allow-vnet)", "10.0.1.0/24 (allow-subnet)", "contains"}, sec.Table.Rows[0])
}

func TestBuildRedundantRules_SimilarityPercentage(t *testing.T) {
	res := domain.AnalysisResult{
		AIAnalysis: &domain.AIAnalysis{
			RedundantRules: []domain.RedundantRulePair{
				{Rule1: "a", Rule2: "b", Similarity: 0.873},
			},
		},
	}

	sec := findSection(Build(res), "REDUNDANT RULES")
	require.NotNil(t, sec)
	assert.Equal(t, "87%", sec.Table.Rows[0][2])
}

func TestBuildSecurityRisks_FlattensFindings(t *testing.T) {
	res := domain.AnalysisResult{
		AIAnalysis: &domain.AIAnalysis{
			SecurityRisks: []domain.RuleSecurityRisk{
				{
					RuleName:  "allow-any",
					Direction: strPtr("Inbound"),
					Priority:  intPtr(100),
					Risks: []domain.RiskFinding{
						{Severity: "High", Description: "open to internet"},
						{Severity: "Medium", Description: "wide port range", Port: strPtr("0-65535")},
						{Severity: "Low", Description: "permissive protocol"},
					},
				},
				{RuleName: "no-findings"},
			},
		},
	}

	sec := findSection(Build(res), "SECURITY RISKS")
	require.NotNil(t, sec)
	require.Len(t, sec.Table.Rows, 3)
	for _, row := range sec.Table.Rows {
		assert.Equal(t, "allow-any", row[0], "rule identity repeats on every finding row")
		assert.Equal(t, "Inbound", row[1])
		assert.Equal(t, "100", row[2])
	}
	assert.Equal(t, "0-65535", sec.Table.Rows[1][5])
}

func TestBuildRemovableRules_CapBoundaries(t *testing.T) {
	makeRes := func(n int) domain.AnalysisResult {
		opt := &domain.RuleOptimization{}
		for i := 0; i < n; i++ {
			opt.Removable = append(opt.Removable, domain.RemovableRule{RuleName: fmt.Sprintf("rule-%d", i)})
		}
		return domain.AnalysisResult{AIAnalysis: &domain.AIAnalysis{RuleOptimization: opt}}
	}

	sec := findSection(Build(makeRes(15)), "REMOVABLE RULES")
	require.NotNil(t, sec)
	assert.Len(t, sec.Table.Rows, 10)
	assert.Equal(t, "rule-0", sec.Table.Rows[0][0])
	assert.Equal(t, "rule-9", sec.Table.Rows[9][0])

	sec = findSection(Build(makeRes(10)), "REMOVABLE RULES")
	require.NotNil(t, sec)
	assert.Len(t, sec.Table.Rows, 10)

	assert.Nil(t, findSection(Build(makeRes(0)), "REMOVABLE RULES"))
}

func TestBuildOptimizationSummary_FourCounters(t *testing.T) {
	total := 40
	res := domain.AnalysisResult{
		AIAnalysis: &domain.AIAnalysis{
			RuleOptimization: &domain.RuleOptimization{
				Removable:      []domain.RemovableRule{{RuleName: "r1"}},
				Modifiable:     []domain.ModifiableRule{{RuleName: "m1"}, {RuleName: "m2"}},
				Consolidatable: []string{"c1", "c2", "c3"},
				TotalAnalyzed:  &total,
			},
		},
	}

	sec := findSection(Build(res), "RULE OPTIMIZATION SUMMARY")
	require.NotNil(t, sec)
	require.Len(t, sec.Table.Rows, 4)
	assert.Equal(t, []string{"Removable Rules", "1"}, sec.Table.Rows[0])
	assert.Equal(t, []string{"Modifiable Rules", "2"}, sec.Table.Rows[1])
	assert.Equal(t, []string{"Consolidatable Rules", "3"}, sec.Table.Rows[2])
	assert.Equal(t, []string{"Total Rules Analyzed", "40"}, sec.Table.Rows[3])
}

func TestBuild_AccentColorsFixedByCategory(t *testing.T) {
	res := fullFixture()
	secs := Build(res)

	v := findSection(secs, "VIOLATIONS")
	require.NotNil(t, v)
	assert.Equal(t, colorViolations, v.Color)

	r := findSection(secs, "SECURITY RISKS")
	require.NotNil(t, r)
	assert.Equal(t, colorRisks, r.Color)

	// Same category, same color on a second compile.
	again := findSection(Build(res), "SECURITY RISKS")
	require.NotNil(t, again)
	assert.Equal(t, r.Color, again.Color)
}

func TestBuild_RowsMatchHeaderWidth(t *testing.T) {
	secs := Build(fullFixture())
	require.NotEmpty(t, secs)
	for _, s := range secs {
		assert.Len(t, s.Table.Widths, len(s.Table.Headers), "%s widths", s.Title)
		assert.Len(t, s.Table.Truncation, len(s.Table.Headers), "%s truncation", s.Title)
		for i, row := range s.Table.Rows {
			assert.Len(t, row, len(s.Table.Headers), "%s row %d", s.Title, i)
		}
	}
}

func TestBuild_NoUndefinedCells(t *testing.T) {
	secs := Build(fullFixture())
	for _, s := range secs {
		for _, row := range s.Table.Rows {
			for _, cell := range row {
				assert.NotEmpty(t, cell)
				assert.NotEqual(t, "null", cell)
				assert.NotEqual(t, "undefined", cell)
			}
		}
	}
}

func TestBuild_SectionOrderIsStable(t *testing.T) {
	secs := Build(fullFixture())
	titles := make([]string, 0, len(secs))
	for _, s := range secs {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{
		"VIOLATIONS",
		"AI RECOMMENDATIONS",
		"ANALYTICS OVERVIEW",
		"IP ADDRESS INVENTORY",
		"IP USAGE DETAIL",
		"DUPLICATE IP ADDRESSES",
		"CIDR OVERLAPS",
		"REDUNDANT RULES",
		"SECURITY RISKS",
		"CONSOLIDATION OPPORTUNITIES",
		"SERVICE TAG INVENTORY",
		"SERVICE TAG RECOMMENDATIONS",
		"RULE OPTIMIZATION SUMMARY",
		"REMOVABLE RULES",
		"MODIFIABLE RULES",
	}, titles)
}

// fullFixture populates every sub-report so order/shape tests exercise the
// whole registry.
func fullFixture() domain.AnalysisResult {
	srcIPs, dstIPs := 12, 9
	usage := 3
	total := 40
	return domain.AnalysisResult{
		Name:           "prod-web-nsg",
		ResourceGroup:  "rg-prod",
		SubscriptionID: "sub-123",
		Location:       "eastus",
		TotalRules:     40,
		InboundRules:   25,
		OutboundRules:  15,
		Violations: []domain.Violation{
			{Kind: "rule-limit", Severity: "High", Message: "m", CurrentCount: intPtr(1200), MaxAllowed: intPtr(1000)},
		},
		Recommendations: []domain.Recommendation{
			{Title: "t", Category: "security", Priority: "High", Description: "d", Impact: "i"},
		},
		AIAnalysis: &domain.AIAnalysis{
			IPInventory: &domain.IPInventory{
				UniqueSourceIPs:      &srcIPs,
				UniqueDestinationIPs: &dstIPs,
				CategoryCounts:       map[string]int{"private": 8, "public": 4},
				Usage: []domain.IPUsage{
					{Address: "10.0.0.4", Category: strPtr("private"), SourceUses: &usage, Rules: []string{"allow-web"}},
				},
			},
			DuplicateIPs: []domain.DuplicateIP{
				{Address: "10.0.0.4", UsageCount: &usage, Usages: []domain.RuleUsage{{RuleName: "allow-web"}}},
			},
			CIDROverlaps: []domain.CIDROverlap{
				{CIDR1: "10.0.0.0/16", Rule1: "a", CIDR2: "10.0.1.0/24", Rule2: "b"},
			},
			RedundantRules: []domain.RedundantRulePair{
				{Rule1: "a", Rule2: "b", Similarity: 0.5},
			},
			SecurityRisks: []domain.RuleSecurityRisk{
				{RuleName: "allow-any", Risks: []domain.RiskFinding{{Severity: "High", Description: "open"}}},
			},
			Consolidations: []domain.ConsolidationOpportunity{
				{Kind: "port-merge", Rules: []string{"a", "b"}},
			},
			ServiceTags: &domain.ServiceTagAnalysis{
				Tags:            []domain.ServiceTagUsage{{Tag: "Internet", UsageCount: &usage}},
				Recommendations: []domain.ServiceTagRecommendation{{Text: "use AzureCloud"}},
			},
			RuleOptimization: &domain.RuleOptimization{
				Removable:      []domain.RemovableRule{{RuleName: "dead-rule"}},
				Modifiable:     []domain.ModifiableRule{{RuleName: "wide-rule"}},
				Consolidatable: []string{"c1"},
				TotalAnalyzed:  &total,
			},
			VisualAnalytics: &domain.VisualAnalytics{
				RuleDistribution: map[string]int{"inbound": 25, "outbound": 15},
				AccessTypes:      map[string]int{"allow": 30, "deny": 10},
				RiskLevels:       map[string]int{"high": 2, "medium": 5, "low": 10},
			},
		},
	}
}
