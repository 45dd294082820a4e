package sections

import (
	"fmt"

	"github.com/secnet-tools/nsg-report/pkg/models/domain"
	"github.com/secnet-tools/nsg-report/pkg/services/report/normalize"
)

func buildIPInventory(res domain.AnalysisResult) []domain.Section {
	if res.AIAnalysis == nil || res.AIAnalysis.IPInventory == nil {
		return nil
	}
	inv := res.AIAnalysis.IPInventory

	rows := [][]string{
		{"Unique Source IPs", normalize.Count(inv.UniqueSourceIPs)},
		{"Unique Destination IPs", normalize.Count(inv.UniqueDestinationIPs)},
	}
	for _, k := range sortedKeys(inv.CategoryCounts) {
		rows = append(rows, []string{"Category: " + k, normalize.Int(inv.CategoryCounts[k])})
	}

	return []domain.Section{{
		Title: "IP ADDRESS INVENTORY",
		Color: colorIPInventory,
		Table: metricTable(rows),
	}}
}

func buildIPUsage(res domain.AnalysisResult) []domain.Section {
	if res.AIAnalysis == nil || res.AIAnalysis.IPInventory == nil {
		return nil
	}
	usage := res.AIAnalysis.IPInventory.Usage
	if len(usage) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(usage))
	for _, u := range usage {
		rows = append(rows, []string{
			normalize.StrOr(u.Address),
			normalize.Str(u.Category),
			normalize.Count(u.SourceUses),
			normalize.Count(u.DestinationUses),
			normalize.Join(u.Rules, "; "),
		})
	}

	return []domain.Section{{
		Title: "IP USAGE DETAIL",
		Color: colorIPUsage,
		Table: domain.Table{
			Headers:    []string{"IP Address", "Category", "Source Usage", "Destination Usage", "Rules"},
			Rows:       rows,
			Widths:     []float64{45, 30, 30, 35, 117},
			Truncation: []int{40, 35, 35, 35, 120},
		},
	}}
}

func buildDuplicateIPs(res domain.AnalysisResult) []domain.Section {
	if res.AIAnalysis == nil || len(res.AIAnalysis.DuplicateIPs) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(res.AIAnalysis.DuplicateIPs))
	for _, d := range res.AIAnalysis.DuplicateIPs {
		names := make([]string, 0, len(d.Usages))
		for _, u := range d.Usages {
			names = append(names, u.RuleName)
		}
		rows = append(rows, []string{
			normalize.StrOr(d.Address),
			normalize.Count(d.UsageCount),
			normalize.Join(names, "; "),
		})
	}

	return []domain.Section{{
		Title: "DUPLICATE IP ADDRESSES",
		Color: colorDuplicates,
		Table: domain.Table{
			Headers:    []string{"IP Address", "Usage Count", "Rules"},
			Rows:       rows,
			Widths:     []float64{50, 35, 172},
			Truncation: []int{40, 35, 120},
		},
	}}
}

func buildCIDROverlaps(res domain.AnalysisResult) []domain.Section {
	if res.AIAnalysis == nil || len(res.AIAnalysis.CIDROverlaps) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(res.AIAnalysis.CIDROverlaps))
	for _, o := range res.AIAnalysis.CIDROverlaps {
		rows = append(rows, []string{
			fmt.Sprintf("%s (%s)", normalize.StrOr(o.CIDR1), normalize.StrOr(o.Rule1)),
			fmt.Sprintf("%s (%s)", normalize.StrOr(o.CIDR2), normalize.StrOr(o.Rule2)),
			normalize.Str(o.OverlapType),
		})
	}

	return []domain.Section{{
		Title: "CIDR OVERLAPS",
		Color: colorOverlaps,
		Table: domain.Table{
			Headers:    []string{"CIDR 1 (Rule)", "CIDR 2 (Rule)", "Overlap Type"},
			Rows:       rows,
			Widths:     []float64{100, 100, 57},
			Truncation: []int{70, 70, 35},
		},
	}}
}

func buildRedundantRules(res domain.AnalysisResult) []domain.Section {
	if res.AIAnalysis == nil || len(res.AIAnalysis.RedundantRules) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(res.AIAnalysis.RedundantRules))
	for _, p := range res.AIAnalysis.RedundantRules {
		rows = append(rows, []string{
			normalize.StrOr(p.Rule1),
			normalize.StrOr(p.Rule2),
			normalize.Score(p.Similarity),
			normalize.Str(p.Reason),
		})
	}

	return []domain.Section{{
		Title: "REDUNDANT RULES",
		Color: colorRedundant,
		Table: domain.Table{
			Headers:    []string{"Rule 1", "Rule 2", "Similarity", "Reason"},
			Rows:       rows,
			Widths:     []float64{55, 55, 27, 120},
			Truncation: []int{45, 45, 35, 100},
		},
	}}
}
