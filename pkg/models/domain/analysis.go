package domain

// AnalysisResult is the root object handed to the report compiler. It is
// produced in full by the external analysis service; the compiler treats it
// as read-only and never mutates it.
type AnalysisResult struct {
	Name           string `json:"name"`
	ResourceGroup  string `json:"resource_group"`
	SubscriptionID string `json:"subscription_id"`
	Location       string `json:"location"`

	TotalRules    int `json:"total_rules"`
	InboundRules  int `json:"inbound_rules"`
	OutboundRules int `json:"outbound_rules"`

	Violations      []Violation      `json:"violations"`
	Recommendations []Recommendation `json:"recommendations"`
	AIAnalysis      *AIAnalysis      `json:"ai_analysis,omitempty"`
}

// Violation is a rule-limit violation reported by the validation step.
type Violation struct {
	Kind          string   `json:"kind"`
	Severity      string   `json:"severity"` // Critical|High|Medium|Low
	Message       string   `json:"message"`
	AffectedRules []string `json:"affected_rules,omitempty"`
	CurrentCount  *int     `json:"current_count,omitempty"`
	MaxAllowed    *int     `json:"max_allowed,omitempty"`
}

// Recommendation is one AI-generated optimization advice item.
type Recommendation struct {
	ID               string             `json:"id"`
	Category         string             `json:"category"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Impact           string             `json:"impact"`
	Implementation   string             `json:"implementation"`
	Priority         string             `json:"priority"` // High|Medium|Low
	EstimatedSavings map[string]string  `json:"estimated_savings,omitempty"`
	Affected         *AffectedResources `json:"affected_resources,omitempty"`
}

type AffectedResources struct {
	IPAddresses      []string `json:"ip_addresses,omitempty"`
	ASGs             []string `json:"asgs,omitempty"`
	Rules            []string `json:"rules,omitempty"`
	Ports            []string `json:"ports,omitempty"`
	RecommendedASGs  []string `json:"recommended_asgs,omitempty"`
	RecommendedCIDRs []string `json:"recommended_cidrs,omitempty"`
}

// AIAnalysis is a bag of independently optional sub-reports. Any of them may
// be absent; absence omits the corresponding report sections and is never an
// error.
type AIAnalysis struct {
	IPInventory      *IPInventory               `json:"ip_inventory,omitempty"`
	DuplicateIPs     []DuplicateIP              `json:"duplicate_ips,omitempty"`
	CIDROverlaps     []CIDROverlap              `json:"cidr_overlaps,omitempty"`
	RedundantRules   []RedundantRulePair        `json:"redundant_rules,omitempty"`
	SecurityRisks    []RuleSecurityRisk         `json:"security_risks,omitempty"`
	Consolidations   []ConsolidationOpportunity `json:"consolidation_opportunities,omitempty"`
	ServiceTags      *ServiceTagAnalysis        `json:"service_tag_analysis,omitempty"`
	RuleOptimization *RuleOptimization          `json:"rule_optimization,omitempty"`
	VisualAnalytics  *VisualAnalytics           `json:"visual_analytics,omitempty"`
}

type IPInventory struct {
	UniqueSourceIPs      *int           `json:"unique_source_ips,omitempty"`
	UniqueDestinationIPs *int           `json:"unique_destination_ips,omitempty"`
	CategoryCounts       map[string]int `json:"category_counts,omitempty"`
	Usage                []IPUsage      `json:"usage,omitempty"`
}

type IPUsage struct {
	Address         string   `json:"address"`
	Category        *string  `json:"category,omitempty"` // private, public, azure-service
	SourceUses      *int     `json:"source_uses,omitempty"`
	DestinationUses *int     `json:"destination_uses,omitempty"`
	Rules           []string `json:"rules,omitempty"`
}

type DuplicateIP struct {
	Address    string      `json:"address"`
	UsageCount *int        `json:"usage_count,omitempty"`
	Usages     []RuleUsage `json:"usages,omitempty"`
}

type RuleUsage struct {
	RuleName  string  `json:"rule_name"`
	Direction *string `json:"direction,omitempty"`
	Field     *string `json:"field,omitempty"` // source | destination
}

type CIDROverlap struct {
	CIDR1       string  `json:"cidr1"`
	Rule1       string  `json:"rule1"`
	CIDR2       string  `json:"cidr2"`
	Rule2       string  `json:"rule2"`
	OverlapType *string `json:"overlap_type,omitempty"` // identical, contains, partial
}

// RedundantRulePair links two rules whose definitions overlap. Similarity is
// a score in [0,1] computed upstream.
type RedundantRulePair struct {
	Rule1      string  `json:"rule1"`
	Rule2      string  `json:"rule2"`
	Similarity float64 `json:"similarity"`
	Reason     *string `json:"reason,omitempty"`
}

// RuleSecurityRisk carries every risk finding for one rule. A rule with N
// findings contributes N report rows.
type RuleSecurityRisk struct {
	RuleName  string        `json:"rule_name"`
	Direction *string       `json:"direction,omitempty"`
	Priority  *int          `json:"priority,omitempty"`
	Risks     []RiskFinding `json:"risks,omitempty"`
}

type RiskFinding struct {
	Severity      string  `json:"severity"`
	Description   string  `json:"description"`
	Port          *string `json:"port,omitempty"`
	Service       *string `json:"service,omitempty"`
	AffectedRange *string `json:"affected_range,omitempty"`
	EstimatedIPs  *int64  `json:"estimated_ips,omitempty"`
}

type ConsolidationOpportunity struct {
	Kind          string   `json:"kind"`
	Rules         []string `json:"rules,omitempty"`
	Description   *string  `json:"description,omitempty"`
	SuggestedRule *string  `json:"suggested_rule,omitempty"`
}

type ServiceTagAnalysis struct {
	Tags            []ServiceTagUsage          `json:"tags,omitempty"`
	Recommendations []ServiceTagRecommendation `json:"recommendations,omitempty"`
}

type ServiceTagUsage struct {
	Tag                    string   `json:"tag"`
	UsageCount             *int     `json:"usage_count,omitempty"`
	Rules                  []string `json:"rules,omitempty"`
	ConsolidationPotential *string  `json:"consolidation_potential,omitempty"`
}

type ServiceTagRecommendation struct {
	Text             string   `json:"text"`
	AffectedRules    []string `json:"affected_rules,omitempty"`
	EstimatedSavings *string  `json:"estimated_savings,omitempty"`
}

type RuleOptimization struct {
	Removable      []RemovableRule  `json:"removable,omitempty"`
	Modifiable     []ModifiableRule `json:"modifiable,omitempty"`
	Consolidatable []string         `json:"consolidatable,omitempty"`
	TotalAnalyzed  *int             `json:"total_analyzed,omitempty"`
}

type RemovableRule struct {
	RuleName  string  `json:"rule_name"`
	Reason    *string `json:"reason,omitempty"`
	RiskLevel *string `json:"risk_level,omitempty"`
}

type ModifiableRule struct {
	RuleName  string  `json:"rule_name"`
	Current   *string `json:"current,omitempty"`
	Suggested *string `json:"suggested,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

// VisualAnalytics carries the counters behind the dashboard charts.
type VisualAnalytics struct {
	RuleDistribution map[string]int `json:"rule_distribution,omitempty"`
	AccessTypes      map[string]int `json:"access_types,omitempty"`
	RiskLevels       map[string]int `json:"risk_levels,omitempty"`
}

// NSGRef identifies one network security group in the subject inventory.
type NSGRef struct {
	Name          string
	ResourceGroup string
	Location      string
}
