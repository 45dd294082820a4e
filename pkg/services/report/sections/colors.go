package sections

import "github.com/secnet-tools/nsg-report/pkg/models/domain"

// Accent colors are assigned by category, never by position, so the same
// category carries the same color in every document.
var (
	colorViolations     = domain.RGB{R: 220, G: 53, B: 69}
	colorRecommendation = domain.RGB{R: 13, G: 110, B: 253}
	colorAnalytics      = domain.RGB{R: 23, G: 162, B: 184}
	colorIPInventory    = domain.RGB{R: 102, G: 16, B: 242}
	colorIPUsage        = domain.RGB{R: 0, G: 150, B: 136}
	colorDuplicates     = domain.RGB{R: 253, G: 126, B: 20}
	colorOverlaps       = domain.RGB{R: 230, G: 126, B: 34}
	colorRedundant      = domain.RGB{R: 111, G: 66, B: 193}
	colorRisks          = domain.RGB{R: 178, G: 34, B: 34}
	colorConsolidation  = domain.RGB{R: 40, G: 167, B: 69}
	colorTagInventory   = domain.RGB{R: 0, G: 123, B: 167}
	colorTagRecs        = domain.RGB{R: 70, G: 130, B: 180}
	colorOptSummary     = domain.RGB{R: 52, G: 58, B: 64}
	colorRemovable      = domain.RGB{R: 214, G: 51, B: 132}
	colorModifiable     = domain.RGB{R: 94, G: 114, B: 228}
)
