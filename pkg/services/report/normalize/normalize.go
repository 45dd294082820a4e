// Package normalize resolves every optional field of an analysis result to a
// display-safe value. All functions are total: renderers never see a nil and
// never emit the literal tokens "null" or "undefined".
package normalize

import (
	"math"
	"strconv"
	"strings"
)

// NotAvailable is the canonical stand-in for absent categorical fields.
const NotAvailable = "N/A"

// Str returns the value of an optional string, or "N/A" when absent/empty.
func Str(s *string) string {
	if s == nil || *s == "" {
		return NotAvailable
	}
	return *s
}

// StrOr is Str for plain strings that may arrive empty.
func StrOr(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

// Count renders an optional counter; absent counters read "0".
func Count(n *int) string {
	if n == nil {
		return "0"
	}
	return strconv.Itoa(*n)
}

// Count64 is Count for 64-bit counters (estimated IP counts).
func Count64(n *int64) string {
	if n == nil {
		return "0"
	}
	return strconv.FormatInt(*n, 10)
}

// Int renders a known-present counter.
func Int(n int) string {
	return strconv.Itoa(n)
}

// Score renders a similarity score in [0,1] as an integer percentage with
// round-half-up, e.g. 0.873 -> "87%".
func Score(v float64) string {
	return strconv.Itoa(int(math.Floor(v*100+0.5))) + "%"
}

// Percent renders an optional rate as an integer percentage; absent rates
// read "0%".
func Percent(v *float64) string {
	if v == nil {
		return "0%"
	}
	return Score(*v)
}

// List resolves an optional slice to an empty one.
func List(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

// Join renders a name list as a single cell; an absent or empty list reads
// "N/A". Input order is preserved.
func Join(ss []string, sep string) string {
	if len(ss) == 0 {
		return NotAvailable
	}
	return strings.Join(ss, sep)
}
