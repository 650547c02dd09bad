// Package format holds the canonical display conversions used by every
// numeric render in the dashboard. All functions are pure and never
// panic on finite input; NaN and Infinity are prevented upstream by the
// view-model normalizer.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// All amounts are Bahamian dollars, formatted with en-US conventions
// regardless of the viewer's locale so figures compare across pages.
var printer = message.NewPrinter(language.AmericanEnglish)

const compactThreshold = 1_000_000

// Currency renders a value as whole-dollar currency, e.g. "$2,850,000,000".
//
// With compact set and an absolute value of at least one million, it
// abbreviates to at most one decimal, e.g. "$1.5B" or "$137.1M".
func Currency(value float64, compact bool) string {
	if compact && math.Abs(value) >= compactThreshold {
		return compactCurrency(value)
	}

	sign := ""
	if value < 0 {
		sign = "-"
	}

	whole := int64(math.Round(math.Abs(value)))
	return sign + printer.Sprintf("$%d", whole)
}

func compactCurrency(value float64) string {
	sign := ""
	abs := math.Abs(value)
	if value < 0 {
		sign = "-"
	}

	var scaled float64
	var suffix string
	switch {
	case abs >= 1e12:
		scaled, suffix = abs/1e12, "T"
	case abs >= 1e9:
		scaled, suffix = abs/1e9, "B"
	default:
		scaled, suffix = abs/1e6, "M"
	}

	// One decimal at most, with a trailing ".0" dropped ("$2M", not "$2.0M")
	s := fmt.Sprintf("%.1f", scaled)
	s = strings.TrimSuffix(s, ".0")

	return sign + "$" + s + suffix
}

// Count renders a whole number with digit grouping: "274,400".
func Count(value float64) string {
	return printer.Sprintf("%d", int64(math.Round(value)))
}

// Percent renders a change percentage with one decimal and an explicit
// sign for positive values: "+6.7%", "-3.1%", "0.0%".
func Percent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1f%%", sign, value)
}

// Share renders an unsigned percentage with no decimals, as used for
// poll results: "39%".
func Share(value float64) string {
	return fmt.Sprintf("%.0f%%", value)
}

// Ratio renders an unsigned percentage with one decimal, as used for
// breakdown shares and the debt-to-GDP ratio: "82.5%".
func Ratio(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// Layouts accepted for upstream timestamps, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date renders an ISO date as "Jan 2, 2006" in a fixed locale so
// citations read identically everywhere. Unparseable input is returned
// unchanged rather than failing a render.
func Date(iso string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return iso
}
