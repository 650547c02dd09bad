// Package viewmodel converts raw upstream payloads into exactly the
// shapes the presentation layer renders. All defaulting, derived-metric
// and placeholder rules live here so every page applies them uniformly.
package viewmodel

import (
	"github.com/budgetglass/backend/internal/format"
	"github.com/shopspring/decimal"
)

// Placeholder is rendered wherever a value is unknown. It is never a
// bare "0" or "0%": a figure that cannot be computed must be visibly
// distinct from a figure that is zero.
const Placeholder = "N/A"

var hundred = decimal.NewFromInt(100)

// Amount is a currency figure ready for display.
//
// Value is always usable for arithmetic (0 when the source was absent),
// while Display and Compact carry the placeholder when the source value
// was missing so the UI never shows "$0" for unknown data.
type Amount struct {
	Value   float64 `json:"value"`
	Known   bool    `json:"known"`
	Display string  `json:"display" example:"$355,119,623"`
	Compact string  `json:"compact" example:"$355.1M"`
}

// NewAmount builds an Amount from a known value.
func NewAmount(value float64) Amount {
	return Amount{
		Value:   value,
		Known:   true,
		Display: format.Currency(value, false),
		Compact: format.Currency(value, true),
	}
}

// OptionalAmount builds an Amount from an optional value, degrading to
// the placeholder when it is absent.
func OptionalAmount(value *float64) Amount {
	if value == nil {
		return Amount{Display: Placeholder, Compact: Placeholder}
	}
	return NewAmount(*value)
}

// Percentage is a percent figure ready for display. The display style
// is fixed by the constructor: changes carry an explicit sign, shares
// and ratios do not.
type Percentage struct {
	Value   float64 `json:"value"`
	Known   bool    `json:"known"`
	Display string  `json:"display" example:"+6.7%"`
}

// NewChange builds a signed change percentage from a known value.
func NewChange(value float64) Percentage {
	return Percentage{Value: value, Known: true, Display: format.Percent(value)}
}

// OptionalChange builds a signed change percentage, degrading to the
// placeholder when the source value is absent.
func OptionalChange(value *float64) Percentage {
	if value == nil {
		return Percentage{Display: Placeholder}
	}
	return NewChange(*value)
}

// NewRatio builds an unsigned percentage from a known value.
func NewRatio(value float64) Percentage {
	return Percentage{Value: value, Known: true, Display: format.Ratio(value)}
}

// OptionalRatio builds an unsigned percentage, degrading to the
// placeholder when the source value is absent.
func OptionalRatio(value *float64) Percentage {
	if value == nil {
		return Percentage{Display: Placeholder}
	}
	return NewRatio(*value)
}

// ShareOf derives part/whole as an unsigned percentage. With a zero or
// unknown whole the share is undefined and renders as the placeholder,
// never as a division error.
func ShareOf(part, whole float64) Percentage {
	if whole == 0 {
		return Percentage{Display: Placeholder}
	}

	share, _ := decimal.NewFromFloat(part).
		Div(decimal.NewFromFloat(whole)).
		Mul(hundred).
		Round(1).
		Float64()

	return NewRatio(share)
}

// ChangeBetween derives the change percent from a prior-period value to
// the current one: (current - prior) / prior * 100, sign preserved.
// With a zero prior the change is undefined.
func ChangeBetween(current, prior float64) Percentage {
	if prior == 0 {
		return Percentage{Display: Placeholder}
	}

	p := decimal.NewFromFloat(prior)
	change, _ := decimal.NewFromFloat(current).
		Sub(p).
		Div(p).
		Mul(hundred).
		Round(1).
		Float64()

	return NewChange(change)
}

// PerCapita derives an amount per person. Undefined for an empty
// population.
func PerCapita(amount float64, population int) Amount {
	if population <= 0 {
		return Amount{Display: Placeholder, Compact: Placeholder}
	}

	value, _ := decimal.NewFromFloat(amount).
		Div(decimal.NewFromInt(int64(population))).
		Round(0).
		Float64()

	return NewAmount(value)
}
