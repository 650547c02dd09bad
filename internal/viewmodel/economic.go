package viewmodel

import (
	"github.com/budgetglass/backend/internal/format"
	"github.com/budgetglass/backend/internal/models"
)

// BreakdownCategory labels for the four-way income spending split.
const (
	categoryFood    = "Food"
	categoryHousing = "Housing & Utilities"
	categoryNFNH    = "Non-food, Non-housing"
	categorySavings = "Savings"
)

// IndicatorView is one render-ready cost-of-living observation.
type IndicatorView struct {
	IndicatorType string           `json:"indicator_type" example:"middle_class"`
	Island        string           `json:"island" example:"new_providence"`
	Year          int              `json:"year" example:"2024"`
	Monthly       Amount           `json:"monthly"`
	Annual        Amount           `json:"annual"`
	Breakdown     []BreakdownSlice `json:"breakdown"`
	Provenance    *Provenance      `json:"provenance"`
}

// Provenance carries the optional study attribution of an indicator.
type Provenance struct {
	Document  string `json:"document"`
	URL       string `json:"url,omitempty"`
	Author    string `json:"author,omitempty"`
	Published string `json:"published,omitempty" example:"Mar 1, 2024"`
}

// NewIndicatorView normalizes one economic indicator. Breakdown
// categories the study did not report are omitted rather than shown as
// zero; shares are taken of the monthly amount.
func NewIndicatorView(indicator models.EconomicIndicator) IndicatorView {
	view := IndicatorView{
		IndicatorType: indicator.IndicatorType,
		Island:        indicator.Island,
		Year:          indicator.Year,
		Monthly:       NewAmount(indicator.MonthAmount),
		Annual:        NewAmount(indicator.AnnualAmount),
		Breakdown:     []BreakdownSlice{},
	}

	if b := indicator.Breakdown; b != nil {
		for _, category := range []struct {
			name  string
			value *float64
		}{
			{categoryFood, b.Food},
			{categoryHousing, b.HousingUtilities},
			{categoryNFNH, b.NFNH},
			{categorySavings, b.Savings},
		} {
			if category.value == nil {
				continue
			}
			view.Breakdown = append(view.Breakdown, BreakdownSlice{
				Name:   category.name,
				Amount: NewAmount(*category.value),
				Share:  ShareOf(*category.value, indicator.MonthAmount),
			})
		}
	}

	if indicator.SourceDocument != nil {
		provenance := &Provenance{Document: *indicator.SourceDocument}
		if indicator.SourceURL != nil {
			provenance.URL = *indicator.SourceURL
		}
		if indicator.Author != nil {
			provenance.Author = *indicator.Author
		}
		if indicator.PublishedDate != nil {
			provenance.Published = format.Date(*indicator.PublishedDate)
		}
		view.Provenance = provenance
	}

	return view
}

// ComparisonView pairs the two income classes for one island and year.
type ComparisonView struct {
	Island            string        `json:"island" example:"new_providence"`
	Year              int           `json:"year" example:"2024"`
	MiddleClass       IndicatorView `json:"middle_class"`
	WorkingClass      IndicatorView `json:"working_class"`
	DifferenceAmount  Amount        `json:"difference_amount"`
	DifferencePercent Percentage    `json:"difference_percent"`
}

// NewComparisonView normalizes an income comparison. The difference
// figures arrive pre-computed upstream; when they are zero but the
// monthly amounts are present, they are derived with the standard
// convention against the working-class baseline.
func NewComparisonView(comparison models.IncomeComparison) ComparisonView {
	amount := comparison.DifferenceAmount
	percent := NewChange(comparison.DifferencePercent)

	if amount == 0 && comparison.WorkingClass.MonthAmount != 0 {
		amount = comparison.MiddleClass.MonthAmount - comparison.WorkingClass.MonthAmount
		percent = ChangeBetween(comparison.MiddleClass.MonthAmount, comparison.WorkingClass.MonthAmount)
	}

	return ComparisonView{
		Island:            comparison.Island,
		Year:              comparison.Year,
		MiddleClass:       NewIndicatorView(comparison.MiddleClass),
		WorkingClass:      NewIndicatorView(comparison.WorkingClass),
		DifferenceAmount:  NewAmount(amount),
		DifferencePercent: percent,
	}
}
