package viewmodel

import (
	"github.com/budgetglass/backend/internal/models"
)

// MinistryCard is the list-view projection of one ministry.
type MinistryCard struct {
	ID                 string     `json:"id" example:"health"`
	Name               string     `json:"name" example:"Ministry of Health & Wellness"`
	Sector             string     `json:"sector" example:"Health"`
	Allocation         Amount     `json:"allocation"`
	PreviousAllocation Amount     `json:"previous_allocation"`
	Change             Percentage `json:"change"`
	Sparkline          []float64  `json:"sparkline"`
}

// NewMinistryCard normalizes one ministry list item. The change percent
// arrives pre-computed; when the upstream omits it, it is derived from
// the two allocations with the standard convention.
func NewMinistryCard(ministry models.Ministry) MinistryCard {
	change := NewChange(ministry.ChangePercent)
	if ministry.ChangePercent == 0 && ministry.PreviousYearAllocation != 0 {
		change = ChangeBetween(ministry.Allocation, ministry.PreviousYearAllocation)
	}

	sparkline := ministry.Sparkline
	if sparkline == nil {
		sparkline = []float64{}
	}

	return MinistryCard{
		ID:                 ministry.ID,
		Name:               ministry.Name,
		Sector:             ministry.Sector,
		Allocation:         NewAmount(ministry.Allocation),
		PreviousAllocation: NewAmount(ministry.PreviousYearAllocation),
		Change:             change,
		Sparkline:          sparkline,
	}
}

// BreakdownSlice is one component of a ministry's allocation with its
// derived share.
type BreakdownSlice struct {
	Name   string     `json:"name" example:"Salaries"`
	Amount Amount     `json:"amount"`
	Share  Percentage `json:"share"`
}

// LineItemView is a named line item within a ministry budget.
type LineItemView struct {
	Name   string `json:"name" example:"Public Hospitals Authority"`
	Amount Amount `json:"amount"`
}

// HistoryPoint is one year of a canonical funding series.
type HistoryPoint struct {
	Year   string  `json:"year" example:"2023/24"`
	Amount float64 `json:"amount" example:"332747117"`
}

// MinistryView is the render-ready drill-down for one ministry.
type MinistryView struct {
	ID        string           `json:"id" example:"health"`
	Name      string           `json:"name"`
	Allocation Amount          `json:"allocation"`
	Breakdown []BreakdownSlice `json:"breakdown"`
	LineItems []LineItemView   `json:"line_items"`
	History   []HistoryPoint   `json:"history"`
	Source    SourceRef        `json:"source"`
}

// NewMinistryView normalizes a ministry detail record. The four-way
// breakdown keeps the upstream amounts untouched; only the shares are
// derived.
func NewMinistryView(detail models.MinistryDetail) MinistryView {
	breakdown := []BreakdownSlice{
		{Name: "Salaries", Amount: NewAmount(detail.Salaries), Share: ShareOf(detail.Salaries, detail.Allocation)},
		{Name: "Programs", Amount: NewAmount(detail.Programs), Share: ShareOf(detail.Programs, detail.Allocation)},
		{Name: "Capital Projects", Amount: NewAmount(detail.CapitalProjects), Share: ShareOf(detail.CapitalProjects, detail.Allocation)},
		{Name: "Grants", Amount: NewAmount(detail.Grants), Share: ShareOf(detail.Grants, detail.Allocation)},
	}

	lineItems := make([]LineItemView, 0, len(detail.LineItems))
	for _, item := range detail.LineItems {
		lineItems = append(lineItems, LineItemView{Name: item.Name, Amount: NewAmount(item.Amount)})
	}

	page := detail.SourcePage
	return MinistryView{
		ID:         detail.ID,
		Name:       detail.Name,
		Allocation: NewAmount(detail.Allocation),
		Breakdown:  breakdown,
		LineItems:  lineItems,
		History:    CanonicalHistory(detail.Historical),
		Source:     NewSourceRef(detail.SourceDocument, &page),
	}
}

// CanonicalHistory maps historical rows onto the canonical year/amount
// schema. Upstream records have carried the value under either
// "allocation" or "amount" over time; the mapping happens once here so
// render sites never guess between keys. The operation is idempotent:
// rows that already carry the canonical amount pass through unchanged.
func CanonicalHistory(points []models.HistoricalPoint) []HistoryPoint {
	history := make([]HistoryPoint, 0, len(points))

	for _, point := range points {
		var amount float64
		switch {
		case point.Amount != nil:
			amount = *point.Amount
		case point.Allocation != nil:
			amount = *point.Allocation
		}

		history = append(history, HistoryPoint{Year: point.Year, Amount: amount})
	}

	return history
}
