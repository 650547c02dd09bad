package models

// Ministry is one ministry as it appears in the allocations list.
type Ministry struct {
	ID                     string    `json:"id" example:"health"`
	Name                   string    `json:"name" example:"Ministry of Health & Wellness"`
	Allocation             float64   `json:"allocation" example:"355119623"`
	PreviousYearAllocation float64   `json:"previous_year_allocation" example:"332747117"`
	ChangePercent          float64   `json:"change_percent" example:"6.7"`
	Sparkline              []float64 `json:"sparkline"` // trailing allocations, chronological
	Sector                 string    `json:"sector" example:"Health"`
}

// LineItem is a named amount within a ministry's allocation.
type LineItem struct {
	Name   string  `json:"name" example:"Public Hospitals Authority"`
	Amount float64 `json:"amount" example:"139000000"`
}

// HistoricalPoint is one year of a ministry's funding history.
//
// Older upstream records carry the value under "allocation", newer ones
// under "amount". Both keys are accepted here; the viewmodel package
// maps them onto one canonical field at ingestion.
type HistoricalPoint struct {
	Year       string   `json:"year" example:"2023/24"`
	Allocation *float64 `json:"allocation,omitempty"`
	Amount     *float64 `json:"amount,omitempty"`
}

// MinistryDetail is the drill-down record for a single ministry.
//
// Salaries, programs, capital projects and grants are expected to sum
// to the allocation, but this is a property of the upstream data and is
// not enforced here.
type MinistryDetail struct {
	ID              string            `json:"id" example:"health"`
	Name            string            `json:"name" example:"Ministry of Health & Wellness"`
	Allocation      float64           `json:"allocation" example:"355119623"`
	Salaries        float64           `json:"salaries" example:"95000000"`
	Programs        float64           `json:"programs" example:"25000000"`
	CapitalProjects float64           `json:"capital_projects" example:"10000000"`
	Grants          float64           `json:"grants" example:"7052342"`
	LineItems       []LineItem        `json:"line_items"`
	Historical      []HistoricalPoint `json:"historical"`
	SourceDocument  string            `json:"source_document" example:"Budget Book 2025-26.pdf"`
	SourcePage      int               `json:"source_page" example:"72"`
}
