package models

// BudgetSummary is the headline fiscal snapshot served by the upstream
// data API.
//
// All values arrive pre-aggregated from the authoritative budget
// documents and are never recomputed here, so the displayed figures
// cannot diverge from the source. Optional fields are pointers to keep
// "absent" distinguishable from a true zero.
type BudgetSummary struct {
	FiscalYear           string   `json:"fiscal_year" example:"2024/25"`
	TotalRevenue         float64  `json:"total_revenue" example:"2850000000"`
	TotalExpenditure     float64  `json:"total_expenditure" example:"3200000000"`
	RecurrentExpenditure *float64 `json:"recurrent_expenditure,omitempty"`
	CapitalExpenditure   *float64 `json:"capital_expenditure,omitempty"`
	DeficitSurplus       float64  `json:"deficit_surplus" example:"-350000000"` // positive = surplus
	NationalDebt         float64  `json:"national_debt" example:"11500000000"`
	DebtToGDPRatio       *float64 `json:"debt_to_gdp_ratio"`
	RevenueChangeYoY     *float64 `json:"revenue_change_yoy,omitempty"`
	ExpenditureChangeYoY *float64 `json:"expenditure_change_yoy,omitempty"`
	GDP                  *float64 `json:"gdp,omitempty"`
	LastUpdated          string   `json:"last_updated" example:"2024-05-29"`
	SourceDocument       string   `json:"source_document" example:"Budget Communication 2024-25.pdf"`
	SourcePage           *int     `json:"source_page"`
}

// SectorSlice is one sector's share of the overall budget.
type SectorSlice struct {
	Name   string  `json:"name" example:"Health"`
	Amount float64 `json:"amount" example:"380000000"`
}

// SectorBreakdown decomposes the budget across sectors.
type SectorBreakdown struct {
	FiscalYear     string        `json:"fiscal_year" example:"2024/25"`
	Total          float64       `json:"total" example:"3200000000"`
	Sectors        []SectorSlice `json:"sectors"`
	SourceDocument string        `json:"source_document" example:"Budget Book 2024-25.pdf"`
	SourcePage     *int          `json:"source_page"`
}

// RevenueSource is one named revenue stream.
type RevenueSource struct {
	Name           string  `json:"name" example:"Value Added Tax (VAT)"`
	Amount         float64 `json:"amount" example:"1100000000"`
	PercentOfTotal float64 `json:"percent_of_total" example:"38.6"`
	ChangeYoY      float64 `json:"change_yoy" example:"5.2"`
}

// RevenueBreakdown decomposes total revenue into its sources.
type RevenueBreakdown struct {
	FiscalYear     string          `json:"fiscal_year" example:"2024/25"`
	TotalRevenue   float64         `json:"total_revenue" example:"2850000000"`
	Sources        []RevenueSource `json:"sources"`
	LastUpdated    string          `json:"last_updated" example:"2024-05-29"`
	SourceDocument string          `json:"source_document" example:"Budget Communication 2024-25.pdf"`
}

// DebtSummary is the national debt position.
type DebtSummary struct {
	TotalDebt          float64 `json:"total_debt" example:"11500000000"`
	DomesticDebt       float64 `json:"domestic_debt" example:"6200000000"`
	ExternalDebt       float64 `json:"external_debt" example:"5300000000"`
	DebtToGDPRatio     float64 `json:"debt_to_gdp_ratio" example:"82.5"`
	AnnualInterestCost float64 `json:"annual_interest_cost" example:"590000000"`
	ChangeYoY          float64 `json:"change_yoy" example:"3.1"`
	LastUpdated        string  `json:"last_updated" example:"2024-05-29"`
	SourceDocument     string  `json:"source_document" example:"Debt Statistical Bulletin.pdf"`
}
