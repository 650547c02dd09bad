package viewmodel

import (
	"github.com/budgetglass/backend/internal/format"
	"github.com/budgetglass/backend/internal/models"
)

// BudgetOverview is the render-ready headline fiscal snapshot.
type BudgetOverview struct {
	FiscalYear           string     `json:"fiscal_year" example:"2024/25"`
	TotalRevenue         Amount     `json:"total_revenue"`
	TotalExpenditure     Amount     `json:"total_expenditure"`
	RecurrentExpenditure Amount     `json:"recurrent_expenditure"`
	CapitalExpenditure   Amount     `json:"capital_expenditure"`
	DeficitSurplus       Amount     `json:"deficit_surplus"`
	Surplus              bool       `json:"surplus"`
	NationalDebt         Amount     `json:"national_debt"`
	DebtToGDP            Percentage `json:"debt_to_gdp"`
	GDP                  Amount     `json:"gdp"`
	RevenueChangeYoY     Percentage `json:"revenue_change_yoy"`
	ExpenditureChangeYoY Percentage `json:"expenditure_change_yoy"`
	LastUpdated          string     `json:"last_updated" example:"May 29, 2024"`
	Source               SourceRef  `json:"source"`
}

// NewBudgetOverview normalizes a budget summary. The deficit/surplus
// figure arrives pre-computed upstream and is displayed as-is; the
// debt-to-GDP ratio degrades to the placeholder when GDP is unknown.
func NewBudgetOverview(summary models.BudgetSummary) BudgetOverview {
	return BudgetOverview{
		FiscalYear:           summary.FiscalYear,
		TotalRevenue:         NewAmount(summary.TotalRevenue),
		TotalExpenditure:     NewAmount(summary.TotalExpenditure),
		RecurrentExpenditure: OptionalAmount(summary.RecurrentExpenditure),
		CapitalExpenditure:   OptionalAmount(summary.CapitalExpenditure),
		DeficitSurplus:       NewAmount(summary.DeficitSurplus),
		Surplus:              summary.DeficitSurplus >= 0,
		NationalDebt:         NewAmount(summary.NationalDebt),
		DebtToGDP:            OptionalRatio(summary.DebtToGDPRatio),
		GDP:                  OptionalAmount(summary.GDP),
		RevenueChangeYoY:     OptionalChange(summary.RevenueChangeYoY),
		ExpenditureChangeYoY: OptionalChange(summary.ExpenditureChangeYoY),
		LastUpdated:          format.Date(summary.LastUpdated),
		Source:               NewSourceRef(summary.SourceDocument, summary.SourcePage),
	}
}

// SectorShare is one sector slice of the budget with its derived share.
type SectorShare struct {
	Name   string     `json:"name" example:"Health"`
	Amount Amount     `json:"amount"`
	Share  Percentage `json:"share"`
}

// SectorView is the render-ready sector breakdown.
type SectorView struct {
	FiscalYear string        `json:"fiscal_year" example:"2024/25"`
	Total      Amount        `json:"total"`
	Sectors    []SectorShare `json:"sectors"`
	Source     SourceRef     `json:"source"`
}

// NewSectorView normalizes a sector breakdown, deriving each sector's
// share of the total.
func NewSectorView(breakdown models.SectorBreakdown) SectorView {
	view := SectorView{
		FiscalYear: breakdown.FiscalYear,
		Total:      NewAmount(breakdown.Total),
		Sectors:    make([]SectorShare, 0, len(breakdown.Sectors)),
		Source:     NewSourceRef(breakdown.SourceDocument, breakdown.SourcePage),
	}

	for _, sector := range breakdown.Sectors {
		view.Sectors = append(view.Sectors, SectorShare{
			Name:   sector.Name,
			Amount: NewAmount(sector.Amount),
			Share:  ShareOf(sector.Amount, breakdown.Total),
		})
	}

	return view
}

// RevenueSourceView is one revenue stream with its share and YoY change.
type RevenueSourceView struct {
	Name      string     `json:"name" example:"Value Added Tax (VAT)"`
	Amount    Amount     `json:"amount"`
	Share     Percentage `json:"share"`
	ChangeYoY Percentage `json:"change_yoy"`
}

// RevenueView is the render-ready revenue breakdown.
type RevenueView struct {
	FiscalYear  string              `json:"fiscal_year" example:"2024/25"`
	Total       Amount              `json:"total"`
	Sources     []RevenueSourceView `json:"sources"`
	LastUpdated string              `json:"last_updated" example:"May 29, 2024"`
	Source      SourceRef           `json:"source"`
}

// NewRevenueView normalizes a revenue breakdown. The share arrives
// pre-computed upstream and is preserved rather than re-derived.
func NewRevenueView(revenue models.RevenueBreakdown) RevenueView {
	view := RevenueView{
		FiscalYear:  revenue.FiscalYear,
		Total:       NewAmount(revenue.TotalRevenue),
		Sources:     make([]RevenueSourceView, 0, len(revenue.Sources)),
		LastUpdated: format.Date(revenue.LastUpdated),
		Source:      NewSourceRef(revenue.SourceDocument, nil),
	}

	for _, source := range revenue.Sources {
		view.Sources = append(view.Sources, RevenueSourceView{
			Name:      source.Name,
			Amount:    NewAmount(source.Amount),
			Share:     NewRatio(source.PercentOfTotal),
			ChangeYoY: NewChange(source.ChangeYoY),
		})
	}

	return view
}

// DebtView is the render-ready national debt position.
type DebtView struct {
	Total          Amount     `json:"total"`
	Domestic       Amount     `json:"domestic"`
	DomesticShare  Percentage `json:"domestic_share"`
	External       Amount     `json:"external"`
	ExternalShare  Percentage `json:"external_share"`
	DebtToGDP      Percentage `json:"debt_to_gdp"`
	AnnualInterest Amount     `json:"annual_interest"`
	ChangeYoY      Percentage `json:"change_yoy"`
	LastUpdated    string     `json:"last_updated" example:"May 29, 2024"`
	Source         SourceRef  `json:"source"`
}

// NewDebtView normalizes a debt summary, deriving the domestic and
// external shares of total debt.
func NewDebtView(debt models.DebtSummary) DebtView {
	return DebtView{
		Total:          NewAmount(debt.TotalDebt),
		Domestic:       NewAmount(debt.DomesticDebt),
		DomesticShare:  ShareOf(debt.DomesticDebt, debt.TotalDebt),
		External:       NewAmount(debt.ExternalDebt),
		ExternalShare:  ShareOf(debt.ExternalDebt, debt.TotalDebt),
		DebtToGDP:      NewRatio(debt.DebtToGDPRatio),
		AnnualInterest: NewAmount(debt.AnnualInterestCost),
		ChangeYoY:      NewChange(debt.ChangeYoY),
		LastUpdated:    format.Date(debt.LastUpdated),
		Source:         NewSourceRef(debt.SourceDocument, nil),
	}
}
