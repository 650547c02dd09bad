package models

// Indicator types served by the economic endpoints.
const (
	IndicatorMiddleClass  = "middle_class"
	IndicatorWorkingClass = "working_class"
)

// IncomeBreakdown splits a monthly income figure into spending
// categories. Every category is optional since not all studies report
// all four.
type IncomeBreakdown struct {
	Food             *float64 `json:"food"`
	HousingUtilities *float64 `json:"housing_utilities"`
	NFNH             *float64 `json:"nfnh"` // non-food, non-housing
	Savings          *float64 `json:"savings"`
}

// EconomicIndicator is one cost-of-living observation, keyed by
// indicator type, island and year.
type EconomicIndicator struct {
	ID             *int             `json:"id"`
	IndicatorType  string           `json:"indicator_type" example:"middle_class"`
	Island         string           `json:"island" example:"new_providence"`
	Year           int              `json:"year" example:"2024"`
	MonthAmount    float64          `json:"month_amount" example:"10200"`
	AnnualAmount   float64          `json:"annual_amount" example:"122400"`
	Breakdown      *IncomeBreakdown `json:"breakdown"`
	SourceDocument *string          `json:"source_document"`
	SourceURL      *string          `json:"source_url"`
	Author         *string          `json:"author"`
	PublishedDate  *string          `json:"published_date"`
}

// IncomeComparison pairs the middle-class and working-class indicators
// for one island and year. The difference figures arrive pre-computed.
type IncomeComparison struct {
	Island            string            `json:"island" example:"new_providence"`
	Year              int               `json:"year" example:"2024"`
	MiddleClass       EconomicIndicator `json:"middle_class"`
	WorkingClass      EconomicIndicator `json:"working_class"`
	DifferencePercent float64           `json:"difference_percent" example:"104"`
	DifferenceAmount  float64           `json:"difference_amount" example:"5200"`
}
