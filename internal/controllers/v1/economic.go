package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/budgetglass/backend/internal/viewmodel"
	"github.com/gin-gonic/gin"
)

// IndicatorListResponse wraps the cost-of-living observations.
type IndicatorListResponse struct {
	Data  []viewmodel.IndicatorView `json:"data"`
	Error *string                   `json:"error"`
}

// ComparisonListResponse wraps the income comparisons.
type ComparisonListResponse struct {
	Data  []viewmodel.ComparisonView `json:"data"`
	Error *string                    `json:"error"`
}

// EconomicQueryFilter are the supported indicator filters.
type EconomicQueryFilter struct {
	Island string `form:"island"` // e.g. "new_providence"
	Year   string `form:"year"`   // e.g. "2024"
}

// @Summary		Economic indicators
// @Description	Returns cost-of-living observations with spending breakdowns and provenance
// @Tags			Income
// @Produce		json
// @Success		200		{object}	IndicatorListResponse
// @Failure		502		{object}	IndicatorListResponse
// @Param			island	query		string	false	"Filter by island"
// @Param			year	query		string	false	"Filter by year"
// @Router			/v1/income/indicators [get]
func (co *Controller) GetIndicators(c *gin.Context) {
	var filter EconomicQueryFilter
	_ = c.Bind(&filter)

	indicators, err := co.upstream.EconomicIndicators(c.Request.Context())
	if err != nil {
		c.JSON(status(err), IndicatorListResponse{Error: errString(err)})
		return
	}

	year, _ := strconv.Atoi(filter.Year)

	views := make([]viewmodel.IndicatorView, 0, len(indicators))
	for _, indicator := range indicators {
		if filter.Island != "" && !strings.EqualFold(filter.Island, indicator.Island) {
			continue
		}
		if year != 0 && year != indicator.Year {
			continue
		}

		views = append(views, viewmodel.NewIndicatorView(indicator))
	}

	c.JSON(http.StatusOK, IndicatorListResponse{Data: views})
}

// @Summary		Income comparison
// @Description	Returns the middle-class vs working-class pairing per island and year with derived differences
// @Tags			Income
// @Produce		json
// @Success		200	{object}	ComparisonListResponse
// @Failure		502	{object}	ComparisonListResponse
// @Router			/v1/income/comparison [get]
func (co *Controller) GetComparisons(c *gin.Context) {
	comparisons, err := co.upstream.IncomeComparisons(c.Request.Context())
	if err != nil {
		c.JSON(status(err), ComparisonListResponse{Error: errString(err)})
		return
	}

	views := make([]viewmodel.ComparisonView, 0, len(comparisons))
	for _, comparison := range comparisons {
		views = append(views, viewmodel.NewComparisonView(comparison))
	}

	c.JSON(http.StatusOK, ComparisonListResponse{Data: views})
}
