package v1

import (
	"net/http"

	"github.com/budgetglass/backend/internal/viewmodel"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Per-section payloads: each carries its own data or error so one
// failing fetch never blanks the sections that loaded.

type BudgetSection struct {
	Data  *viewmodel.BudgetOverview `json:"data"`
	Error *string                   `json:"error" example:"the data service could not be reached"`
}

type SectorSection struct {
	Data  *viewmodel.SectorView `json:"data"`
	Error *string               `json:"error"`
}

type RevenueSection struct {
	Data  *viewmodel.RevenueView `json:"data"`
	Error *string                `json:"error"`
}

type DebtSection struct {
	Data  *viewmodel.DebtView `json:"data"`
	Error *string             `json:"error"`
}

// DashboardResponse is the joint home-page payload.
type DashboardResponse struct {
	Budget  BudgetSection  `json:"budget"`
	Sectors SectorSection  `json:"sectors"`
	Revenue RevenueSection `json:"revenue"`
	Debt    DebtSection    `json:"debt"`
}

// @Summary		Dashboard
// @Description	Returns the home-page sections: budget summary, sector breakdown, revenue and debt. The sections are fetched concurrently and settle independently; a failed section carries an error while the others carry data.
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
func (co *Controller) GetDashboard(c *gin.Context) {
	var response DashboardResponse

	// The four fetches run concurrently and are awaited jointly. Each
	// goroutine returns nil so a failure cannot cancel its siblings;
	// errors land in the per-section payloads instead.
	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() error {
		summary, err := co.upstream.BudgetSummary(ctx)
		if err != nil {
			response.Budget.Error = errString(err)
			return nil
		}
		overview := viewmodel.NewBudgetOverview(summary)
		response.Budget.Data = &overview
		return nil
	})

	g.Go(func() error {
		breakdown, err := co.upstream.SectorBreakdown(ctx)
		if err != nil {
			response.Sectors.Error = errString(err)
			return nil
		}
		view := viewmodel.NewSectorView(breakdown)
		response.Sectors.Data = &view
		return nil
	})

	g.Go(func() error {
		revenue, err := co.upstream.Revenue(ctx)
		if err != nil {
			response.Revenue.Error = errString(err)
			return nil
		}
		view := viewmodel.NewRevenueView(revenue)
		response.Revenue.Data = &view
		return nil
	})

	g.Go(func() error {
		debt, err := co.upstream.Debt(ctx)
		if err != nil {
			response.Debt.Error = errString(err)
			return nil
		}
		view := viewmodel.NewDebtView(debt)
		response.Debt.Data = &view
		return nil
	})

	_ = g.Wait()

	c.JSON(http.StatusOK, response)
}

// BudgetSummaryResponse wraps a single budget overview.
type BudgetSummaryResponse struct {
	Data  *viewmodel.BudgetOverview `json:"data"`
	Error *string                   `json:"error"`
}

// @Summary		Budget summary
// @Description	Returns the headline fiscal snapshot
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	BudgetSummaryResponse
// @Failure		502	{object}	BudgetSummaryResponse
// @Router			/v1/budget/summary [get]
func (co *Controller) GetBudgetSummary(c *gin.Context) {
	summary, err := co.upstream.BudgetSummary(c.Request.Context())
	if err != nil {
		c.JSON(status(err), BudgetSummaryResponse{Error: errString(err)})
		return
	}

	overview := viewmodel.NewBudgetOverview(summary)
	c.JSON(http.StatusOK, BudgetSummaryResponse{Data: &overview})
}

// SectorBreakdownResponse wraps the sector breakdown.
type SectorBreakdownResponse struct {
	Data  *viewmodel.SectorView `json:"data"`
	Error *string               `json:"error"`
}

// @Summary		Sector breakdown
// @Description	Returns the budget decomposed across sectors with derived shares
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	SectorBreakdownResponse
// @Failure		502	{object}	SectorBreakdownResponse
// @Router			/v1/budget/sector-breakdown [get]
func (co *Controller) GetSectorBreakdown(c *gin.Context) {
	breakdown, err := co.upstream.SectorBreakdown(c.Request.Context())
	if err != nil {
		c.JSON(status(err), SectorBreakdownResponse{Error: errString(err)})
		return
	}

	view := viewmodel.NewSectorView(breakdown)
	c.JSON(http.StatusOK, SectorBreakdownResponse{Data: &view})
}

// RevenueResponse wraps the revenue breakdown.
type RevenueResponse struct {
	Data  *viewmodel.RevenueView `json:"data"`
	Error *string                `json:"error"`
}

// @Summary		Revenue breakdown
// @Description	Returns total revenue decomposed into its sources
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	RevenueResponse
// @Failure		502	{object}	RevenueResponse
// @Router			/v1/revenue [get]
func (co *Controller) GetRevenue(c *gin.Context) {
	revenue, err := co.upstream.Revenue(c.Request.Context())
	if err != nil {
		c.JSON(status(err), RevenueResponse{Error: errString(err)})
		return
	}

	view := viewmodel.NewRevenueView(revenue)
	c.JSON(http.StatusOK, RevenueResponse{Data: &view})
}

// DebtResponse wraps the debt summary.
type DebtResponse struct {
	Data  *viewmodel.DebtView `json:"data"`
	Error *string             `json:"error"`
}

// @Summary		Debt summary
// @Description	Returns the national debt position
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	DebtResponse
// @Failure		502	{object}	DebtResponse
// @Router			/v1/debt [get]
func (co *Controller) GetDebt(c *gin.Context) {
	debt, err := co.upstream.Debt(c.Request.Context())
	if err != nil {
		c.JSON(status(err), DebtResponse{Error: errString(err)})
		return
	}

	view := viewmodel.NewDebtView(debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &view})
}

func errString(err error) *string {
	s := err.Error()
	return &s
}
