package v1

import (
	"github.com/budgetglass/backend/internal/ask"
	"github.com/budgetglass/backend/internal/identity"
	"github.com/budgetglass/backend/internal/upstream"
	"github.com/gin-gonic/gin"
)

// Controller serves the v1 dashboard API. The upstream client, Q&A
// session and identity provider are injected so tests can run against
// stub implementations.
type Controller struct {
	upstream *upstream.Client
	session  *ask.Session
	identity identity.Provider
}

// New wires a Controller. The asker may be the upstream client itself
// or a client pointed at a separate answering deployment.
func New(client *upstream.Client, asker ask.Asker, provider identity.Provider) *Controller {
	return &Controller{
		upstream: client,
		session:  ask.NewSession(asker),
		identity: provider,
	}
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is
// passed.
func (co *Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", co.GetV1)
	r.OPTIONS("", OptionsV1)

	// Fiscal overview
	{
		r.GET("/dashboard", co.GetDashboard)
		r.GET("/budget/summary", co.GetBudgetSummary)
		r.GET("/budget/sector-breakdown", co.GetSectorBreakdown)
		r.GET("/revenue", co.GetRevenue)
		r.GET("/debt", co.GetDebt)
	}

	// Ministries
	{
		r.GET("/ministries", co.GetMinistries)
		r.GET("/ministries/:id", co.GetMinistry)
	}

	// Cost of living
	{
		r.GET("/income/indicators", co.GetIndicators)
		r.GET("/income/comparison", co.GetComparisons)
	}

	// Islands
	{
		r.GET("/islands", co.GetIslands)
		r.GET("/islands/:id", co.GetIsland)
	}

	// Polls
	{
		r.GET("/polls", co.GetPolls)
		r.GET("/polls/current", co.GetCurrentPoll)
		r.POST("/polls/:id/vote", co.Vote)
	}

	// Q&A
	{
		r.POST("/ask", co.Ask)
		r.POST("/ask/reset", co.ResetAsk)
	}

	// Hot topics
	{
		r.GET("/reports", co.GetReports)
		r.GET("/reports/:slug", co.GetReport)
	}

	r.GET("/export/:dataset", co.ExportDataset)
}
