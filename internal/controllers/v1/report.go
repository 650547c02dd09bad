package v1

import (
	"net/http"

	"github.com/budgetglass/backend/internal/models"
	"github.com/budgetglass/backend/internal/viewmodel"
	"github.com/gin-gonic/gin"
)

// ReportListResponse wraps the report summaries.
type ReportListResponse struct {
	Data  []models.ReportSummary `json:"data"`
	Error *string                `json:"error"`
}

// ReportResponse wraps one full report.
type ReportResponse struct {
	Data  *viewmodel.ReportView `json:"data"`
	Error *string               `json:"error"`
}

// @Summary		List reports
// @Description	Returns the hot-topic report summaries
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ReportListResponse
// @Failure		502	{object}	ReportListResponse
// @Router			/v1/reports [get]
func (co *Controller) GetReports(c *gin.Context) {
	reports, err := co.upstream.Reports(c.Request.Context())
	if err != nil {
		c.JSON(status(err), ReportListResponse{Error: errString(err)})
		return
	}

	if reports == nil {
		reports = []models.ReportSummary{}
	}

	c.JSON(http.StatusOK, ReportListResponse{Data: reports})
}

// @Summary		Get report
// @Description	Returns one full hot-topic report with key figures, highlights and canonical chart data
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ReportResponse
// @Failure		404		{object}	ReportResponse
// @Failure		502		{object}	ReportResponse
// @Param			slug	path		string	true	"Report slug"
// @Router			/v1/reports/{slug} [get]
func (co *Controller) GetReport(c *gin.Context) {
	report, err := co.upstream.Report(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(status(err), ReportResponse{Error: errString(err)})
		return
	}

	view := viewmodel.NewReportView(report)
	c.JSON(http.StatusOK, ReportResponse{Data: &view})
}
