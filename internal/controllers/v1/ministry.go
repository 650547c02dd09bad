package v1

import (
	"net/http"
	"strings"

	"github.com/budgetglass/backend/internal/viewmodel"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// MinistryQueryFilter are the supported list filters.
type MinistryQueryFilter struct {
	Match  string `form:"match"`  // Glob pattern matched against ministry names, e.g. "*Health*"
	Sector string `form:"sector"` // Filter by sector tag
}

// MinistryListResponse wraps the ministry cards.
type MinistryListResponse struct {
	Data  []viewmodel.MinistryCard `json:"data"`
	Error *string                  `json:"error"`
}

// MinistryResponse wraps one ministry drill-down.
type MinistryResponse struct {
	Data  *viewmodel.MinistryView `json:"data"`
	Error *string                 `json:"error"`
}

// @Summary		List ministries
// @Description	Returns all ministries with allocations, YoY change and sparkline
// @Tags			Ministries
// @Produce		json
// @Success		200		{object}	MinistryListResponse
// @Failure		502		{object}	MinistryListResponse
// @Param			match	query		string	false	"Glob pattern to match against ministry names"
// @Param			sector	query		string	false	"Filter by sector"
// @Router			/v1/ministries [get]
func (co *Controller) GetMinistries(c *gin.Context) {
	var filter MinistryQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	ministries, err := co.upstream.Ministries(c.Request.Context())
	if err != nil {
		c.JSON(status(err), MinistryListResponse{Error: errString(err)})
		return
	}

	cards := make([]viewmodel.MinistryCard, 0, len(ministries))
	for _, ministry := range ministries {
		if filter.Match != "" && !glob.Glob(strings.ToLower(filter.Match), strings.ToLower(ministry.Name)) {
			continue
		}
		if filter.Sector != "" && !strings.EqualFold(filter.Sector, ministry.Sector) {
			continue
		}

		cards = append(cards, viewmodel.NewMinistryCard(ministry))
	}

	c.JSON(http.StatusOK, MinistryListResponse{Data: cards})
}

// @Summary		Get ministry
// @Description	Returns the drill-down for one ministry: allocation breakdown with derived shares, line items, funding history and source citation. A ministry unknown upstream is a 404, not a default record.
// @Tags			Ministries
// @Produce		json
// @Success		200	{object}	MinistryResponse
// @Failure		404	{object}	MinistryResponse
// @Failure		502	{object}	MinistryResponse
// @Param			id	path		string	true	"Ministry ID"
// @Router			/v1/ministries/{id} [get]
func (co *Controller) GetMinistry(c *gin.Context) {
	detail, err := co.upstream.MinistryDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(status(err), MinistryResponse{Error: errString(err)})
		return
	}

	view := viewmodel.NewMinistryView(detail)
	c.JSON(http.StatusOK, MinistryResponse{Data: &view})
}
