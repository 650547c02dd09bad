package v1

import (
	"net/http"

	"github.com/budgetglass/backend/internal/islands"
	"github.com/budgetglass/backend/internal/viewmodel"
	"github.com/gin-gonic/gin"
)

// IslandListResponse wraps the island allocations.
type IslandListResponse struct {
	Data  []viewmodel.IslandView `json:"data"`
	Error *string                `json:"error"`
}

// IslandResponse wraps one island.
type IslandResponse struct {
	Data  *viewmodel.IslandView `json:"data"`
	Error *string               `json:"error"`
}

// @Summary		List islands
// @Description	Returns per-island allocations with derived per-capita figures and capital projects
// @Tags			Islands
// @Produce		json
// @Success		200	{object}	IslandListResponse
// @Router			/v1/islands [get]
func (co *Controller) GetIslands(c *gin.Context) {
	views := make([]viewmodel.IslandView, 0, len(islands.All))
	for _, island := range islands.All {
		views = append(views, viewmodel.NewIslandView(island))
	}

	c.JSON(http.StatusOK, IslandListResponse{Data: views})
}

// @Summary		Get island
// @Description	Returns one island by ID
// @Tags			Islands
// @Produce		json
// @Success		200	{object}	IslandResponse
// @Failure		404	{object}	IslandResponse
// @Param			id	path		string	true	"Island ID"
// @Router			/v1/islands/{id} [get]
func (co *Controller) GetIsland(c *gin.Context) {
	island, ok := islands.ByID(c.Param("id"))
	if !ok {
		message := "there is no island with this ID"
		c.JSON(http.StatusNotFound, IslandResponse{Error: &message})
		return
	}

	view := viewmodel.NewIslandView(island)
	c.JSON(http.StatusOK, IslandResponse{Data: &view})
}
