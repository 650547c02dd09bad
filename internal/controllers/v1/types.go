package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// V1Response lists the v1 endpoints.
type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Dashboard  string `json:"dashboard" example:"https://example.com/v1/dashboard"`
	Ministries string `json:"ministries" example:"https://example.com/v1/ministries"`
	Income     string `json:"income" example:"https://example.com/v1/income/indicators"`
	Islands    string `json:"islands" example:"https://example.com/v1/islands"`
	Polls      string `json:"polls" example:"https://example.com/v1/polls"`
	Ask        string `json:"ask" example:"https://example.com/v1/ask"`
	Reports    string `json:"reports" example:"https://example.com/v1/reports"`
	Export     string `json:"export" example:"https://example.com/v1/export/ministries"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func (co *Controller) GetV1(c *gin.Context) {
	url := requestHost(c) + "/v1"

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Dashboard:  url + "/dashboard",
			Ministries: url + "/ministries",
			Income:     url + "/income/indicators",
			Islands:    url + "/islands",
			Polls:      url + "/polls",
			Ask:        url + "/ask",
			Reports:    url + "/reports",
			Export:     url + "/export/ministries",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	c.Header("allow", "GET")
	c.Status(http.StatusNoContent)
}

// requestHost reconstructs the externally visible base URL, honoring
// the de-facto standard forwarding headers set by reverse proxies.
func requestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	host := c.Request.Host
	if forwarded := c.Request.Header.Get("x-forwarded-host"); forwarded != "" {
		host = forwarded
	}

	return scheme + "://" + host
}

// fetchError converts an upstream failure into the inline error
// payload every data section renders.
func fetchError(c *gin.Context, err error) {
	log.Debug().Str("path", c.Request.URL.Path).Err(err).Msg("fetch failed")
	c.JSON(status(err), httpError{Error: err.Error()})
}
