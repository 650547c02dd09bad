package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// Datasets available for export.
var exportableDatasets = []string{
	"budget_summary",
	"ministries",
	"revenue",
	"debt",
	"historical",
}

var exportFormats = map[string]string{
	"json": "application/json",
	"csv":  "text/csv",
}

// ExportQuery selects the download format.
type ExportQuery struct {
	Format string `form:"format,default=json"` // json or csv
}

// @Summary		Export dataset
// @Description	Streams a dataset as a JSON or CSV download, passed through from the data service unmodified
// @Tags			Export
// @Produce		json
// @Produce		text/csv
// @Success		200
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		502		{object}	httpError
// @Param			dataset	path		string	true	"Dataset name"	Enums(budget_summary, ministries, revenue, debt, historical)
// @Param			format	query		string	false	"Download format"	Enums(json, csv)
// @Router			/v1/export/{dataset} [get]
func (co *Controller) ExportDataset(c *gin.Context) {
	dataset := c.Param("dataset")
	if !slices.Contains(exportableDatasets, dataset) {
		c.JSON(http.StatusBadRequest, httpError{Error: errExportDatasetInvalid.Error()})
		return
	}

	var query ExportQuery
	_ = c.Bind(&query)

	fallbackType, ok := exportFormats[query.Format]
	if !ok {
		c.JSON(http.StatusBadRequest, httpError{Error: errExportFormatInvalid.Error()})
		return
	}

	body, contentType, err := co.upstream.Export(c.Request.Context(), dataset, query.Format)
	if err != nil {
		fetchError(c, err)
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = fallbackType
	}

	c.Header("Content-Disposition", `attachment; filename="`+dataset+`.`+query.Format+`"`)
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, body)
}
