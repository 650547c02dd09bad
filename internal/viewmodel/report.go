package viewmodel

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/budgetglass/backend/internal/format"
	"github.com/budgetglass/backend/internal/models"
	"golang.org/x/exp/slices"
)

// KeyStatView is one headline report figure with its display form.
type KeyStatView struct {
	Label   string  `json:"label" example:"Monthly middle-class income"`
	Value   float64 `json:"value" example:"54.3"`
	Unit    string  `json:"unit" example:"%"`
	Display string  `json:"display" example:"54.3%"`
}

// Count-style units rendered with digit grouping instead of a suffix.
var countUnits = map[string]bool{
	"women":       true,
	"respondents": true,
}

// NewKeyStatView normalizes one key statistic. Dollar units format as
// currency, percent units attach directly, count units format with
// grouping, anything else renders as "value unit".
func NewKeyStatView(stat models.KeyStat) KeyStatView {
	view := KeyStatView{Label: stat.Label, Value: stat.Value, Unit: stat.Unit}

	switch {
	case stat.Unit == "$":
		view.Display = format.Currency(stat.Value, true)
	case stat.Unit == "%":
		view.Display = trimFloat(stat.Value) + "%"
	case countUnits[stat.Unit]:
		view.Display = format.Count(stat.Value)
	case stat.Unit == "":
		view.Display = trimFloat(stat.Value)
	default:
		view.Display = fmt.Sprintf("%s %s", trimFloat(stat.Value), stat.Unit)
	}

	return view
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ChartView is a titled, canonical report chart.
type ChartView struct {
	ID     string   `json:"id" example:"income-by-island"`
	Title  string   `json:"title"`
	Type   string   `json:"type" example:"bar"`
	Series []string `json:"series"` // series names, stable order
	Rows   []models.ChartRow `json:"rows"`
}

// ReportView is a render-ready hot-topic report.
type ReportView struct {
	Slug        string        `json:"slug" example:"middle-class-2024"`
	Title       string        `json:"title"`
	Source      string        `json:"source"`
	Year        string        `json:"year" example:"2024"`
	Journal     string        `json:"journal,omitempty"`
	PDFLink     string        `json:"pdf_link" example:"/documents/Archer2024Final.pdf"`
	Overview    string        `json:"overview,omitempty"`
	Methodology string        `json:"methodology,omitempty"`
	Highlights  []string      `json:"highlights"`
	KeyStats    []KeyStatView `json:"key_stats"`
	Charts      []ChartView   `json:"charts"`
}

// NewReportView normalizes a full report.
func NewReportView(report models.Report) ReportView {
	view := ReportView{
		Slug:       report.Slug,
		Title:      report.Title,
		Source:     report.Source,
		Year:       report.Year,
		Highlights: report.Highlights,
		KeyStats:   make([]KeyStatView, 0, len(report.KeyStats)),
		Charts:     make([]ChartView, 0, len(report.Charts)),
	}

	if view.Highlights == nil {
		view.Highlights = []string{}
	}
	if report.Journal != nil {
		view.Journal = *report.Journal
	}
	if report.Overview != nil {
		view.Overview = *report.Overview
	}
	if report.Methodology != nil {
		view.Methodology = *report.Methodology
	}
	if report.PDFFilename != "" {
		view.PDFLink = DocumentsBasePath + "/" + url.PathEscape(report.PDFFilename)
	}

	for _, stat := range report.KeyStats {
		view.KeyStats = append(view.KeyStats, NewKeyStatView(stat))
	}

	for _, chart := range report.Charts {
		view.Charts = append(view.Charts, ChartView{
			ID:     chart.ID,
			Title:  chart.Title,
			Type:   chart.Type,
			Series: seriesNames(chart.Data),
			Rows:   chart.Data,
		})
	}

	return view
}

// seriesNames collects the union of series keys across rows, sorted for
// a stable render order.
func seriesNames(rows []models.ChartRow) []string {
	seen := map[string]bool{}
	names := []string{}

	for _, row := range rows {
		for key := range row.Fields {
			if !seen[key] {
				seen[key] = true
				names = append(names, key)
			}
		}
	}

	slices.Sort(names)
	return names
}
