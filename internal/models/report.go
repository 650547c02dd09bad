package models

import "encoding/json"

// KeyStat is one headline figure extracted from a report.
type KeyStat struct {
	Label string  `json:"label" example:"Monthly middle-class income"`
	Value float64 `json:"value" example:"10200"`
	Unit  string  `json:"unit" example:"$"`
}

// ChartRow is one named row of a report chart. Fields holds one or more
// numeric series keyed by series name.
type ChartRow struct {
	Name   string             `json:"name" example:"New Providence"`
	Fields map[string]float64 `json:"fields"`
}

// UnmarshalJSON maps the upstream row shape, a flat object with a
// "name" key and one arbitrary numeric key per series, onto the
// canonical Name/Fields form. Non-numeric values other than the name
// are dropped. The mapping is idempotent: rows that already carry the
// canonical form pass through unchanged.
func (r *ChartRow) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Fields = make(map[string]float64)

	if fields, ok := raw["fields"].(map[string]any); ok {
		r.Name, _ = raw["name"].(string)
		for key, value := range fields {
			if v, ok := value.(float64); ok {
				r.Fields[key] = v
			}
		}
		return nil
	}

	for key, value := range raw {
		switch v := value.(type) {
		case string:
			if key == "name" {
				r.Name = v
			}
		case float64:
			r.Fields[key] = v
		}
	}

	return nil
}

// ChartDef is a titled data visualization attached to a report.
type ChartDef struct {
	ID    string     `json:"id" example:"income-by-island"`
	Title string     `json:"title" example:"Monthly income by island"`
	Type  string     `json:"type" example:"bar"`
	Data  []ChartRow `json:"data"`
}

// Report is a document-derived "hot topic" summary.
type Report struct {
	Slug        string     `json:"slug" example:"middle-class-2024"`
	Title       string     `json:"title" example:"How Much Does It Cost to Be Middle Class?"`
	Source      string     `json:"source" example:"University of The Bahamas"`
	Year        string     `json:"year" example:"2024"`
	Journal     *string    `json:"journal"`
	PDFFilename string     `json:"pdf_filename" example:"Archer2024Final.pdf"`
	Overview    *string    `json:"overview"`
	Methodology *string    `json:"methodology"`
	Highlights  []string   `json:"highlights"`
	KeyStats    []KeyStat  `json:"key_stats"`
	Charts      []ChartDef `json:"charts,omitempty"`
}

// ReportSummary is the list-view projection of a Report.
type ReportSummary struct {
	Slug   string `json:"slug" example:"middle-class-2024"`
	Title  string `json:"title"`
	Source string `json:"source"`
	Year   string `json:"year" example:"2024"`
}
