// Package ask owns the conversational-query lifecycle: submitting a
// free-text question, holding the request state, and rendering the
// structured answer into display blocks, key facts, citations and a
// confidence tier.
package ask

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/budgetglass/backend/internal/format"
	"github.com/budgetglass/backend/internal/models"
	"github.com/budgetglass/backend/internal/viewmodel"
)

// Block kinds produced by the answer renderer.
const (
	BlockParagraph = "paragraph"
	BlockNumbered  = "numbered"
)

// Span is a run of answer text, optionally emphasized.
type Span struct {
	Text     string `json:"text"`
	Emphasis bool   `json:"emphasis"`
}

// Block is one rendered unit of answer prose.
type Block struct {
	Kind   string `json:"kind" example:"numbered"`
	Number int    `json:"number,omitempty" example:"1"`
	Spans  []Span `json:"spans"`
}

// Fact is one named numeric key fact ready for display.
type Fact struct {
	Label   string  `json:"label" example:"total allocation"`
	Value   float64 `json:"value" example:"355119623"`
	Display string  `json:"display" example:"$355.1M"`
}

// CitationView is a rendered source reference with its deep link.
type CitationView struct {
	Document string `json:"document" example:"Budget Book 2024-25.pdf"`
	Page     int    `json:"page" example:"87"`
	Snippet  string `json:"snippet"`
	Link     string `json:"link" example:"/documents/Budget%20Book%202024-25.pdf#page=87"`
}

// TrendPoint is one year of the optional answer chart.
type TrendPoint struct {
	Year    string  `json:"year" example:"2023/24"`
	Amount  float64 `json:"amount" example:"332747117"`
	Display string  `json:"display" example:"$332.7M"`
}

// Confidence tiers. Thresholds are a display convention, not a
// statistical guarantee.
const (
	TierLow    = "low"
	TierMedium = "medium"
	TierHigh   = "high"
)

// Confidence is the rendered answer confidence.
type Confidence struct {
	Value   float64 `json:"value" example:"0.92"`
	Display string  `json:"display" example:"92%"`
	Tier    string  `json:"tier" example:"high"`
}

// AnswerView is a fully rendered answer, uniform whether the upstream
// call succeeded or failed.
type AnswerView struct {
	Question   string         `json:"question"`
	Blocks     []Block        `json:"blocks"`
	Facts      []Fact         `json:"facts"`
	Chart      []TrendPoint   `json:"chart"`
	Citations  []CitationView `json:"citations"`
	Confidence Confidence     `json:"confidence"`
}

// snippetLimit bounds citation snippets shown as supporting evidence.
const snippetLimit = 160

// currencyFactThreshold: key facts above this magnitude read as dollar
// amounts, matching the dashboard's other figures.
const currencyFactThreshold = 1000

var numberedPrefix = regexp.MustCompile(`^(\d+)\.\s+`)

// Render converts a structured answer into its display form.
func Render(question string, resp models.AskResponse) AnswerView {
	view := AnswerView{
		Question:   question,
		Blocks:     ParseBlocks(resp.Answer),
		Facts:      renderFacts(resp.Numbers),
		Chart:      make([]TrendPoint, 0, len(resp.ChartData)),
		Citations:  make([]CitationView, 0, len(resp.Citations)),
		Confidence: renderConfidence(resp.Confidence),
	}

	for _, point := range resp.ChartData {
		view.Chart = append(view.Chart, TrendPoint{
			Year:    point.Year,
			Amount:  point.Amount,
			Display: format.Currency(point.Amount, true),
		})
	}

	for _, citation := range resp.Citations {
		view.Citations = append(view.Citations, renderCitation(citation))
	}

	return view
}

// ParseBlocks splits answer prose on blank-line boundaries and tags
// paragraphs with a leading "N. " pattern as numbered items. Together
// with the bold spans this is the entire inline markup language; it is
// deliberately not a markdown parser.
func ParseBlocks(answer string) []Block {
	blocks := []Block{}

	for _, paragraph := range strings.Split(answer, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		block := Block{Kind: BlockParagraph}
		if match := numberedPrefix.FindStringSubmatch(paragraph); match != nil {
			block.Kind = BlockNumbered
			block.Number, _ = strconv.Atoi(match[1])
			paragraph = paragraph[len(match[0]):]
		}

		block.Spans = parseSpans(paragraph)
		blocks = append(blocks, block)
	}

	return blocks
}

// parseSpans splits a paragraph on double-asterisk markers, emphasizing
// every other segment and stripping the markers themselves.
func parseSpans(text string) []Span {
	spans := []Span{}

	for i, part := range strings.Split(text, "**") {
		if part == "" {
			continue
		}
		spans = append(spans, Span{Text: part, Emphasis: i%2 == 1})
	}

	return spans
}

// renderFacts humanizes fact keys and picks a display form by
// magnitude: dollar amounts above the threshold, percentages for
// fractions below one, literals otherwise.
func renderFacts(numbers map[string]float64) []Fact {
	facts := make([]Fact, 0, len(numbers))

	for key, value := range numbers {
		fact := Fact{
			Label: strings.ReplaceAll(key, "_", " "),
			Value: value,
		}

		switch {
		case value > currencyFactThreshold:
			fact.Display = format.Currency(value, true)
		case value > 0 && value < 1:
			fact.Display = format.Ratio(value * 100)
		default:
			fact.Display = strconv.FormatFloat(value, 'f', -1, 64)
		}

		facts = append(facts, fact)
	}

	// Map iteration order is random; keep the panel stable.
	sort.Slice(facts, func(i, j int) bool { return facts[i].Label < facts[j].Label })
	return facts
}

// renderCitation builds the deep link for one citation. A
// server-supplied URL wins over the local documents path; either way
// the target page travels as a #page=N fragment for the viewer.
func renderCitation(citation models.Citation) CitationView {
	var base string
	if citation.URL != nil && *citation.URL != "" {
		base = *citation.URL
	} else {
		base = viewmodel.DocumentsBasePath + "/" + url.PathEscape(citation.Document)
	}

	snippet := citation.Snippet
	if len(snippet) > snippetLimit {
		snippet = snippet[:snippetLimit] + "…"
	}

	return CitationView{
		Document: citation.Document,
		Page:     citation.Page,
		Snippet:  snippet,
		Link:     fmt.Sprintf("%s#page=%d", base, citation.Page),
	}
}

func renderConfidence(value float64) Confidence {
	tier := TierLow
	switch {
	case value > 0.8:
		tier = TierHigh
	case value > 0.5:
		tier = TierMedium
	}

	return Confidence{
		Value:   value,
		Display: fmt.Sprintf("%.0f%%", value*100),
		Tier:    tier,
	}
}
