package ask_test

import (
	"testing"

	"github.com/budgetglass/backend/internal/ask"
	"github.com/budgetglass/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestParseBlocks(t *testing.T) {
	t.Parallel()

	answer := "The health budget grew by **6.7%** this year.\n\n" +
		"1. Salaries take the largest share.\n\n" +
		"2. Capital projects stay flat.\n\n" +
		"\n\n" +
		"Sources are listed below."

	blocks := ask.ParseBlocks(answer)
	require.Len(t, blocks, 4)

	assert.Equal(t, ask.BlockParagraph, blocks[0].Kind)
	assert.Equal(t, []ask.Span{
		{Text: "The health budget grew by "},
		{Text: "6.7%", Emphasis: true},
		{Text: " this year."},
	}, blocks[0].Spans)

	assert.Equal(t, ask.BlockNumbered, blocks[1].Kind)
	assert.Equal(t, 1, blocks[1].Number)
	assert.Equal(t, "Salaries take the largest share.", blocks[1].Spans[0].Text)

	assert.Equal(t, ask.BlockNumbered, blocks[2].Kind)
	assert.Equal(t, 2, blocks[2].Number)

	assert.Equal(t, ask.BlockParagraph, blocks[3].Kind)
}

func TestParseBlocksEdgeCases(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ask.ParseBlocks(""))
	assert.Empty(t, ask.ParseBlocks("\n\n\n\n"))

	// A decimal at the start of a line is not a list marker
	blocks := ask.ParseBlocks("3.5% growth was recorded.")
	require.Len(t, blocks, 1)
	assert.Equal(t, ask.BlockParagraph, blocks[0].Kind)

	// Emphasis at the start of a paragraph
	blocks = ask.ParseBlocks("**$137.1M** was allocated.")
	require.Len(t, blocks, 1)
	assert.Equal(t, []ask.Span{
		{Text: "$137.1M", Emphasis: true},
		{Text: " was allocated."},
	}, blocks[0].Spans)
}

func TestRenderFacts(t *testing.T) {
	t.Parallel()

	view := ask.Render("q", models.AskResponse{
		Numbers: map[string]float64{
			"total_allocation": 355119623,
			"share_of_budget":  0.119,
			"fiscal_years":     3,
		},
	})

	// Sorted by label for a stable panel
	require.Len(t, view.Facts, 3)
	assert.Equal(t, "fiscal years", view.Facts[0].Label)
	assert.Equal(t, "3", view.Facts[0].Display)
	assert.Equal(t, "share of budget", view.Facts[1].Label)
	assert.Equal(t, "11.9%", view.Facts[1].Display)
	assert.Equal(t, "total allocation", view.Facts[2].Label)
	assert.Equal(t, "$355.1M", view.Facts[2].Display)
}

func TestRenderCitations(t *testing.T) {
	t.Parallel()

	view := ask.Render("q", models.AskResponse{
		Citations: []models.Citation{
			{Document: "Budget Book 2024-25.pdf", Page: 87, Snippet: "Head 3091: Ministry of Health"},
			{Document: "external.pdf", Page: 3, URL: strPtr("https://example.com/external.pdf")},
		},
	})

	require.Len(t, view.Citations, 2)
	assert.Equal(t, "/documents/Budget%20Book%202024-25.pdf#page=87", view.Citations[0].Link)
	assert.Equal(t, "Head 3091: Ministry of Health", view.Citations[0].Snippet)

	// A server-supplied URL wins over the local documents path
	assert.Equal(t, "https://example.com/external.pdf#page=3", view.Citations[1].Link)
}

func TestRenderCitationSnippetTruncated(t *testing.T) {
	t.Parallel()

	long := ""
	for i := 0; i < 40; i++ {
		long += "words "
	}

	view := ask.Render("q", models.AskResponse{
		Citations: []models.Citation{{Document: "a.pdf", Page: 1, Snippet: long}},
	})

	snippet := view.Citations[0].Snippet
	assert.Less(t, len(snippet), len(long))
	assert.Contains(t, snippet, "…")
}

func TestRenderConfidence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   float64
		tier    string
		display string
	}{
		{0.92, ask.TierHigh, "92%"},
		{0.8, ask.TierMedium, "80%"},
		{0.6, ask.TierMedium, "60%"},
		{0.5, ask.TierLow, "50%"},
		{0, ask.TierLow, "0%"},
	}

	for _, tt := range tests {
		view := ask.Render("q", models.AskResponse{Confidence: tt.value})
		assert.Equal(t, tt.tier, view.Confidence.Tier, "confidence %v", tt.value)
		assert.Equal(t, tt.display, view.Confidence.Display, "confidence %v", tt.value)
	}
}

func TestRenderChart(t *testing.T) {
	t.Parallel()

	view := ask.Render("q", models.AskResponse{
		ChartData: []models.ChartPoint{
			{Year: "2023/24", Amount: 332747117},
			{Year: "2024/25", Amount: 355119623},
		},
	})

	require.Len(t, view.Chart, 2)
	assert.Equal(t, "$332.7M", view.Chart[0].Display)
	assert.Equal(t, "$355.1M", view.Chart[1].Display)
}
