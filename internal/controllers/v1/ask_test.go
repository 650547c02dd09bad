package v1_test

import (
	"net/http"
	"testing"

	"github.com/budgetglass/backend/internal/ask"
	v1 "github.com/budgetglass/backend/internal/controllers/v1"
	"github.com/budgetglass/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	upstream := test.StubUpstream(t, map[string]test.StubResponse{
		"/ask": {Body: map[string]any{
			"answer":  "The health budget is **$355.1M** this year.\n\n1. Salaries take the largest share.",
			"numbers": map[string]any{"total_allocation": 355119623},
			"citations": []map[string]any{
				{"document": "Budget Book 2025-26.pdf", "page": 72, "snippet": "Head 3091"},
			},
			"confidence": 0.92,
		}},
	})
	app := test.App(t, upstream.URL)

	recorder := test.Request(t, app, http.MethodPost, "/v1/ask", v1.AskEditable{Question: "How big is the health budget?"})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.AskAnswerResponse
	test.DecodeResponse(t, &recorder, &response)

	require.NotNil(t, response.Data)
	assert.Equal(t, "How big is the health budget?", response.Data.Question)

	require.Len(t, response.Data.Blocks, 2)
	assert.Equal(t, ask.BlockParagraph, response.Data.Blocks[0].Kind)
	assert.True(t, response.Data.Blocks[0].Spans[1].Emphasis)
	assert.Equal(t, ask.BlockNumbered, response.Data.Blocks[1].Kind)

	require.Len(t, response.Data.Facts, 1)
	assert.Equal(t, "total allocation", response.Data.Facts[0].Label)
	assert.Equal(t, "$355.1M", response.Data.Facts[0].Display)

	require.Len(t, response.Data.Citations, 1)
	assert.Equal(t, "/documents/Budget%20Book%202025-26.pdf#page=72", response.Data.Citations[0].Link)

	assert.Equal(t, ask.TierHigh, response.Data.Confidence.Tier)
	assert.Equal(t, "92%", response.Data.Confidence.Display)
}

func TestAskEmptyQuestion(t *testing.T) {
	upstream := test.StubUpstream(t, map[string]test.StubResponse{})
	app := test.App(t, upstream.URL)

	recorder := test.Request(t, app, http.MethodPost, "/v1/ask", v1.AskEditable{Question: "   "})
	test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

	var response v1.AskAnswerResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Error)
	assert.Contains(t, *response.Error, "must not be empty")
}

func TestAskUpstreamFailureStillAnswers(t *testing.T) {
	upstream := test.StubUpstream(t, map[string]test.StubResponse{
		"/ask": {Status: http.StatusBadGateway, Body: "overloaded"},
	})
	app := test.App(t, upstream.URL)

	recorder := test.Request(t, app, http.MethodPost, "/v1/ask", v1.AskEditable{Question: "anything"})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	// The failure renders as a low-confidence answer, never a blank panel
	var response v1.AskAnswerResponse
	test.DecodeResponse(t, &recorder, &response)

	require.NotNil(t, response.Data)
	require.NotEmpty(t, response.Data.Blocks)
	assert.Equal(t, ask.TierLow, response.Data.Confidence.Tier)
}

func TestAskReset(t *testing.T) {
	upstream := test.StubUpstream(t, map[string]test.StubResponse{
		"/ask": {Body: map[string]any{"answer": "Yes.", "confidence": 0.9}},
	})
	app := test.App(t, upstream.URL)

	recorder := test.Request(t, app, http.MethodPost, "/v1/ask", v1.AskEditable{Question: "Is the budget balanced?"})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	recorder = test.Request(t, app, http.MethodPost, "/v1/ask/reset", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var state v1.AskStateResponse
	test.DecodeResponse(t, &recorder, &state)
	assert.Equal(t, ask.StateIdle, state.State)
}
