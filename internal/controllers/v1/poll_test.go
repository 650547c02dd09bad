package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/budgetglass/backend/internal/controllers/v1"
	"github.com/budgetglass/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var activePollBody = map[string]any{
	"id":          3,
	"question":    "Should the VAT rate on food be lowered?",
	"status":      "active",
	"total_votes": 107,
	"options": []map[string]any{
		{"id": 1, "option_text": "Yes", "votes": 42},
		{"id": 2, "option_text": "No", "votes": 65},
	},
}

func TestGetPolls(t *testing.T) {
	upstream := test.StubUpstream(t, map[string]test.StubResponse{
		"/polls": {Body: []map[string]any{activePollBody}},
	})
	app := test.App(t, upstream.URL)

	recorder := test.Request(t, app, http.MethodGet, "/v1/polls", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.PollListResponse
	test.DecodeResponse(t, &recorder, &response)

	require.Len(t, response.Data, 1)
	assert.Equal(t, "39%", response.Data[0].Options[0].Percent)
	assert.Equal(t, "61%", response.Data[0].Options[1].Percent)
}

func TestGetPollsUpstreamDown(t *testing.T) {
	// The poll list page shows an error banner when the upstream fails
	upstream := test.StubUpstream(t, map[string]test.StubResponse{
		"/polls": {Status: http.StatusInternalServerError, Body: "boom"},
	})
	app := test.App(t, upstream.URL)

	recorder := test.Request(t, app, http.MethodGet, "/v1/polls", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusBadGateway)

	var response v1.PollListResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Error)
}

func TestGetCurrentPoll(t *testing.T) {
	upstream := test.StubUpstream(t, map[string]test.StubResponse{
		"/polls/active": {Body: activePollBody},
	})
	app := test.App(t, upstream.URL)

	recorder := test.Request(t, app, http.MethodGet, "/v1/polls/current", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.PollResponse
	test.DecodeResponse(t, &recorder, &response)

	require.NotNil(t, response.Data)
	assert.Equal(t, 107, response.Data.TotalVotes)
}

func TestGetCurrentPollNoneActive(t *testing.T) {
	// No active poll renders the widget empty, not as an error
	upstream := test.StubUpstream(t, map[string]test.StubResponse{})
	app := test.App(t, upstream.URL)

	recorder := test.Request(t, app, http.MethodGet, "/v1/polls/current", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.PollResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.Nil(t, response.Data)
	assert.Nil(t, response.Error)
}

func TestVote(t *testing.T) {
	upstream := test.StubUpstream(t, map[string]test.StubResponse{
		"/polls/3/vote": {Body: map[string]any{
			"id":          3,
			"question":    "Should the VAT rate on food be lowered?",
			"status":      "active",
			"total_votes": 108,
			"options": []map[string]any{
				{"id": 1, "option_text": "Yes", "votes": 43},
				{"id": 2, "option_text": "No", "votes": 65},
			},
		}},
	})
	app := test.App(t, upstream.URL)

	recorder := test.Request(t, app, http.MethodPost, "/v1/polls/3/vote", v1.VoteEditable{OptionID: 1})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.PollResponse
	test.DecodeResponse(t, &recorder, &response)

	require.NotNil(t, response.Data)
	assert.Equal(t, 108, response.Data.TotalVotes)
	assert.Equal(t, 43, response.Data.Options[0].Votes)
}

func TestVoteInvalidPollID(t *testing.T) {
	upstream := test.StubUpstream(t, map[string]test.StubResponse{})
	app := test.App(t, upstream.URL)

	recorder := test.Request(t, app, http.MethodPost, "/v1/polls/not-a-number/vote", v1.VoteEditable{OptionID: 1})
	test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
}

func TestVoteMissingOption(t *testing.T) {
	upstream := test.StubUpstream(t, map[string]test.StubResponse{})
	app := test.App(t, upstream.URL)

	recorder := test.Request(t, app, http.MethodPost, "/v1/polls/3/vote", `{}`)
	test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

	var response v1.PollResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Error)
	assert.Contains(t, *response.Error, "invalid or un-parseable data")
}

func TestVoteRejectedUpstream(t *testing.T) {
	upstream := test.StubUpstream(t, map[string]test.StubResponse{
		"/polls/3/vote": {Status: http.StatusBadRequest, Body: `{"detail": "Already voted"}`},
	})
	app := test.App(t, upstream.URL)

	recorder := test.Request(t, app, http.MethodPost, "/v1/polls/3/vote", v1.VoteEditable{OptionID: 1})
	test.AssertHTTPStatus(t, &recorder, http.StatusBadGateway)

	var response v1.PollResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Error)
	assert.Contains(t, *response.Error, "Already voted")
}
