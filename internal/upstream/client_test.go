package upstream_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/budgetglass/backend/internal/models"
	"github.com/budgetglass/backend/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, handler http.HandlerFunc) *upstream.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return upstream.New(server.URL)
}

func TestBudgetSummary(t *testing.T) {
	t.Parallel()

	client := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/budget/summary", r.URL.Path)
		_, _ = w.Write([]byte(`{"fiscal_year": "2024/25", "total_revenue": 2850000000}`))
	})

	summary, err := client.BudgetSummary(context.Background())
	require.Nil(t, err)
	assert.Equal(t, "2024/25", summary.FiscalYear)
	assert.Equal(t, 2850000000.0, summary.TotalRevenue)
}

func TestMinistryDetailEscapesID(t *testing.T) {
	t.Parallel()

	client := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ministries/youth%20sports", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"id": "youth sports"}`))
	})

	_, err := client.MinistryDetail(context.Background(), "youth sports")
	require.Nil(t, err)
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	client := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "Ministry not found"}`))
	})

	_, err := client.MinistryDetail(context.Background(), "nope")
	assert.ErrorIs(t, err, upstream.ErrNotFound)
}

func TestRequestErrorPrefersDetail(t *testing.T) {
	t.Parallel()

	client := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "Option does not belong to this poll"}`))
	})

	_, err := client.Debt(context.Background())
	require.NotNil(t, err)

	var reqErr *upstream.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadRequest, reqErr.Status)
	assert.Equal(t, "the data service responded with HTTP 400: Option does not belong to this poll", err.Error())
}

func TestRequestErrorRawExcerpt(t *testing.T) {
	t.Parallel()

	client := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	_, err := client.Debt(context.Background())
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestEmptyPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"wrong shape", `"just a string"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := serve(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.BudgetSummary(context.Background())
			assert.ErrorIs(t, err, upstream.ErrEmptyPayload)
		})
	}
}

func TestTransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := upstream.New(server.URL)
	_, err := client.BudgetSummary(context.Background())
	assert.ErrorIs(t, err, upstream.ErrTransport)
}

func TestVote(t *testing.T) {
	t.Parallel()

	client := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/polls/3/vote", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"option_id": 1, "fingerprint": "abc"}`, string(body))

		_, _ = w.Write([]byte(`{"id": 3, "total_votes": 108}`))
	})

	poll, err := client.Vote(context.Background(), 3, models.VoteRequest{OptionID: 1, Fingerprint: "abc"})
	require.Nil(t, err)
	assert.Equal(t, 108, poll.TotalVotes)
}

func TestExport(t *testing.T) {
	t.Parallel()

	client := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/export/ministries", r.URL.Path)
		assert.Equal(t, "csv", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("id,name\nhealth,Ministry of Health\n"))
	})

	body, contentType, err := client.Export(context.Background(), "ministries", "csv")
	require.Nil(t, err)
	defer body.Close()

	assert.Equal(t, "text/csv", contentType)
	data, err := io.ReadAll(body)
	require.Nil(t, err)
	assert.Contains(t, string(data), "Ministry of Health")
}

func TestExportNotFound(t *testing.T) {
	t.Parallel()

	client := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, _, err := client.Export(context.Background(), "ministries", "csv")
	assert.True(t, errors.Is(err, upstream.ErrNotFound))
}
