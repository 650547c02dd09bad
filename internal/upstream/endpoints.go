package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/budgetglass/backend/internal/models"
)

// BudgetSummary fetches the headline fiscal snapshot.
func (c *Client) BudgetSummary(ctx context.Context) (models.BudgetSummary, error) {
	var summary models.BudgetSummary
	err := c.get(ctx, "/budget/summary", &summary)
	return summary, err
}

// SectorBreakdown fetches the budget decomposition across sectors.
func (c *Client) SectorBreakdown(ctx context.Context) (models.SectorBreakdown, error) {
	var breakdown models.SectorBreakdown
	err := c.get(ctx, "/budget/sector-breakdown", &breakdown)
	return breakdown, err
}

// Revenue fetches the revenue breakdown.
func (c *Client) Revenue(ctx context.Context) (models.RevenueBreakdown, error) {
	var revenue models.RevenueBreakdown
	err := c.get(ctx, "/revenue", &revenue)
	return revenue, err
}

// Debt fetches the national debt summary.
func (c *Client) Debt(ctx context.Context) (models.DebtSummary, error) {
	var debt models.DebtSummary
	err := c.get(ctx, "/debt", &debt)
	return debt, err
}

// Ministries fetches all ministries with allocations and YoY change.
func (c *Client) Ministries(ctx context.Context) ([]models.Ministry, error) {
	var ministries []models.Ministry
	err := c.get(ctx, "/ministries", &ministries)
	return ministries, err
}

// MinistryDetail fetches the drill-down record for one ministry.
// A missing ministry is reported as ErrNotFound, never substituted
// with a default record.
func (c *Client) MinistryDetail(ctx context.Context, id string) (models.MinistryDetail, error) {
	var detail models.MinistryDetail
	err := c.get(ctx, "/ministries/"+url.PathEscape(id), &detail)
	return detail, err
}

// EconomicIndicators fetches all cost-of-living observations.
func (c *Client) EconomicIndicators(ctx context.Context) ([]models.EconomicIndicator, error) {
	var indicators []models.EconomicIndicator
	err := c.get(ctx, "/economic/indicators", &indicators)
	return indicators, err
}

// IncomeComparisons fetches the middle-vs-working-class pairings.
func (c *Client) IncomeComparisons(ctx context.Context) ([]models.IncomeComparison, error) {
	var comparisons []models.IncomeComparison
	err := c.get(ctx, "/economic/comparison", &comparisons)
	return comparisons, err
}

// Polls fetches all polls with aggregated results, newest first.
func (c *Client) Polls(ctx context.Context) ([]models.Poll, error) {
	var polls []models.Poll
	err := c.get(ctx, "/polls", &polls)
	return polls, err
}

// ActivePoll fetches the currently active poll. ErrNotFound means no
// poll is open.
func (c *Client) ActivePoll(ctx context.Context) (models.Poll, error) {
	var poll models.Poll
	err := c.get(ctx, "/polls/active", &poll)
	return poll, err
}

// Vote casts a vote and returns the updated poll.
func (c *Client) Vote(ctx context.Context, pollID int, vote models.VoteRequest) (models.Poll, error) {
	var poll models.Poll
	err := c.post(ctx, fmt.Sprintf("/polls/%d/vote", pollID), vote, &poll)
	return poll, err
}

// Ask submits a free-text question to the Q&A service.
func (c *Client) Ask(ctx context.Context, question string) (models.AskResponse, error) {
	var answer models.AskResponse
	err := c.post(ctx, "/ask", models.AskQuestion{Question: question}, &answer)
	return answer, err
}

// Reports fetches the hot-topic report summaries.
func (c *Client) Reports(ctx context.Context) ([]models.ReportSummary, error) {
	var reports []models.ReportSummary
	err := c.get(ctx, "/hot-topics/reports", &reports)
	return reports, err
}

// Report fetches one full hot-topic report by slug.
func (c *Client) Report(ctx context.Context, slug string) (models.Report, error) {
	var report models.Report
	err := c.get(ctx, "/hot-topics/reports/"+url.PathEscape(slug), &report)
	return report, err
}

// Export streams a dataset in the requested format. The returned body
// and content type are passed through unmodified; the caller owns
// closing the body.
func (c *Client) Export(ctx context.Context, dataset, format string) (io.ReadCloser, string, error) {
	path := fmt.Sprintf("/export/%s?format=%s", url.PathEscape(dataset), url.QueryEscape(format))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrTransport, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, "", ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, "", newRequestError(resp)
	}

	return resp.Body, resp.Header.Get("Content-Type"), nil
}
