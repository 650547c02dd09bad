package viewmodel

import (
	"github.com/budgetglass/backend/internal/format"
	"github.com/budgetglass/backend/internal/models"
)

// PollOptionView is one poll answer with its derived share of the vote.
type PollOptionView struct {
	ID      int    `json:"id" example:"1"`
	Text    string `json:"text" example:"Yes"`
	Votes   int    `json:"votes" example:"42"`
	Percent string `json:"percent" example:"39%"`
}

// PollView is a render-ready poll.
type PollView struct {
	ID          int              `json:"id" example:"3"`
	Question    string           `json:"question"`
	Description string           `json:"description,omitempty"`
	Status      string           `json:"status" example:"active"`
	Domain      string           `json:"domain,omitempty" example:"budget"`
	StartDate   string           `json:"start_date,omitempty" example:"May 1, 2024"`
	EndDate     string           `json:"end_date,omitempty" example:"May 31, 2024"`
	TotalVotes  int              `json:"total_votes" example:"107"`
	Options     []PollOptionView `json:"options"`
}

// NewPollView normalizes a poll. Option percentages are derived from
// the denormalized total; with zero votes every option shows "0%"
// rather than failing the division.
func NewPollView(poll models.Poll) PollView {
	view := PollView{
		ID:         poll.ID,
		Question:   poll.Question,
		Status:     poll.Status,
		TotalVotes: poll.TotalVotes,
		Options:    make([]PollOptionView, 0, len(poll.Options)),
	}

	if poll.Description != nil {
		view.Description = *poll.Description
	}
	if poll.Domain != nil {
		view.Domain = *poll.Domain
	}
	if poll.StartDate != nil {
		view.StartDate = format.Date(*poll.StartDate)
	}
	if poll.EndDate != nil {
		view.EndDate = format.Date(*poll.EndDate)
	}

	for _, option := range poll.Options {
		percent := format.Share(0)
		if poll.TotalVotes > 0 {
			percent = format.Share(float64(option.Votes) / float64(poll.TotalVotes) * 100)
		}

		view.Options = append(view.Options, PollOptionView{
			ID:      option.ID,
			Text:    option.OptionText,
			Votes:   option.Votes,
			Percent: percent,
		})
	}

	return view
}
