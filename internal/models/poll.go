package models

// PollStatusActive marks the poll currently open for votes.
const PollStatusActive = "active"

// PollOption is one answer in a poll, with its aggregated vote count.
type PollOption struct {
	ID           int    `json:"id" example:"1"`
	OptionText   string `json:"option_text" example:"Yes"`
	DisplayOrder int    `json:"display_order" example:"0"`
	Votes        int    `json:"votes" example:"42"`
}

// Poll is a public opinion poll with aggregated results.
//
// TotalVotes is denormalized by the upstream service and assumed to
// equal the sum of the option counts; it is never recomputed locally.
type Poll struct {
	ID          int          `json:"id" example:"3"`
	Question    string       `json:"question" example:"Should the VAT rate be reduced?"`
	Description *string      `json:"description"`
	Status      string       `json:"status" example:"active"`
	Domain      *string      `json:"domain"`
	StartDate   *string      `json:"start_date"`
	EndDate     *string      `json:"end_date"`
	TotalVotes  int          `json:"total_votes" example:"107"`
	Options     []PollOption `json:"options"`
}

// VoteRequest is the payload for casting a vote.
type VoteRequest struct {
	OptionID    int    `json:"option_id" binding:"required"`
	Fingerprint string `json:"fingerprint,omitempty"`
}
