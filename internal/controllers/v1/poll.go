package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/budgetglass/backend/internal/models"
	"github.com/budgetglass/backend/internal/upstream"
	"github.com/budgetglass/backend/internal/viewmodel"
	"github.com/gin-gonic/gin"
)

// PollListResponse wraps all polls.
type PollListResponse struct {
	Data  []viewmodel.PollView `json:"data"`
	Error *string              `json:"error"`
}

// PollResponse wraps one poll. Data is null when no poll is active.
type PollResponse struct {
	Data  *viewmodel.PollView `json:"data"`
	Error *string             `json:"error"`
}

// VoteEditable is the vote payload accepted from clients. The
// fingerprint is optional: when absent, this installation's durable
// device fingerprint is used.
type VoteEditable struct {
	OptionID    int    `json:"option_id" binding:"required" example:"1"` // Option to vote for
	Fingerprint string `json:"fingerprint" example:"1f0f2921-4f2b-47f7-8dcd-ced1f45827fd"`
}

// @Summary		List polls
// @Description	Returns all polls with aggregated results, newest first. An upstream failure surfaces as an error banner on this route.
// @Tags			Polls
// @Produce		json
// @Success		200	{object}	PollListResponse
// @Failure		502	{object}	PollListResponse
// @Router			/v1/polls [get]
func (co *Controller) GetPolls(c *gin.Context) {
	polls, err := co.upstream.Polls(c.Request.Context())
	if err != nil {
		c.JSON(status(err), PollListResponse{Error: errString(err)})
		return
	}

	views := make([]viewmodel.PollView, 0, len(polls))
	for _, poll := range polls {
		views = append(views, viewmodel.NewPollView(poll))
	}

	c.JSON(http.StatusOK, PollListResponse{Data: views})
}

// @Summary		Current poll
// @Description	Returns the currently active poll. With no active poll the widget renders nothing, so this responds 200 with null data rather than an error.
// @Tags			Polls
// @Produce		json
// @Success		200	{object}	PollResponse
// @Failure		502	{object}	PollResponse
// @Router			/v1/polls/current [get]
func (co *Controller) GetCurrentPoll(c *gin.Context) {
	poll, err := co.upstream.ActivePoll(c.Request.Context())
	if err != nil {
		// No active poll is a graceful-empty render, not a failure
		if errors.Is(err, upstream.ErrNotFound) {
			c.JSON(http.StatusOK, PollResponse{})
			return
		}

		c.JSON(status(err), PollResponse{Error: errString(err)})
		return
	}

	view := viewmodel.NewPollView(poll)
	c.JSON(http.StatusOK, PollResponse{Data: &view})
}

// @Summary		Cast vote
// @Description	Casts a vote and returns the updated poll. Votes are deduplicated by an anonymous device fingerprint; when the client does not supply one, the installation's durable fingerprint is used.
// @Tags			Polls
// @Accept			json
// @Produce		json
// @Success		200		{object}	PollResponse
// @Failure		400		{object}	PollResponse
// @Failure		502		{object}	PollResponse
// @Param			id		path		int				true	"Poll ID"
// @Param			vote	body		VoteEditable	true	"Vote"
// @Router			/v1/polls/{id}/vote [post]
func (co *Controller) Vote(c *gin.Context) {
	pollID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		message := "the poll ID must be a number"
		c.JSON(http.StatusBadRequest, PollResponse{Error: &message})
		return
	}

	var editable VoteEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		message := "the body of your request contains invalid or un-parseable data. Please check and try again"
		c.JSON(http.StatusBadRequest, PollResponse{Error: &message})
		return
	}

	fingerprint := editable.Fingerprint
	if fingerprint == "" {
		fingerprint, err = co.identity.GetOrCreate()
		if err != nil {
			c.JSON(status(err), PollResponse{Error: errString(err)})
			return
		}
	}

	poll, err := co.upstream.Vote(c.Request.Context(), pollID, models.VoteRequest{
		OptionID:    editable.OptionID,
		Fingerprint: fingerprint,
	})
	if err != nil {
		c.JSON(status(err), PollResponse{Error: errString(err)})
		return
	}

	view := viewmodel.NewPollView(poll)
	c.JSON(http.StatusOK, PollResponse{Data: &view})
}
