package v1

import (
	"net/http"

	"github.com/budgetglass/backend/internal/ask"
	"github.com/gin-gonic/gin"
)

// AskEditable is the question payload.
type AskEditable struct {
	Question string `json:"question" example:"How much was allocated for education this year?"`
}

// AskAnswerResponse wraps a rendered answer.
type AskAnswerResponse struct {
	Data  *ask.AnswerView `json:"data"`
	Error *string         `json:"error"`
}

// AskStateResponse reports the session lifecycle state.
type AskStateResponse struct {
	State string `json:"state" example:"idle"`
}

// @Summary		Ask a question
// @Description	Submits a free-text question and returns the rendered answer: prose blocks, key facts, optional trend chart, citations and a confidence tier. A failed Q&A call still renders through the same answer layout with the error text as the answer, so there is never a silent failure.
// @Tags			Ask
// @Accept			json
// @Produce		json
// @Success		200			{object}	AskAnswerResponse
// @Failure		400			{object}	AskAnswerResponse
// @Failure		409			{object}	AskAnswerResponse
// @Param			question	body		AskEditable	true	"Question"
// @Router			/v1/ask [post]
func (co *Controller) Ask(c *gin.Context) {
	var editable AskEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, AskAnswerResponse{Error: errString(errQuestionEmpty)})
		return
	}

	view, submitted := co.session.Submit(c.Request.Context(), editable.Question)
	if !submitted {
		// Either a blank question or a request already in flight;
		// re-submission while awaiting is a no-op.
		if co.session.State() == ask.StateAwaiting {
			c.JSON(http.StatusConflict, AskAnswerResponse{Error: errString(errAskInFlight)})
			return
		}

		c.JSON(http.StatusBadRequest, AskAnswerResponse{Error: errString(errQuestionEmpty)})
		return
	}

	c.JSON(http.StatusOK, AskAnswerResponse{Data: &view})
}

// @Summary		Reset the ask panel
// @Description	Discards the stored answer and returns the session to idle ("ask another question")
// @Tags			Ask
// @Produce		json
// @Success		200	{object}	AskStateResponse
// @Router			/v1/ask/reset [post]
func (co *Controller) ResetAsk(c *gin.Context) {
	co.session.Reset()
	c.JSON(http.StatusOK, AskStateResponse{State: co.session.State()})
}
