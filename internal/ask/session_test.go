package ask_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/budgetglass/backend/internal/ask"
	"github.com/budgetglass/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAsker answers every question with a canned response, optionally
// blocking until released.
type fakeAsker struct {
	response models.AskResponse
	err      error
	block    chan struct{}

	mu        sync.Mutex
	questions []string
}

func (f *fakeAsker) Ask(_ context.Context, question string) (models.AskResponse, error) {
	f.mu.Lock()
	f.questions = append(f.questions, question)
	f.mu.Unlock()

	if f.block != nil {
		<-f.block
	}
	return f.response, f.err
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	asker := &fakeAsker{response: models.AskResponse{Answer: "The budget is **$3.2B**.", Confidence: 0.92}}
	session := ask.NewSession(asker)

	assert.Equal(t, ask.StateIdle, session.State())
	_, ok := session.Answer()
	assert.False(t, ok)

	view, submitted := session.Submit(context.Background(), "How big is the budget?")
	require.True(t, submitted)
	assert.Equal(t, ask.StateAnswered, session.State())
	assert.Equal(t, "How big is the budget?", view.Question)
	assert.Equal(t, ask.TierHigh, view.Confidence.Tier)

	stored, ok := session.Answer()
	require.True(t, ok)
	assert.Equal(t, view, stored)

	session.Reset()
	assert.Equal(t, ask.StateIdle, session.State())
	_, ok = session.Answer()
	assert.False(t, ok)
}

func TestSessionBlankQuestion(t *testing.T) {
	t.Parallel()

	asker := &fakeAsker{}
	session := ask.NewSession(asker)

	_, submitted := session.Submit(context.Background(), "   ")
	assert.False(t, submitted)
	assert.Equal(t, ask.StateIdle, session.State())
	assert.Empty(t, asker.questions)
}

func TestSessionRejectsConcurrentSubmit(t *testing.T) {
	t.Parallel()

	asker := &fakeAsker{block: make(chan struct{})}
	session := ask.NewSession(asker)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, submitted := session.Submit(context.Background(), "first")
		assert.True(t, submitted)
	}()

	// Wait for the first submission to be in flight
	require.Eventually(t, func() bool {
		return session.State() == ask.StateAwaiting
	}, time.Second, time.Millisecond)

	_, submitted := session.Submit(context.Background(), "second")
	assert.False(t, submitted)

	// Reset is a no-op while a request is in flight
	session.Reset()
	assert.Equal(t, ask.StateAwaiting, session.State())

	close(asker.block)
	<-done

	assert.Equal(t, ask.StateAnswered, session.State())
	assert.Equal(t, []string{"first"}, asker.questions)
}

func TestSessionErrorBecomesAnswer(t *testing.T) {
	t.Parallel()

	asker := &fakeAsker{err: errors.New("the data service responded with HTTP 502")}
	session := ask.NewSession(asker)

	view, submitted := session.Submit(context.Background(), "anything")
	require.True(t, submitted)

	// The failure renders through the same path as a success
	assert.Equal(t, ask.StateAnswered, session.State())
	require.NotEmpty(t, view.Blocks)
	assert.Equal(t, "the data service responded with HTTP 502", view.Blocks[0].Spans[0].Text)
	assert.Equal(t, ask.TierLow, view.Confidence.Tier)
}
