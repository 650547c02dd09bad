package ask

import (
	"context"
	"strings"
	"sync"

	"github.com/budgetglass/backend/internal/models"
)

// Session states.
const (
	StateIdle     = "idle"
	StateAwaiting = "awaiting"
	StateAnswered = "answered"
)

// Asker submits a question to the Q&A service. Satisfied by
// *upstream.Client; faked in tests.
type Asker interface {
	Ask(ctx context.Context, question string) (models.AskResponse, error)
}

// Session is the ask-panel state machine: Idle until a question is
// submitted, Awaiting while the request is in flight, Answered once a
// response is rendered, back to Idle on Reset.
//
// A failed request still produces an Answered state: the error text
// stands in as the answer with confidence zero, so the rendering path
// is exercised identically either way and the user never sees a silent
// failure.
type Session struct {
	asker Asker

	mu     sync.Mutex
	state  string
	answer *AnswerView
}

// NewSession returns an idle session.
func NewSession(asker Asker) *Session {
	return &Session{asker: asker, state: StateIdle}
}

// State reports the current lifecycle state.
func (s *Session) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Answer returns the rendered answer, if one is stored.
func (s *Session) Answer() (AnswerView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.answer == nil {
		return AnswerView{}, false
	}
	return *s.answer, true
}

// Submit runs one question through the lifecycle and returns the
// rendered answer.
//
// A blank question or a submission while another request is in flight
// is a no-op, reported by the second return value. Any stored answer is
// discarded before the request starts so stale content is never shown
// alongside a loading state.
func (s *Session) Submit(ctx context.Context, question string) (AnswerView, bool) {
	question = strings.TrimSpace(question)
	if question == "" {
		return AnswerView{}, false
	}

	s.mu.Lock()
	if s.state == StateAwaiting {
		s.mu.Unlock()
		return AnswerView{}, false
	}
	s.state = StateAwaiting
	s.answer = nil
	s.mu.Unlock()

	resp, err := s.asker.Ask(ctx, question)
	if err != nil {
		resp = models.AskResponse{
			Answer:     err.Error(),
			Confidence: 0,
		}
	}

	view := Render(question, resp)

	s.mu.Lock()
	s.answer = &view
	s.state = StateAnswered
	s.mu.Unlock()

	return view, true
}

// Reset discards the stored answer and returns to Idle, the "ask
// another question" affordance.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateAwaiting {
		return
	}
	s.state = StateIdle
	s.answer = nil
}
