package form

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/saulo-duarte/kiku/internal/config"
	"github.com/saulo-duarte/kiku/internal/draft"
)

var (
	ErrInFlight   = errors.New("a generation request is already in flight")
	ErrIncomplete = errors.New("theme and background are required")
	ErrReset      = errors.New("form was reset while the request was in flight")
	ErrNoResponse = errors.New("generation returned no draft")
)

// Submitter dispatches a generation request, locally or over the network.
type Submitter interface {
	Generate(ctx context.Context, req draft.GenerateRequest) (*draft.GenerateResponse, error)
}

type SubmitterFunc func(ctx context.Context, req draft.GenerateRequest) (*draft.GenerateResponse, error)

func (f SubmitterFunc) Generate(ctx context.Context, req draft.GenerateRequest) (*draft.GenerateResponse, error) {
	return f(ctx, req)
}

// ServiceSubmitter runs generation in process.
func ServiceSubmitter(svc draft.Service) Submitter {
	return SubmitterFunc(svc.GenerateDraft)
}

// Session is the state of one questionnaire form, from first keystroke to
// reset. It is owned by a single user but guards its lifecycle so a second
// submit cannot race the first.
type Session struct {
	mu         sync.Mutex
	id         uuid.UUID
	theme      string
	background string
	selected   map[draft.UnheardContext]bool
	lifecycle  Lifecycle
	result     *draft.GenerateResponse
	// generation is bumped by Reset so an outstanding Submit can tell its
	// form is gone.
	generation uint64
}

func NewSession() *Session {
	return &Session{
		id:        uuid.New(),
		selected:  make(map[draft.UnheardContext]bool),
		lifecycle: LifecycleIdle,
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) SetTheme(theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
}

func (s *Session) SetBackground(background string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.background = background
}

// Toggle flips the selection of c. Labels outside the vocabulary are ignored.
func (s *Session) Toggle(c draft.UnheardContext) {
	if !c.IsValid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected[c] {
		delete(s.selected, c)
	} else {
		s.selected[c] = true
	}
}

// Selected returns the selected labels in vocabulary order.
func (s *Session) Selected() []draft.UnheardContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedLocked()
}

func (s *Session) selectedLocked() []draft.UnheardContext {
	out := make([]draft.UnheardContext, 0, len(s.selected))
	for _, c := range draft.AllUnheardContexts {
		if s.selected[c] {
			out = append(out, c)
		}
	}
	return out
}

func (s *Session) Lifecycle() Lifecycle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lifecycle
}

func (s *Session) Result() *draft.GenerateResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

func (s *Session) CanSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completeLocked() && s.lifecycle == LifecycleIdle
}

func (s *Session) completeLocked() bool {
	return strings.TrimSpace(s.theme) != "" && strings.TrimSpace(s.background) != ""
}

// Submit sends the trimmed form to sub. Input is kept on failure so the
// caller can retry.
func (s *Session) Submit(ctx context.Context, sub Submitter) (*draft.GenerateResponse, error) {
	log := config.WithContext(ctx).WithField("session_id", s.id.String())

	s.mu.Lock()
	if s.lifecycle == LifecycleInFlight {
		s.mu.Unlock()
		return nil, ErrInFlight
	}
	if !s.completeLocked() {
		s.mu.Unlock()
		return nil, ErrIncomplete
	}
	req := draft.GenerateRequest{
		Theme:           strings.TrimSpace(s.theme),
		Background:      strings.TrimSpace(s.background),
		UnheardContexts: s.selectedLocked(),
	}
	s.lifecycle = LifecycleInFlight
	generation := s.generation
	s.mu.Unlock()

	resp, err := sub.Generate(ctx, req)
	if err == nil && resp == nil {
		err = ErrNoResponse
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lifecycle = LifecycleIdle
	if err != nil {
		log.WithError(err).Warn("generation failed, form input kept")
		return nil, err
	}
	if generation != s.generation {
		log.Info("form reset during generation, draft discarded")
		return nil, ErrReset
	}
	s.result = resp
	log.WithField("mode", resp.Mode).Info("draft received")
	return resp, nil
}

// Reset discards the result and every input. A request still in flight
// keeps the session in-flight until it returns, and its draft is dropped.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = ""
	s.background = ""
	s.selected = make(map[draft.UnheardContext]bool)
	s.result = nil
	s.generation++
}
