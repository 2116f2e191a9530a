package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adhdflow/adhdflow/internal/quiz"
	"github.com/adhdflow/adhdflow/internal/store"
	"github.com/adhdflow/adhdflow/internal/textutil"
)

var (
	// ErrInvalidEmail is returned by SetEmail for a malformed address.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrNoResults is returned when results are requested before completion.
	ErrNoResults = errors.New("quiz not completed")
)

// Persister stores the encoded session under a bucket.
// store.StateRepo satisfies it.
type Persister interface {
	Load(ctx context.Context, bucket string) ([]byte, error)
	Save(ctx context.Context, bucket string, data []byte) error
	Delete(ctx context.Context, bucket string) error
}

// ResultRecorder receives one event per completed quiz.
// store.EventRepo satisfies it.
type ResultRecorder interface {
	AppendResult(ctx context.Context, data store.ResultEventData) error
}

// Store owns the quiz session. Every mutation is persisted before it returns.
type Store struct {
	mu        sync.Mutex
	state     State
	persister Persister
	bucket    string
	recorder  ResultRecorder
	now       func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithBucket overrides the storage bucket name.
func WithBucket(bucket string) Option {
	return func(s *Store) { s.bucket = bucket }
}

// WithRecorder records a result event whenever the quiz is completed.
func WithRecorder(r ResultRecorder) Option {
	return func(s *Store) { s.recorder = r }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open loads the session stored in the bucket, or starts a fresh one.
func Open(ctx context.Context, p Persister, opts ...Option) (*Store, error) {
	s := &Store{
		persister: p,
		bucket:    DefaultBucket,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := p.Load(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if data == nil {
		s.state = s.freshState()
		return s, nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	s.state = env.State
	if s.state.SessionID == "" {
		s.state.SessionID = uuid.NewString()
	}
	return s, nil
}

// Bucket returns the storage bucket name.
func (s *Store) Bucket() string {
	return s.bucket
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// SetCurrentQuestionIndex records which question is on screen.
func (s *Store) SetCurrentQuestionIndex(ctx context.Context, index int) error {
	if index < 0 {
		return fmt.Errorf("question index %d out of range", index)
	}
	return s.update(ctx, func(st *State) error {
		st.CurrentQuestionIndex = index
		return nil
	})
}

// AddAnswer stores a, replacing any earlier answer to the same question.
func (s *Store) AddAnswer(ctx context.Context, a quiz.Answer) error {
	return s.update(ctx, func(st *State) error {
		kept := st.Answers[:0:0]
		for _, prev := range st.Answers {
			if prev.QuestionID != a.QuestionID {
				kept = append(kept, prev)
			}
		}
		st.Answers = append(kept, a)
		return nil
	})
}

// SetFirstName stores the trimmed first name.
func (s *Store) SetFirstName(ctx context.Context, name string) error {
	return s.update(ctx, func(st *State) error {
		st.FirstName = strings.TrimSpace(name)
		return nil
	})
}

// SetEmail stores the trimmed address. An empty address clears it.
func (s *Store) SetEmail(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email != "" && !textutil.ValidEmail(email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return s.update(ctx, func(st *State) error {
		st.Email = email
		return nil
	})
}

// MarkComplete flags the quiz as finished.
func (s *Store) MarkComplete(ctx context.Context) error {
	return s.update(ctx, func(st *State) error {
		st.IsComplete = true
		return nil
	})
}

// SetResults stores a copy of r.
func (s *Store) SetResults(ctx context.Context, r quiz.Results) error {
	return s.update(ctx, func(st *State) error {
		c := r.Clone()
		st.Results = &c
		return nil
	})
}

// Complete scores the recorded answers against bank, stores the results,
// marks the quiz complete and records a result event.
func (s *Store) Complete(ctx context.Context, bank *quiz.Bank) (quiz.Results, error) {
	var (
		results quiz.Results
		event   store.ResultEventData
	)
	err := s.update(ctx, func(st *State) error {
		results = bank.Compute(st.Answers)
		c := results.Clone()
		st.Results = &c
		st.IsComplete = true

		event = store.ResultEventData{
			SessionID:         st.SessionID,
			FirstName:         st.FirstName,
			ADHDType:          string(results.ADHDType),
			InattentiveScore:  results.InattentiveScore,
			HyperactiveScore:  results.HyperactiveScore,
			CombinedScore:     results.CombinedScore,
			FocusScore:        results.FocusScore,
			OrganizationScore: results.OrganizationScore,
			PrimaryChallenges: results.Clone().PrimaryChallenges,
			AnswerCount:       len(st.Answers),
			BankVersion:       bank.Version,
		}
		return nil
	})
	if err != nil {
		return quiz.Results{}, err
	}

	if s.recorder != nil {
		if err := s.recorder.AppendResult(ctx, event); err != nil {
			return results, fmt.Errorf("record result: %w", err)
		}
	}
	return results, nil
}

// Results returns the stored results, or ErrNoResults if the quiz is not
// complete.
func (s *Store) Results() (quiz.Results, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.HasResults() {
		return quiz.Results{}, ErrNoResults
	}
	return s.state.Results.Clone(), nil
}

// Reset discards the session and starts a fresh one.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persister.Delete(ctx, s.bucket); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	s.state = s.freshState()
	return nil
}

// update applies fn to a copy of the state, persists it, and only then
// makes it current.
func (s *Store) update(ctx context.Context, fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	now := s.now().UTC()
	if next.StartedAt.IsZero() {
		next.StartedAt = now
	}
	next.UpdatedAt = now

	if err := s.save(ctx, next); err != nil {
		return err
	}
	s.state = next
	return nil
}

func (s *Store) save(ctx context.Context, st State) error {
	data, err := json.Marshal(envelope{State: st, Version: stateVersion})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.persister.Save(ctx, s.bucket, data); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *Store) freshState() State {
	return State{
		Answers:   []quiz.Answer{},
		SessionID: uuid.NewString(),
	}
}
