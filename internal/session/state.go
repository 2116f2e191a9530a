package session

import (
	"time"

	"github.com/adhdflow/adhdflow/internal/quiz"
)

// DefaultBucket is the storage bucket the session is persisted under.
const DefaultBucket = "adhd-quiz-storage"

// stateVersion is written into the persisted envelope.
const stateVersion = 0

// State is the persisted quiz session.
type State struct {
	CurrentQuestionIndex int           `json:"currentQuestionIndex"`
	Answers              []quiz.Answer `json:"answers"`
	FirstName            string        `json:"firstName"`
	Email                string        `json:"email"`
	IsComplete           bool          `json:"isComplete"`
	Results              *quiz.Results `json:"results"`

	SessionID string    `json:"sessionId,omitempty"`
	StartedAt time.Time `json:"startedAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// envelope is the on-disk wrapper around State.
type envelope struct {
	State   State `json:"state"`
	Version int   `json:"version"`
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	out.Answers = append([]quiz.Answer{}, s.Answers...)
	if s.Results != nil {
		r := s.Results.Clone()
		out.Results = &r
	}
	return out
}

// Answer returns the recorded answer for questionID, if any.
func (s State) Answer(questionID int) (quiz.Answer, bool) {
	for _, a := range s.Answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return quiz.Answer{}, false
}

// HasResults reports whether the session holds scored results.
func (s State) HasResults() bool {
	return s.IsComplete && s.Results != nil
}

// InProgress reports whether a quiz was started but not finished.
func (s State) InProgress() bool {
	return !s.IsComplete && (len(s.Answers) > 0 || s.CurrentQuestionIndex > 0)
}
