package screen

import (
	"context"
	"io"
	"time"

	"charm.land/log/v2"

	"github.com/adhdflow/adhdflow/internal/advice"
	"github.com/adhdflow/adhdflow/internal/quiz"
	"github.com/adhdflow/adhdflow/internal/session"
	"github.com/adhdflow/adhdflow/internal/store"
)

// Services bundles what the screens read and write. Session and Bank are
// required. Advice and Events may be nil: the results screen then skips
// generation and history is disabled.
type Services struct {
	Session *session.Store
	Bank    *quiz.Bank
	Advice  *advice.Client
	Events  store.EventRepo
	Logger  *log.Logger

	// AdviceTimeout bounds each advice request. Zero means no limit.
	AdviceTimeout time.Duration
}

// Log returns the configured logger or a discarding one.
func (s *Services) Log() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

// AdviceContext derives the context for one advice request.
func (s *Services) AdviceContext() (context.Context, context.CancelFunc) {
	if s.AdviceTimeout > 0 {
		return context.WithTimeout(context.Background(), s.AdviceTimeout)
	}
	return context.WithCancel(context.Background())
}

// AdviceReady reports whether advice can be generated.
func (s *Services) AdviceReady() bool {
	return s.Advice != nil && s.Advice.Ready()
}
