package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"charm.land/log/v2"

	"github.com/adhdflow/adhdflow/internal/store"
)

// LoggingProvider records each request as an LLM request event and logs
// its outcome. Recording failures never fail the request.
type LoggingProvider struct {
	inner  Provider
	name   string
	events store.EventRepo
	logger *log.Logger
}

// WithLogging wraps p. name is the provider label stored with each event;
// a nil logger uses log.Default().
func WithLogging(p Provider, name string, events store.EventRepo, logger *log.Logger) Provider {
	if logger == nil {
		logger = log.Default()
	}
	return &LoggingProvider{inner: p, name: name, events: events, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	ev := l.event(ctx, req, resp, err, time.Since(start))
	logger := l.logger.With("provider", ev.Provider, "model", ev.Model, "purpose", ev.Purpose, "latency_ms", ev.LatencyMs)
	if err != nil {
		logger.Warn("llm request failed", "err", err)
	} else {
		logger.Debug("llm request", "in", ev.InputTokens, "out", ev.OutputTokens, "stop", resp.StopReason)
	}

	if appendErr := l.events.AppendLLMRequest(ctx, ev); appendErr != nil {
		l.logger.Warn("record llm request event", "err", appendErr)
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func (l *LoggingProvider) event(ctx context.Context, req Request, resp *Response, err error, took time.Duration) store.LLMRequestEventData {
	ev := store.LLMRequestEventData{
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   took.Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			ev.Model = resp.Model
		}
		ev.ResponseBody = resp.Text()
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}
	return ev
}

// transcript renders req as the readable text shown by "adhdflow llm view".
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
