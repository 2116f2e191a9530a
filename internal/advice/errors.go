package advice

import "errors"

var (
	// ErrNotInitialized is returned when the client has no LLM provider,
	// usually because no API key is configured.
	ErrNotInitialized = errors.New("advice client not initialized")

	// ErrGenerationFailed wraps upstream failures and empty replies.
	ErrGenerationFailed = errors.New("failed to generate ADHD management tips")
)
