package advice

// Config holds advice generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// ConnectionTestMaxTokens bounds the TestConnection reply.
	ConnectionTestMaxTokens int
}

// DefaultConfig returns the settings the advice prompts are tuned for.
func DefaultConfig() Config {
	return Config{
		MaxTokens:               1000,
		Temperature:             0.7,
		ConnectionTestMaxTokens: 200,
	}
}
