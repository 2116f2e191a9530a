package llm

import "strings"

// modelAliases maps the short names accepted in ADHDFLOW_*_MODEL to vendor
// model IDs. Anything else is passed through unchanged.
var modelAliases = map[string]map[string]string{
	ProviderGroq: {
		"llama3-70b": "llama3-70b-8192",
		"llama3-8b":  "llama3-8b-8192",
		"llama-3.3":  "llama-3.3-70b-versatile",
	},
	ProviderAnthropic: {
		"claude-haiku":  "claude-haiku-4-5-20251001",
		"claude-sonnet": "claude-sonnet-4-20250514",
	},
	ProviderOpenAI: {
		"gpt-mini": "gpt-4o-mini",
	},
	ProviderGemini: {
		"gemini-flash": "gemini-2.0-flash",
		"gemini-pro":   "gemini-2.0-pro",
	},
}

// defaultModels is used when a provider has no model configured.
var defaultModels = map[string]string{
	ProviderGroq:       "llama3-70b-8192",
	ProviderAnthropic:  "claude-haiku",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderGemini:     "gemini-flash",
	ProviderOpenRouter: "meta-llama/llama-3-70b-instruct",
}

// resolveModel returns the vendor model ID for name under provider.
func resolveModel(provider, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultModels[provider]
	}
	if id, ok := modelAliases[provider][name]; ok {
		return id
	}
	return name
}
