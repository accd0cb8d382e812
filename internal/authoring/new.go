package authoring

import (
	"github.com/nguyentantai21042004/lecture-notes/internal/config"
)

// FromConfig picks the Author for the configured provider. It returns
// (nil, false) when the provider is "none" or its credential is absent; the
// caller decides this once at startup and does not re-check per call.
func FromConfig(cfg *config.Config) (Author, bool) {
	creds := cfg.Credentials
	model := cfg.Authoring.Model

	switch cfg.Authoring.Provider {
	case config.ProviderDeepSeek:
		if creds.DeepSeekKey == "" {
			return nil, false
		}
		baseURL := cfg.Authoring.BaseURL
		if baseURL == "" {
			baseURL = DeepSeekBaseURL
		}
		return NewChat("deepseek", creds.DeepSeekKey, baseURL, model), true

	case config.ProviderOpenAI:
		if creds.OpenAIKey == "" {
			return nil, false
		}
		return NewChat("openai", creds.OpenAIKey, cfg.Authoring.BaseURL, model), true

	case config.ProviderGemini:
		if len(creds.GeminiKeys) == 0 {
			return nil, false
		}
		return NewGemini(creds.GeminiKeys, model), true
	}

	return nil, false
}
