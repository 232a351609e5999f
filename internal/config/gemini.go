package config

// DefaultModel is the Gemini model used for gift generation.
const DefaultModel = "gemini-2.5-flash"

// GeminiConfig configures the generative-text provider.
type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`

	// BaseURL overrides the API endpoint (proxies, tests).
	BaseURL string `yaml:"base_url"`
}

// HasAPIKey reports whether generation can reach the provider at all.
func (g GeminiConfig) HasAPIKey() bool {
	return g.APIKey != ""
}
