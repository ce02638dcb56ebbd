// Package llm provides the generative-text provider abstraction and its
// concrete implementations. The provider is selected once at process start;
// callers only see the Client interface.
package llm

// Provider identifies a generative-text provider family.
type Provider string

// Supported providers. Only Gemini is implemented today; the constants keep
// the configuration surface stable as families are added.
const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Config selects the provider family and model for the process.
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default provider configuration (Gemini).
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultModel,
	}
}

// GenerationParams control sampling for a single provider call. Chat uses a
// higher temperature for conversational variety; recommend uses a lower one
// because the output must be deterministic structured JSON.
type GenerationParams struct {
	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32
}

// ChatParams returns the sampling parameters for conversational replies.
func ChatParams() GenerationParams {
	return GenerationParams{
		Temperature:     0.7,
		TopP:            0.8,
		TopK:            40,
		MaxOutputTokens: 2048,
	}
}

// RecommendParams returns the sampling parameters for structured
// recommendation output.
func RecommendParams() GenerationParams {
	return GenerationParams{
		Temperature:     0.3,
		TopP:            0.8,
		TopK:            40,
		MaxOutputTokens: 2048,
	}
}
