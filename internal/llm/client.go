package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is an abstraction over generative-text providers. A single Generate
// call issues one outbound request and returns the provider's raw text reply.
// Retry policy, if any, belongs to the caller: the call has no side effects
// beyond reading, so repeating it is always safe.
type Client interface {
	// Generate produces raw text from a composed prompt with the given
	// sampling parameters.
	Generate(ctx context.Context, prompt string, params GenerationParams) (string, error)
	// Model returns the configured model identifier.
	Model() string
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a client for the configured provider family.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	// case ProviderOpenAI:
	//     return NewOpenAIClient(ctx, config, apiKey)
	// case ProviderAnthropic:
	//     return NewClaudeClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini-backed client.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Generate issues a single generateContent call and unwraps the reply
// envelope into raw text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	modelName := c.config.Model
	if modelName == "" {
		modelName = DefaultModel
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(params.Temperature)
	model.SetTopP(params.TopP)
	model.SetTopK(params.TopK)
	model.SetMaxOutputTokens(params.MaxOutputTokens)
	model.SafetySettings = defaultSafetySettings()

	log.Printf("[llm] %s request (%d chars): %s", modelName, len(prompt), truncateForLog(prompt))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &UnavailableError{
			Provider: ProviderGemini,
			Message:  "generateContent call failed",
			Cause:    err,
		}
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}

	log.Printf("[llm] %s response (%d chars): %s", modelName, len(text), truncateForLog(text))
	return text, nil
}

// Model returns the configured model identifier.
func (c *GeminiClient) Model() string {
	return c.config.Model
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// defaultSafetySettings blocks medium-and-above harmful content across all
// categories for every call.
func defaultSafetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}
	settings := make([]*genai.SafetySetting, 0, len(categories))
	for _, cat := range categories {
		settings = append(settings, &genai.SafetySetting{
			Category:  cat,
			Threshold: genai.HarmBlockMediumAndAbove,
		})
	}
	return settings
}

// extractTextFromResponse locates the generated text inside the Gemini reply
// envelope.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &MalformedResponseError{
			Provider: ProviderGemini,
			Message:  "no candidates in response",
		}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &MalformedResponseError{
			Provider: ProviderGemini,
			Message:  "no content parts in response",
		}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", &MalformedResponseError{
			Provider: ProviderGemini,
			Message:  "no text parts in response",
		}
	}

	return strings.Join(parts, ""), nil
}

// truncateForLog bounds diagnostic log lines to a readable length.
func truncateForLog(s string) string {
	const limit = 500
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
