package recommend

import (
	"context"
	"fmt"

	"github.com/jonathan/course-advisor/internal/catalog"
	"github.com/jonathan/course-advisor/internal/ingest"
	"github.com/jonathan/course-advisor/internal/llm"
	"github.com/jonathan/course-advisor/internal/types"
)

// Service runs the recommendation pipeline. Every invocation is stateless
// given its input; the only shared state is the read-only catalog.
type Service struct {
	client llm.Client // nil when no generative provider is configured
	cat    *catalog.Catalog
}

// NewService builds a Service. A nil client selects the local catalog path
// for every recommendation.
func NewService(client llm.Client, cat *catalog.Catalog) *Service {
	return &Service{client: client, cat: cat}
}

// HasProvider reports whether a generative provider is configured.
func (s *Service) HasProvider() bool {
	return s.client != nil
}

// Chat sends a conversational message through the provider and returns the
// raw reply text unmodified.
func (s *Service) Chat(ctx context.Context, message string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("chat requires a configured provider")
	}
	prompt := BuildChatPrompt(message)
	return s.client.Generate(ctx, prompt, llm.ChatParams())
}

// Recommend produces ranked course recommendations for a profile. With a
// provider configured it composes the instruction, issues one provider call,
// and runs extraction, strict validation, score normalization, and ranking
// over the reply. Without one it scores the local catalog. Provider failures
// are returned to the caller; falling back to the catalog on
// ProviderUnavailable is the caller's decision, not this method's.
func (s *Service) Recommend(ctx context.Context, profile types.UserProfile) ([]types.Course, error) {
	profile.SupportingText = ingest.PlainText(profile.SupportingText)

	if s.client == nil {
		return s.RecommendLocal(profile), nil
	}

	prompt := BuildRecommendPrompt(profile)
	raw, err := s.client.Generate(ctx, prompt, llm.RecommendParams())
	if err != nil {
		return nil, err
	}

	candidate := ExtractCandidate(raw)
	courses, err := validateBatch(raw, candidate)
	if err != nil {
		return nil, err
	}

	normalized := normalizeScores(courses)
	return rank(normalized, types.MaxRecommendations), nil
}

// RecommendLocal scores the catalog directly, without any external call.
// Used as the sole path when no provider is configured and as the degraded
// mode when the provider is unavailable.
func (s *Service) RecommendLocal(profile types.UserProfile) []types.Course {
	if s.cat == nil {
		return nil
	}
	return s.cat.Recommend(profile)
}
