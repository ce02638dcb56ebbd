// Package types provides type definitions for structured data used throughout the course-advisor system.
package types

// Difficulty levels recognized by the catalog and the level-inference heuristic.
// Provider responses may carry other values; they are kept as opaque lowercase text.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// MaxRecommendations is the upper bound on courses returned per request.
const MaxRecommendations = 12

// Course is the canonical recommendation unit returned to callers.
type Course struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Skills        []string `json:"skills"`
	Prerequisites []string `json:"prerequisites"`
	Price         string   `json:"price"`
	Difficulty    string   `json:"difficulty"`
	Duration      string   `json:"duration"`
	Roadmap       []string `json:"roadmap"`
	// RelevanceScore is the confidence that this course matches the profile,
	// in [0.0, 1.0]. Higher is better.
	RelevanceScore float64 `json:"relevance_score"`
}

// UserProfile is the free-text input a recommendation is computed from.
// It is constructed per request and never persisted.
type UserProfile struct {
	Education      string
	Goals          string
	SupportingText string
}

// CombinedText returns the lowercase-ready concatenation of education and
// goals used by the local similarity scorer.
func (p UserProfile) CombinedText() string {
	return p.Education + " " + p.Goals
}

// RecommendationResult holds ranked courses, sorted descending by relevance
// score and truncated to MaxRecommendations.
type RecommendationResult struct {
	Courses []Course `json:"courses"`
}
