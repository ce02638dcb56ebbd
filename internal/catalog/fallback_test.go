package catalog

import (
	"testing"

	"github.com/jonathan/course-advisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferLevel(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"no cue defaults to beginner", "completed a cs degree want to learn machine learning", types.DifficultyBeginner},
		{"beginner cue", "I am new to programming", types.DifficultyBeginner},
		{"introduction cue", "looking for an introduction to data", types.DifficultyBeginner},
		{"intermediate cue", "I have some experience with Python", types.DifficultyIntermediate},
		{"familiar cue", "familiar with SQL and statistics", types.DifficultyIntermediate},
		{"advanced cue", "I am an expert developer", types.DifficultyAdvanced},
		{"advanced wins over beginner cue", "professional looking for a new challenge", types.DifficultyAdvanced},
		{"empty text", "", types.DifficultyBeginner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferLevel(tt.text))
		})
	}
}

func TestRecommend_SkillAndLevelMatch(t *testing.T) {
	cat := New([]Entry{
		{
			Title:       "Foundations of Artificial Intelligence",
			Description: "A gentle introduction to AI concepts.",
			Skills:      []string{"Machine Learning Basics"},
			Price:       "$49",
			Difficulty:  "beginner",
			Duration:    "6 weeks",
			Roadmap:     []string{"step 1"},
		},
	})

	courses := cat.Recommend(types.UserProfile{
		Education: "completed a CS degree",
		Goals:     "want to learn machine learning",
	})

	require.Len(t, courses, 1)
	// Skill match (+0.2) plus inferred-beginner difficulty match (+0.2).
	assert.GreaterOrEqual(t, courses[0].RelevanceScore, 0.4)
	assert.Equal(t, "Foundations of Artificial Intelligence", courses[0].Title)
}

func TestRecommend_ExcludesEntriesAtOrBelowFloor(t *testing.T) {
	cat := New([]Entry{
		{Title: "Underwater Basket Weaving", Description: "unrelated", Difficulty: "advanced",
			Skills: []string{"weaving"}, Price: "$10", Duration: "1 week", Roadmap: []string{"weave"}},
		{Title: "Go Programming", Description: "learn go services", Difficulty: "beginner",
			Skills: []string{"Go"}, Price: "$50", Duration: "4 weeks", Roadmap: []string{"install go"}},
	})

	courses := cat.Recommend(types.UserProfile{Goals: "I want to learn Go programming"})

	require.Len(t, courses, 1)
	assert.Equal(t, "Go Programming", courses[0].Title)
	for _, c := range courses {
		assert.Greater(t, c.RelevanceScore, 0.2)
	}
}

func TestRecommend_SortedDescending(t *testing.T) {
	cat := New([]Entry{
		{Title: "Partial Match", Description: "nothing shared", Difficulty: "beginner",
			Skills: []string{"python"}, Price: "$1", Duration: "1w", Roadmap: []string{"go"}},
		{Title: "Strong Match", Description: "python data analysis", Difficulty: "beginner",
			Skills: []string{"python"}, Prerequisites: []string{"statistics"}, Price: "$1",
			Duration: "1w", Roadmap: []string{"go"}},
	})

	courses := cat.Recommend(types.UserProfile{
		Education: "studied statistics",
		Goals:     "python data analysis",
	})

	require.NotEmpty(t, courses)
	for i := 1; i < len(courses); i++ {
		assert.GreaterOrEqual(t, courses[i-1].RelevanceScore, courses[i].RelevanceScore)
	}
	assert.Equal(t, "Strong Match", courses[0].Title)
}

func TestRecommend_EmptyResultIsLegitimate(t *testing.T) {
	cat := New([]Entry{
		{Title: "Quantum Chemistry", Description: "orbitals", Difficulty: "advanced",
			Skills: []string{"chemistry"}, Price: "$1", Duration: "1w", Roadmap: []string{"x"}},
	})

	courses := cat.Recommend(types.UserProfile{Goals: "improve my cooking"})
	assert.Empty(t, courses)
}

func TestScoreEntry_Bounds(t *testing.T) {
	entry := Entry{
		Title:         "go",
		Description:   "go",
		Skills:        []string{"go"},
		Prerequisites: []string{"go"},
		Difficulty:    "beginner",
	}

	// Every weight fires and the sum stays within the ceiling.
	score := scoreEntry(entry, "i am new to go", "beginner")
	assert.LessOrEqual(t, score, 1.0)
	assert.InDelta(t, 0.9, score, 1e-9)

	// Nothing fires: floored at 0.1.
	score = scoreEntry(Entry{Title: "zzz", Description: "zzz", Difficulty: "advanced"}, "unrelated text", "beginner")
	assert.Equal(t, 0.1, score)
}
