package catalog

import (
	"sort"
	"strings"

	"github.com/jonathan/course-advisor/internal/types"
)

// Additive scoring weights for the local similarity heuristic.
const (
	titleMatchWeight        = 0.3
	skillMatchWeight        = 0.2
	levelMatchWeight        = 0.2
	prerequisiteMatchWeight = 0.2
)

// Score bounds and the inclusion floor. Entries scoring at or below
// relevanceFloor are excluded entirely rather than ranked low.
const (
	scoreFloor     = 0.1
	scoreCeiling   = 1.0
	relevanceFloor = 0.2
)

// levelCues are substrings of the user text that indicate a difficulty level.
var levelCues = map[string][]string{
	types.DifficultyBeginner:     {"new", "start", "basic", "fundamental", "introduction"},
	types.DifficultyIntermediate: {"intermediate", "some experience", "familiar"},
	types.DifficultyAdvanced:     {"advanced", "expert", "professional"},
}

// InferLevel scans free text for level-indicative terms, defaulting to
// beginner when no cue matches. Advanced cues win over intermediate, which
// win over beginner, so the strongest stated level is used.
func InferLevel(text string) string {
	lower := strings.ToLower(text)
	for _, level := range []string{types.DifficultyAdvanced, types.DifficultyIntermediate, types.DifficultyBeginner} {
		for _, cue := range levelCues[level] {
			if strings.Contains(lower, cue) {
				return level
			}
		}
	}
	return types.DifficultyBeginner
}

// Recommend computes relevance for every catalog entry directly from the
// user profile, without any external call. The result is sorted descending
// by score and truncated to the recommendation cap. An empty result is
// legitimate: it means nothing in the catalog cleared the relevance floor.
func (c *Catalog) Recommend(profile types.UserProfile) []types.Course {
	combined := strings.ToLower(profile.CombinedText())
	level := InferLevel(combined)

	courses := make([]types.Course, 0, len(c.entries))
	for _, entry := range c.entries {
		score := scoreEntry(entry, combined, level)
		if score <= relevanceFloor {
			continue
		}
		courses = append(courses, types.Course{
			Title:          entry.Title,
			Description:    entry.Description,
			Skills:         entry.Skills,
			Prerequisites:  entry.Prerequisites,
			Price:          entry.Price,
			Difficulty:     entry.Difficulty,
			Duration:       entry.Duration,
			Roadmap:        entry.Roadmap,
			RelevanceScore: score,
		})
	}

	sort.SliceStable(courses, func(i, j int) bool {
		return courses[i].RelevanceScore > courses[j].RelevanceScore
	})
	if len(courses) > types.MaxRecommendations {
		courses = courses[:types.MaxRecommendations]
	}
	return courses
}

// skillMatches reports whether a catalog skill is present in the combined
// user text. A whole-skill substring match wins; otherwise a skill counts as
// present when at least half of its significant words appear, so "Machine
// Learning Basics" still matches a user who wrote "learn machine learning".
func skillMatches(combined, skill string) bool {
	skill = strings.ToLower(strings.TrimSpace(skill))
	if skill == "" {
		return false
	}
	if strings.Contains(combined, skill) {
		return true
	}

	words := strings.Fields(skill)
	significant, matched := 0, 0
	for _, word := range words {
		if len(word) < 4 {
			continue
		}
		significant++
		if strings.Contains(combined, word) {
			matched++
		}
	}
	return significant > 0 && matched*2 >= significant
}

// scoreEntry applies the additive scoring policy for one entry against the
// lowercased combined user text.
func scoreEntry(entry Entry, combined, level string) float64 {
	score := 0.0

	if strings.Contains(combined, strings.ToLower(entry.Title)) ||
		strings.Contains(combined, strings.ToLower(entry.Description)) {
		score += titleMatchWeight
	}

	for _, skill := range entry.Skills {
		if skillMatches(combined, skill) {
			score += skillMatchWeight
			break
		}
	}

	if strings.EqualFold(entry.Difficulty, level) {
		score += levelMatchWeight
	}

	for _, prereq := range entry.Prerequisites {
		if prereq != "" && strings.Contains(combined, strings.ToLower(prereq)) {
			score += prerequisiteMatchWeight
			break
		}
	}

	if score < scoreFloor {
		score = scoreFloor
	}
	if score > scoreCeiling {
		score = scoreCeiling
	}
	return score
}
