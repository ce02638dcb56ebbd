package recommend

import (
	"sort"

	"github.com/jonathan/course-advisor/internal/types"
)

// scoreDecay is the per-position penalty for synthesized default scores.
const scoreDecay = 0.05

// normalizeScores converts validated raw entries into canonical courses,
// keeping the provider-returned order. Provider-declared scores are kept
// as-is, even out of range: that is a data-quality signal to surface
// downstream, not to silently clamp. Omitted scores get a decaying default
// so the provider's implicit ranking is preserved.
func normalizeScores(raw []rawCourse) []types.Course {
	courses := make([]types.Course, 0, len(raw))
	for i, rc := range raw {
		score, present := rc.score()
		if !present {
			score = 1.0 - scoreDecay*float64(i)
			if score < 0 {
				score = 0
			}
		}
		courses = append(courses, types.Course{
			Title:          rc.Title,
			Description:    rc.Description,
			Skills:         rc.Skills,
			Prerequisites:  rc.Prerequisites,
			Price:          rc.Price,
			Difficulty:     rc.Difficulty,
			Duration:       rc.Duration,
			Roadmap:        rc.Roadmap,
			RelevanceScore: score,
		})
	}
	return courses
}

// rank sorts courses descending by relevance score and truncates to max.
// The sort is stable: ties preserve prior relative order.
func rank(courses []types.Course, max int) []types.Course {
	sort.SliceStable(courses, func(i, j int) bool {
		return courses[i].RelevanceScore > courses[j].RelevanceScore
	})
	if len(courses) > max {
		courses = courses[:max]
	}
	return courses
}
