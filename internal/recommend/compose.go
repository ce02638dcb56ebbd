// Package recommend implements the recommendation generation core: prompt
// composition, provider response extraction, course validation, score
// normalization and ranking.
package recommend

import (
	"strconv"
	"strings"

	"github.com/jonathan/course-advisor/internal/prompts"
	"github.com/jonathan/course-advisor/internal/types"
)

// Placeholders substituted for missing profile fields. Fields are never
// omitted from the prompt, so the provider cannot misattribute an empty one.
const (
	placeholderNotSpecified = "Not specified"
	placeholderNoneProvided = "None provided"
)

// BuildChatPrompt wraps the user's message in the platform persona preamble.
func BuildChatPrompt(message string) string {
	template := prompts.MustGet("chat")
	return prompts.Format(template, map[string]string{
		"Message": message,
	})
}

// BuildRecommendPrompt builds the structured-recommendation instruction from
// a user profile. Pure function of its input; it always succeeds.
func BuildRecommendPrompt(profile types.UserProfile) string {
	template := prompts.MustGet("recommend-courses")
	return prompts.Format(template, map[string]string{
		"MaxCourses":  strconv.Itoa(types.MaxRecommendations),
		"Education":   orPlaceholder(profile.Education, placeholderNotSpecified),
		"Goals":       orPlaceholder(profile.Goals, placeholderNotSpecified),
		"FileContent": orPlaceholder(profile.SupportingText, placeholderNoneProvided),
	})
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}
