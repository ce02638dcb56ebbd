package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRecommendation_Valid(t *testing.T) {
	doc := `{"courses": [{
		"title": "Intro to Go",
		"description": "Learn Go",
		"skills": ["Go"],
		"prerequisites": [],
		"price": "$49",
		"difficulty": "beginner",
		"duration": "4 weeks",
		"roadmap": ["install"],
		"relevance_score": 0.9
	}]}`

	assert.NoError(t, ValidateRecommendation(doc))
}

func TestValidateRecommendation_MissingRequiredField(t *testing.T) {
	doc := `{"courses": [{
		"title": "X",
		"description": "d",
		"skills": [],
		"prerequisites": [],
		"difficulty": "beginner",
		"duration": "1 week",
		"roadmap": []
	}]}`

	err := ValidateRecommendation(doc)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Equal(t, "courses.0.price", ve.Errors[0].Field)
}

func TestValidateRecommendation_WrongType(t *testing.T) {
	doc := `{"courses": [{
		"title": "X",
		"description": "d",
		"skills": "not an array",
		"prerequisites": [],
		"price": "$1",
		"difficulty": "beginner",
		"duration": "1 week",
		"roadmap": []
	}]}`

	err := ValidateRecommendation(doc)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Equal(t, "courses.0.skills", ve.Errors[0].Field)
}

func TestValidateRecommendation_MissingCourses(t *testing.T) {
	err := ValidateRecommendation(`{"items": []}`)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Equal(t, "courses", ve.Errors[0].Field)
}

func TestValidateRecommendation_InvalidJSON(t *testing.T) {
	err := ValidateRecommendation("not json")

	require.Error(t, err)
	var ve *ValidationError
	assert.False(t, errors.As(err, &ve), "malformed JSON is not a field-level failure")
}
