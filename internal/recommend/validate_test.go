package recommend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCourseJSON = `{
	"title": "Intro to Go",
	"description": "Learn Go from scratch",
	"skills": ["Go"],
	"prerequisites": [],
	"price": "$49",
	"difficulty": "Beginner",
	"duration": "4 weeks",
	"roadmap": ["Install Go", "Write a CLI"]
}`

func TestValidateBatch_ValidCourses(t *testing.T) {
	raw := fmt.Sprintf(`{"courses": [%s]}`, validCourseJSON)

	courses, err := validateBatch(raw, raw)
	require.NoError(t, err)
	require.Len(t, courses, 1)

	assert.Equal(t, "Intro to Go", courses[0].Title)
	// Difficulty is case-normalized on the way through.
	assert.Equal(t, "beginner", courses[0].Difficulty)
}

func TestValidateBatch_MissingPriceFailsBatch(t *testing.T) {
	raw := `Here you go: {"courses": [{
		"title": "X",
		"description": "d",
		"skills": [],
		"prerequisites": [],
		"difficulty": "beginner",
		"duration": "2 weeks",
		"roadmap": ["step one"]
	}]}`
	candidate := ExtractCandidate(raw)

	_, err := validateBatch(raw, candidate)

	var shape *CourseShapeError
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, 0, shape.Index)
	assert.Equal(t, "price", shape.Field)
}

func TestValidateBatch_EmptyRequiredField(t *testing.T) {
	raw := `{"courses": [{
		"title": "   ",
		"description": "d",
		"skills": [],
		"prerequisites": [],
		"price": "$9",
		"difficulty": "beginner",
		"duration": "2 weeks",
		"roadmap": []
	}]}`

	_, err := validateBatch(raw, raw)

	var shape *CourseShapeError
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, "title", shape.Field)
	assert.Equal(t, 0, shape.Index)
}

func TestValidateBatch_WrongSequenceType(t *testing.T) {
	raw := `{"courses": [{
		"title": "X",
		"description": "d",
		"skills": "not a list",
		"prerequisites": [],
		"price": "$9",
		"difficulty": "beginner",
		"duration": "2 weeks",
		"roadmap": []
	}]}`

	_, err := validateBatch(raw, raw)

	var shape *CourseShapeError
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, "skills", shape.Field)
}

func TestValidateBatch_SecondEntryIndexed(t *testing.T) {
	raw := fmt.Sprintf(`{"courses": [%s, {
		"title": "Y",
		"description": "d",
		"skills": [],
		"prerequisites": [],
		"price": "$9",
		"difficulty": "beginner",
		"roadmap": []
	}]}`, validCourseJSON)

	_, err := validateBatch(raw, raw)

	var shape *CourseShapeError
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, 1, shape.Index)
	assert.Equal(t, "duration", shape.Field)
}

func TestValidateBatch_UnknownDifficultyAccepted(t *testing.T) {
	raw := `{"courses": [{
		"title": "X",
		"description": "d",
		"skills": [],
		"prerequisites": [],
		"price": "$9",
		"difficulty": "Expert-Level",
		"duration": "2 weeks",
		"roadmap": []
	}]}`

	courses, err := validateBatch(raw, raw)
	require.NoError(t, err)
	// Unrecognized difficulty values pass through lowercased, not rejected.
	assert.Equal(t, "expert-level", courses[0].Difficulty)
}

func TestValidateBatch_NotJSON(t *testing.T) {
	raw := "sorry, I cannot help with that"

	_, err := validateBatch(raw, raw)

	var unparsable *UnparsableError
	require.ErrorAs(t, err, &unparsable)
	assert.Equal(t, raw, unparsable.RawText)
}

func TestValidateBatch_NoCoursesKey(t *testing.T) {
	raw := `{"recommendations": []}`

	_, err := validateBatch(raw, raw)

	var unparsable *UnparsableError
	require.ErrorAs(t, err, &unparsable)
}
