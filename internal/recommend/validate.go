package recommend

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jonathan/course-advisor/internal/schemas"
)

// validateBatch applies the strict validation policy to an extracted JSON
// candidate: the batch is structurally checked against the recommendation
// schema, decoded, and every entry is field-checked. One violating entry
// fails the whole batch; half-formed recommendations are never published.
func validateBatch(raw, candidate string) ([]rawCourse, error) {
	if err := schemas.ValidateRecommendation(candidate); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) && len(ve.Errors) > 0 {
			return nil, shapeErrorFromSchema(raw, ve.Errors[0])
		}
		return nil, &UnparsableError{
			RawText: raw,
			Message: "candidate is not valid JSON",
			Cause:   err,
		}
	}

	courses, err := parseBatch(raw, candidate)
	if err != nil {
		return nil, err
	}

	for i := range courses {
		if err := validateCourse(i, &courses[i]); err != nil {
			return nil, err
		}
	}

	return courses, nil
}

// shapeErrorFromSchema turns a schema field path like "courses.3.price" into
// a CourseShapeError naming the entry index and field. Errors outside the
// courses array mean the payload as a whole is unusable.
func shapeErrorFromSchema(raw string, fe schemas.FieldError) error {
	parts := strings.Split(fe.Field, ".")
	if len(parts) >= 3 && parts[0] == "courses" {
		if idx, err := strconv.Atoi(parts[1]); err == nil {
			return &CourseShapeError{
				Index:   idx,
				Field:   strings.Join(parts[2:], "."),
				Message: fe.Message,
			}
		}
	}
	return &UnparsableError{
		RawText: raw,
		Message: fe.Field + ": " + fe.Message,
	}
}

// validateCourse checks the required text fields of one entry and normalizes
// its difficulty to lowercase. Unrecognized difficulty values are accepted as
// opaque text since the domain vocabulary may grow.
func validateCourse(index int, c *rawCourse) error {
	checks := []struct {
		field string
		value string
	}{
		{"title", c.Title},
		{"description", c.Description},
		{"price", c.Price},
		{"difficulty", c.Difficulty},
		{"duration", c.Duration},
	}
	for _, check := range checks {
		if strings.TrimSpace(check.value) == "" {
			return &CourseShapeError{
				Index:   index,
				Field:   check.field,
				Message: "must be non-empty text",
			}
		}
	}

	c.Difficulty = strings.ToLower(strings.TrimSpace(c.Difficulty))
	return nil
}
