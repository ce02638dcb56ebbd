// Package schemas provides JSON Schema validation for provider-produced
// recommendation payloads. The schema is embedded at compile time.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed recommendation.schema.json
var recommendationSchema string

// FieldError represents a single validation error at a specific field path,
// e.g. "courses.0.price".
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates schema validation errors for one document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateRecommendation checks a JSON document against the recommendation
// batch schema. Returns nil when valid, a *ValidationError when the document
// violates the schema, and a plain error when the document is not valid JSON
// at all.
func ValidateRecommendation(document string) error {
	schemaLoader := gojsonschema.NewStringLoader(recommendationSchema)
	documentLoader := gojsonschema.NewStringLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("document could not be validated: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		// Required-property errors report the parent object as the field;
		// append the missing property name for a precise path.
		if desc.Type() == "required" {
			if prop, ok := desc.Details()["property"].(string); ok {
				if field == "(root)" {
					field = prop
				} else {
					field = field + "." + prop
				}
			}
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
