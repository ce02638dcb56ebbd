package recommend

import "fmt"

// UnparsableError reports that the extracted provider text is not a valid
// recommendation payload. It carries the raw text so callers can log it or
// retry with a stricter follow-up prompt.
type UnparsableError struct {
	RawText string
	Message string
	Cause   error
}

func (e *UnparsableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unparsable provider response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("unparsable provider response: %s", e.Message)
}

func (e *UnparsableError) Unwrap() error {
	return e.Cause
}

// CourseShapeError reports that a course entry failed required-field checks,
// naming the offending field and its index in the provider-returned order.
// Under the strict policy one shape error fails the whole batch.
type CourseShapeError struct {
	Index   int
	Field   string
	Message string
}

func (e *CourseShapeError) Error() string {
	return fmt.Sprintf("invalid course at index %d: field %q: %s", e.Index, e.Field, e.Message)
}
