package llm

import "fmt"

// UnavailableError reports that the provider call did not complete: network
// failure, timeout, or a non-2xx status from the provider endpoint.
type UnavailableError struct {
	Provider Provider
	Message  string
	Cause    error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider %s unavailable: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("provider %s unavailable: %s", e.Provider, e.Message)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError reports that the provider replied successfully but
// the reply envelope did not contain generated text at the expected path.
type MalformedResponseError struct {
	Provider Provider
	Message  string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("provider %s returned malformed response: %s", e.Provider, e.Message)
}
