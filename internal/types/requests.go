package types

import (
	"github.com/go-playground/validator/v10"
)

// Generation modes accepted on the wire. Recommend is the default when the
// mode field is absent and education/goals are present.
const (
	ModeChat      = "chat"
	ModeRecommend = "recommend"
)

// GenerateRequest is the request envelope for POST /api/generate.
// Exactly one of Prompt (chat) or Education/Goals (recommend) drives the call.
type GenerateRequest struct {
	Mode        string `json:"mode,omitempty" validate:"omitempty,oneof=chat recommend"`
	Prompt      string `json:"prompt,omitempty" validate:"required_if=Mode chat"`
	Education   string `json:"education,omitempty"`
	Goals       string `json:"goals,omitempty"`
	FileContent string `json:"fileContent,omitempty"`
}

// ChatResponse is the success envelope for chat mode.
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the failure envelope. The detail text is debug-oriented
// and not a stable contract; callers should key off the status code and the
// presence of the error field only.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ResolvedMode returns the effective mode for the request: an explicit mode
// wins, otherwise recommend when profile fields are present, chat when only
// a prompt is present.
func (r *GenerateRequest) ResolvedMode() string {
	if r.Mode != "" {
		return r.Mode
	}
	if r.Education != "" || r.Goals != "" {
		return ModeRecommend
	}
	return ModeChat
}

// Profile builds the immutable user profile for recommend mode.
func (r *GenerateRequest) Profile() UserProfile {
	return UserProfile{
		Education:      r.Education,
		Goals:          r.Goals,
		SupportingText: r.FileContent,
	}
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
