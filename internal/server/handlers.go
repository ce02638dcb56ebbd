package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jonathan/course-advisor/internal/llm"
	"github.com/jonathan/course-advisor/internal/recommend"
	"github.com/jonathan/course-advisor/internal/types"
)

// handleGenerate serves POST /api/generate for both chat and recommend modes.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	switch req.ResolvedMode() {
	case types.ModeChat:
		s.handleChat(w, r, &req)
	default:
		s.handleRecommend(w, r, &req)
	}
}

// handleChat returns the provider's raw reply text unmodified.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request, req *types.GenerateRequest) {
	if req.Prompt == "" {
		s.errorResponse(w, http.StatusBadRequest, "prompt is required for chat mode", "")
		return
	}
	if !s.svc.HasProvider() {
		s.errorResponse(w, http.StatusServiceUnavailable, "chat is unavailable", "no generative provider is configured")
		return
	}

	ctx, cancel := s.requestContext(r)
	defer cancel()

	reply, err := s.svc.Chat(ctx, req.Prompt)
	if err != nil {
		s.generationError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.ChatResponse{Response: reply})
}

// handleRecommend produces ranked course recommendations. When the provider
// is unavailable the request degrades to the local catalog scorer instead of
// failing, so callers always get a usable answer.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request, req *types.GenerateRequest) {
	if req.Education == "" && req.Goals == "" {
		s.errorResponse(w, http.StatusBadRequest, "education or goals is required", "")
		return
	}

	ctx, cancel := s.requestContext(r)
	defer cancel()

	profile := req.Profile()
	courses, err := s.svc.Recommend(ctx, profile)
	if err != nil {
		var unavailable *llm.UnavailableError
		if errors.As(err, &unavailable) {
			log.Printf("Provider unavailable, falling back to local catalog: %v", err)
			courses = s.svc.RecommendLocal(profile)
		} else {
			s.generationError(w, err)
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, types.RecommendationResult{Courses: courses})
}

// requestContext bounds the outbound provider call with the configured
// timeout while staying attached to the caller's request lifetime.
func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.llmTimeout)
}

// generationError maps pipeline errors to the failure envelope. Detail text
// is debug-oriented and not a stable contract.
func (s *Server) generationError(w http.ResponseWriter, err error) {
	var (
		unavailable *llm.UnavailableError
		malformed   *llm.MalformedResponseError
		unparsable  *recommend.UnparsableError
		badShape    *recommend.CourseShapeError
	)

	switch {
	case errors.As(err, &unavailable):
		s.errorResponse(w, http.StatusBadGateway, "provider unavailable", err.Error())
	case errors.As(err, &malformed):
		s.errorResponse(w, http.StatusBadGateway, "provider returned malformed response", err.Error())
	case errors.As(err, &unparsable):
		log.Printf("Failed to parse provider response, raw text: %s", unparsable.RawText)
		s.errorResponse(w, http.StatusUnprocessableEntity, "failed to parse provider response", err.Error())
	case errors.As(err, &badShape):
		s.errorResponse(w, http.StatusUnprocessableEntity, "provider returned invalid course data", err.Error())
	default:
		s.errorResponse(w, http.StatusInternalServerError, "generation failed", err.Error())
	}
}
