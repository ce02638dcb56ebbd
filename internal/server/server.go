// Package server provides the HTTP API for the course advisor.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/course-advisor/internal/catalog"
	"github.com/jonathan/course-advisor/internal/config"
	"github.com/jonathan/course-advisor/internal/llm"
	"github.com/jonathan/course-advisor/internal/recommend"
	"github.com/jonathan/course-advisor/internal/server/ratelimit"
	"github.com/jonathan/course-advisor/internal/types"
)

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	svc         *recommend.Service
	client      llm.Client
	rateLimiter *ratelimit.Limiter
	llmTimeout  time.Duration
}

// New creates a server instance from deployment configuration: the catalog
// is loaded once (Postgres when DATABASE_URL is set, the embedded catalog
// otherwise), and the provider client is created only when an API key is
// configured.
func New(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	var cat *catalog.Catalog
	var err error
	if cfg.DatabaseURL != "" {
		cat, err = catalog.LoadFromDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog from database: %w", err)
		}
		log.Printf("Loaded %d catalog entries from database", cat.Len())
	} else {
		cat, err = catalog.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded catalog: %w", err)
		}
	}

	var client llm.Client
	if cfg.APIKey != "" {
		llmConfig := llm.DefaultConfig()
		if cfg.Provider != "" {
			llmConfig.Provider = llm.Provider(cfg.Provider)
		}
		if cfg.Model != "" {
			llmConfig.Model = cfg.Model
		}
		client, err = llm.NewClient(ctx, llmConfig, cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
	} else {
		log.Println("No API key configured; running in local catalog mode")
	}

	s := &Server{
		svc:         recommend.NewService(client, cat),
		client:      client,
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		llmTimeout:  cfg.LLMTimeout,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	if s.client != nil {
		_ = s.client.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers for browser callers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging with a per-request ID.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()[:8]
		start := time.Now()
		log.Printf("[%s] %s %s %s", requestID, r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}

// withRateLimit adds per-client rate limiting.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID)

		s.setRateLimitHeaders(w, info)
		if !allowed {
			if info.RetryAfter > 0 {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
			}
			log.Printf("[rate-limit] client %s exceeded limit %d", clientID, info.Limit)
			s.errorResponse(w, http.StatusTooManyRequests,
				"rate_limit_exceeded", "Rate limit exceeded. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes the failure envelope.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message, details string) {
	s.jsonResponse(w, status, types.ErrorResponse{Error: message, Details: details})
}

// extractClientID extracts the client identifier (IP address) from the request.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}
