package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/course-advisor/internal/catalog"
	"github.com/jonathan/course-advisor/internal/config"
	"github.com/jonathan/course-advisor/internal/llm"
	"github.com/jonathan/course-advisor/internal/observability"
	"github.com/jonathan/course-advisor/internal/recommend"
	"github.com/jonathan/course-advisor/internal/types"
	"github.com/spf13/cobra"
)

var (
	recommendEducation string
	recommendGoals     string
	recommendFile      string
	recommendLocal     bool
	recommendJSON      bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate course recommendations for a profile",
	Long: `Generate ranked course recommendations from an education background and
future goals. Uses the configured generative provider when GEMINI_API_KEY is
set; otherwise scores the local catalog.`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendEducation, "education", "", "Education background text")
	recommendCmd.Flags().StringVar(&recommendGoals, "goals", "", "Future goals text")
	recommendCmd.Flags().StringVar(&recommendFile, "file", "", "Path to a supporting document (text or HTML)")
	recommendCmd.Flags().BoolVar(&recommendLocal, "local", false, "Score the local catalog without calling a provider")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "Print the result as JSON")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	if recommendEducation == "" && recommendGoals == "" {
		return fmt.Errorf("at least one of --education or --goals is required")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	profile := types.UserProfile{
		Education: recommendEducation,
		Goals:     recommendGoals,
	}
	if recommendFile != "" {
		content, err := os.ReadFile(recommendFile)
		if err != nil {
			return fmt.Errorf("failed to read supporting document: %w", err)
		}
		profile.SupportingText = string(content)
	}

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	var client llm.Client
	if !recommendLocal && cfg.APIKey != "" {
		llmConfig := llm.DefaultConfig()
		if cfg.Provider != "" {
			llmConfig.Provider = llm.Provider(cfg.Provider)
		}
		if cfg.Model != "" {
			llmConfig.Model = cfg.Model
		}
		client, err = llm.NewClient(cmd.Context(), llmConfig, cfg.APIKey)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
	}

	svc := recommend.NewService(client, cat)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.LLMTimeout)
	defer cancel()

	courses, err := svc.Recommend(ctx, profile)
	if err != nil {
		return err
	}

	if recommendJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(types.RecommendationResult{Courses: courses})
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintProfile(profile)
	printer.PrintRecommendations(courses)
	return nil
}
