package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/course-advisor/internal/config"
	"github.com/jonathan/course-advisor/internal/llm"
	"github.com/jonathan/course-advisor/internal/recommend"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Send a chat message to the assistant",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required for chat")
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Provider != "" {
		llmConfig.Provider = llm.Provider(cfg.Provider)
	}
	if cfg.Model != "" {
		llmConfig.Model = cfg.Model
	}
	client, err := llm.NewClient(cmd.Context(), llmConfig, cfg.APIKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	svc := recommend.NewService(client, nil)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.LLMTimeout)
	defer cancel()

	reply, err := svc.Chat(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}
