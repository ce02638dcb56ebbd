// Package main provides the entry point for the Course Advisor service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "course_advisor",
	Short: "Course Advisor recommendation service",
	Long:  "Course Advisor turns a free-text user profile into ranked, validated course recommendations, via a generative-text provider or a local catalog similarity heuristic.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
