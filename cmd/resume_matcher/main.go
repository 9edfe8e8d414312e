// Package main provides the resume_matcher CLI: score a candidate resume
// against a target role from the command line or serve the matching API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Hybrid resume-to-role matching and scoring engine",
	Long:  "resume_matcher scores how well a candidate resume matches a target role by combining skill keyword matching, semantic similarity over text chunks, and experience/education signals into one explainable composite score.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
