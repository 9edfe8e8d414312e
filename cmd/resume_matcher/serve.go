package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/explain"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/server"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

var (
	servePort      int
	serveJSONLogs  bool
	serveDebugLogs bool
	serveNoExplain bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the matching API server",
	Long:  `Start an HTTP server that exposes the scoring engine: POST /match scores a resume against a role document or posting URL.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", true, "Emit logs as JSON")
	serveCmd.Flags().BoolVar(&serveDebugLogs, "debug", false, "Enable debug logging")
	serveCmd.Flags().BoolVar(&serveNoExplain, "no-explain", false, "Skip LLM explanations and use the deterministic fallback")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	log, err := logger.New(serveJSONLogs, serveDebugLogs)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	model := os.Getenv("EMBEDDING_MODEL")
	if model == "" {
		model = embedding.DefaultModel
	}
	embedder, err := embedding.NewGeminiEmbedder(ctx, apiKey, model)
	if err != nil {
		return err
	}
	defer func() { _ = embedder.Close() }()
	log.Info("embedding provider ready", zap.String(logger.FieldModel, model))

	var explainer explain.Explainer
	if !serveNoExplain {
		client, err := llm.NewGeminiClient(ctx, apiKey)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		explainer = explain.NewLLMExplainer(client)
	}

	srv := server.New(server.Config{Port: servePort},
		engine.New(embedder, explainer),
		vocab.Default(),
		config.DefaultScoringConfig(),
		log)

	return srv.Start()
}
