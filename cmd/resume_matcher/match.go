package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/explain"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

var matchCommand = &cobra.Command{
	Use:   "match",
	Short: "Score a candidate resume against a target role",
	Long: `Scores a resume against a role posting and prints the composite score with
a full breakdown: matched and missing skills, semantic evidence chunks, and
an explanation of the verdict.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runMatchCmd,
}

var (
	matchConfigPath string
	matchCandidate  string
	matchRole       string
	matchRoleURL    string
	matchVocabulary string
	matchAPIKey     string
	matchModel      string
	matchNoExplain  bool
	matchJSON       bool
	matchVerbose    bool
)

func init() {
	matchCommand.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	matchCommand.Flags().StringVarP(&matchCandidate, "candidate", "c", "", "Path to candidate resume (txt, md, pdf, or docx)")
	matchCommand.Flags().StringVarP(&matchRole, "role", "r", "", "Path to role posting file (mutually exclusive with --role-url)")
	matchCommand.Flags().StringVar(&matchRoleURL, "role-url", "", "URL to fetch role posting from (mutually exclusive with --role)")
	matchCommand.Flags().StringVar(&matchVocabulary, "vocabulary", "", "Path to skill vocabulary JSON (defaults to the embedded vocabulary)")
	matchCommand.Flags().StringVar(&matchModel, "embedding-model", "", "Embedding model name (defaults to "+embedding.DefaultModel+")")
	matchCommand.Flags().BoolVar(&matchNoExplain, "no-explain", false, "Skip the LLM explanation and use the deterministic fallback")
	matchCommand.Flags().BoolVar(&matchJSON, "json", false, "Print the full match result as JSON")
	matchCommand.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed breakdown boxes")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	matchCommand.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(matchCommand)
}

func runMatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergedMatchConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Candidate == "" {
		return fmt.Errorf("--candidate is required (via flag or config)")
	}
	if cfg.Role == "" && cfg.RoleURL == "" {
		return fmt.Errorf("either --role or --role-url must be provided (via flag or config)")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	candidateText, err := ingestion.LoadFile(cfg.Candidate)
	if err != nil {
		return err
	}

	var roleText string
	if cfg.RoleURL != "" {
		roleText, err = ingestion.FromURL(ctx, cfg.RoleURL)
	} else {
		roleText, err = ingestion.LoadFile(cfg.Role)
	}
	if err != nil {
		return err
	}

	vocabulary := vocab.Default()
	if cfg.Vocabulary != "" {
		vocabulary, err = vocab.Load(cfg.Vocabulary)
		if err != nil {
			return err
		}
	}

	embedder, err := embedding.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if err != nil {
		return err
	}
	defer func() { _ = embedder.Close() }()

	var explainer explain.Explainer
	if !cfg.NoExplain {
		client, err := llm.NewGeminiClient(ctx, cfg.APIKey)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		explainer = explain.NewLLMExplainer(client)
	}

	result, err := engine.New(embedder, explainer).Score(ctx,
		types.NewCandidateDocument(candidateText),
		types.NewTargetDocument(roleText),
		vocabulary, cfg.ScoringOrDefault())
	if err != nil {
		return err
	}

	return printResult(result, cfg.Verbose)
}

// mergedMatchConfig loads the config file if given and applies flag
// overrides. Only explicitly set flags override file values.
func mergedMatchConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	if matchConfigPath != "" {
		loaded, err := config.LoadConfig(matchConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("candidate") {
		cfg.Candidate = matchCandidate
	}
	if cmd.Flags().Changed("role") {
		cfg.Role = matchRole
	}
	if cmd.Flags().Changed("role-url") {
		cfg.RoleURL = matchRoleURL
	}
	if cmd.Flags().Changed("vocabulary") {
		cfg.Vocabulary = matchVocabulary
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = matchAPIKey
	}
	if cmd.Flags().Changed("embedding-model") {
		cfg.EmbeddingModel = matchModel
	}
	if cmd.Flags().Changed("no-explain") {
		cfg.NoExplain = matchNoExplain
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = matchVerbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printResult(result *types.MatchResult, verbose bool) error {
	if matchJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	if verbose {
		printer.PrintBreakdown(&result.Breakdown)
		printer.PrintSkillDetail(&result.Breakdown)
		printer.PrintTopChunks(&result.Breakdown)
	}
	printer.PrintResult(result)

	fmt.Println()
	fmt.Println(result.Explanation)
	return nil
}
