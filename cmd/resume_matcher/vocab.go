package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

var (
	vocabPath string
	vocabScan string
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Inspect the skill vocabulary",
	Long: `Lists the canonical skills and aliases the matcher recognizes. With
--scan, shows which skills are detected in a document instead.`,
	RunE: runVocab,
}

func init() {
	vocabCmd.Flags().StringVar(&vocabPath, "vocabulary", "", "Path to skill vocabulary JSON (defaults to the embedded vocabulary)")
	vocabCmd.Flags().StringVar(&vocabScan, "scan", "", "Path to a document; print the skills detected in it")
	rootCmd.AddCommand(vocabCmd)
}

func runVocab(_ *cobra.Command, _ []string) error {
	vocabulary := vocab.Default()
	if vocabPath != "" {
		loaded, err := vocab.Load(vocabPath)
		if err != nil {
			return err
		}
		vocabulary = loaded
	}

	if vocabScan != "" {
		return scanDocument(vocabulary, vocabScan)
	}

	canonical := vocabulary.Canonical()
	sort.Strings(canonical)

	fmt.Printf("%d canonical skills:\n", len(canonical))
	for _, skill := range canonical {
		aliases := vocabulary.Skills[skill]
		if len(aliases) > 0 {
			fmt.Printf("  %-24s (%s)\n", skill, strings.Join(aliases, ", "))
		} else {
			fmt.Printf("  %s\n", skill)
		}
	}
	return nil
}

func scanDocument(vocabulary *vocab.Vocabulary, path string) error {
	text, err := ingestion.LoadFile(path)
	if err != nil {
		return err
	}

	skills := matching.ExtractSkills(text, vocabulary)
	if len(skills.Required)+len(skills.Preferred) == 0 {
		fmt.Println("No vocabulary skills detected.")
		return nil
	}

	if len(skills.Required) > 0 {
		fmt.Printf("Required (%d):\n", len(skills.Required))
		for _, skill := range skills.Required {
			fmt.Printf("  %s\n", skill)
		}
	}
	if len(skills.Preferred) > 0 {
		fmt.Printf("Preferred (%d):\n", len(skills.Preferred))
		for _, skill := range skills.Preferred {
			fmt.Printf("  %s\n", skill)
		}
	}
	return nil
}
