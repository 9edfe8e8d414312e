// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBreakdown outputs the per-component scores and every adjustment that
// shaped the composite.
func (p *Printer) PrintBreakdown(breakdown *types.ScoreBreakdown) {
	if breakdown == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Technical Skills:  %5.1f%%\n", breakdown.TechnicalSkill*100))
	sb.WriteString(fmt.Sprintf("Semantic Fit:      %5.1f%%\n", breakdown.Semantic*100))
	sb.WriteString(fmt.Sprintf("Experience:        %5.1f%%\n", breakdown.Experience*100))
	sb.WriteString(fmt.Sprintf("Education:         %5.1f%%\n", breakdown.Education*100))

	if len(breakdown.Adjustments) > 0 {
		sb.WriteString("\nAdjustments:\n")
		for _, adj := range breakdown.Adjustments {
			sb.WriteString(fmt.Sprintf("  %-24s %+.3f\n", adj.Reason, adj.Delta))
		}
	}

	sb.WriteString(fmt.Sprintf("\nComposite: %.1f%% (%s)", breakdown.CompositeScore*100, breakdown.Category))

	p.printBox("SCORE BREAKDOWN", sb.String())
}

// PrintSkillDetail outputs the matched and missing skill lists
func (p *Printer) PrintSkillDetail(breakdown *types.ScoreBreakdown) {
	if breakdown == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched %d skills\n", len(breakdown.MatchedSkills)))
	writeSkillList(&sb, breakdown.MatchedSkills, "✓")

	if len(breakdown.MissingRequired) > 0 {
		sb.WriteString(fmt.Sprintf("\nMissing %d required:\n", len(breakdown.MissingRequired)))
		writeSkillList(&sb, breakdown.MissingRequired, "✗")
	}
	if len(breakdown.MissingPreferred) > 0 {
		sb.WriteString(fmt.Sprintf("\nMissing %d preferred:\n", len(breakdown.MissingPreferred)))
		writeSkillList(&sb, breakdown.MissingPreferred, "-")
	}

	p.printBox("SKILL MATCHING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTopChunks outputs the best-matching resume chunks with their raw
// similarities.
func (p *Printer) PrintTopChunks(breakdown *types.ScoreBreakdown) {
	if breakdown == nil || len(breakdown.TopChunks) == 0 {
		return
	}

	var sb strings.Builder
	for i, match := range breakdown.TopChunks {
		text := strings.Join(strings.Fields(match.Chunk.Text), " ")
		if len(text) > 45 {
			text = text[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  similarity %.3f\n", i+1, match.Similarity))
		sb.WriteString(fmt.Sprintf("    %s\n", text))
		if i < len(breakdown.TopChunks)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("TOP MATCHING CHUNKS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs the final verdict: composite score, category,
// recommendation, and improvement suggestions.
func (p *Printer) PrintResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %.1f%%\n", result.CompositeScore*100))
	sb.WriteString(fmt.Sprintf("Category: %s\n", result.Breakdown.Category))
	sb.WriteString(fmt.Sprintf("Verdict:  %s\n", result.Breakdown.Recommendation))

	if len(result.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(result.Suggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			suggestion := result.Suggestions[i]
			if len(suggestion) > 50 {
				suggestion = suggestion[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", suggestion))
		}
		if len(result.Suggestions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Suggestions)-maxItemsToShow))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// writeSkillList writes up to maxItemsToShow skills with a marker prefix
func writeSkillList(sb *strings.Builder, skills []string, marker string) {
	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  %s %s\n", marker, skills[i]))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
	}
}
