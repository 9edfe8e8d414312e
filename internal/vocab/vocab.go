// Package vocab loads the controlled skill vocabulary: a static mapping from
// canonical skill names to surface-form aliases. The vocabulary is loaded
// once at startup, validated against an embedded JSON schema, and never
// mutated afterwards, so one instance is safe to share across concurrent
// scoring calls.
package vocab

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

//go:embed vocabulary.json schema.json
var embeddedFiles embed.FS

// Vocabulary is a skill vocabulary with matchers precompiled per alias.
// Matching is case-insensitive and word-boundary aware.
type Vocabulary struct {
	types.SkillVocabulary

	// patterns holds one compiled matcher per alias, keyed by canonical name
	patterns map[string][]*regexp.Regexp
}

var (
	defaultOnce  sync.Once
	defaultVocab *Vocabulary
)

// Default returns the embedded vocabulary. It panics only if the embedded
// file is corrupt, which is a build defect, not a runtime condition.
func Default() *Vocabulary {
	defaultOnce.Do(func() {
		data, err := embeddedFiles.ReadFile("vocabulary.json")
		if err != nil {
			panic(fmt.Sprintf("embedded vocabulary missing: %v", err))
		}
		v, err := parse(data)
		if err != nil {
			panic(fmt.Sprintf("embedded vocabulary invalid: %v", err))
		}
		defaultVocab = v
	})
	return defaultVocab
}

// Load reads a vocabulary JSON file, validates it against the vocabulary
// schema, and compiles alias matchers.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}
	return parse(data)
}

// parse validates and compiles a vocabulary from raw JSON
func parse(data []byte) (*Vocabulary, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var raw types.SkillVocabulary
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}

	v := &Vocabulary{
		SkillVocabulary: types.SkillVocabulary{Skills: make(map[string][]string, len(raw.Skills))},
		patterns:        make(map[string][]*regexp.Regexp, len(raw.Skills)),
	}

	for name, aliases := range raw.Skills {
		canonical := parsing.NormalizeSkillName(name)
		if canonical == "" {
			continue
		}

		// The canonical name itself is always a matchable surface form
		forms := append([]string{canonical}, aliases...)
		seen := make(map[string]bool, len(forms))
		var kept []string
		for _, form := range forms {
			form = strings.ToLower(strings.TrimSpace(form))
			if form == "" || seen[form] {
				continue
			}
			seen[form] = true
			kept = append(kept, form)
			v.patterns[canonical] = append(v.patterns[canonical], compileAlias(form))
		}
		v.Skills[canonical] = kept
	}

	if len(v.Skills) == 0 {
		return nil, fmt.Errorf("vocabulary contains no skills")
	}

	return v, nil
}

// validateSchema checks raw vocabulary JSON against the embedded schema
func validateSchema(data []byte) error {
	schemaData, err := embeddedFiles.ReadFile("schema.json")
	if err != nil {
		return fmt.Errorf("failed to read embedded schema: %w", err)
	}

	if err := schemas.ValidateBytes(schemaData, data); err != nil {
		return fmt.Errorf("invalid vocabulary: %w", err)
	}
	return nil
}

// compileAlias builds a case-sensitive matcher for an already-lowercased
// alias. Boundaries are alphanumeric transitions rather than \b so aliases
// with punctuation ("c++", "node.js", "ci/cd") still anchor correctly.
func compileAlias(alias string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^a-z0-9])` + regexp.QuoteMeta(alias) + `(?:[^a-z0-9]|$)`)
}

// FindAll scans text for any alias of any vocabulary entry and returns the
// sorted set of canonical names found. Matching is case-insensitive.
func (v *Vocabulary) FindAll(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for canonical, patterns := range v.patterns {
		for _, pattern := range patterns {
			if pattern.MatchString(lower) {
				found = append(found, canonical)
				break
			}
		}
	}

	sort.Strings(found)
	return found
}

// Contains reports whether any alias of the canonical skill occurs in text
func (v *Vocabulary) Contains(text, canonical string) bool {
	patterns, ok := v.patterns[canonical]
	if !ok {
		return false
	}

	lower := strings.ToLower(text)
	for _, pattern := range patterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}
