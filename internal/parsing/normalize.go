// Package parsing provides deterministic text analysis helpers: skill name
// normalization, section segmentation, and structured-cue extraction for
// experience and education signals.
package parsing

import "strings"

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":              "go",
	"go lang":             "go",
	"js":                  "javascript",
	"ts":                  "typescript",
	"k8s":                 "kubernetes",
	"react.js":            "react",
	"reactjs":             "react",
	"vue.js":              "vue",
	"vuejs":               "vue",
	"nodejs":              "node.js",
	"postgres":            "postgresql",
	"ml":                  "machine learning",
	"tf":                  "tensorflow",
	"sklearn":             "scikit-learn",
	"ci cd":               "ci/cd",
	"powerbi":             "power bi",
	"gcloud":              "gcp",
	"amazon web services": "aws",
}

// NormalizeSkillName normalizes a skill name to its canonical lowercase form.
// Canonical skill names are always lowercase so vocabulary lookups and
// matched-skill reporting stay case-insensitive.
func NormalizeSkillName(skillName string) string {
	normalized := strings.ToLower(strings.TrimSpace(skillName))
	if normalized == "" {
		return ""
	}

	if canonical, ok := skillNormalizations[normalized]; ok {
		return canonical
	}

	return normalized
}
