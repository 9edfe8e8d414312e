package parsing

import "strings"

// SectionState classifies which kind of requirements section a line of role
// text falls under. The classifier is a tagged state machine rather than
// nested conditionals so the policy stays easy to audit and extend.
type SectionState int

// Section states. Unclassified text is treated as required: ambiguous
// documents bias toward the safer classification.
const (
	SectionUnclassified SectionState = iota
	SectionRequired
	SectionPreferred
)

// String returns a human-readable name for the state
func (s SectionState) String() string {
	switch s {
	case SectionRequired:
		return "required"
	case SectionPreferred:
		return "preferred"
	default:
		return "unclassified"
	}
}

// Segment is a run of consecutive lines sharing one section state
type Segment struct {
	State SectionState
	Text  string
}

// requiredMarkers flip the classifier into the required state when they
// appear in a line. Matching is substring-based on the lowercased line,
// the same best-effort heuristic recruiters' free-form postings need.
var requiredMarkers = []string{
	"required",
	"requirements",
	"must have",
	"must-have",
	"qualifications",
	"what you need",
	"what we're looking for",
}

// preferredMarkers flip the classifier into the preferred state
var preferredMarkers = []string{
	"preferred",
	"nice to have",
	"nice-to-have",
	"bonus",
	"good to have",
	"a plus",
}

// SegmentSections splits role text into segments tagged by section state.
// Lines before any marker stay unclassified; a line containing a marker
// switches the state for itself and subsequent lines. Preferred markers are
// checked first so "required" appearing inside a nice-to-have heading (e.g.
// "not required, nice to have") does not reclassify it.
func SegmentSections(text string) []Segment {
	lines := strings.Split(text, "\n")

	state := SectionUnclassified
	var segments []Segment
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			segments = append(segments, Segment{State: state, Text: current.String()})
			current.Reset()
		}
	}

	for _, line := range lines {
		next := classifyLine(line, state)
		if next != state {
			flush()
			state = next
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	flush()

	return segments
}

// classifyLine returns the section state in effect from this line onward
func classifyLine(line string, current SectionState) SectionState {
	lower := strings.ToLower(line)

	for _, marker := range preferredMarkers {
		if strings.Contains(lower, marker) {
			return SectionPreferred
		}
	}
	for _, marker := range requiredMarkers {
		if strings.Contains(lower, marker) {
			return SectionRequired
		}
	}

	return current
}
