package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentSections_NoMarkersDefaultsUnclassified(t *testing.T) {
	segments := SegmentSections("We are hiring a backend engineer.\nJoin our team.")

	require.Len(t, segments, 1)
	assert.Equal(t, SectionUnclassified, segments[0].State)
}

func TestSegmentSections_RequiredAndPreferred(t *testing.T) {
	text := "About the role\n" +
		"Requirements:\n" +
		"- 5 years with Python\n" +
		"- SQL proficiency\n" +
		"Nice to have:\n" +
		"- Kubernetes\n"

	segments := SegmentSections(text)
	require.Len(t, segments, 3)

	assert.Equal(t, SectionUnclassified, segments[0].State)
	assert.Contains(t, segments[0].Text, "About the role")

	assert.Equal(t, SectionRequired, segments[1].State)
	assert.Contains(t, segments[1].Text, "Python")
	assert.Contains(t, segments[1].Text, "SQL")

	assert.Equal(t, SectionPreferred, segments[2].State)
	assert.Contains(t, segments[2].Text, "Kubernetes")
}

func TestSegmentSections_PreferredMarkerWinsOverRequired(t *testing.T) {
	// "not required, nice to have" must classify as preferred
	segments := SegmentSections("Bonus skills (not required):\n- Terraform\n")

	require.NotEmpty(t, segments)
	assert.Equal(t, SectionPreferred, segments[0].State)
}

func TestSegmentSections_MustHaveMarker(t *testing.T) {
	segments := SegmentSections("Must have:\n- Go\n")

	require.Len(t, segments, 1)
	assert.Equal(t, SectionRequired, segments[0].State)
}

func TestSegmentSections_EmptyText(t *testing.T) {
	segments := SegmentSections("")
	// A single empty unclassified segment or none; either way nothing classified
	for _, seg := range segments {
		assert.Equal(t, SectionUnclassified, seg.State)
	}
}

func TestSectionState_String(t *testing.T) {
	assert.Equal(t, "required", SectionRequired.String())
	assert.Equal(t, "preferred", SectionPreferred.String())
	assert.Equal(t, "unclassified", SectionUnclassified.String())
}
