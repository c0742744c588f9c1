package proposal

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSections(t *testing.T, text string) *SectionMap {
	t.Helper()
	res := ParseSections(text)
	sections, ok := res.Sections()
	require.True(t, ok, "expected structured result for %q", text)
	return sections
}

func TestParseSections_Unstructured(t *testing.T) {
	for _, text := range []string{
		"",
		"   ",
		"Plain proposal text without any markers.",
		"== A == not a marker",
		"===lower===",
		"===Mixed_Case===",
		"===A-B===",
	} {
		res := ParseSections(text)
		assert.Equal(t, Unstructured, res.Kind, text)
		assert.False(t, res.IsStructured(), text)
		_, ok := res.Sections()
		assert.False(t, ok, text)
	}
}

func TestParseSections_TwoSections(t *testing.T) {
	s := mustSections(t, "===A=== x ===B=== y")

	assert.Equal(t, []string{"A", "B"}, s.Keys())
	a, _ := s.Get("A")
	b, _ := s.Get("B")
	assert.Equal(t, "x", a)
	assert.Equal(t, "y", b)
}

func TestParseSections_RepeatedMarkerLastWins(t *testing.T) {
	s := mustSections(t, "===A=== x ===A=== y")

	assert.Equal(t, 1, s.Len())
	a, _ := s.Get("A")
	assert.Equal(t, "y", a)
}

func TestParseSections_RepeatedMarkerKeepsFirstPosition(t *testing.T) {
	s := mustSections(t, "===A=== 1 ===B=== 2 ===A=== 3")

	assert.Equal(t, []string{"A", "B"}, s.Keys())
	a, _ := s.Get("A")
	assert.Equal(t, "3", a)
}

func TestParseSections_TrimsBody(t *testing.T) {
	s := mustSections(t, "===A===  hello  ===B===")

	a, _ := s.Get("A")
	b, ok := s.Get("B")
	assert.Equal(t, "hello", a)
	assert.True(t, ok)
	assert.Equal(t, "", b)
}

func TestParseSections_DropsPreamble(t *testing.T) {
	s := mustSections(t, "ignored ===A=== kept")

	assert.Equal(t, []string{"A"}, s.Keys())
	a, _ := s.Get("A")
	assert.Equal(t, "kept", a)
	for _, sec := range s.Sections() {
		assert.NotContains(t, sec.Body, "ignored")
	}
}

func TestParseSections_TrimsMarkerName(t *testing.T) {
	s := mustSections(t, "=== EXECUTIVE SUMMARY ===\nbody\n===  CLOSING===end")

	assert.Equal(t, []string{"EXECUTIVE SUMMARY", "CLOSING"}, s.Keys())
}

func TestParseSections_LowercaseMarkerIsLiteral(t *testing.T) {
	s := mustSections(t, "===A=== before ===lower=== after")

	a, _ := s.Get("A")
	assert.Equal(t, "before ===lower=== after", a)
}

func TestParseSections_PreservesMarkdown(t *testing.T) {
	body := "- **Phase 1**: discovery (2 weeks)\n- **Phase 2**: build\n\n> note"
	s := mustSections(t, "===METHODOLOGY_AND_TIMELINE===\n\n"+body+"\n\n")

	got, _ := s.Get(SectionMethodologyAndTimeline)
	assert.Equal(t, body, got)
}

func TestParseSections_DigitsInName(t *testing.T) {
	s := mustSections(t, "===PHASE_1=== a ===PHASE 2=== b")

	assert.Equal(t, []string{"PHASE_1", "PHASE 2"}, s.Keys())
}

func TestParseSections_RoundTripSevenMarkers(t *testing.T) {
	var b strings.Builder
	b.WriteString("Sure! Here is your proposal.\n\n")
	for _, name := range SectionOrder() {
		b.WriteString(Marker(name))
		b.WriteString("\nText for " + name + ".\n\n")
	}

	s := mustSections(t, b.String())

	assert.Equal(t, SectionOrder(), s.Keys())
	closing, _ := s.Get(SectionClosing)
	assert.Equal(t, "Text for CLOSING.", closing)
}

func TestSectionMap_MarshalJSONKeepsOrder(t *testing.T) {
	s := mustSections(t, "===Z=== last letter ===A=== \"quoted\"")

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"Z":"last letter","A":"\"quoted\""}`, string(data))
}

func TestSectionMap_KeysReturnsCopy(t *testing.T) {
	s := mustSections(t, "===A=== x")
	keys := s.Keys()
	keys[0] = "MUTATED"

	assert.Equal(t, []string{"A"}, s.Keys())
}

func TestSectionTitle(t *testing.T) {
	assert.Equal(t, "EXECUTIVE SUMMARY", SectionTitle("EXECUTIVE_SUMMARY"))
	assert.Equal(t, "CLOSING", SectionTitle("CLOSING"))
}
