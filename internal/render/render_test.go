package render

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/proposal-backend/internal/domain/entity"
	"github.com/ignatzorin/proposal-backend/internal/proposal"
)

func TestRenderer_ResultStructured(t *testing.T) {
	raw := "===INTRODUCTION===\nHello Acme\n===NEXT_STEPS===\nCall us"
	out := Renderer{}.Result(proposal.ParseSections(raw), raw)

	intro := strings.Index(out, "INTRODUCTION")
	next := strings.Index(out, "NEXT STEPS")
	rawIdx := strings.Index(out, rawHeading)

	assert.True(t, intro >= 0 && next > intro && rawIdx > next, out)
	assert.Contains(t, out, "Hello Acme")
	assert.Contains(t, out, "Call us")
}

func TestRenderer_ResultUnstructured(t *testing.T) {
	raw := "Just a plain answer."
	out := Renderer{}.Result(proposal.ParseSections(raw), raw)

	assert.Contains(t, out, rawHeading)
	assert.Contains(t, out, raw)
	assert.Equal(t, 1, strings.Count(out, raw))
}

func TestRenderer_SavedEmpty(t *testing.T) {
	assert.Contains(t, Renderer{}.Saved(nil), "No saved proposals yet.")
}

func TestRenderer_SavedList(t *testing.T) {
	items := []entity.SavedProposal{
		{ID: 2, ClientName: "Beta", ProjectType: "App", CreatedAt: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC), Content: "second"},
		{ID: 1, ClientName: "Acme", ProjectType: "Site", CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), Content: "first"},
	}

	out := Renderer{}.Saved(items)

	assert.Less(t, strings.Index(out, "Beta"), strings.Index(out, "Acme"))
	assert.Contains(t, out, "#2 2024-05-02 10:00")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("  short  ", 10))
	assert.Equal(t, "абв...", preview("абвгд", 3))
}

func TestRenderer_Error(t *testing.T) {
	out := Renderer{}.Error(errors.New("Failed to generate proposal: boom"))
	assert.Contains(t, out, "Failed to generate proposal: boom")
}
