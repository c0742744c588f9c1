package tui

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_DoneQuits(t *testing.T) {
	m := newModel("Generating...", nil, nil)

	next, cmd := m.Update(doneMsg{result: "text"})

	got := next.(model)
	assert.True(t, got.done)
	assert.Equal(t, "text", got.result)
	assert.NoError(t, got.err)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, got.View())
}

func TestModel_DoneWithError(t *testing.T) {
	m := newModel("Generating...", nil, nil)
	boom := errors.New("boom")

	next, _ := m.Update(doneMsg{err: boom})

	assert.ErrorIs(t, next.(model).err, boom)
}

func TestModel_CtrlCCancels(t *testing.T) {
	cancelled := false
	m := newModel("Generating...", nil, func() { cancelled = true })

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, cancelled)
	assert.ErrorIs(t, next.(model).err, ErrInterrupted)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_OtherKeysIgnored(t *testing.T) {
	m := newModel("Generating...", nil, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.False(t, next.(model).done)
	assert.Nil(t, cmd)
}

func TestModel_ViewShowsLabel(t *testing.T) {
	m := newModel("Generating...", nil, nil)
	assert.Contains(t, m.View(), "Generating...")
}

func TestModel_TickAfterDoneStops(t *testing.T) {
	m := newModel("Generating...", nil, nil)
	m.done = true

	_, cmd := m.Update(spinner.TickMsg{})

	assert.Nil(t, cmd)
}
