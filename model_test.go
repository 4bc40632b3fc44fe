package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaiqueGovani/termtris/internal/tetris"
)

var testEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(Options{
		Seed:      1,
		ConfigDir: t.TempDir(),
		Now:       func() time.Time { return testEpoch },
	})
}

func key(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func startedModel(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t)
	m, cmd := send(t, m, key("enter"))
	require.Equal(t, screenGame, m.screen)
	require.NotNil(t, cmd)
	require.NotNil(t, m.session)
	return m
}

func TestCommandForKey(t *testing.T) {
	tests := []struct {
		key  string
		want tetris.Command
	}{
		{"left", tetris.CommandLeft},
		{"h", tetris.CommandLeft},
		{"right", tetris.CommandRight},
		{"l", tetris.CommandRight},
		{"down", tetris.CommandDown},
		{"j", tetris.CommandDown},
		{"up", tetris.CommandRotate},
		{"x", tetris.CommandRotate},
		{" ", tetris.CommandNone},
		{"c", tetris.CommandNone},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, commandForKey(tt.key))
		})
	}
}

func TestStartGameSpawnsPiece(t *testing.T) {
	m := startedModel(t)
	assert.Equal(t, tetris.Width/2-2, m.lastSnapshot.Piece.X)
	assert.Equal(t, 0, m.lastSnapshot.Piece.Y)
	assert.Equal(t, tetris.StateRunning, m.lastSnapshot.State)
	assert.Contains(t, m.View(), "Lines: 0")
}

func TestFrameAppliesGravityOnInterval(t *testing.T) {
	m := startedModel(t)

	m, cmd := send(t, m, frameMsg{at: testEpoch.Add(frameInterval), gen: m.frameGen})
	assert.NotNil(t, cmd)
	assert.Equal(t, 0, m.lastSnapshot.Piece.Y)

	m, _ = send(t, m, frameMsg{at: testEpoch.Add(tetris.DropInterval), gen: m.frameGen})
	assert.Equal(t, 1, m.lastSnapshot.Piece.Y)
}

func TestStaleFrameIsIgnored(t *testing.T) {
	m := startedModel(t)
	m, cmd := send(t, m, frameMsg{at: testEpoch.Add(tetris.DropInterval), gen: m.frameGen - 1})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.lastSnapshot.Piece.Y)
}

func TestKeysMovePiece(t *testing.T) {
	m := startedModel(t)
	x := m.lastSnapshot.Piece.X

	m, _ = send(t, m, key("left"))
	assert.Equal(t, x-1, m.lastSnapshot.Piece.X)
	m, _ = send(t, m, key("l"))
	assert.Equal(t, x, m.lastSnapshot.Piece.X)
	m, _ = send(t, m, key("down"))
	assert.Equal(t, 1, m.lastSnapshot.Piece.Y)
}

func TestQuitGameReturnsToMenu(t *testing.T) {
	m := startedModel(t)
	m, _ = send(t, m, key("q"))
	assert.Equal(t, screenMenu, m.screen)
	assert.Nil(t, m.session)

	// frames of the abandoned game do nothing
	m, cmd := send(t, m, frameMsg{at: testEpoch.Add(time.Second), gen: m.frameGen})
	assert.Nil(t, cmd)
	assert.Equal(t, screenMenu, m.screen)
}

func TestGameRunsToGameOver(t *testing.T) {
	m := startedModel(t)
	now := testEpoch
	for i := 0; i < 10000 && m.screen == screenGame; i++ {
		now = now.Add(tetris.DropInterval)
		m, _ = send(t, m, frameMsg{at: now, gen: m.frameGen})
	}
	require.Equal(t, screenGameOver, m.screen)
	assert.Nil(t, m.session)
	assert.Equal(t, tetris.StateGameOver, m.lastSnapshot.State)
	assert.Contains(t, m.View(), "Game Over")

	m, cmd := send(t, m, key("enter"))
	assert.NotNil(t, cmd)
	assert.Equal(t, screenGame, m.screen)
	assert.Equal(t, tetris.StateRunning, m.lastSnapshot.State)
}

func TestConfigTogglePersists(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(Options{Seed: 1, ConfigDir: dir})
	m, _ = send(t, m, key("down"))
	m, _ = send(t, m, key("down"))
	m, _ = send(t, m, key("enter"))
	require.Equal(t, screenConfig, m.screen)

	m, _ = send(t, m, key("enter"))
	assert.False(t, m.config.Sound)

	m, _ = send(t, m, key("down"))
	m, _ = send(t, m, key("left"))
	assert.Equal(t, 65, m.config.Volume)

	saved, err := loadConfig(dir)
	require.NoError(t, err)
	assert.False(t, saved.Sound)
	assert.Equal(t, 65, saved.Volume)
}

func TestThemeSelectionPersists(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(Options{Seed: 1, ConfigDir: dir})
	m, _ = send(t, m, key("down"))
	m, _ = send(t, m, key("enter"))
	require.Equal(t, screenThemes, m.screen)

	m, _ = send(t, m, key("down"))
	m, _ = send(t, m, key("enter"))
	assert.Equal(t, screenMenu, m.screen)
	assert.Equal(t, themes[1].Name, m.config.Theme)

	saved, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, themes[1].Name, saved.Theme)
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}
