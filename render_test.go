package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaiqueGovani/termtris/internal/tetris"
)

func TestRenderBoardDimensions(t *testing.T) {
	snap := tetris.Snapshot{Piece: tetris.NewPiece(tetris.KindT)}
	for scale := 1; scale <= 3; scale++ {
		out := renderBoard(snap, themes[0], scale)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, tetris.Height*scale+2)
		for i, line := range lines {
			assert.Equal(t, tetris.Width*cellWidth(scale)+2, lipgloss.Width(line), "scale %d line %d", scale, i)
		}
		assert.Contains(t, lines[0], "+--")
	}
}

func TestMinGameSize(t *testing.T) {
	w, h := minGameSize(1)
	assert.Equal(t, tetris.Width*2+4, w)
	assert.Equal(t, tetris.Height+4, h)
}

func TestViewGameTooSmall(t *testing.T) {
	m := startedModel(t)
	m.width, m.height = 10, 5
	assert.Contains(t, viewGame(m), "Terminal too small")
}

func TestLineClearLabel(t *testing.T) {
	assert.Equal(t, "", lineClearLabel(0))
	assert.Equal(t, "LINE CLEAR", lineClearLabel(1))
	assert.Equal(t, "4 LINES", lineClearLabel(4))
}

func TestRenderInfoShowsLinesAndEvent(t *testing.T) {
	out := renderInfo(tetris.Snapshot{Lines: 12}, themes[0], "2 LINES")
	assert.Contains(t, out, "Lines: 12")
	assert.Contains(t, out, "2 LINES")
}

func TestRenderMenuListsItems(t *testing.T) {
	out := renderMenu("TERMTRIS", menuItems, 0, "footer", themes[0])
	for _, item := range menuItems {
		assert.Contains(t, out, item)
	}
	assert.Contains(t, out, "footer")
}

func TestThemeIndexByName(t *testing.T) {
	for i, theme := range themes {
		assert.Equal(t, i, themeIndexByName(theme.Name))
		assert.NotEmpty(t, theme.PieceColors)
	}
	assert.Equal(t, -1, themeIndexByName("missing"))
}

func TestClamps(t *testing.T) {
	assert.Equal(t, 1, clampScale(0))
	assert.Equal(t, 3, clampScale(7))
	assert.Equal(t, 0, clampVolumePercent(-5))
	assert.Equal(t, 100, clampVolumePercent(101))
	assert.Equal(t, 4, cellWidth(2))
}
