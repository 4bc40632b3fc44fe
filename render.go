package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KaiqueGovani/termtris/internal/tetris"
)

type Theme struct {
	Name        string
	BorderColor lipgloss.Color
	TextColor   lipgloss.Color
	AccentColor lipgloss.Color
	LockedColor lipgloss.Color
	PieceColors []lipgloss.Color
}

var themes = []Theme{
	{
		Name:        "Classic",
		BorderColor: lipgloss.Color("15"),
		TextColor:   lipgloss.Color("250"),
		AccentColor: lipgloss.Color("226"),
		LockedColor: lipgloss.Color("244"),
		PieceColors: []lipgloss.Color{"51", "226", "93", "46", "196", "21", "208"},
	},
	{
		Name:        "Amber Terminal",
		BorderColor: lipgloss.Color("214"),
		TextColor:   lipgloss.Color("223"),
		AccentColor: lipgloss.Color("208"),
		LockedColor: lipgloss.Color("130"),
		PieceColors: []lipgloss.Color{"220", "214", "222", "208", "215", "216", "223"},
	},
	{
		Name:        "Ocean Neon",
		BorderColor: lipgloss.Color("33"),
		TextColor:   lipgloss.Color("159"),
		AccentColor: lipgloss.Color("39"),
		LockedColor: lipgloss.Color("24"),
		PieceColors: []lipgloss.Color{"45", "39", "51", "44", "50", "75", "81"},
	},
	{
		Name:        "Forest CRT",
		BorderColor: lipgloss.Color("22"),
		TextColor:   lipgloss.Color("120"),
		AccentColor: lipgloss.Color("34"),
		LockedColor: lipgloss.Color("28"),
		PieceColors: []lipgloss.Color{"47", "64", "77", "48", "71", "35", "106"},
	},
	{
		Name:        "Mono Matrix",
		BorderColor: lipgloss.Color("250"),
		TextColor:   lipgloss.Color("245"),
		AccentColor: lipgloss.Color("82"),
		LockedColor: lipgloss.Color("238"),
		PieceColors: []lipgloss.Color{"236", "239", "242", "245", "248", "251", "254"},
	},
}

func themeIndexByName(name string) int {
	for i, theme := range themes {
		if theme.Name == name {
			return i
		}
	}
	return -1
}

func viewMenu(m Model) string {
	theme := themes[m.themeIndex]
	content := renderMenu("TERMTRIS", menuItems, m.menuIndex, "Enter to select, Q to quit", theme)
	return center(m.width, m.height, content)
}

func viewThemes(m Model) string {
	theme := themes[m.themeIndex]
	items := make([]string, 0, len(themes))
	for _, t := range themes {
		items = append(items, t.Name)
	}
	preview := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle(theme).Render("Theme Preview"),
		renderPreviewPieceGrid(theme),
	)
	menu := renderMenu("Themes", items, m.themeIndex, "Enter to apply, Esc to back", theme)
	content := lipgloss.JoinVertical(lipgloss.Left, preview, "", menu)
	return center(m.width, m.height, content)
}

func renderPreviewPieceGrid(theme Theme) string {
	rowTop := renderPreviewPieceRow(theme, []tetris.Kind{tetris.KindI, tetris.KindO, tetris.KindT, tetris.KindS})
	rowBottom := renderPreviewPieceRow(theme, []tetris.Kind{tetris.KindZ, tetris.KindJ, tetris.KindL})
	return lipgloss.JoinVertical(lipgloss.Left, rowTop, rowBottom)
}

func renderPreviewPieceRow(theme Theme, kinds []tetris.Kind) string {
	items := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		piece := lipgloss.NewStyle().MarginRight(1).Render(renderMiniPiece(kind, theme, 1))
		items = append(items, piece)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func viewConfig(m Model) string {
	theme := themes[m.themeIndex]
	items := make([]string, 0, len(configItems))
	for i, item := range configItems {
		switch i {
		case 0:
			state := "OFF"
			if m.config.Sound {
				state = "ON"
			}
			items = append(items, fmt.Sprintf("%s: %s", item, state))
		case 1:
			items = append(items, fmt.Sprintf("%s: %d%%", item, clampVolumePercent(m.config.Volume)))
		case 2:
			items = append(items, fmt.Sprintf("%s: %dx", item, clampScale(m.config.Scale)))
		}
	}
	content := renderMenu("Config", items, m.configIndex, "Enter to toggle, Left/Right to adjust, Esc to back", theme)
	return center(m.width, m.height, content)
}

func viewGameOver(m Model) string {
	theme := themes[m.themeIndex]
	var b strings.Builder
	b.WriteString(titleStyle(theme).Render("Game Over"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Lines: %d\n\n", m.lastSnapshot.Lines))
	b.WriteString(helpStyle(theme).Render("Enter to play again, Esc to menu"))
	return center(m.width, m.height, b.String())
}

func viewGame(m Model) string {
	theme := themes[m.themeIndex]
	scale := clampScale(m.config.Scale)
	minWidth, minHeight := minGameSize(scale)
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		message := fmt.Sprintf("Terminal too small. Need at least %dx%d. Current %dx%d.", minWidth, minHeight, m.width, m.height)
		return center(m.width, m.height, message)
	}
	board := renderBoard(m.lastSnapshot, theme, scale)
	info := renderInfo(m.lastSnapshot, theme, m.lastEvent)
	content := lipgloss.JoinHorizontal(lipgloss.Top, board, info)
	if m.width < minWidth+24 {
		content = lipgloss.JoinVertical(lipgloss.Left, board, info)
	}
	return center(m.width, m.height, content)
}

// renderBoard draws the snapshot inside an ASCII border. Locked cells
// carry no kind, so they share the theme's locked color.
func renderBoard(snap tetris.Snapshot, theme Theme, scale int) string {
	border := lipgloss.NewStyle().Foreground(theme.BorderColor)
	cellEmpty := lipgloss.NewStyle()
	cellLocked := lipgloss.NewStyle().Background(theme.LockedColor)
	cellPiece := lipgloss.NewStyle().Background(pieceColor(theme, snap.Piece.Kind))
	cellText := strings.Repeat(" ", cellWidth(scale))
	edge := border.Render("+" + strings.Repeat("-", tetris.Width*cellWidth(scale)) + "+")

	var b strings.Builder
	b.WriteString(edge)
	b.WriteString("\n")
	for y := 0; y < tetris.Height; y++ {
		for repeat := 0; repeat < scale; repeat++ {
			b.WriteString(border.Render("|"))
			for x := 0; x < tetris.Width; x++ {
				switch {
				case snap.PieceAt(x, y):
					b.WriteString(cellPiece.Render(cellText))
				case snap.Board.Occupied(x, y):
					b.WriteString(cellLocked.Render(cellText))
				default:
					b.WriteString(cellEmpty.Render(cellText))
				}
			}
			b.WriteString(border.Render("|"))
			b.WriteString("\n")
		}
	}
	b.WriteString(edge)
	return b.String()
}

func renderInfo(snap tetris.Snapshot, theme Theme, lastEvent string) string {
	var b strings.Builder
	pad := lipgloss.NewStyle().PaddingLeft(2)
	b.WriteString(pad.Render(fmt.Sprintf("Lines: %d", snap.Lines)))
	b.WriteString("\n\n")
	if lastEvent != "" {
		b.WriteString(pad.Render(highlightStyle(theme).Render(lastEvent)))
		b.WriteString("\n\n")
	}
	keys := []string{
		"Left/Right or H/L: move",
		"Down or J: soft drop",
		"Up or X: rotate",
		"Q: menu",
	}
	for _, line := range keys {
		b.WriteString(pad.Render(helpStyle(theme).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderMiniPiece(kind tetris.Kind, theme Theme, scale int) string {
	shape := tetris.NewPiece(kind).Shape
	cellEmpty := lipgloss.NewStyle()
	cellFilled := lipgloss.NewStyle().Background(pieceColor(theme, kind))
	cellText := strings.Repeat(" ", cellWidth(scale))
	var b strings.Builder
	for y := 0; y < 4; y++ {
		for repeat := 0; repeat < scale; repeat++ {
			for x := 0; x < 4; x++ {
				if shape[y][x] == 0 {
					b.WriteString(cellEmpty.Render(cellText))
					continue
				}
				b.WriteString(cellFilled.Render(cellText))
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func pieceColor(theme Theme, kind tetris.Kind) lipgloss.Color {
	return theme.PieceColors[int(kind)%len(theme.PieceColors)]
}

func lineClearLabel(cleared int) string {
	switch cleared {
	case 0:
		return ""
	case 1:
		return "LINE CLEAR"
	default:
		return fmt.Sprintf("%d LINES", cleared)
	}
}

func minGameSize(scale int) (int, int) {
	width := tetris.Width*cellWidth(scale) + 4
	height := tetris.Height*scale + 4
	return width, height
}

func titleStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func highlightStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func helpStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.TextColor)
}

func center(width, height int, content string) string {
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func clampScale(value int) int {
	if value < 1 {
		return 1
	}
	if value > 3 {
		return 3
	}
	return value
}

func clampVolumePercent(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

func cellWidth(scale int) int {
	if scale < 1 {
		scale = 1
	}
	return 2 * scale
}

func renderMenu(title string, items []string, selected int, footer string, theme Theme) string {
	maxWidth := lipgloss.Width(title)
	for _, item := range items {
		if width := lipgloss.Width(item); width > maxWidth {
			maxWidth = width
		}
	}
	if width := lipgloss.Width(footer); width > maxWidth {
		maxWidth = width
	}
	lineStyle := lipgloss.NewStyle().Width(maxWidth).Align(lipgloss.Center)
	var b strings.Builder
	b.WriteString(lineStyle.Render(titleStyle(theme).Render(title)))
	b.WriteString("\n\n")
	for i, line := range items {
		if i == selected {
			b.WriteString(lineStyle.Render(highlightStyle(theme).Render(line)))
		} else {
			b.WriteString(lineStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lineStyle.Render(helpStyle(theme).Render(footer)))
	return b.String()
}
