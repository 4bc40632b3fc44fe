package main

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ebitengine/oto/v3"

	"github.com/KaiqueGovani/termtris/internal/tetris"
)

type Screen int

const (
	screenMenu Screen = iota
	screenGame
	screenThemes
	screenConfig
	screenGameOver
)

// frameInterval paces the game loop; gravity itself runs on
// tetris.DropInterval.
const frameInterval = 50 * time.Millisecond

const lineClearLabelDuration = 900 * time.Millisecond

type frameMsg struct {
	at  time.Time
	gen int
}

type soundMsg struct{}

type Options struct {
	Seed      int64
	ConfigDir string
	// Audio is the output device for sound cues; nil runs silent.
	Audio *oto.Context
	// Now is the clock used to start sessions. Defaults to time.Now.
	Now func() time.Time
}

type Model struct {
	screen       Screen
	width        int
	height       int
	menuIndex    int
	configIndex  int
	themeIndex   int
	config       Config
	configDir    string
	sound        *SoundEngine
	rng          *rand.Rand
	now          func() time.Time
	session      *tetris.Session
	lastSnapshot tetris.Snapshot
	lastEvent    string
	lastEventTil time.Time
	frameGen     int
}

func NewModel(opts Options) Model {
	config, err := loadConfig(opts.ConfigDir)
	if err != nil {
		DebugLogf("config load error: %v", err)
	}
	index := themeIndexByName(config.Theme)
	if index < 0 {
		index = 0
		config.Theme = themes[index].Name
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	DebugLogf("seed=%d", seed)
	sound := NewSoundEngine(opts.Audio, audioSampleRate, config.Sound)
	sound.SetVolume(volumeFromPercent(config.Volume))
	return Model{
		screen:     screenMenu,
		config:     config,
		configDir:  opts.ConfigDir,
		themeIndex: index,
		sound:      sound,
		rng:        rand.New(rand.NewSource(seed)),
		now:        now,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case frameMsg:
		return m, m.updateFrame(msg)
	case soundMsg:
		return m, nil
	case tea.KeyMsg:
		switch m.screen {
		case screenMenu:
			return m, m.updateMenu(msg)
		case screenGame:
			return m, m.updateGame(msg)
		case screenThemes:
			return m, m.updateThemes(msg)
		case screenConfig:
			return m, m.updateConfig(msg)
		case screenGameOver:
			return m, m.updateGameOver(msg)
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch m.screen {
	case screenMenu:
		return viewMenu(m)
	case screenGame:
		return viewGame(m)
	case screenThemes:
		return viewThemes(m)
	case screenConfig:
		return viewConfig(m)
	case screenGameOver:
		return viewGameOver(m)
	default:
		return ""
	}
}

func frameCmd(gen int) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg{at: t, gen: gen} })
}

func playSound(engine *SoundEngine, event SoundEvent) tea.Cmd {
	return func() tea.Msg {
		engine.Play(event)
		return soundMsg{}
	}
}

func (m *Model) soundCmd(event SoundEvent) tea.Cmd {
	if !m.config.Sound {
		return nil
	}
	return playSound(m.sound, event)
}

// commandForKey maps a key name to a session command.
func commandForKey(key string) tetris.Command {
	switch key {
	case "left", "h":
		return tetris.CommandLeft
	case "right", "l":
		return tetris.CommandRight
	case "down", "j":
		return tetris.CommandDown
	case "up", "x":
		return tetris.CommandRotate
	default:
		return tetris.CommandNone
	}
}

func (m *Model) startGame() tea.Cmd {
	m.session = tetris.NewSession(m.rng, m.now())
	m.lastSnapshot = m.session.Snapshot()
	m.lastEvent = ""
	m.lastEventTil = time.Time{}
	m.screen = screenGame
	// stale frame chains from an earlier game carry an old generation
	m.frameGen++
	DebugLogf("game start piece=%s", m.lastSnapshot.Piece.Kind)
	return frameCmd(m.frameGen)
}

func (m *Model) updateFrame(msg frameMsg) tea.Cmd {
	if msg.gen != m.frameGen || m.screen != screenGame || m.session == nil {
		return nil
	}
	result := m.session.Tick(msg.at)
	m.lastSnapshot = m.session.Snapshot()
	if !m.lastEventTil.IsZero() && msg.at.After(m.lastEventTil) {
		m.lastEvent = ""
		m.lastEventTil = time.Time{}
	}
	if result.Locked {
		DebugLogf("lock cleared=%d lines=%d next=%s", result.Cleared, m.lastSnapshot.Lines, m.lastSnapshot.Piece.Kind)
	}
	if result.Cleared > 0 {
		m.lastEvent = lineClearLabel(result.Cleared)
		m.lastEventTil = msg.at.Add(lineClearLabelDuration)
	}
	if result.GameOver {
		DebugLogf("game over lines=%d board=%s", m.lastSnapshot.Lines, m.lastSnapshot)
		m.screen = screenGameOver
		m.session = nil
		return m.soundCmd(SoundGameOver)
	}
	cmds := []tea.Cmd{frameCmd(m.frameGen)}
	if event, ok := soundEventForStep(result); ok {
		cmds = append(cmds, m.soundCmd(event))
	}
	return tea.Batch(cmds...)
}

func (m *Model) updateGame(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "q" || key == "esc" {
		m.session = nil
		m.screen = screenMenu
		return nil
	}
	if m.session == nil {
		return nil
	}
	cmd := commandForKey(key)
	if cmd == tetris.CommandNone {
		return nil
	}
	changed := m.session.Handle(cmd)
	m.lastSnapshot = m.session.Snapshot()
	if !changed {
		return nil
	}
	switch cmd {
	case tetris.CommandLeft, tetris.CommandRight:
		return m.soundCmd(SoundMove)
	case tetris.CommandRotate:
		return m.soundCmd(SoundRotate)
	}
	return nil
}

func (m *Model) updateGameOver(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return tea.Batch(m.soundCmd(SoundMenuSelect), m.startGame())
	case "q", "esc":
		m.screen = screenMenu
	}
	return nil
}

var menuItems = []string{
	"Start Game",
	"Themes",
	"Config",
	"Quit",
}

var configItems = []string{
	"Sound Effects",
	"Volume",
	"Game Scale",
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
			return m.soundCmd(SoundMenuMove)
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
			return m.soundCmd(SoundMenuMove)
		}
	case "enter":
		selectCmd := m.soundCmd(SoundMenuSelect)
		switch m.menuIndex {
		case 0:
			return tea.Batch(selectCmd, m.startGame())
		case 1:
			m.screen = screenThemes
			return selectCmd
		case 2:
			m.screen = screenConfig
			return selectCmd
		case 3:
			return tea.Quit
		}
	case "q", "esc", "ctrl+c":
		return tea.Quit
	}
	return nil
}

func (m *Model) updateThemes(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.themeIndex > 0 {
			m.themeIndex--
			return m.soundCmd(SoundMenuMove)
		}
	case "down", "j":
		if m.themeIndex < len(themes)-1 {
			m.themeIndex++
			return m.soundCmd(SoundMenuMove)
		}
	case "enter":
		m.config.Theme = themes[m.themeIndex].Name
		m.persistConfig()
		m.screen = screenMenu
		return m.soundCmd(SoundMenuSelect)
	case "q", "esc":
		m.themeIndex = max(themeIndexByName(m.config.Theme), 0)
		m.screen = screenMenu
	}
	return nil
}

func (m *Model) updateConfig(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.configIndex > 0 {
			m.configIndex--
			return m.soundCmd(SoundMenuMove)
		}
	case "down", "j":
		if m.configIndex < len(configItems)-1 {
			m.configIndex++
			return m.soundCmd(SoundMenuMove)
		}
	case "enter":
		switch m.configIndex {
		case 0:
			m.config.Sound = !m.config.Sound
			m.sound.SetEnabled(m.config.Sound)
			m.persistConfig()
		case 1:
			m.adjustVolume(5)
		case 2:
			m.adjustScale(1)
		}
		return m.soundCmd(SoundMenuSelect)
	case "left", "h":
		return m.adjustSelected(-1)
	case "right", "l":
		return m.adjustSelected(1)
	case "q", "esc":
		m.screen = screenMenu
	}
	return nil
}

func (m *Model) adjustSelected(dir int) tea.Cmd {
	switch m.configIndex {
	case 1:
		m.adjustVolume(5 * dir)
	case 2:
		m.adjustScale(dir)
	default:
		return nil
	}
	return m.soundCmd(SoundMenuMove)
}

func (m *Model) adjustVolume(delta int) {
	volume := clampVolumePercent(m.config.Volume + delta)
	if volume == m.config.Volume {
		return
	}
	m.config.Volume = volume
	m.sound.SetVolume(volumeFromPercent(volume))
	m.persistConfig()
}

func (m *Model) adjustScale(delta int) {
	scale := clampScale(m.config.Scale + delta)
	if scale == m.config.Scale {
		return
	}
	m.config.Scale = scale
	m.persistConfig()
}

func (m *Model) persistConfig() {
	if err := saveConfig(m.configDir, m.config); err != nil {
		DebugLogf("config save error: %v", err)
	}
}
