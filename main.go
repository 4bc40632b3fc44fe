package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ebitengine/oto/v3"
)

func main() {
	settings, err := loadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	debug := flag.Bool("debug", settings.Debug, "enable debug logging")
	seed := flag.Int64("seed", settings.Seed, "piece sequence seed (0 picks one from the clock)")
	flag.Parse()
	EnableDebugLogging(*debug)
	DebugLogf("termtris start debug=%v config_dir=%q", *debug, settings.ConfigDir)

	var audio *oto.Context
	if !settings.NoSound {
		audio, err = initAudioContext()
		if err != nil {
			DebugLogf("audio context init error: %v", err)
		}
	}

	model := NewModel(Options{
		Seed:      *seed,
		ConfigDir: settings.ConfigDir,
		Audio:     audio,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		DebugLogf("program error: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
