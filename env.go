package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from the process environment. Command-line
// flags take precedence over these.
type Env struct {
	Debug     bool   `env:"TERMTRIS_DEBUG"`
	Seed      int64  `env:"TERMTRIS_SEED"`
	ConfigDir string `env:"TERMTRIS_CONFIG_DIR"`
	NoSound   bool   `env:"TERMTRIS_NO_SOUND"`
}

func loadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
