package app

import (
	"errors"
	"fmt"
)

// The user-facing operations.
const (
	CommandBuild = "build"
	CommandShell = "shell"
	CommandEval  = "eval"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // hcl files
	Command    string // build, shell, or eval
	Platform   string // empty selects the current host platform
	BuilderCmd string // external builder command; empty prints the derivation

	LogFormat   string
	LogLevel    string
	WorkerCount int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}

	switch cfg.Command {
	case CommandBuild, CommandShell, CommandEval:
		// valid
	default:
		return nil, fmt.Errorf("unknown command %q: must be 'build', 'shell', or 'eval'", cfg.Command)
	}

	return &cfg, nil
}
