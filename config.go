package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jcorbin/yafi/internal/mem"
	"github.com/jcorbin/yafi/internal/stack"
)

// Config is the machine and shell configuration, as read from a TOML file
// like:
//
//	stack-size = 256
//	memory-cells = 4096
//	prompt = "ok> "
//	files = ["prelude.fs"]
type Config struct {
	StackSize       int      `toml:"stack-size"`
	ReturnStackSize int      `toml:"return-stack-size"`
	MemoryCells     int      `toml:"memory-cells"`
	Prompt          string   `toml:"prompt"`
	Quiet           bool     `toml:"quiet"`
	Trace           bool     `toml:"trace"`
	CoreFile        string   `toml:"core-file"`
	Files           []string `toml:"files"`
}

func defaultConfig() Config {
	return Config{
		StackSize:       stack.DefaultCapacity,
		ReturnStackSize: stack.DefaultCapacity,
		MemoryCells:     mem.DefaultCells,
		Prompt:          "> ",
	}
}

// loadConfig decodes the TOML file at path over cfg; keys missing from the
// file keep their prior values, unknown keys are an error.
func loadConfig(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return fmt.Errorf("unknown keys in %s: %v", path, strings.Join(keys, ", "))
	}
	return cfg.validate()
}

func (cfg Config) validate() error {
	var errs []error
	if cfg.StackSize <= 0 {
		errs = append(errs, fmt.Errorf("invalid stack-size %v", cfg.StackSize))
	}
	if cfg.ReturnStackSize <= 0 {
		errs = append(errs, fmt.Errorf("invalid return-stack-size %v", cfg.ReturnStackSize))
	}
	if cfg.MemoryCells <= 0 {
		errs = append(errs, fmt.Errorf("invalid memory-cells %v", cfg.MemoryCells))
	}
	return errors.Join(errs...)
}

// options returns the machine options that cfg calls for; a quiet machine
// has no banner, prompt, or stack echo.
func (cfg Config) options() VMOption {
	opts := []VMOption{
		WithStackSize(cfg.StackSize),
		WithReturnStackSize(cfg.ReturnStackSize),
		WithMemCells(cfg.MemoryCells),
		WithCoreFile(cfg.CoreFile),
	}
	if !cfg.Quiet {
		opts = append(opts,
			WithBanner(true),
			WithPrompt(cfg.Prompt),
			WithStackEcho(true),
		)
	}
	return VMOptions(opts...)
}
