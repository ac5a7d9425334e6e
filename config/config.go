// Package config holds vclog's configuration. The per-user config file
// is read once at process start and threaded through as a value, never
// consulted as ambient global state.
package config

import (
	"fmt"

	"github.com/imdario/mergo"
)

const DefaultModel = "gpt-3.5-turbo"

type Config struct {
	Verbose bool   `json:"verbose,omitempty"`
	Quiet   bool   `json:"quiet,omitempty"`
	Format  string `json:"format,omitempty"`

	// AI endpoint settings, persisted in the per-user config file. URL is
	// the full chat completions endpoint.
	URL   string `json:"url,omitempty"`
	Key   string `json:"key,omitempty"`
	Model string `json:"model,omitempty"`
	Lang  string `json:"lang,omitempty"`

	Term TerminalIO `json:"-"`
}

func New(overrides *Config) Config {
	return NewWithTerminalIO(overrides, nil)
}

func NewWithTerminalIO(overrides *Config, termio *TerminalIO) Config {
	cfg := GetDefault()
	if termio == nil {
		termio = &DefaultTermIO
	}
	cfg.Term = *termio

	if overrides != nil {
		if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
			panic(err)
		}
	}
	return cfg
}

func GetDefault() Config {
	return Config{
		Format: "text",
		Model:  DefaultModel,
		Lang:   "zh",
	}
}

// AIConfigured reports whether enough is set to attempt a summarization
// request.
func (c Config) AIConfigured() bool {
	return c.URL != "" && c.Key != ""
}

func (c Config) Validate() error {
	switch c.Lang {
	case "", "zh", "en":
	default:
		return fmt.Errorf("config: unknown lang %q (expected zh or en)", c.Lang)
	}
	switch c.Format {
	case "", "text", "md":
	default:
		return fmt.Errorf("config: unknown format %q (expected text or md)", c.Format)
	}
	return nil
}

func (c Config) Printf(msg string, args ...interface{}) {
	if c.Quiet {
		return
	}
	fmt.Fprintf(c.Term.Stdout, msg+"\n", args...)
}

func (c Config) Errorf(msg string, args ...interface{}) {
	fmt.Fprintf(c.Term.Stderr, msg+"\n", args...)
}

func (c Config) Debugf(msg string, args ...interface{}) {
	if !c.Verbose {
		return
	}
	c.Printf(msg, args...)
}
