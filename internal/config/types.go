// Package config loads the optional lvenv user configuration.
package config

import "github.com/conn-castle/lvenv/internal/preview"

// Config is the parsed content of config.toml.
type Config struct {
	Python PythonConfig `toml:"python"`
	Create CreateConfig `toml:"create"`
}

// PythonConfig selects the base interpreter.
type PythonConfig struct {
	Interpreter string `toml:"interpreter"`
	Name        string `toml:"name"`
}

// CreateConfig tunes the create command.
type CreateConfig struct {
	Prompt    *bool `toml:"prompt"`
	DiffLines *int  `toml:"diff_lines"`
}

// PromptEnabled reports whether create may ask before rebuilding. Unset means true.
func (c CreateConfig) PromptEnabled() bool {
	return c.Prompt == nil || *c.Prompt
}

// DiffMaxLines returns the diff line cap. Unset or zero selects the preview default.
func (c CreateConfig) DiffMaxLines() int {
	if c.DiffLines == nil {
		return preview.DefaultDiffMaxLines
	}
	return preview.NormalizeDiffMaxLines(*c.DiffLines)
}
