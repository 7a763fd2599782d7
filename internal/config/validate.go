package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/conn-castle/lvenv/internal/messages"
)

// Validate checks the values present in the config. Absent keys are valid.
func (c *Config) Validate(source string) error {
	if c.Python.Interpreter != "" && strings.TrimSpace(c.Python.Interpreter) == "" {
		return fmt.Errorf(messages.ConfigInterpreterEmptyFmt, source)
	}
	if c.Python.Name != "" && !isPlainFileName(c.Python.Name) {
		return fmt.Errorf(messages.ConfigNameInvalidFmt, source, c.Python.Name)
	}
	if c.Create.DiffLines != nil && *c.Create.DiffLines < 0 {
		return fmt.Errorf(messages.ConfigDiffLinesNegativeFmt, source, *c.Create.DiffLines)
	}
	return nil
}

func isPlainFileName(name string) bool {
	if name == "." || name == ".." || strings.TrimSpace(name) != name {
		return false
	}
	return !strings.ContainsRune(name, filepath.Separator) && filepath.Base(name) == name
}
