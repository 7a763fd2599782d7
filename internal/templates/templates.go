// Package templates exposes the files embedded into the lvenv binary.
package templates

import (
	"embed"
	"fmt"

	"github.com/conn-castle/lvenv/internal/messages"
)

//go:embed site.py.tmpl config.toml
var files embed.FS

// Read returns the embedded template at path.
func Read(path string) ([]byte, error) {
	data, err := files.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.TemplatesReadFailedFmt, path, err)
	}
	return data, nil
}
