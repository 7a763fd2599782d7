// Package site renders the startup module that redirects a new environment
// onto its base installation.
package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/conn-castle/lvenv/internal/fsutil"
	"github.com/conn-castle/lvenv/internal/layout"
	"github.com/conn-castle/lvenv/internal/messages"
	"github.com/conn-castle/lvenv/internal/probe"
	"github.com/conn-castle/lvenv/internal/templates"
)

const (
	// StartupModule is the file name the interpreter executes at startup.
	StartupModule = "site.py"

	templatePath = "site.py.tmpl"
)

// Placeholder tokens, longest first.
const (
	TokenBaseExecPrefix = "__BASE_EXEC_PREFIX__"
	TokenBasePrefix     = "__BASE_PREFIX__"
	TokenExecPrefix     = "__EXEC_PREFIX__"
	TokenPrefix         = "__PREFIX__"
	TokenSite           = "__SITE__"
)

// Tokens returns every placeholder token in substitution order.
func Tokens() []string {
	return []string{TokenBaseExecPrefix, TokenBasePrefix, TokenExecPrefix, TokenPrefix, TokenSite}
}

// Placeholders are the values substituted into the startup module template.
type Placeholders struct {
	Prefix         string
	ExecPrefix     string
	BasePrefix     string
	BaseExecPrefix string
	// Site is the base installation's startup module source.
	Site string
}

// PlaceholdersFor returns the substitutions for an environment at l built from info.
func PlaceholdersFor(l layout.Layout, info probe.Info) Placeholders {
	return Placeholders{
		Prefix:         l.Root,
		ExecPrefix:     l.Root,
		BasePrefix:     info.Prefix,
		BaseExecPrefix: info.ExecPrefix,
		Site:           info.SitePath,
	}
}

// Path returns where the startup module is written for l.
func Path(l layout.Layout) string {
	return filepath.Join(l.LibDir, StartupModule)
}

var startupTemplate = sync.OnceValues(func() (string, error) {
	data, err := templates.Read(templatePath)
	if err != nil {
		return "", fmt.Errorf(messages.SiteReadTemplateFailedFmt, err)
	}
	return string(data), nil
})

// Render returns the startup module for p.
func Render(p Placeholders) (string, error) {
	tmpl, err := startupTemplate()
	if err != nil {
		return "", err
	}
	return RenderTemplate(tmpl, p), nil
}

// RenderTemplate substitutes p into tmpl. Values land inside double-quoted
// string literals, so each is escaped for that context.
func RenderTemplate(tmpl string, p Placeholders) string {
	r := strings.NewReplacer(
		TokenBaseExecPrefix, quote(p.BaseExecPrefix),
		TokenBasePrefix, quote(p.BasePrefix),
		TokenExecPrefix, quote(p.ExecPrefix),
		TokenPrefix, quote(p.Prefix),
		TokenSite, quote(p.Site),
	)
	return r.Replace(tmpl)
}

var literalEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`)

func quote(s string) string {
	return literalEscaper.Replace(s)
}

// System is the filesystem surface the generator needs.
type System interface {
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// WriteFileAtomic writes data to filename atomically.
func (RealSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}

// Generator writes the startup module into an environment.
type Generator struct {
	sys System
}

// NewGenerator returns a Generator backed by sys.
func NewGenerator(sys System) *Generator {
	return &Generator{sys: sys}
}

// Write renders the startup module for l and replaces any existing one.
func (g *Generator) Write(l layout.Layout, info probe.Info) error {
	content, err := Render(PlaceholdersFor(l, info))
	if err != nil {
		return err
	}
	path := Path(l)
	if err := g.sys.WriteFileAtomic(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf(messages.SiteWriteFailedFmt, path, err)
	}
	return nil
}
