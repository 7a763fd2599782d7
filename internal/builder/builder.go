// Package builder creates legacy environments for interpreters without
// native isolated-environment support.
package builder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/conn-castle/lvenv/internal/layout"
	"github.com/conn-castle/lvenv/internal/messages"
	"github.com/conn-castle/lvenv/internal/probe"
	"github.com/conn-castle/lvenv/internal/site"
	"github.com/conn-castle/lvenv/internal/stage"
)

// Options configures a Legacy builder. Zero values select the real system.
type Options struct {
	Runner      probe.Runner
	StageSystem stage.System
	SiteSystem  site.System
	// ReadFile reads an existing startup module for dry-run diffs.
	ReadFile func(name string) ([]byte, error)
	// Name is the base name of the interpreter aliases; empty means "python".
	Name         string
	Logger       *slog.Logger
	DiffMaxLines int
}

// Legacy builds environments by probing the base interpreter, staging its
// bootstrap files and generating the startup module.
type Legacy struct {
	runner       probe.Runner
	stager       *stage.Stager
	generator    *site.Generator
	readFile     func(name string) ([]byte, error)
	name         string
	logger       *slog.Logger
	diffMaxLines int
}

// NewLegacy returns a builder configured by opts.
func NewLegacy(opts Options) *Legacy {
	if opts.Runner == nil {
		opts.Runner = probe.ExecRunner{}
	}
	if opts.StageSystem == nil {
		opts.StageSystem = stage.RealSystem{}
	}
	if opts.SiteSystem == nil {
		opts.SiteSystem = site.RealSystem{}
	}
	if opts.ReadFile == nil {
		opts.ReadFile = os.ReadFile
	}
	if opts.Name == "" {
		opts.Name = stage.DefaultName
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Legacy{
		runner:       opts.Runner,
		stager:       stage.New(opts.StageSystem, opts.Name, opts.Logger),
		generator:    site.NewGenerator(opts.SiteSystem),
		readFile:     opts.ReadFile,
		name:         opts.Name,
		logger:       opts.Logger,
		diffMaxLines: opts.DiffMaxLines,
	}
}

// Create builds an environment at destination from the base interpreter python.
// Rebuilding over an existing environment overwrites every generated file.
// Concurrent builds into the same destination are not supported.
func (b *Legacy) Create(ctx context.Context, python string, destination string) error {
	_, err := b.Build(ctx, python, destination)
	return err
}

// Result describes a finished build.
type Result struct {
	Info   probe.Info
	Layout layout.Layout
}

// Build is Create that also reports the probed interpreter and the layout written.
func (b *Legacy) Build(ctx context.Context, python string, destination string) (Result, error) {
	info, l, err := b.prepare(ctx, python, destination)
	if err != nil {
		return Result{}, err
	}

	b.logger.Debug("stage bootstrap files", messages.RootLoggerKeyStep, "stage", "lib", l.LibDir)
	if err := b.stager.Stage(l, info); err != nil {
		return Result{}, err
	}

	b.logger.Debug("write startup module", messages.RootLoggerKeyStep, "generate", "path", site.Path(l))
	if err := b.generator.Write(l, info); err != nil {
		return Result{}, err
	}

	b.logger.Info("environment created", "root", l.Root, "version", info.Version.String())
	return Result{Info: info, Layout: l}, nil
}

// Inspect probes python and returns what it reports.
func (b *Legacy) Inspect(ctx context.Context, python string) (probe.Info, error) {
	b.logger.Debug("probe base interpreter", messages.RootLoggerKeyStep, "probe", "python", python)
	return probe.Probe(ctx, b.runner, python)
}

// CheckAvailable reports whether python names an existing executable file.
// It never launches the interpreter.
func (b *Legacy) CheckAvailable(python string) bool {
	if _, err := ResolveInterpreter(python); err != nil {
		b.logger.Debug("interpreter unavailable", "python", python, "error", err)
		return false
	}
	return true
}

func (b *Legacy) prepare(ctx context.Context, python string, destination string) (probe.Info, layout.Layout, error) {
	dest, err := filepath.Abs(destination)
	if err != nil {
		return probe.Info{}, layout.Layout{}, fmt.Errorf(messages.BuilderResolveDestinationFmt, destination, err)
	}

	info, err := b.Inspect(ctx, python)
	if err != nil {
		return probe.Info{}, layout.Layout{}, err
	}
	b.logger.Debug("probed base interpreter",
		messages.RootLoggerKeyStep, "probe",
		"version", info.Version.String(),
		"prefix", info.Prefix,
		"lib", info.Lib,
	)

	l := layout.Plan(info, dest)
	b.logger.Debug("planned layout", messages.RootLoggerKeyStep, "plan", "root", l.Root, "lib", l.LibDir)
	return info, l, nil
}
