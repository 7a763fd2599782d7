package stage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/conn-castle/lvenv/internal/layout"
	"github.com/conn-castle/lvenv/internal/messages"
	"github.com/conn-castle/lvenv/internal/probe"
)

// DefaultName is the base name of the interpreter aliases.
const DefaultName = "python"

// StepKind is the kind of filesystem action a Step performs.
type StepKind string

const (
	// StepMkdir creates Target and its parents.
	StepMkdir StepKind = "mkdir"
	// StepCopy copies Source to Target.
	StepCopy StepKind = "copy"
)

// Step is one staging action.
type Step struct {
	Kind   StepKind
	Source string
	Target string
	// Module is the library file name when the step stages a bootstrap module.
	Module string
}

// BinaryNames returns the interpreter alias names: name, name{M} and name{M}.{m}.
func BinaryNames(name string, v probe.Version) []string {
	names := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		names = append(names, name+v.Join(i))
	}
	return names
}

// Steps returns the staging actions for l in execution order.
func Steps(l layout.Layout, info probe.Info, name string) []Step {
	if name == "" {
		name = DefaultName
	}
	steps := []Step{{Kind: StepMkdir, Target: l.BinDir}}
	for _, alias := range BinaryNames(name, info.Version) {
		steps = append(steps, Step{Kind: StepCopy, Source: info.Executable, Target: filepath.Join(l.BinDir, alias)})
	}
	steps = append(steps,
		Step{Kind: StepMkdir, Target: l.LibDir},
		Step{Kind: StepMkdir, Target: l.SitePackagesDir},
	)
	for _, module := range append([]string{SentinelModule}, fixedModules...) {
		steps = append(steps, Step{
			Kind:   StepCopy,
			Source: filepath.Join(info.Lib, module),
			Target: filepath.Join(l.LibDir, module),
			Module: module,
		})
	}
	return steps
}

// Stager populates an environment layout from a probed base interpreter.
type Stager struct {
	sys    System
	name   string
	logger *slog.Logger
}

// New returns a Stager. An empty name selects DefaultName; a nil logger discards output.
func New(sys System, name string, logger *slog.Logger) *Stager {
	if name == "" {
		name = DefaultName
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Stager{sys: sys, name: name, logger: logger}
}

// Stage runs every step for l in order and stops at the first error.
// Nothing is rolled back; staging again over a partial tree is safe.
func (s *Stager) Stage(l layout.Layout, info probe.Info) error {
	for _, step := range Steps(l, info, s.name) {
		if err := s.run(step); err != nil {
			return err
		}
	}
	return nil
}

func (s *Stager) run(step Step) error {
	switch step.Kind {
	case StepMkdir:
		s.logger.Debug("create directory", "path", step.Target)
		if err := s.sys.MkdirAll(step.Target, 0o755); err != nil {
			return fmt.Errorf(messages.StageCreateDirFailedFmt, step.Target, err)
		}
		return nil
	case StepCopy:
		if step.Module != "" {
			if err := s.checkModule(step); err != nil {
				return err
			}
		}
		s.logger.Debug("copy file", "source", step.Source, "target", step.Target)
		if err := s.sys.CopyFile(step.Source, step.Target); err != nil {
			return fmt.Errorf(messages.StageCopyFailedFmt, step.Target, err)
		}
		return nil
	default:
		return fmt.Errorf(messages.StageUnknownStepKindFmt, step.Kind)
	}
}

func (s *Stager) checkModule(step Step) error {
	_, err := s.sys.Stat(step.Source)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return &MissingModuleError{Name: step.Module, Path: step.Source, Err: err}
	}
	return fmt.Errorf(messages.StageStatFailedFmt, step.Source, err)
}
