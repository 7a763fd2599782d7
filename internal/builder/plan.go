package builder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/conn-castle/lvenv/internal/layout"
	"github.com/conn-castle/lvenv/internal/messages"
	"github.com/conn-castle/lvenv/internal/preview"
	"github.com/conn-castle/lvenv/internal/probe"
	"github.com/conn-castle/lvenv/internal/site"
	"github.com/conn-castle/lvenv/internal/stage"
)

// ActionKind is the kind of change a planned action makes.
type ActionKind string

const (
	// ActionMkdir creates a directory.
	ActionMkdir ActionKind = "mkdir"
	// ActionCopy copies a file from the base installation.
	ActionCopy ActionKind = "copy"
	// ActionWrite writes a generated file.
	ActionWrite ActionKind = "write"
)

// Action is one change Create would make.
type Action struct {
	Kind   ActionKind
	Source string
	Target string
}

// Plan describes what Create would do without touching the destination.
type Plan struct {
	Info    probe.Info
	Layout  layout.Layout
	Actions []Action
	// SiteExists reports whether a startup module is already present.
	SiteExists bool
	// SiteDiff is the unified diff from the existing startup module to the new one.
	SiteDiff          string
	SiteDiffTruncated bool
}

// Plan probes python and returns the actions Create would take for destination.
func (b *Legacy) Plan(ctx context.Context, python string, destination string) (Plan, error) {
	info, l, err := b.prepare(ctx, python, destination)
	if err != nil {
		return Plan{}, err
	}

	steps := stage.Steps(l, info, b.name)
	actions := make([]Action, 0, len(steps)+1)
	for _, step := range steps {
		kind := ActionCopy
		if step.Kind == stage.StepMkdir {
			kind = ActionMkdir
		}
		actions = append(actions, Action{Kind: kind, Source: step.Source, Target: step.Target})
	}
	sitePath := site.Path(l)
	actions = append(actions, Action{Kind: ActionWrite, Target: sitePath})

	rendered, err := site.Render(site.PlaceholdersFor(l, info))
	if err != nil {
		return Plan{}, err
	}
	current, exists, err := b.readExisting(sitePath)
	if err != nil {
		return Plan{}, err
	}
	diff, truncated := preview.Unified(
		site.StartupModule+" (current)",
		site.StartupModule+" (new)",
		current,
		rendered,
		b.diffMaxLines,
	)
	return Plan{
		Info:              info,
		Layout:            l,
		Actions:           actions,
		SiteExists:        exists,
		SiteDiff:          diff,
		SiteDiffTruncated: truncated,
	}, nil
}

func (b *Legacy) readExisting(path string) (string, bool, error) {
	data, err := b.readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf(messages.BuilderReadExistingSiteFmt, path, err)
	}
	return string(data), true, nil
}
