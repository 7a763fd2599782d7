package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/conn-castle/lvenv/internal/builder"
	"github.com/conn-castle/lvenv/internal/messages"
	"github.com/conn-castle/lvenv/internal/preview"
	"github.com/conn-castle/lvenv/internal/prompt"
	"github.com/conn-castle/lvenv/internal/site"
	"github.com/conn-castle/lvenv/internal/stage"
	"github.com/conn-castle/lvenv/internal/terminal"
)

const (
	flagName         = "name"
	flagDryRun       = "dry-run"
	flagYes          = "yes"
	flagProbeTimeout = "probe-timeout"
	flagDiffLines    = "diff-lines"
)

var (
	isInteractive = terminal.IsInteractive
	newConfirmer  = func() prompt.Confirmer { return prompt.NewHuhConfirmer() }
)

type createOptions struct {
	python       string
	name         string
	dryRun       bool
	yes          bool
	probeTimeout time.Duration
	diffLines    int
}

func newCreateCmd(root *rootOptions) *cobra.Command {
	var opts createOptions
	cmd := &cobra.Command{
		Use:   messages.CreateUse,
		Short: messages.CreateShort,
		Long:  messages.CreateLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, root, opts, args[0])
		},
	}
	cmd.Flags().StringVarP(&opts.python, flagPython, "p", "", messages.CreateFlagPython)
	cmd.Flags().StringVar(&opts.name, flagName, "", messages.CreateFlagName)
	cmd.Flags().BoolVar(&opts.dryRun, flagDryRun, false, messages.CreateFlagDryRun)
	cmd.Flags().BoolVarP(&opts.yes, flagYes, "y", false, messages.CreateFlagYes)
	cmd.Flags().DurationVar(&opts.probeTimeout, flagProbeTimeout, 0, messages.CreateFlagProbeTimeout)
	cmd.Flags().IntVar(&opts.diffLines, flagDiffLines, preview.DefaultDiffMaxLines, messages.CreateFlagDiffLines)
	return cmd
}

func runCreate(cmd *cobra.Command, root *rootOptions, opts createOptions, destArg string) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	python, err := resolvePython(cmd, opts.python, cfg)
	if err != nil {
		return err
	}
	dest, err := homedir.Expand(destArg)
	if err != nil {
		return fmt.Errorf(messages.BuilderResolveDestinationFmt, destArg, err)
	}

	name := cfg.Python.Name
	if cmd.Flags().Changed(flagName) {
		name = opts.name
	}
	if name == "" {
		name = stage.DefaultName
	}
	diffLines := cfg.Create.DiffMaxLines()
	if cmd.Flags().Changed(flagDiffLines) {
		diffLines = opts.diffLines
	}

	b := builder.NewLegacy(builder.Options{
		Name:         name,
		Logger:       root.newLogger(cmd.ErrOrStderr()),
		DiffMaxLines: diffLines,
	})

	ctx := cmd.Context()
	if opts.probeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.probeTimeout)
		defer cancel()
	}

	out := cmd.OutOrStdout()
	if opts.dryRun {
		plan, err := b.Plan(ctx, python, dest)
		if err != nil {
			return err
		}
		return printPlan(out, plan)
	}

	if !opts.yes && cfg.Create.PromptEnabled() && isInteractive() {
		proceed, err := confirmRebuild(dest)
		if err != nil {
			return err
		}
		if !proceed {
			return fmt.Errorf(messages.CreateAbortedFmt, dest)
		}
	}

	result, err := b.Build(ctx, python, dest)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(out, color.GreenString(messages.CreateDoneFmt, result.Layout.Root, result.Info.Version.String()))
	_, _ = fmt.Fprintf(out, messages.CreateActivateHintFmt, filepath.Join(result.Layout.BinDir, name))
	return nil
}

// confirmRebuild asks before rebuilding into a non-empty destination.
// Empty or missing destinations proceed without a prompt.
func confirmRebuild(dest string) (bool, error) {
	entries, err := os.ReadDir(dest)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, fmt.Errorf(messages.CreateInspectDestFmt, dest, err)
	}
	if len(entries) == 0 {
		return true, nil
	}
	proceed := false
	if err := newConfirmer().Confirm(fmt.Sprintf(messages.CreateOverwritePromptFmt, dest), &proceed); err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			return false, nil
		}
		return false, err
	}
	return proceed, nil
}

func printPlan(out io.Writer, plan builder.Plan) error {
	if _, err := fmt.Fprintf(out, messages.DryRunHeaderFmt, plan.Layout.Root, plan.Info.Version.String(), plan.Info.Executable); err != nil {
		return err
	}
	for _, action := range plan.Actions {
		var err error
		switch action.Kind {
		case builder.ActionMkdir:
			_, err = fmt.Fprintf(out, messages.DryRunMkdirFmt, action.Target)
		case builder.ActionCopy:
			_, err = fmt.Fprintf(out, messages.DryRunCopyFmt, action.Source, action.Target)
		case builder.ActionWrite:
			_, err = fmt.Fprintf(out, messages.DryRunWriteFmt, action.Target)
		}
		if err != nil {
			return err
		}
	}

	switch {
	case !plan.SiteExists:
		_, err := fmt.Fprintf(out, messages.DryRunSiteNewFmt+"\n", site.Path(plan.Layout))
		return err
	case plan.SiteDiff == "":
		_, err := fmt.Fprintln(out, messages.DryRunSiteUnchanged)
		return err
	}
	if _, err := fmt.Fprintln(out, messages.DryRunSiteDiffHeader); err != nil {
		return err
	}
	for _, line := range strings.Split(strings.TrimRight(plan.SiteDiff, "\n"), "\n") {
		if _, err := fmt.Fprintln(out, colorDiffLine(line)); err != nil {
			return err
		}
	}
	return nil
}

func colorDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return color.New(color.Bold).Sprint(line)
	case strings.HasPrefix(line, "+"):
		return color.GreenString("%s", line)
	case strings.HasPrefix(line, "-"):
		return color.RedString("%s", line)
	case strings.HasPrefix(line, "@@"):
		return color.CyanString("%s", line)
	default:
		return line
	}
}
