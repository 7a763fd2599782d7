package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/lvenv/internal/builder"
	"github.com/conn-castle/lvenv/internal/messages"
)

const flagProbe = "probe"

func newCheckCmd(root *rootOptions) *cobra.Command {
	var python string
	var probe bool
	cmd := &cobra.Command{
		Use:   messages.CheckUse,
		Short: messages.CheckShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			selected, err := pythonFor(cmd, python, cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			b := builder.NewLegacy(builder.Options{Logger: root.newLogger(cmd.ErrOrStderr())})

			resolved, err := builder.ResolveInterpreter(selected)
			if err != nil {
				_, _ = fmt.Fprint(out, color.RedString(messages.CheckFailFmt, selected, err))
				return &SilentExitError{Code: 1}
			}

			detail := resolved
			if probe {
				info, err := b.Inspect(cmd.Context(), resolved)
				if err != nil {
					_, _ = fmt.Fprint(out, color.RedString(messages.CheckFailFmt, selected, err))
					return &SilentExitError{Code: 1}
				}
				detail = fmt.Sprintf(messages.CheckProbedFmt, resolved, info.Version.String())
			}
			_, _ = fmt.Fprint(out, color.GreenString(messages.CheckOKFmt, selected, detail))
			return nil
		},
	}
	cmd.Flags().StringVarP(&python, flagPython, "p", "", messages.CreateFlagPython)
	cmd.Flags().BoolVar(&probe, flagProbe, false, messages.CheckFlagProbe)
	return cmd
}
