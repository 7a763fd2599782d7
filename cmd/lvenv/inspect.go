package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/lvenv/internal/builder"
	"github.com/conn-castle/lvenv/internal/messages"
)

func newInspectCmd(root *rootOptions) *cobra.Command {
	var python string
	cmd := &cobra.Command{
		Use:   messages.InspectUse,
		Short: messages.InspectShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			resolved, err := resolvePython(cmd, python, cfg)
			if err != nil {
				return err
			}
			b := builder.NewLegacy(builder.Options{Logger: root.newLogger(cmd.ErrOrStderr())})
			info, err := b.Inspect(cmd.Context(), resolved)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf(messages.InspectEncodeFmt, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().StringVarP(&python, flagPython, "p", "", messages.CreateFlagPython)
	return cmd
}
