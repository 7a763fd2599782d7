package main

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/conn-castle/lvenv/internal/config"
	"github.com/conn-castle/lvenv/internal/messages"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.ConfigUse,
		Short: messages.ConfigShort,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   messages.ConfigPathUse,
			Short: messages.ConfigPathShort,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := root.resolveConfigPath()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
				return err
			},
		},
		&cobra.Command{
			Use:   messages.ConfigInitUse,
			Short: messages.ConfigInitShort,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := root.resolveConfigPath()
				if err != nil {
					return err
				}
				written, err := config.WriteDefault(path)
				if err != nil {
					return err
				}
				format := messages.ConfigInitExistsFmt
				if written {
					format = messages.ConfigInitWrittenFmt
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), format, path)
				return err
			},
		},
		&cobra.Command{
			Use:   messages.ConfigSetUse,
			Short: messages.ConfigSetShort,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := root.resolveConfigPath()
				if err != nil {
					return err
				}
				return config.SetFile(path, args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   messages.ConfigShowUse,
			Short: messages.ConfigShowShort,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := root.loadConfig()
				if err != nil {
					return err
				}
				data, err := toml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf(messages.ConfigEncodeFmt, err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
	)
	return cmd
}
