package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/lvenv/internal/builder"
	"github.com/conn-castle/lvenv/internal/config"
	"github.com/conn-castle/lvenv/internal/messages"
)

const (
	flagConfig  = "config"
	flagVerbose = "verbose"
	flagPython  = "python"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, flagConfig, "", messages.RootFlagConfig)
	cmd.PersistentFlags().BoolVarP(&opts.verbose, flagVerbose, "v", false, messages.RootFlagVerbose)
	cmd.Flags().Bool("version", false, messages.RootVersionFlag)

	cmd.AddCommand(
		newCreateCmd(opts),
		newCheckCmd(opts),
		newInspectCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// resolveConfigPath returns --config when set, else the per-user default path.
func (o *rootOptions) resolveConfigPath() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return config.DefaultPath()
}

// loadConfig reads the config named by --config, or the per-user default.
// Only an explicit --config must exist.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	path, err := o.resolveConfigPath()
	if err != nil {
		return nil, err
	}
	return config.Load(path, o.configPath != "")
}

// newLogger returns the diagnostic logger. --verbose enables debug output.
func (o *rootOptions) newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// pythonFor returns the interpreter named by --python, falling back to the config.
// An explicitly empty --python is an error.
func pythonFor(cmd *cobra.Command, value string, cfg *config.Config) (string, error) {
	if cmd.Flags().Changed(flagPython) {
		value = strings.TrimSpace(value)
		if value == "" {
			return "", errors.New(messages.InterpreterNotSet)
		}
		return value, nil
	}
	if cfg.Python.Interpreter == "" {
		return "", errors.New(messages.InterpreterNotSet)
	}
	return cfg.Python.Interpreter, nil
}

// resolvePython resolves the base interpreter selected for cmd to an absolute path.
func resolvePython(cmd *cobra.Command, value string, cfg *config.Config) (string, error) {
	python, err := pythonFor(cmd, value, cfg)
	if err != nil {
		return "", err
	}
	return builder.ResolveInterpreter(python)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.VersionUse,
		Short: messages.VersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), versionString())
			return err
		},
	}
}
