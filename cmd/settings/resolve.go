package main

import (
	"fmt"

	"github.com/MKhiriev/vbm-settings/internal/config"
	"github.com/MKhiriev/vbm-settings/internal/logger"
	"github.com/MKhiriev/vbm-settings/internal/settings"
	"github.com/spf13/cobra"
)

type resolveOptions struct {
	format    string
	logFormat string
	applyRoot bool
}

const (
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

func newResolveCmd() *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "o", string(settings.FormatJSON), "output format: json or yaml")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", logFormatConsole, "log format on stderr: console or json")
	cmd.Flags().BoolVar(&opts.applyRoot, "apply-root", false, "change into the bot root when it exists")
	config.BindFlags(cmd.Flags())

	return cmd
}

func runResolve(cmd *cobra.Command, opts *resolveOptions) error {
	var log *logger.Logger
	switch opts.logFormat {
	case logFormatConsole:
		log = logger.NewConsoleLogger(cmd.ErrOrStderr(), "settings")
	case logFormatJSON:
		log = logger.NewLogger(cmd.ErrOrStderr(), "settings")
	default:
		return fmt.Errorf("unsupported log format %q", opts.logFormat)
	}

	env, err := config.LoadEnvironmentWithFlags(nil, cmd.Flags())
	if err != nil {
		return fmt.Errorf("error loading environment: %w", err)
	}

	res := settings.NewResolver(settings.OSFileSystem{}, log, buildVersion).Resolve(*env)
	log.Debug().
		Str("root", res.Root).
		Bool("root_exists", res.RootExists).
		Int("diagnostics", len(res.Diagnostics)).
		Msg("settings resolved")

	if opts.applyRoot {
		if err := res.ApplyRoot(); err != nil {
			return err
		}
	}

	var out []byte
	switch settings.Format(opts.format) {
	case settings.FormatJSON:
		out, err = settings.EncodeJSON(res.Settings.Map())
	case settings.FormatYAML:
		out, err = settings.EncodeYAML(res.Settings.Map())
	default:
		return fmt.Errorf("unsupported output format %q", opts.format)
	}
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
