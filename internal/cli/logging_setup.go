package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/fleetcarbon/internal/logging"
)

// setupLogging builds the logger from configuration and CLI flags and stores
// it in the command context. Flags take precedence over the environment.
func setupLogging(cmd *cobra.Command, opts *rootOptions) {
	level := opts.cfg.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	format := opts.cfg.LogFormat
	if opts.logFormat != "" {
		format = opts.logFormat
	}

	logger := logging.New(logging.Options{
		Level:  level,
		Format: format,
		Writer: cmd.ErrOrStderr(),
	})

	ctx := logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Msg("command started")
}
