package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/WynonaL/southpole/internal/config"
	"github.com/WynonaL/southpole/internal/logging"
)

// configKey is the context key the loaded Config travels under.
type configKey struct{}

// setupCommand loads configuration and configures logging for a command
// invocation. The resulting config and logger are attached to the command
// context.
func setupCommand(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	loggingCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	}

	if envLevel := os.Getenv("SOUTHPOLE_LOG_LEVEL"); envLevel != "" {
		loggingCfg.Level = envLevel
	}
	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
	}

	logger = logging.ComponentLogger(logging.NewLogger(loggingCfg), "cli")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	ctx = context.WithValue(ctx, configKey{}, cfg)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Str("trace_id", traceID).Msg("command started")
	return nil
}

// loadConfig resolves the config file path from the --config flag or the
// default location and loads it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			// No home directory; run on pure defaults.
			return config.Default(), nil
		}
		path = defaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

// configFromCommand returns the Config attached to the command context,
// falling back to defaults when setup has not run.
func configFromCommand(cmd *cobra.Command) *config.Config {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return cfg
		}
	}
	return config.Default()
}
