package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WynonaL/southpole/internal/config"
)

// newConfigInitCmd creates the "config init" subcommand.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				defaultPath, err := config.DefaultPath()
				if err != nil {
					return fmt.Errorf("resolving config path: %w", err)
				}
				path = defaultPath
			}

			if !force {
				if existing, err := config.Load(path); err == nil && *existing != *config.Default() {
					return fmt.Errorf("config file %s already exists with custom values, use --force to overwrite", path)
				}
			}

			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
