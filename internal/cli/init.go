package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/vending/internal/paths"
	"github.com/mesh-intelligence/vending/pkg/types"
)

const configHeader = "# vending CLI configuration\n# Flags and VENDING_* environment variables override these values.\n\n"

func newInitCmd(flags *rootFlags) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config.yaml with the effective settings",
		Long:  "Create the configuration directory and write config.yaml from the\ncurrent flags, environment, and defaults. An existing file is kept\nunless --force is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, cfg, err := effectiveConfig(flags)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return sysError(fmt.Errorf("create config directory: %w", err))
			}

			path := paths.ConfigFile(dir)
			written, err := writeConfig(path, cfg, force)
			if err != nil {
				return sysError(fmt.Errorf("write config: %w", err))
			}
			if written {
				fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config.yaml")
	return cmd
}

// writeConfig writes cfg to path as YAML. Without force an existing file is
// left alone and written is false.
func writeConfig(path string, cfg types.Config, force bool) (written bool, err error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		} else if !os.IsNotExist(err) {
			return false, fmt.Errorf("stat config file: %w", err)
		}
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
