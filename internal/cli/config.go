package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/vending/internal/paths"
	"github.com/mesh-intelligence/vending/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "VENDING"

	// Config keys, matching the yaml tags on types.Config.
	cfgKeyBackend   = "backend"
	cfgKeySeed      = "seed"
	cfgKeyPace      = "pace"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"

	// Flag names bound to the keys above.
	flagBackend   = "backend"
	flagSeed      = "seed"
	flagPace      = "pace"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

// flagKeys binds each flag to its config key.
var flagKeys = map[string]string{
	flagBackend:   cfgKeyBackend,
	flagSeed:      cfgKeySeed,
	flagPace:      cfgKeyPace,
	flagLogLevel:  cfgKeyLogLevel,
	flagLogFormat: cfgKeyLogFormat,
}

// loadConfig builds the effective configuration. Precedence, highest first:
// explicitly set flags, VENDING_* environment variables, config.yaml in
// configDir, then package defaults. A missing config.yaml is not an error.
func loadConfig(configDir string, fs *pflag.FlagSet) (types.Config, error) {
	v := viper.New()
	def := types.DefaultConfig()
	v.SetDefault(cfgKeyBackend, def.Backend)
	v.SetDefault(cfgKeySeed, def.Seed)
	v.SetDefault(cfgKeyPace, def.Pace)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyLogFormat, def.LogFormat)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for flag, key := range flagKeys {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return types.Config{}, sysError(fmt.Errorf("bind flag %s: %w", flag, err))
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, userError(fmt.Errorf("read config: %w", err))
		}
	}

	cfg := types.Config{
		Backend:   v.GetString(cfgKeyBackend),
		Seed:      v.GetBool(cfgKeySeed),
		Pace:      v.GetDuration(cfgKeyPace),
		LogLevel:  v.GetString(cfgKeyLogLevel),
		LogFormat: v.GetString(cfgKeyLogFormat),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, userError(fmt.Errorf("invalid config: %w", err))
	}
	return cfg, nil
}

// effectiveConfig resolves the config dir and loads the configuration.
func effectiveConfig(flags *rootFlags) (string, types.Config, error) {
	dir, err := resolveConfigDir(flags)
	if err != nil {
		return "", types.Config{}, err
	}
	cfg, err := loadConfig(dir, flags.set)
	if err != nil {
		return "", types.Config{}, err
	}
	return dir, cfg, nil
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, cfg, err := effectiveConfig(flags)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(&cfg)
			if err != nil {
				return sysError(fmt.Errorf("marshal config: %w", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", paths.ConfigFile(dir), data)
			return nil
		},
	}
}
