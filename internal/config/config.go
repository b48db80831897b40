package config

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/haytac/emoji-strip/internal/logging"
)

// RunConfig is the validated option set for one run. It is built once from
// CLI input and read-only afterwards.
type RunConfig struct {
	Path       string
	Recursive  bool
	Output     string
	Verbose    bool
	DryRun     bool
	Backup     bool
	Shortcodes bool

	// Extensions a file must carry to count as markdown, lower-case with
	// leading dot. Settable via config file or EMOJI_STRIP_EXTENSIONS,
	// not via flag.
	Extensions []string `mapstructure:"extensions"`

	Log logging.Config `mapstructure:"log"`
}

// Load reads configuration from an optional file and environment variables.
// Flag values are applied by the CLI on top of the result. The config file
// is never written by the tool.
func Load(configPath string) (*RunConfig, error) {
	var cfg RunConfig

	viper.SetDefault("extensions", []string{".md", ".markdown"})
	// Info is the floor: dry-run reports and the batch summary are info
	// events and must be visible without --verbose.
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.time_format", time.Kitchen)

	if configPath != "" {
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		viper.SetConfigName(".emoji-strip")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	viper.SetEnvPrefix("EMOJI_STRIP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	for i, ext := range cfg.Extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.Extensions[i] = ext
	}

	return &cfg, nil
}

// Validate checks cross-option rules. Conflicting but harmless combinations
// are downgraded to warnings and the offending option is ignored; only a
// missing path is fatal.
func (c *RunConfig) Validate() error {
	if c.Path == "" {
		return errors.New("a path is required")
	}
	if c.Output != "" && c.Recursive {
		log.Warn().Str("output", c.Output).Msg("--output only applies to single-file mode, ignoring it with --recursive")
		c.Output = ""
	}
	if c.Backup && !c.Recursive {
		log.Warn().Msg("--backup only applies to in-place writes, ignoring it without --recursive")
		c.Backup = false
	}
	return nil
}
