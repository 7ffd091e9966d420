package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // zone names must resolve without a system database

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/noodlebox/currenttime"
	"github.com/noodlebox/currenttime/internal/errors"
)

// EnvPrefix is prepended to every environment variable name, e.g.
// CURRENTTIME_FORMAT.
const EnvPrefix = "CURRENTTIME"

// symbolListSeparator splits a symbols list given as a single string, as
// from an environment variable.
const symbolListSeparator = ";"

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format", currenttime.DefaultTemplate)
	v.SetDefault("output", OutputText)
	v.SetDefault("timezone", "Local")
	v.SetDefault("color", false)
	v.SetDefault("log_file", "")
	v.SetDefault("symbols", []string{})
}

// DefaultPath returns the config file read when none is named explicitly:
// currenttime/config.yaml under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "currenttime", "config.yaml"), nil
}

// Load reads the config file at path into v and returns the resolved,
// validated Config. An empty path reads [DefaultPath] if it exists; a named
// file that is missing is an error.
func Load(ctx context.Context, v *viper.Viper, path string) (*Config, error) {
	if err := readConfigFile(v, path); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	loc, err := ParseTimezone(cfg.Timezone)
	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	cfg.Location = loc

	zerolog.Ctx(ctx).Debug().
		Str("component", "config").
		Str("file", v.ConfigFileUsed()).
		Str("format", cfg.Format).
		Str("timezone", cfg.Location.String()).
		Msg("configuration loaded")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		def, err := DefaultPath()
		if err != nil {
			return nil
		}
		if _, err := os.Stat(def); err != nil {
			return nil
		}
		path = def
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}
	return nil
}

func decoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(symbolListSeparator),
		),
	)
}

// ParseTimezone loads the named location. "Local" and the empty string
// select the system zone.
func ParseTimezone(name string) (*time.Location, error) {
	switch name {
	case "", "Local", "local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidTimezone, "%q: %v", name, err)
	}
	return loc, nil
}
