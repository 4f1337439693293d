// Package conf loads project-level generation defaults.
//
// Defaults live in a forge.toml in the working directory,
// overridden by FORGE_* environment variables. CLI flags override both; the
// merge happens in the command layer, which hands the pipeline one final set
// of invocation inputs.
package conf

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/clientforge/forge/errors"
)

// Config carries project defaults for the generate command.
type Config struct {
	// Language is the default target language
	Language string `mapstructure:"language"`

	// Output is the default output directory
	Output string `mapstructure:"output"`

	// Derives are extra derive names applied to every generated model
	Derives []string `mapstructure:"derives"`

	// Examples toggles example generation
	Examples bool `mapstructure:"examples"`

	// Flags are named feature flags enabled by default
	Flags []string `mapstructure:"flags"`
}

// SetDefaults seeds viper with the built-in defaults. Every key gets a
// default: AutomaticEnv only surfaces FORGE_* variables for keys viper
// already knows about.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("language", "rust")
	v.SetDefault("output", "")
	v.SetDefault("examples", true)
	v.SetDefault("derives", []string{})
	v.SetDefault("flags", []string{})
}

// Load reads forge.toml from the working directory when present, then
// applies FORGE_* environment overrides. A missing config file is not an
// error; a malformed one is.
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("forge")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading forge.toml")
		}
	}

	return unmarshal(v)
}

// LoadFromFile reads generation defaults from a specific config file path.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("FORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	return &cfg, nil
}
