// Package config holds run defaults read by Viper from an optional config
// file and STRMATCH_* environment variables. Command-line flags set
// explicitly always take precedence (see internal/cli).
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. STRMATCH_OUTPUT=json.
const EnvPrefix = "STRMATCH"

// Config is the set of settings that may come from a file or the environment.
type Config struct {
	// output format: text | tsv | json | jsonl
	Output string `mapstructure:"output"`

	// print a header line in tsv output
	Header bool `mapstructure:"header"`

	// report "No match" when more than one candidate fully matches
	Unique bool `mapstructure:"unique"`

	// exit code when at least one sample has no match
	NoMatchExitCode int `mapstructure:"no_match_exit_code"`

	Quiet   bool `mapstructure:"quiet"`
	Verbose bool `mapstructure:"verbose"`

	// profile table delimiter: "" (by extension), "," or "tab"
	Delimiter string `mapstructure:"delimiter"`
}

// Defaults mirrors the flag defaults.
func Defaults() Config {
	return Config{
		Output:          "text",
		Header:          true,
		NoMatchExitCode: 0,
	}
}

// Load returns Defaults overlaid with the config file at path (if non-empty)
// and STRMATCH_* environment variables. The file type follows its extension
// (yaml, yml, toml, json).
func Load(path string) (Config, error) {
	v := viper.New()
	d := Defaults()
	v.SetDefault("output", d.Output)
	v.SetDefault("header", d.Header)
	v.SetDefault("unique", d.Unique)
	v.SetDefault("no_match_exit_code", d.NoMatchExitCode)
	v.SetDefault("quiet", d.Quiet)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("delimiter", d.Delimiter)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return d, fmt.Errorf("config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return d, fmt.Errorf("config %s: unable to decode: %w", path, err)
	}
	return c, nil
}
