package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything a run needs. Values come from, in increasing
// precedence: built-in defaults, an optional webcheck.yaml, WEBCHECK_*
// environment variables, and command-line flags (applied by the caller).
type Config struct {
	Workers        int         `mapstructure:"workers"`
	TimeoutSeconds int         `mapstructure:"timeout_seconds"`
	Retries        int         `mapstructure:"retries"`
	Output         string      `mapstructure:"output"`
	LogDir         string      `mapstructure:"log_dir"`
	DiagnoseDNS    bool        `mapstructure:"diagnose_dns"`
	SlackWebhook   string      `mapstructure:"slack_webhook"`
	Serve          ServeConfig `mapstructure:"serve"`
}

type ServeConfig struct {
	Addr string `mapstructure:"addr"`
}

// Load reads configuration from defaults, file and environment. An explicit
// path must be readable; with no path, a webcheck.yaml in the working
// directory is used when present. Load does not validate: callers apply
// their flag overrides first, then call Validate.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("WEBCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("webcheck")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
			// no file is fine: defaults and env still apply
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("workers", 4)
	v.SetDefault("timeout_seconds", 5)
	v.SetDefault("retries", 0)
	v.SetDefault("output", "status.json")
	v.SetDefault("log_dir", "")
	v.SetDefault("diagnose_dns", false)
	v.SetDefault("slack_webhook", "")
	v.SetDefault("serve.addr", "127.0.0.1:8080")
}

func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.TimeoutSeconds < 1 {
		return fmt.Errorf("timeout must be at least 1 second, got %d", c.TimeoutSeconds)
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries cannot be negative, got %d", c.Retries)
	}
	if c.Output == "" {
		return errors.New("output path cannot be empty")
	}
	if c.Serve.Addr == "" {
		return errors.New("serve address cannot be empty")
	}
	return nil
}

// Timeout is the per-attempt probe timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
