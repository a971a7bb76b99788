// Package config loads configuration for the translate CLI and Lambda.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pricofy/sogou-translate/pkg/sogou"
)

// Config holds the complete application configuration.
type Config struct {
	Sogou SogouConfig
	Log   LogConfig
}

// SogouConfig holds the translate API credentials and transport settings.
type SogouConfig struct {
	PID       string
	SecretKey string
	Endpoint  string
	Timeout   time.Duration
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

const (
	keyPID       = "sogou.pid"
	keySecretKey = "sogou.secret_key"
	keyEndpoint  = "sogou.endpoint"
	keyTimeout   = "sogou.timeout"
	keyLogLevel  = "log.level"
	keyLogPretty = "log.pretty"
)

// DefaultTimeout bounds each translate request unless overridden.
const DefaultTimeout = 10 * time.Second

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"pid":        keyPID,
	"secret-key": keySecretKey,
	"endpoint":   keyEndpoint,
	"timeout":    keyTimeout,
	"log-level":  keyLogLevel,
	"log-pretty": keyLogPretty,
}

// AddFlags registers the configuration flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.String("pid", "", "Sogou translate pid (env SOGOU_PID)")
	fs.String("secret-key", "", "Sogou translate secret key (env SOGOU_SECRET_KEY)")
	fs.String("endpoint", sogou.DefaultEndpoint, "Translate API endpoint (env SOGOU_ENDPOINT)")
	fs.Duration("timeout", DefaultTimeout, "Request timeout (env SOGOU_TIMEOUT)")
	fs.String("log-level", "info", "Log level: debug, info, warn, error (env LOG_LEVEL)")
	fs.Bool("log-pretty", false, "Human-readable log output (env LOG_PRETTY)")
}

// Load reads configuration with precedence flag > env > file > default.
// fs may be nil and configFile may be empty.
func Load(fs *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault(keyEndpoint, sogou.DefaultEndpoint)
	v.SetDefault(keyTimeout, DefaultTimeout)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogPretty, false)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	return &Config{
		Sogou: SogouConfig{
			PID:       v.GetString(keyPID),
			SecretKey: v.GetString(keySecretKey),
			Endpoint:  v.GetString(keyEndpoint),
			Timeout:   v.GetDuration(keyTimeout),
		},
		Log: LogConfig{
			Level:  v.GetString(keyLogLevel),
			Pretty: v.GetBool(keyLogPretty),
		},
	}, nil
}
