// Package config loads the CLI configuration: the Web API credential and the
// host overrides, from a YAML file under the XDG config home plus environment
// variables.
package config

import (
	"errors"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/adrg/xdg"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
)

const (
	ConfigDirName      = "steamquery"
	DefaultConfigName  = "steamquery"
	EnvPrefix          = "steamquery"
	DefaultHTTPTimeout = 15 * time.Second
)

type Config struct {
	// SteamAPIKey is the Web API credential. It may be empty; calls still go
	// out and the upstream API rejects them. It is never logged.
	SteamAPIKey      string `mapstructure:"steam_api_key"`
	APIBaseURL       string `mapstructure:"api_base_url"`
	CommunityBaseURL string `mapstructure:"community_base_url"`
	HTTPTimeoutSec   int    `mapstructure:"http_timeout_sec"`
}

func (c Config) HTTPTimeout() time.Duration {
	if c.HTTPTimeoutSec <= 0 {
		return DefaultHTTPTimeout
	}

	return time.Duration(c.HTTPTimeoutSec) * time.Second
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler writing to stderr.
func LoggerInit(level slog.Level) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)
}
