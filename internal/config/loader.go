package config

import (
	"errors"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/rotolabs/steamquery"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader builds a Loader with defaults applied. Config file writes are
// watched and re-read onto the changes channel, so a credential edited on disk
// is picked up by anything reading config through the loader.
func NewLoader(changes chan<- Config) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("steam_api_key", "")
	loader.SetDefault("api_base_url", steamquery.DefaultBaseURL)
	loader.SetDefault("community_base_url", steamquery.DefaultCommunityURL)
	loader.SetDefault("http_timeout_sec", int(DefaultHTTPTimeout.Seconds()))
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	loader.AddConfigPath(Path(""))
	loader.AddConfigPath(".")
	loader.AutomaticEnv()
	loader.WatchConfig()
	loader.OnConfigChange(loader.onConfigChange)

	return &loader
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if in.Op != fsnotify.Write && in.Op != fsnotify.Rename {
		return
	}

	slog.Debug("External config reload triggered")
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	cl.changes <- config
}

func (cl *Loader) Write(config Config) error {
	cl.Set("steam_api_key", config.SteamAPIKey)
	cl.Set("api_base_url", config.APIBaseURL)
	cl.Set("community_base_url", config.CommunityBaseURL)
	cl.Set("http_timeout_sec", config.HTTPTimeoutSec)

	if err := cl.WriteConfig(); err != nil {
		// First run, no config file exists yet.
		if errAs := cl.WriteConfigAs(Path(DefaultConfigName + ".yaml")); errAs != nil {
			return errors.Join(errAs, errConfigWrite)
		}
	}

	return nil
}

func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}
