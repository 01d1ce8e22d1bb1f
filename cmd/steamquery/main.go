package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rotolabs/steamquery"
	"github.com/rotolabs/steamquery/internal/config"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()

	debugLog bool

	rootCmd = &cobra.Command{
		Use:   "steamquery",
		Short: "Steam Web API query tool",
		Long:  `steamquery - Query player, friend, group, workshop and ownership data from the Steam Web API`,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	setKeyCmd = &cobra.Command{
		Use:   "set-key <api-key>",
		Short: "Store the Web API key in the config file",
		Args:  cobra.ExactArgs(1),
		RunE:  setKey,
	}
)

func main() {
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(versionCmd, setKeyCmd)
	addQueryCommands(rootCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("steamquery - Steam Web API query tool\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)             //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)              //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)                //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)         //nolint:forbidigo
}

func setKey(_ *cobra.Command, args []string) error {
	loader := config.NewLoader(make(chan config.Config, 1))
	userConfig, errRead := loader.Read()
	if errRead != nil {
		return errRead
	}

	userConfig.SteamAPIKey = args[0]

	return loader.Write(userConfig)
}

// newClient wires the config loader into a client. The credential is read
// through an atomic pointer that the loader's watch goroutine refreshes, so
// key edits on disk apply to the next call without a restart.
func newClient(ctx context.Context) (*steamquery.Client, error) {
	level := slog.LevelInfo
	if debugLog {
		level = slog.LevelDebug
	}
	config.LoggerInit(level)

	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return nil, err
	}

	changes := make(chan config.Config, 1)
	loader := config.NewLoader(changes)

	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return nil, errConfig
	}

	current := &atomic.Pointer[config.Config]{}
	current.Store(&userConfig)

	go func() {
		for {
			select {
			case updated := <-changes:
				current.Store(&updated)
			case <-ctx.Done():
				return
			}
		}
	}()

	client := steamquery.New(
		func() string { return current.Load().SteamAPIKey },
		steamquery.WithBaseURL(userConfig.APIBaseURL),
		steamquery.WithCommunityURL(userConfig.CommunityBaseURL),
		steamquery.WithHTTPClient(httpClient(userConfig.HTTPTimeout())),
	)

	return client, nil
}
