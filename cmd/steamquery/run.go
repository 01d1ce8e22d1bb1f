package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rotolabs/steamquery"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func httpClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func addQueryCommands(root *cobra.Command) {
	root.AddCommand(
		&cobra.Command{
			Use:   "profile <steam-id>",
			Short: "Show a player's summary, bans, level and friend count",
			Args:  cobra.ExactArgs(1),
			RunE:  runProfile,
		},
		&cobra.Command{
			Use:   "owned <steam-id>",
			Short: "List a player's owned games",
			Args:  cobra.ExactArgs(1),
			RunE:  runOwned,
		},
		&cobra.Command{
			Use:   "resolve <vanity-name-or-url>",
			Short: "Resolve a vanity name into a steam64 id",
			Args:  cobra.ExactArgs(1),
			RunE:  runResolve,
		},
		&cobra.Command{
			Use:   "workshop <published-file-id>...",
			Short: "Show workshop file details",
			Args:  cobra.MinimumNArgs(1),
			RunE:  runWorkshop,
		},
		&cobra.Command{
			Use:   "collection <collection-id>...",
			Short: "Show workshop collection contents",
			Args:  cobra.MinimumNArgs(1),
			RunE:  runCollection,
		},
		&cobra.Command{
			Use:   "group-members <group-name>",
			Short: "List the steam64 ids of a community group's members",
			Args:  cobra.ExactArgs(1),
			RunE:  runGroupMembers,
		},
	)
}

// runProfile issues the independent per-player queries concurrently. The
// client itself never fans out, so this is the caller's choice, not the
// library's.
func runProfile(cmd *cobra.Command, args []string) error {
	client, errClient := newClient(cmd.Context())
	if errClient != nil {
		return errClient
	}

	var (
		summaries []steamquery.PlayerSummary
		bans      []steamquery.PlayerBanState
		level     int
		friends   []steamquery.Friend
	)

	group, ctx := errgroup.WithContext(cmd.Context())
	group.Go(func() error {
		var err error
		summaries, err = client.PlayerSummaries(ctx, args[0])

		return err
	})
	group.Go(func() error {
		var err error
		bans, err = client.PlayerBans(ctx, args[0])

		return err
	})
	group.Go(func() error {
		var err error
		level, err = client.SteamLevel(ctx, args[0])

		return err
	})
	group.Go(func() error {
		var err error
		friends, err = client.FriendList(ctx, args[0], steamquery.RelationshipFriend)

		return err
	})

	if err := group.Wait(); err != nil {
		return err
	}

	if len(summaries) == 0 {
		fmt.Println("No profile found") //nolint:forbidigo

		return nil
	}

	player := summaries[0]
	fmt.Printf("%s (%s)\n", player.PersonaName, player.SteamID) //nolint:forbidigo
	if player.TimeCreated > 0 {
		fmt.Printf("  Created: %s\n", humanize.Time(time.Unix(player.TimeCreated, 0))) //nolint:forbidigo
	}
	fmt.Printf("  Level:   %d\n", level)                               //nolint:forbidigo
	fmt.Printf("  Friends: %s\n", humanize.Comma(int64(len(friends)))) //nolint:forbidigo
	for _, ban := range bans {
		fmt.Printf("  VAC banned: %v (%d bans, %d game bans, economy: %s)\n", //nolint:forbidigo
			ban.VACBanned, ban.NumberOfVACBans, ban.NumberOfGameBans, ban.EconomyBan)
	}

	return nil
}

func runOwned(cmd *cobra.Command, args []string) error {
	client, errClient := newClient(cmd.Context())
	if errClient != nil {
		return errClient
	}

	owned, errOwned := client.OwnedGames(cmd.Context(), args[0], steamquery.OwnedGamesOptions{
		IncludeAppInfo:         true,
		IncludePlayedFreeGames: true,
	})
	if errOwned != nil {
		return errOwned
	}

	fmt.Printf("%s games\n", humanize.Comma(int64(owned.Count))) //nolint:forbidigo
	for _, game := range owned.Games {
		hours := float64(game.PlaytimeForever) / 60
		fmt.Printf("  %-8d %-50s %6.1fh\n", game.AppID, game.Name, hours) //nolint:forbidigo
	}

	return nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	client, errClient := newClient(cmd.Context())
	if errClient != nil {
		return errClient
	}

	steamID, errResolve := client.ResolveVanityURL(cmd.Context(), args[0], steamquery.VanityDefault)
	if errResolve != nil {
		return errResolve
	}

	fmt.Println(steamID) //nolint:forbidigo

	return nil
}

func runWorkshop(cmd *cobra.Command, args []string) error {
	client, errClient := newClient(cmd.Context())
	if errClient != nil {
		return errClient
	}

	details, errDetails := client.PublishedFileDetails(cmd.Context(), args...)
	if errDetails != nil {
		return errDetails
	}

	for _, detail := range details {
		fmt.Printf("%s  %s\n", detail.PublishedFileID, detail.Title) //nolint:forbidigo
		fmt.Printf("  Size: %s  Subs: %s  Views: %s  Updated: %s\n", //nolint:forbidigo
			humanize.Bytes(uint64(detail.FileSize)), //nolint:gosec
			humanize.Comma(int64(detail.Subscriptions)),
			humanize.Comma(int64(detail.Views)),
			humanize.Time(time.Unix(detail.TimeUpdated, 0)))
	}

	return nil
}

func runCollection(cmd *cobra.Command, args []string) error {
	client, errClient := newClient(cmd.Context())
	if errClient != nil {
		return errClient
	}

	collections, errDetails := client.CollectionDetails(cmd.Context(), args...)
	if errDetails != nil {
		return errDetails
	}

	for _, collection := range collections {
		fmt.Printf("%s (%d items)\n", collection.PublishedFileID, len(collection.Children)) //nolint:forbidigo
		for _, child := range collection.Children {
			fmt.Printf("  %3d %s\n", child.SortOrder, child.PublishedFileID) //nolint:forbidigo
		}
	}

	return nil
}

func runGroupMembers(cmd *cobra.Command, args []string) error {
	client, errClient := newClient(cmd.Context())
	if errClient != nil {
		return errClient
	}

	members, errMembers := client.GroupMembers(cmd.Context(), args[0])
	if errMembers != nil {
		return errMembers
	}

	for _, member := range members {
		fmt.Println(member) //nolint:forbidigo
	}

	return nil
}
