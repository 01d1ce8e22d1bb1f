package steamquery

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// AppIDGarrysMod is the store app id for Garry's Mod.
const AppIDGarrysMod = 4000

// Game is one entry of an owned-games listing. Name and icon fields are only
// present when the query asked for app info.
type Game struct {
	AppID                    int    `json:"appid"`
	Name                     string `json:"name"`
	PlaytimeForever          int    `json:"playtime_forever"`
	Playtime2Weeks           int    `json:"playtime_2weeks"`
	ImgIconURL               string `json:"img_icon_url"`
	HasCommunityVisibleStats bool   `json:"has_community_visible_stats"`
}

// OwnedGames is the reshaped GetOwnedGames result.
type OwnedGames struct {
	Count int
	Games []Game
}

// OwnedGamesOptions toggles the optional GetOwnedGames behaviour.
type OwnedGamesOptions struct {
	IncludeAppInfo         bool
	IncludePlayedFreeGames bool
	// AppIDFilter restricts the listing to the given app ids.
	AppIDFilter []int
}

// Achievement is one entry of a player's per-game achievement listing.
type Achievement struct {
	APIName    string `json:"apiname"`
	Achieved   int    `json:"achieved"`
	UnlockTime int64  `json:"unlocktime"`
}

// PlayerStats is the GetPlayerAchievements payload.
type PlayerStats struct {
	SteamID      string        `json:"steamID"`
	GameName     string        `json:"gameName"`
	Achievements []Achievement `json:"achievements"`
	Success      bool          `json:"success"`
}

type ownedGamesPayload struct {
	GameCount int    `json:"game_count"`
	Games     []Game `json:"games"`
}

// PlayerAchievements fetches a player's achievements for one app.
func (c *Client) PlayerAchievements(ctx context.Context, id string, appID int) (PlayerStats, error) {
	params := url.Values{}
	params.Set("steamid", NormalizeID(id))
	params.Set("appid", strconv.Itoa(appID))

	return call[PlayerStats](ctx, c, epPlayerAchievements, params)
}

// OwnedGames fetches a player's game library in one request.
func (c *Client) OwnedGames(ctx context.Context, id string, opts OwnedGamesOptions) (OwnedGames, error) {
	params := url.Values{}
	params.Set("steamid", NormalizeID(id))
	params.Set("include_appinfo", strconv.FormatBool(opts.IncludeAppInfo))
	params.Set("include_played_free_games", strconv.FormatBool(opts.IncludePlayedFreeGames))
	for index, appID := range opts.AppIDFilter {
		params.Set(fmt.Sprintf("appids_filter[%d]", index), strconv.Itoa(appID))
	}

	payload, errCall := call[ownedGamesPayload](ctx, c, epOwnedGames, params)
	if errCall != nil {
		return OwnedGames{}, errCall
	}

	return OwnedGames{Count: payload.GameCount, Games: payload.Games}, nil
}

// OwnedGame looks up a single game in a player's library. The app id may be a
// number or a numeric string; anything else fails with ErrInvalidAppID before
// any request is made. A library that simply lacks the game yields (nil, nil).
func (c *Client) OwnedGame(ctx context.Context, id string, appID any, opts OwnedGamesOptions) (*Game, error) {
	numeric, errAppID := coerceAppID(appID)
	if errAppID != nil {
		return nil, errAppID
	}

	owned, errOwned := c.OwnedGames(ctx, id, opts)
	if errOwned != nil {
		return nil, errOwned
	}

	for _, game := range owned.Games {
		if game.AppID == numeric {
			return &game, nil
		}
	}

	return nil, nil
}

// OwnsGarrysMod reports a player's Garry's Mod library entry, or nil when the
// game is not owned.
func (c *Client) OwnsGarrysMod(ctx context.Context, id string, includeAppInfo bool) (*Game, error) {
	return c.OwnedGame(ctx, id, AppIDGarrysMod, OwnedGamesOptions{IncludeAppInfo: includeAppInfo})
}

// GarrysModPlaytime reports a player's total Garry's Mod playtime in hours,
// rounded to one decimal place. Not owning the game yields 0.
func (c *Client) GarrysModPlaytime(ctx context.Context, id string) (float64, error) {
	game, errGame := c.OwnsGarrysMod(ctx, id, false)
	if errGame != nil {
		return 0, errGame
	}
	if game == nil {
		return 0, nil
	}

	return math.Round(float64(game.PlaytimeForever)/60*10) / 10, nil
}

func coerceAppID(appID any) (int, error) {
	switch value := appID.(type) {
	case int:
		return value, nil
	case int64:
		return int(value), nil
	case float64:
		return int(value), nil
	case string:
		numeric, errParse := strconv.Atoi(value)
		if errParse != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAppID, value)
		}

		return numeric, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidAppID, appID)
	}
}
