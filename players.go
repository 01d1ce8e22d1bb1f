package steamquery

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PlayerSummary is one record from GetPlayerSummaries. Private profiles omit
// most optional fields.
type PlayerSummary struct {
	SteamID                  string `json:"steamid"`
	CommunityVisibilityState int    `json:"communityvisibilitystate"`
	ProfileState             int    `json:"profilestate"`
	PersonaName              string `json:"personaname"`
	ProfileURL               string `json:"profileurl"`
	Avatar                   string `json:"avatar"`
	AvatarMedium             string `json:"avatarmedium"`
	AvatarFull               string `json:"avatarfull"`
	AvatarHash               string `json:"avatarhash"`
	LastLogoff               int64  `json:"lastlogoff"`
	PersonaState             int    `json:"personastate"`
	RealName                 string `json:"realname"`
	PrimaryClanID            string `json:"primaryclanid"`
	TimeCreated              int64  `json:"timecreated"`
	GameID                   string `json:"gameid"`
	GameExtraInfo            string `json:"gameextrainfo"`
	LocCountryCode           string `json:"loccountrycode"`
}

// PlayerBanState is one record from GetPlayerBans.
type PlayerBanState struct {
	SteamID          string `json:"SteamId"`
	CommunityBanned  bool   `json:"CommunityBanned"`
	VACBanned        bool   `json:"VACBanned"`
	NumberOfVACBans  int    `json:"NumberOfVACBans"`
	DaysSinceLastBan int    `json:"DaysSinceLastBan"`
	NumberOfGameBans int    `json:"NumberOfGameBans"`
	EconomyBan       string `json:"EconomyBan"`
}

// VanityURLType narrows what kind of entity ResolveVanityURL looks up.
type VanityURLType int

const (
	// VanityDefault lets the API apply its own default (individual profile).
	VanityDefault VanityURLType = 0
	VanityProfile VanityURLType = 1
	VanityGroup   VanityURLType = 2
	// VanityOfficialGameGroup resolves official game group names.
	VanityOfficialGameGroup VanityURLType = 3
)

// PlayerSummaries fetches profile summaries for up to 100 players in one
// request. Legacy-format ids are normalized first. The returned slice may be
// shorter than the input when some ids are unknown; that is not an error.
func (c *Client) PlayerSummaries(ctx context.Context, ids ...string) ([]PlayerSummary, error) {
	if len(ids) > maxPlayerSummaryIDs {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyIDs, len(ids), maxPlayerSummaryIDs)
	}

	params := url.Values{}
	params.Set("steamids", strings.Join(normalizeIDs(ids), ","))

	return call[[]PlayerSummary](ctx, c, epPlayerSummaries, params)
}

// PlayerBans fetches VAC/community/economy ban states for the given players.
func (c *Client) PlayerBans(ctx context.Context, ids ...string) ([]PlayerBanState, error) {
	params := url.Values{}
	params.Set("steamids", strings.Join(normalizeIDs(ids), ","))

	return call[[]PlayerBanState](ctx, c, epPlayerBans, params)
}

// SteamLevel fetches a player's Steam community level.
func (c *Client) SteamLevel(ctx context.Context, id string) (int, error) {
	params := url.Values{}
	params.Set("steamid", NormalizeID(id))

	return call[int](ctx, c, epSteamLevel, params)
}

// ResolveVanityURL resolves a vanity name into a steam64 id. A full community
// profile or group URL may be passed; the leading host and path segment are
// stripped before sending.
func (c *Client) ResolveVanityURL(ctx context.Context, vanity string, urlType VanityURLType) (string, error) {
	params := url.Values{}
	params.Set("vanityurl", trimVanity(vanity))
	if urlType != VanityDefault {
		params.Set("url_type", strconv.Itoa(int(urlType)))
	}

	return call[string](ctx, c, epResolveVanityURL, params)
}

// trimVanity reduces a community URL like https://steamcommunity.com/id/name/
// to its final path element. Bare vanity names pass through unchanged.
func trimVanity(vanity string) string {
	vanity = strings.TrimRight(vanity, "/")
	if idx := strings.LastIndex(vanity, "/"); idx != -1 {
		vanity = vanity[idx+1:]
	}

	return vanity
}
