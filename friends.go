package steamquery

import (
	"context"
	"net/url"
)

// Relationship filters which friend list entries are returned.
type Relationship string

const (
	RelationshipAll    Relationship = "all"
	RelationshipFriend Relationship = "friend"
)

// Friend is one entry from GetFriendList.
type Friend struct {
	SteamID      string `json:"steamid"`
	Relationship string `json:"relationship"`
	FriendSince  int64  `json:"friend_since"`
}

// Group is one entry from GetUserGroupList.
type Group struct {
	GID string `json:"gid"`
}

// FriendList fetches a player's friends. An empty relationship defaults to
// RelationshipFriend. A private profile yields an empty list, not an error.
func (c *Client) FriendList(ctx context.Context, id string, relationship Relationship) ([]Friend, error) {
	if relationship == "" {
		relationship = RelationshipFriend
	}

	params := url.Values{}
	params.Set("steamid", NormalizeID(id))
	params.Set("relationship", string(relationship))

	return call[[]Friend](ctx, c, epFriendList, params)
}

// UserGroups fetches the ids of the community groups a player belongs to.
func (c *Client) UserGroups(ctx context.Context, id string) ([]Group, error) {
	params := url.Values{}
	params.Set("steamid", NormalizeID(id))

	return call[[]Group](ctx, c, epUserGroups, params)
}
