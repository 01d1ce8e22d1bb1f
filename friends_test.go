package steamquery_test

import (
	"net/http"
	"testing"

	"github.com/rotolabs/steamquery"
	"github.com/stretchr/testify/require"
)

func TestFriendListDefaultsRelationship(t *testing.T) {
	var gotRelationship string
	client := newTestClient(t, func(writer http.ResponseWriter, req *http.Request) {
		gotRelationship = req.URL.Query().Get("relationship")
		_, _ = writer.Write([]byte(
			`{"friendslist":{"friends":[{"steamid":"76561197960287931","relationship":"friend","friend_since":1200000000}]}}`))
	})

	friends, err := client.FriendList(t.Context(), "76561197960287930", "")
	require.NoError(t, err)
	require.Len(t, friends, 1)
	require.Equal(t, "76561197960287931", friends[0].SteamID)
	require.Equal(t, "friend", gotRelationship)
}

func TestFriendListEmptyTolerated(t *testing.T) {
	// A private profile omits the friends field entirely. Not an error.
	client := newTestClient(t, respondWith(`{"friendslist":{}}`))

	friends, err := client.FriendList(t.Context(), "76561197960287930", steamquery.RelationshipAll)
	require.NoError(t, err)
	require.Empty(t, friends)
}

func TestFriendListMissingEnvelope(t *testing.T) {
	client := newTestClient(t, respondWith(`{}`))

	_, err := client.FriendList(t.Context(), "76561197960287930", steamquery.RelationshipFriend)
	require.ErrorIs(t, err, steamquery.ErrMissingEnvelope)
}

func TestUserGroups(t *testing.T) {
	client := newTestClient(t, respondWith(
		`{"response":{"success":true,"groups":[{"gid":"103582791429521412"}]}}`))

	groups, err := client.UserGroups(t.Context(), "76561197960287930")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Equal(t, "103582791429521412", groups[0].GID)
}
