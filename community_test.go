package steamquery_test

import (
	"net/http"
	"testing"

	"github.com/rotolabs/steamquery"
	"github.com/stretchr/testify/require"
)

const memberListPage = `<?xml version="1.0" encoding="UTF-8"?>
<memberList>
  <groupID64>103582791429521412</groupID64>
  <members>
    <steamID64>76561197960287930</steamID64>
    <steamID64>76561197960287931</steamID64>
  </members>
</memberList>`

func TestGroupMembers(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(writer http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		_, _ = writer.Write([]byte(memberListPage))
	})

	members, err := client.GroupMembers(t.Context(), "Valve")
	require.NoError(t, err)
	require.Equal(t, []string{"76561197960287930", "76561197960287931"}, members)
	require.Equal(t, "/groups/Valve/memberslistxml/", gotPath)
}

func TestGroupMembersUnexpectedPage(t *testing.T) {
	client := newTestClient(t, respondWith(`<html><body>No group could be retrieved</body></html>`))

	_, err := client.GroupMembers(t.Context(), "definitely-not-a-group")
	require.ErrorIs(t, err, steamquery.ErrMalformedPayload)
}

func TestGroupMembersNoKeySent(t *testing.T) {
	var sawKey bool
	client := newTestClient(t, func(writer http.ResponseWriter, req *http.Request) {
		sawKey = req.URL.Query().Has("key")
		_, _ = writer.Write([]byte(memberListPage))
	})

	_, err := client.GroupMembers(t.Context(), "Valve")
	require.NoError(t, err)
	// Community pages are public; the credential never leaves for them.
	require.False(t, sawKey)
}

func TestVACBanned(t *testing.T) {
	client := newTestClient(t, respondWith(
		`<profile><steamID64>76561197960287930</steamID64><vacBanned>1</vacBanned></profile>`))

	banned, err := client.VACBanned(t.Context(), "76561197960287930")
	require.NoError(t, err)
	require.True(t, banned)
}

func TestVACBannedClean(t *testing.T) {
	client := newTestClient(t, respondWith(
		`<profile><steamID64>76561197960287930</steamID64><vacBanned>0</vacBanned></profile>`))

	banned, err := client.VACBanned(t.Context(), "STEAM_0:0:11101")
	require.NoError(t, err)
	require.False(t, banned)
}

func TestVACBannedHTTPStatus(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.VACBanned(t.Context(), "76561197960287930")
	require.ErrorIs(t, err, steamquery.ErrHTTPStatus)
}
