package steamquery_test

import (
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/rotolabs/steamquery"
	"github.com/stretchr/testify/require"
)

const ownedGamesBody = `{"response":{"game_count":2,"games":[` +
	`{"appid":4000,"name":"Garry's Mod","playtime_forever":120},` +
	`{"appid":440,"name":"Team Fortress 2","playtime_forever":9000}]}}`

func TestOwnedGames(t *testing.T) {
	var gotFilter string
	client := newTestClient(t, func(writer http.ResponseWriter, req *http.Request) {
		gotFilter = req.URL.Query().Get("appids_filter[0]")
		_, _ = writer.Write([]byte(ownedGamesBody))
	})

	owned, err := client.OwnedGames(t.Context(), "76561197960287930", steamquery.OwnedGamesOptions{
		IncludeAppInfo: true,
		AppIDFilter:    []int{4000},
	})
	require.NoError(t, err)
	require.Equal(t, 2, owned.Count)
	require.Len(t, owned.Games, 2)
	require.Equal(t, "Garry's Mod", owned.Games[0].Name)
	require.Equal(t, "4000", gotFilter)
}

func TestOwnedGamesEmptyLibrary(t *testing.T) {
	client := newTestClient(t, respondWith(`{"response":{}}`))

	owned, err := client.OwnedGames(t.Context(), "76561197960287930", steamquery.OwnedGamesOptions{})
	require.NoError(t, err)
	require.Equal(t, 0, owned.Count)
	require.Empty(t, owned.Games)
}

func TestOwnedGameMatch(t *testing.T) {
	client := newTestClient(t, respondWith(ownedGamesBody))

	game, err := client.OwnedGame(t.Context(), "76561197960287930", 4000, steamquery.OwnedGamesOptions{})
	require.NoError(t, err)
	require.NotNil(t, game)
	require.Equal(t, 120, game.PlaytimeForever)
}

func TestOwnedGameNoMatchIsNotAnError(t *testing.T) {
	client := newTestClient(t, respondWith(ownedGamesBody))

	game, err := client.OwnedGame(t.Context(), "76561197960287930", 9999, steamquery.OwnedGamesOptions{})
	require.NoError(t, err)
	require.Nil(t, game)
}

func TestOwnedGameStringAppID(t *testing.T) {
	client := newTestClient(t, respondWith(ownedGamesBody))

	game, err := client.OwnedGame(t.Context(), "76561197960287930", "440", steamquery.OwnedGamesOptions{})
	require.NoError(t, err)
	require.NotNil(t, game)
	require.Equal(t, "Team Fortress 2", game.Name)
}

func TestOwnedGameInvalidAppID(t *testing.T) {
	var calls atomic.Int64
	client := newTestClient(t, func(writer http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = writer.Write([]byte(ownedGamesBody))
	})

	_, err := client.OwnedGame(t.Context(), "76561197960287930", "abc", steamquery.OwnedGamesOptions{})
	require.ErrorIs(t, err, steamquery.ErrInvalidAppID)
	require.Equal(t, int64(0), calls.Load())
}

func TestOwnedGameForwardsInnerFailure(t *testing.T) {
	client := newTestClient(t, respondWith(`{"unexpected":{}}`))

	_, err := client.OwnedGame(t.Context(), "76561197960287930", 4000, steamquery.OwnedGamesOptions{})
	require.ErrorIs(t, err, steamquery.ErrMissingEnvelope)
}

func TestGarrysModPlaytimeRounding(t *testing.T) {
	client := newTestClient(t, respondWith(
		`{"response":{"game_count":1,"games":[{"appid":4000,"playtime_forever":125}]}}`))

	hours, err := client.GarrysModPlaytime(t.Context(), "76561197960287930")
	require.NoError(t, err)
	require.InDelta(t, 2.1, hours, 0.0001)
}

func TestGarrysModPlaytimeNotOwned(t *testing.T) {
	client := newTestClient(t, respondWith(`{"response":{"game_count":0,"games":[]}}`))

	hours, err := client.GarrysModPlaytime(t.Context(), "76561197960287930")
	require.NoError(t, err)
	require.Zero(t, hours)
}

func TestPlayerAchievements(t *testing.T) {
	client := newTestClient(t, respondWith(
		`{"playerstats":{"steamID":"76561197960287930","gameName":"Garry's Mod","success":true,` +
			`"achievements":[{"apiname":"YES_I_AM_THE_REAL_GARRY","achieved":1,"unlocktime":1500000000}]}}`))

	stats, err := client.PlayerAchievements(t.Context(), "76561197960287930", 4000)
	require.NoError(t, err)
	require.True(t, stats.Success)
	require.Len(t, stats.Achievements, 1)
	require.Equal(t, 1, stats.Achievements[0].Achieved)
}
