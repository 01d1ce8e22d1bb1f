package steamquery_test

import (
	"testing"

	"github.com/rotolabs/steamquery"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIDLegacy(t *testing.T) {
	require.Equal(t, "76561197960287930", steamquery.NormalizeID("STEAM_0:0:11101"))
	require.Equal(t, "76561197960287931", steamquery.NormalizeID("STEAM_0:1:11101"))
}

func TestNormalizeIDPassthrough(t *testing.T) {
	require.Equal(t, "76561197960287930", steamquery.NormalizeID("76561197960287930"))
	require.Equal(t, "not an id", steamquery.NormalizeID("not an id"))
	require.Equal(t, "", steamquery.NormalizeID(""))
	// Close to the legacy pattern without matching it passes through too.
	require.Equal(t, "STEAM_0:0:", steamquery.NormalizeID("STEAM_0:0:"))
}

func TestNormalizeIDIdempotent(t *testing.T) {
	for _, id := range []string{"STEAM_0:0:11101", "76561197960287930", "junk", ""} {
		once := steamquery.NormalizeID(id)
		require.Equal(t, once, steamquery.NormalizeID(once))
	}
}
