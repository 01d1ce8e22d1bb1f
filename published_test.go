package steamquery_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublishedFileDetailsRoundTrip(t *testing.T) {
	var gotCount, gotFirst, gotKey string
	client := newTestClient(t, func(writer http.ResponseWriter, req *http.Request) {
		require.Equal(t, http.MethodPost, req.Method)
		require.NoError(t, req.ParseForm())
		gotCount = req.PostForm.Get("itemcount")
		gotFirst = req.PostForm.Get("publishedfileids[0]")
		gotKey = req.PostForm.Get("key")
		_, _ = writer.Write([]byte(`{"response":{"result":1,"publishedfiledetails":[{"publishedfileid":"1"}]}}`))
	})

	details, err := client.PublishedFileDetails(t.Context(), "1")
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Equal(t, "1", details[0].PublishedFileID)
	require.Equal(t, "1", gotCount)
	require.Equal(t, "1", gotFirst)
	require.Equal(t, testKey, gotKey)
}

func TestPublishedFileDetailsBatch(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, req *http.Request) {
		require.NoError(t, req.ParseForm())
		require.Equal(t, "3", req.PostForm.Get("itemcount"))
		require.Equal(t, "30", req.PostForm.Get("publishedfileids[2]"))
		_, _ = writer.Write([]byte(`{"response":{"result":1,"publishedfiledetails":[` +
			`{"publishedfileid":"10","result":1,"title":"ten"},` +
			`{"publishedfileid":"20","result":1,"title":"twenty"},` +
			`{"publishedfileid":"30","result":9}]}}`))
	})

	details, err := client.PublishedFileDetails(t.Context(), "10", "20", "30")
	require.NoError(t, err)
	require.Len(t, details, 3)
	// Per-file results are carried as data, not turned into call failures.
	require.Equal(t, 9, details[2].Result)
}

func TestCollectionDetails(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, req *http.Request) {
		require.NoError(t, req.ParseForm())
		require.Equal(t, "1", req.PostForm.Get("collectioncount"))
		_, _ = writer.Write([]byte(`{"response":{"result":1,"collectiondetails":[` +
			`{"publishedfileid":"100","result":1,"children":[` +
			`{"publishedfileid":"101","sortorder":0},{"publishedfileid":"102","sortorder":1}]}]}}`))
	})

	collections, err := client.CollectionDetails(t.Context(), "100")
	require.NoError(t, err)
	require.Len(t, collections, 1)
	require.Len(t, collections[0].Children, 2)
	require.Equal(t, "102", collections[0].Children[1].PublishedFileID)
}
