package steamquery

import "context"

// PublishedFileDetail is one record from GetPublishedFileDetails. Result is
// the per-file status code; 1 means the file resolved.
type PublishedFileDetail struct {
	PublishedFileID string `json:"publishedfileid"`
	Result          int    `json:"result"`
	Creator         string `json:"creator"`
	CreatorAppID    int    `json:"creator_app_id"`
	ConsumerAppID   int    `json:"consumer_app_id"`
	FileName        string `json:"filename"`
	FileSize        int64  `json:"file_size"`
	FileURL         string `json:"file_url"`
	PreviewURL      string `json:"preview_url"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	TimeCreated     int64  `json:"time_created"`
	TimeUpdated     int64  `json:"time_updated"`
	Visibility      int    `json:"visibility"`
	Banned          int    `json:"banned"`
	BanReason       string `json:"ban_reason"`
	Subscriptions   int    `json:"subscriptions"`
	Favorited       int    `json:"favorited"`
	LifetimeSubs    int    `json:"lifetime_subscriptions"`
	LifetimeFavs    int    `json:"lifetime_favorited"`
	Views           int    `json:"views"`
	Tags            []Tag  `json:"tags"`
}

// Tag is one workshop tag attached to a published file.
type Tag struct {
	Tag string `json:"tag"`
}

// CollectionChild is one member of a workshop collection.
type CollectionChild struct {
	PublishedFileID string `json:"publishedfileid"`
	SortOrder       int    `json:"sortorder"`
	FileType        int    `json:"filetype"`
}

// CollectionDetail is one record from GetCollectionDetails.
type CollectionDetail struct {
	PublishedFileID string            `json:"publishedfileid"`
	Result          int               `json:"result"`
	Children        []CollectionChild `json:"children"`
}

// PublishedFileDetails fetches workshop file metadata for the given ids in a
// single batched request.
func (c *Client) PublishedFileDetails(ctx context.Context, ids ...string) ([]PublishedFileDetail, error) {
	return call[[]PublishedFileDetail](ctx, c, epPublishedFileDetails, IndexedParams("itemcount", ids))
}

// CollectionDetails fetches workshop collection contents for the given ids in
// a single batched request.
func (c *Client) CollectionDetails(ctx context.Context, ids ...string) ([]CollectionDetail, error) {
	return call[[]CollectionDetail](ctx, c, epCollectionDetails, IndexedParams("collectioncount", ids))
}
