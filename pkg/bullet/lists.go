package bullet

// RecencyEntry records a recently edited bullet. The list holding these is
// bounded; see the tracker in pkg/app for the upsert and eviction rules.
type RecencyEntry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// FavoriteEntry records a favorited bullet. Text is a snapshot taken when the
// favorite was toggled on; it is pruned with the bullet but never refreshed.
type FavoriteEntry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
