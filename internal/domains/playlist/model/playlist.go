package model

// Playlist has exactly one owner, fixed at creation. Deleting a playlist
// cascades its membership rows.
type Playlist struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

// PlaylistSummary is a playlist row joined with its owner's username, as
// returned by list reads.
type PlaylistSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// SongItem is a member song inside a playlist aggregate.
type SongItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}

// PlaylistWithSongs is the aggregate read: playlist metadata joined with the
// owner's username plus every member song.
type PlaylistWithSongs struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Username string     `json:"username"`
	Songs    []SongItem `json:"songs"`
}
