package model

// Album is a catalog entry. CoverURL is an optional reference to an
// externally hosted cover image; this service stores the reference only.
type Album struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Year     int     `json:"year"`
	CoverURL *string `json:"coverUrl"`
}

// SongSummary is the trimmed song row embedded in album and playlist reads.
type SongSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}

// AlbumDetail is the aggregate returned by get-by-id: the album row plus
// the songs referencing it.
type AlbumDetail struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Year     int           `json:"year"`
	CoverURL *string       `json:"coverUrl"`
	Songs    []SongSummary `json:"songs"`
}
