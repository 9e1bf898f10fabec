package model

// Like records one user's like of one album. The service enforces at most
// one row per (user, album) via check-before-insert; the schema carries no
// uniqueness constraint on the pair, so a concurrent-toggle race can leave
// duplicates. Accepted at this layer.
type Like struct {
	ID      string
	UserID  string
	AlbumID string
}

// ToggleResult reports which way a toggle went.
type ToggleResult string

const (
	Liked   ToggleResult = "liked"
	Unliked ToggleResult = "unliked"
)

// Count sources for like-count reads.
const (
	SourceCache = "cache"
	SourceDB    = "db"
)

// LikeCount is a like total with the layer that answered it.
type LikeCount struct {
	Count  int
	Source string
}
