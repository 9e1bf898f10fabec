package model

// User owns playlists and likes. Password holds the bcrypt hash and never
// leaves the service layer.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Fullname string `json:"fullname"`
}
