package entities

import "time"

// Post is a plain snapshot of a feed post. Author is preloaded by the store
// when the query asks for it and may be nil otherwise.
type Post struct {
	ID        int64
	AuthorID  int64
	Type      string
	Title     string
	Summary   string
	Content   string
	CreatedAt time.Time
	Author    *User
}
