package domain

import "time"

// Post represents a single blog post. AuthorName is copied from the author
// at creation time and is not refreshed afterwards.
type Post struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	AuthorID   int64     `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// OwnedBy reports whether the post was written by the given user.
func (p Post) OwnedBy(userID int64) bool {
	return p.AuthorID == userID
}
