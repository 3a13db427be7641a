package domain

import "time"

// Comment represents a reply to a post.
type Comment struct {
	ID         int64     `json:"id"`
	PostID     int64     `json:"postId"`
	Content    string    `json:"content"`
	AuthorID   int64     `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
}
