package store

import (
	"time"

	"blogsphere/internal/domain"
)

const (
	sampleAuthorID   = 0
	sampleAuthorName = "BlogSphere Team"
)

// SamplePosts returns the two posts shown on a fresh install, dated one and
// two days before now.
func SamplePosts(now time.Time) []domain.Post {
	day := 24 * time.Hour
	welcome := now.Add(-day).UTC()
	tips := now.Add(-2 * day).UTC()

	return []domain.Post{
		{
			ID:         1,
			Title:      "Welcome to BlogSphere",
			Content:    "This is your new favorite blogging platform! Here you can share your thoughts, stories, and connect with other writers. The platform features a clean, modern design with full responsiveness across all devices.",
			Category:   "Announcement",
			AuthorID:   sampleAuthorID,
			AuthorName: sampleAuthorName,
			CreatedAt:  welcome,
			UpdatedAt:  welcome,
		},
		{
			ID:         2,
			Title:      "Tips for Better Writing",
			Content:    "Writing is an art that improves with practice. Here are some tips: 1) Write regularly, even if it's just for 15 minutes a day. 2) Read widely to expand your vocabulary and understanding of different styles. 3) Edit ruthlessly - first drafts are meant to be improved. 4) Write about what you're passionate about.",
			Category:   "Writing",
			AuthorID:   sampleAuthorID,
			AuthorName: sampleAuthorName,
			CreatedAt:  tips,
			UpdatedAt:  tips,
		},
	}
}
