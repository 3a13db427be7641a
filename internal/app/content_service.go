package app

import (
	"context"
	"sort"
	"strings"
	"time"

	"blogsphere/internal/domain"
	"blogsphere/internal/store"

	"github.com/rs/zerolog"
)

// ContentService encapsulates post and comment use cases.
type ContentService struct {
	store *store.Store
	now   func() time.Time
	log   zerolog.Logger
}

// NewContentService creates a ContentService backed by st.
func NewContentService(st *store.Store, log zerolog.Logger, now func() time.Time) *ContentService {
	if now == nil {
		now = time.Now
	}
	return &ContentService{
		store: st,
		now:   now,
		log:   log.With().Str("component", "content").Logger(),
	}
}

// CreatePost validates and appends a post authored by author.
func (s *ContentService) CreatePost(ctx context.Context, author *domain.User, title, content, category string) (domain.Post, error) {
	title, content, category = strings.TrimSpace(title), strings.TrimSpace(content), strings.TrimSpace(category)

	verr := validatePost(title, content)
	if author == nil {
		verr.Add("author", "Please login to create a post!")
	}
	if !verr.Empty() {
		return domain.Post{}, verr
	}

	now := s.now()
	post := domain.Post{
		ID:         s.store.NextID(now),
		Title:      title,
		Content:    content,
		Category:   category,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		CreatedAt:  now.UTC(),
		UpdatedAt:  now.UTC(),
	}
	s.store.AppendPost(post)
	s.save(ctx)

	s.log.Info().Int64("post_id", post.ID).Int64("author_id", author.ID).Msg("post created")
	return post, nil
}

// UpdatePost replaces the title, content and category of a post owned by
// author. Author fields and createdAt are kept.
func (s *ContentService) UpdatePost(ctx context.Context, postID int64, author *domain.User, title, content, category string) (domain.Post, error) {
	title, content, category = strings.TrimSpace(title), strings.TrimSpace(content), strings.TrimSpace(category)

	if verr := validatePost(title, content); !verr.Empty() {
		return domain.Post{}, verr
	}

	post, err := s.owned(postID, author)
	if err != nil {
		return domain.Post{}, err
	}

	post.Title = title
	post.Content = content
	post.Category = category
	post.UpdatedAt = s.now().UTC()
	if !s.store.ReplacePost(post) {
		return domain.Post{}, domain.ErrNotFound
	}
	s.save(ctx)

	s.log.Info().Int64("post_id", post.ID).Msg("post updated")
	return post, nil
}

// DeletePost removes a post owned by author together with its comments.
func (s *ContentService) DeletePost(ctx context.Context, postID int64, author *domain.User) error {
	if _, err := s.owned(postID, author); err != nil {
		return err
	}

	removed, ok := s.store.RemovePost(postID)
	if !ok {
		return domain.ErrNotFound
	}
	s.save(ctx)

	s.log.Info().Int64("post_id", postID).Int("comments_removed", removed).Msg("post deleted")
	return nil
}

// AddComment appends a comment by author to an existing post.
func (s *ContentService) AddComment(ctx context.Context, postID int64, author *domain.User, content string) (domain.Comment, error) {
	content = strings.TrimSpace(content)

	verr := &domain.ValidationError{}
	if author == nil {
		verr.Add("author", "Please login to comment!")
	}
	if content == "" {
		verr.Add("content", "Comment cannot be empty!")
	}
	if !verr.Empty() {
		return domain.Comment{}, verr
	}

	if _, ok := s.store.PostByID(postID); !ok {
		return domain.Comment{}, domain.ErrNotFound
	}

	now := s.now()
	comment := domain.Comment{
		ID:         s.store.NextID(now),
		PostID:     postID,
		Content:    content,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		CreatedAt:  now.UTC(),
	}
	s.store.AppendComment(comment)
	s.save(ctx)

	s.log.Info().Int64("comment_id", comment.ID).Int64("post_id", postID).Msg("comment added")
	return comment, nil
}

// GetPost looks up a post by ID.
func (s *ContentService) GetPost(postID int64) (domain.Post, error) {
	post, ok := s.store.PostByID(postID)
	if !ok {
		return domain.Post{}, domain.ErrNotFound
	}
	return post, nil
}

// ListPublicPosts returns every post, newest first. Posts with equal
// timestamps keep insertion order.
func (s *ContentService) ListPublicPosts() []domain.Post {
	posts := s.store.Posts()
	sortNewestFirst(posts)
	return posts
}

// ListUserPosts returns the posts authored by userID, newest first.
func (s *ContentService) ListUserPosts(userID int64) []domain.Post {
	all := s.store.Posts()
	posts := make([]domain.Post, 0, len(all))
	for _, p := range all {
		if p.OwnedBy(userID) {
			posts = append(posts, p)
		}
	}
	sortNewestFirst(posts)
	return posts
}

// ListComments returns the comments on postID in insertion order.
func (s *ContentService) ListComments(postID int64) []domain.Comment {
	all := s.store.Comments()
	out := make([]domain.Comment, 0, len(all))
	for _, c := range all {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out
}

// CommentCount returns the number of comments on postID.
func (s *ContentService) CommentCount(postID int64) int {
	n := 0
	for _, c := range s.store.Comments() {
		if c.PostID == postID {
			n++
		}
	}
	return n
}

func (s *ContentService) owned(postID int64, author *domain.User) (domain.Post, error) {
	post, ok := s.store.PostByID(postID)
	if !ok {
		return domain.Post{}, domain.ErrNotFound
	}
	if author == nil || !post.OwnedBy(author.ID) {
		return domain.Post{}, domain.ErrPermission
	}
	return post, nil
}

func (s *ContentService) save(ctx context.Context) {
	if err := s.store.Save(ctx); err != nil {
		s.log.Warn().Err(err).Msg("persist collections")
	}
}

func validatePost(title, content string) *domain.ValidationError {
	verr := &domain.ValidationError{}
	if title == "" {
		verr.Add("title", "Title is required.")
	}
	if content == "" {
		verr.Add("content", "Content is required.")
	}
	return verr
}

func sortNewestFirst(posts []domain.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
