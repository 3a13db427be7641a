// Package store holds the in-memory collections and session cursors and
// mirrors them to a domain.KVStore.
package store

import (
	"sync"
	"time"

	"blogsphere/internal/domain"
)

// Store holds users, posts and comments in insertion order, plus the active
// user and the focused post. Accessors return copies.
type Store struct {
	mu sync.Mutex
	kv domain.KVStore

	users    []domain.User
	posts    []domain.Post
	comments []domain.Comment

	activeUser    *domain.User
	focusedPostID int64
	hasFocus      bool

	lastID int64
}

// New returns an empty store bound to kv. Most callers want Load.
func New(kv domain.KVStore) *Store {
	return &Store{
		kv:       kv,
		users:    []domain.User{},
		posts:    []domain.Post{},
		comments: []domain.Comment{},
	}
}

// KV returns the backing key-value store.
func (s *Store) KV() domain.KVStore {
	return s.kv
}

// NextID returns a new identifier derived from now in Unix milliseconds.
// IDs are strictly increasing across all collections.
func (s *Store) NextID(now time.Time) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// --- users ---

// Users returns all users in insertion order.
func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

// UserByID looks up a user by ID.
func (s *Store) UserByID(id int64) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

// AppendUser adds a user at the end of the collection.
func (s *Store) AppendUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, u)
	s.bumpLocked(u.ID)
}

// --- posts ---

// Posts returns all posts in insertion order.
func (s *Store) Posts() []domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// PostByID looks up a post by ID.
func (s *Store) PostByID(id int64) (domain.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Post{}, false
}

// AppendPost adds a post at the end of the collection.
func (s *Store) AppendPost(p domain.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = append(s.posts, p)
	s.bumpLocked(p.ID)
}

// ReplacePost swaps the stored post with the same ID, keeping its position.
func (s *Store) ReplacePost(p domain.Post) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == p.ID {
			s.posts[i] = p
			return true
		}
	}
	return false
}

// RemovePost deletes the post with id and every comment that references it.
// Returns the number of comments removed and whether the post existed.
func (s *Store) RemovePost(id int64) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.posts {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return 0, false
	}
	s.posts = append(s.posts[:idx], s.posts[idx+1:]...)

	kept := s.comments[:0]
	removed := 0
	for _, c := range s.comments {
		if c.PostID == id {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	s.comments = kept

	if s.hasFocus && s.focusedPostID == id {
		s.hasFocus = false
		s.focusedPostID = 0
	}
	return removed, true
}

// --- comments ---

// Comments returns all comments in insertion order.
func (s *Store) Comments() []domain.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Comment, len(s.comments))
	copy(out, s.comments)
	return out
}

// AppendComment adds a comment at the end of the collection.
func (s *Store) AppendComment(c domain.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.comments = append(s.comments, c)
	s.bumpLocked(c.ID)
}

// --- cursors ---

// ActiveUser returns the logged-in user, if any.
func (s *Store) ActiveUser() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeUser == nil {
		return domain.User{}, false
	}
	return *s.activeUser, true
}

// SetActiveUser replaces the active user. nil logs out.
func (s *Store) SetActiveUser(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u == nil {
		s.activeUser = nil
		return
	}
	cp := *u
	s.activeUser = &cp
}

// FocusedPostID returns the post being edited or viewed, if any.
func (s *Store) FocusedPostID() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focusedPostID, s.hasFocus
}

// SetFocusedPostID records the post being edited or viewed.
func (s *Store) SetFocusedPostID(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focusedPostID = id
	s.hasFocus = true
}

// ClearFocusedPost clears the focused post cursor.
func (s *Store) ClearFocusedPost() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focusedPostID = 0
	s.hasFocus = false
}

func (s *Store) bumpLocked(id int64) {
	if id > s.lastID {
		s.lastID = id
	}
}
