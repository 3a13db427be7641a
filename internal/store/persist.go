package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"blogsphere/internal/domain"
)

// Load builds a Store from kv. Missing keys load as empty collections. When
// no posts are stored the sample posts are seeded relative to now and the
// collections are saved.
func Load(ctx context.Context, kv domain.KVStore, now time.Time) (*Store, error) {
	s := New(kv)

	if err := loadJSON(ctx, kv, domain.KeyUsers, &s.users); err != nil {
		return nil, err
	}
	if err := loadJSON(ctx, kv, domain.KeyPosts, &s.posts); err != nil {
		return nil, err
	}
	if err := loadJSON(ctx, kv, domain.KeyComments, &s.comments); err != nil {
		return nil, err
	}
	// "null" decodes to a nil slice; keep the JSON form an array.
	if s.users == nil {
		s.users = []domain.User{}
	}
	if s.posts == nil {
		s.posts = []domain.Post{}
	}
	if s.comments == nil {
		s.comments = []domain.Comment{}
	}

	var current *domain.User
	if err := loadJSON(ctx, kv, domain.KeyCurrentUser, &current); err != nil {
		return nil, err
	}
	s.activeUser = current

	for _, u := range s.users {
		s.bumpLocked(u.ID)
	}
	for _, p := range s.posts {
		s.bumpLocked(p.ID)
	}
	for _, c := range s.comments {
		s.bumpLocked(c.ID)
	}

	if len(s.posts) == 0 {
		s.posts = SamplePosts(now)
		for _, p := range s.posts {
			s.bumpLocked(p.ID)
		}
		if err := s.Save(ctx); err != nil {
			return nil, fmt.Errorf("save sample posts: %w", err)
		}
	}
	return s, nil
}

// Save writes the users, posts and comments collections.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	payloads := make(map[string][]byte, 3)
	var err error
	if payloads[domain.KeyUsers], err = json.Marshal(s.users); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("marshal users: %w", err)
	}
	if payloads[domain.KeyPosts], err = json.Marshal(s.posts); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("marshal posts: %w", err)
	}
	if payloads[domain.KeyComments], err = json.Marshal(s.comments); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("marshal comments: %w", err)
	}
	s.mu.Unlock()

	for _, key := range []string{domain.KeyUsers, domain.KeyPosts, domain.KeyComments} {
		if err := s.kv.Set(ctx, key, string(payloads[key])); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return nil
}

// SaveSession writes the active user record, or removes it when logged out.
func (s *Store) SaveSession(ctx context.Context) error {
	s.mu.Lock()
	current := s.activeUser
	var payload []byte
	if current != nil {
		var err error
		if payload, err = json.Marshal(current); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("marshal current user: %w", err)
		}
	}
	s.mu.Unlock()

	if current == nil {
		if err := s.kv.Remove(ctx, domain.KeyCurrentUser); err != nil {
			return fmt.Errorf("remove %s: %w", domain.KeyCurrentUser, err)
		}
		return nil
	}
	if err := s.kv.Set(ctx, domain.KeyCurrentUser, string(payload)); err != nil {
		return fmt.Errorf("save %s: %w", domain.KeyCurrentUser, err)
	}
	return nil
}

func loadJSON(ctx context.Context, kv domain.KVStore, key string, dst any) error {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}
