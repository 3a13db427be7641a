// Package app holds the application services and business logic.
package app

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"blogsphere/internal/domain"
	"blogsphere/internal/password"
	"blogsphere/internal/store"

	"github.com/rs/zerolog"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 6

// SessionService handles registration, login and the active session.
type SessionService struct {
	store  *store.Store
	hasher password.Hasher
	now    func() time.Time
	log    zerolog.Logger
}

// NewSessionService creates a session service over st.
func NewSessionService(st *store.Store, hasher password.Hasher, log zerolog.Logger, now func() time.Time) *SessionService {
	if now == nil {
		now = time.Now
	}
	return &SessionService{
		store:  st,
		hasher: hasher,
		now:    now,
		log:    log.With().Str("component", "session").Logger(),
	}
}

// Register validates the input and appends a new user. It does not log in.
func (s *SessionService) Register(ctx context.Context, name, email, plaintext string) (domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	verr := &domain.ValidationError{}
	if name == "" {
		verr.Add("name", "Name is required.")
	}
	if email == "" {
		verr.Add("email", "Email is required.")
	}
	if utf8.RuneCountInString(plaintext) < MinPasswordLength {
		verr.Add("password", "Password must be at least 6 characters.")
	}
	if !verr.Empty() {
		return domain.User{}, verr
	}

	for _, u := range s.store.Users() {
		if u.Email == email {
			return domain.User{}, domain.ErrDuplicateEmail
		}
	}

	digest, err := s.hasher.Hash(plaintext)
	if err != nil {
		return domain.User{}, err
	}

	now := s.now()
	user := domain.User{
		ID:       s.store.NextID(now),
		Name:     name,
		Email:    email,
		Password: digest,
		JoinDate: now.UTC(),
	}
	s.store.AppendUser(user)
	s.save(ctx)

	s.log.Info().Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login authenticates by email and password and makes the user active.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (s *SessionService) Login(ctx context.Context, email, plaintext string) (domain.User, error) {
	email = strings.TrimSpace(email)

	verr := &domain.ValidationError{}
	if email == "" {
		verr.Add("email", "Email is required.")
	}
	if plaintext == "" {
		verr.Add("password", "Password is required.")
	}
	if !verr.Empty() {
		return domain.User{}, verr
	}

	var (
		match domain.User
		found bool
	)
	for _, u := range s.store.Users() {
		if u.Email != email {
			continue
		}
		if s.hasher.Verify(u.Password, plaintext) && !found {
			match, found = u, true
		}
	}
	if !found {
		s.log.Debug().Msg("login rejected")
		return domain.User{}, domain.ErrInvalidCredentials
	}

	s.store.SetActiveUser(&match)
	if err := s.store.SaveSession(ctx); err != nil {
		s.log.Warn().Err(err).Msg("persist session")
	}
	s.log.Info().Int64("user_id", match.ID).Msg("user logged in")
	return match, nil
}

// Logout clears the active user. Calling it while logged out is a no-op
// apart from removing any stale session record.
func (s *SessionService) Logout(ctx context.Context) {
	s.store.SetActiveUser(nil)
	if err := s.store.SaveSession(ctx); err != nil {
		s.log.Warn().Err(err).Msg("persist session")
	}
}

// Current returns the active user, if any.
func (s *SessionService) Current() (domain.User, bool) {
	return s.store.ActiveUser()
}

func (s *SessionService) save(ctx context.Context) {
	if err := s.store.Save(ctx); err != nil {
		s.log.Warn().Err(err).Msg("persist collections")
	}
}
