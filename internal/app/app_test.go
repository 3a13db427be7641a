package app

import (
	"context"
	"errors"
	"testing"

	"blogsphere/internal/adapter/memory"
	"blogsphere/internal/domain"
	"blogsphere/internal/password"
	"blogsphere/internal/store"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func TestAliceScenario(t *testing.T) {
	st, _ := newTestStore()
	a := New(st, password.Bcrypt{Cost: bcrypt.MinCost}, zerolog.Nop(), newStepClock().Now)
	ctx := context.Background()

	_, v, err := a.Register(ctx, "Alice", "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if v.Section != SectionLogin {
		t.Errorf("after Register showing %q; want login", v.Section)
	}

	u, v, err := a.Login(ctx, "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if v.Section != SectionDashboard {
		t.Errorf("after Login showing %q; want dashboard", v.Section)
	}

	if _, err := a.NewPost(ctx); err != nil {
		t.Fatalf("NewPost: %v", err)
	}
	post, updated, v, err := a.SubmitPost(ctx, "Hi", "Body", "")
	if err != nil || updated {
		t.Fatalf("SubmitPost = (updated=%v, %v)", updated, err)
	}
	if len(v.Posts) != 1 || v.Posts[0].Title != "Hi" {
		t.Errorf("dashboard posts %+v", v.Posts)
	}

	userPosts := a.Content.ListUserPosts(u.ID)
	if len(userPosts) != 1 || userPosts[0].Title != "Hi" {
		t.Fatalf("ListUserPosts = %+v", userPosts)
	}

	c, v, err := a.AddComment(ctx, post.ID, "Nice")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if c.AuthorName != "Alice" || v.Section != SectionViewPost {
		t.Errorf("unexpected comment %+v in section %q", c, v.Section)
	}
	comments := a.Content.ListComments(post.ID)
	if len(comments) != 1 || comments[0].Content != "Nice" {
		t.Errorf("ListComments = %+v", comments)
	}
}

func TestAppEditPostUpdatesInPlace(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()
	mustRegisterLogin(t, a, "Alice", "a@x.com")
	orig, _, _, err := a.SubmitPost(ctx, "Hi", "Body", "")
	if err != nil {
		t.Fatalf("SubmitPost: %v", err)
	}

	loaded, v, err := a.EditPost(ctx, orig.ID)
	if err != nil {
		t.Fatalf("EditPost: %v", err)
	}
	if loaded.ID != orig.ID || v.Section != SectionCreate || a.Router.Active() != SectionCreate {
		t.Errorf("EditPost = (%+v, %+v)", loaded, v)
	}
	if a.Editor.State() != StateEditing {
		t.Fatalf("expected form in edit, got %q", a.Editor.State())
	}

	p, updated, _, err := a.SubmitPost(ctx, "Hello", "Body", "")
	if err != nil {
		t.Fatalf("SubmitPost: %v", err)
	}
	if !updated || p.ID != orig.ID {
		t.Errorf("expected update of %d, got %+v (updated=%v)", orig.ID, p, updated)
	}
	if n := len(a.Content.ListPublicPosts()); n != 1 {
		t.Errorf("expected 1 post, got %d", n)
	}
}

func TestAppCancelEdit(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()
	mustRegisterLogin(t, a, "Alice", "a@x.com")
	p, _, _, _ := a.SubmitPost(ctx, "Hi", "Body", "")
	if _, _, err := a.EditPost(ctx, p.ID); err != nil {
		t.Fatalf("EditPost: %v", err)
	}

	v, err := a.CancelEdit(ctx)
	if err != nil {
		t.Fatalf("CancelEdit: %v", err)
	}
	if v.Section != SectionDashboard || a.Editor.State() != StateIdle {
		t.Errorf("after cancel: section %q, state %q", v.Section, a.Editor.State())
	}
}

func TestAppPermissions(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()
	mustRegisterLogin(t, a, "Alice", "a@x.com")
	p, _, _, _ := a.SubmitPost(ctx, "Hi", "Body", "")
	_, _, _ = a.AddComment(ctx, p.ID, "Mine")

	mustRegisterLogin(t, a, "Bob", "b@x.com")
	if _, _, err := a.EditPost(ctx, p.ID); !errors.Is(err, domain.ErrPermission) {
		t.Errorf("EditPost: expected ErrPermission, got %v", err)
	}
	if _, err := a.DeletePost(ctx, p.ID); !errors.Is(err, domain.ErrPermission) {
		t.Errorf("DeletePost: expected ErrPermission, got %v", err)
	}
	if n := a.Content.CommentCount(p.ID); n != 1 {
		t.Errorf("comments changed: %d", n)
	}

	// Any logged-in user may comment.
	if _, _, err := a.AddComment(ctx, p.ID, "Bob was here"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	if _, err := a.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, _, err := a.AddComment(ctx, p.ID, "anon"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("anonymous comment: expected validation error, got %v", err)
	}
	if _, _, _, err := a.SubmitPost(ctx, "Anon", "Body", ""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("anonymous post: expected validation error, got %v", err)
	}
}

func TestAppDeletePost(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()
	mustRegisterLogin(t, a, "Alice", "a@x.com")
	p, _, _, _ := a.SubmitPost(ctx, "Hi", "Body", "")

	v, err := a.DeletePost(ctx, p.ID)
	if err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	if v.Section != SectionDashboard || len(v.Posts) != 0 {
		t.Errorf("unexpected view %+v", v)
	}
}

func TestAppLogoutShowsHome(t *testing.T) {
	a, _ := newTestApp(t)
	mustRegisterLogin(t, a, "Alice", "a@x.com")

	v, err := a.Logout(context.Background())
	if err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if v.Section != SectionHome {
		t.Errorf("after Logout showing %q", v.Section)
	}
}

func TestAppSessionRestoredAcrossLoad(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()
	st, err := store.Load(ctx, kv, newStepClock().Now())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	a := New(st, &mockHasher{}, zerolog.Nop(), newStepClock().Now)
	u := mustRegisterLogin(t, a, "Alice", "a@x.com")
	if err := a.Flush(ctx); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	st2, err := store.Load(ctx, kv, newStepClock().Now())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	b := New(st2, &mockHasher{}, zerolog.Nop(), nil)
	cur, ok := b.Sessions.Current()
	if !ok || cur.ID != u.ID {
		t.Errorf("expected restored session for %d, got %+v (ok=%v)", u.ID, cur, ok)
	}
	if n := len(b.Content.ListPublicPosts()); n != 2 {
		t.Errorf("expected the 2 sample posts, got %d", n)
	}
}

func TestAppFlushReportsErrors(t *testing.T) {
	kv := &mockKV{DB: memory.New(), setFn: func(context.Context, string, string) error { return errDiskFull }}
	a := New(store.New(kv), &mockHasher{}, zerolog.Nop(), nil)

	err := a.Flush(context.Background())
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("expected flush error, got %v", err)
	}
}
