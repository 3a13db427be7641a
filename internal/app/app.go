package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogsphere/internal/domain"
	"blogsphere/internal/password"
	"blogsphere/internal/store"

	"github.com/rs/zerolog"
)

// App wires the services over one store and implements the user actions,
// each followed by the section the interface shows next.
type App struct {
	Store    *store.Store
	Sessions *SessionService
	Content  *ContentService
	Editor   *Editor
	Router   *Router
	Theme    *ThemeService
}

// New builds an App. now may be nil to use the wall clock.
func New(st *store.Store, hasher password.Hasher, log zerolog.Logger, now func() time.Time) *App {
	content := NewContentService(st, log, now)
	editor := NewEditor(content, st)
	return &App{
		Store:    st,
		Sessions: NewSessionService(st, hasher, log, now),
		Content:  content,
		Editor:   editor,
		Router:   NewRouter(st, content, editor),
		Theme:    NewThemeService(st.KV()),
	}
}

// Register creates an account and shows the login section.
func (a *App) Register(ctx context.Context, name, email, plaintext string) (domain.User, View, error) {
	u, err := a.Sessions.Register(ctx, name, email, plaintext)
	if err != nil {
		return domain.User{}, View{}, err
	}
	v, err := a.Router.Show(ctx, SectionLogin)
	return u, v, err
}

// Login authenticates and shows the dashboard.
func (a *App) Login(ctx context.Context, email, plaintext string) (domain.User, View, error) {
	u, err := a.Sessions.Login(ctx, email, plaintext)
	if err != nil {
		return domain.User{}, View{}, err
	}
	v, err := a.Router.Show(ctx, SectionDashboard)
	return u, v, err
}

// Logout ends the session and shows the home section.
func (a *App) Logout(ctx context.Context) (View, error) {
	a.Sessions.Logout(ctx)
	return a.Router.Show(ctx, SectionHome)
}

// NewPost opens a blank authoring form.
func (a *App) NewPost(ctx context.Context) (View, error) {
	v, err := a.Router.Show(ctx, SectionCreate)
	if err != nil {
		return View{}, err
	}
	return v, a.Editor.Begin(ctx)
}

// EditPost loads an owned post into the form and shows the create section
// with the form still in edit.
func (a *App) EditPost(ctx context.Context, postID int64) (domain.Post, View, error) {
	p, err := a.Editor.Edit(ctx, postID, a.currentUser())
	if err != nil {
		return domain.Post{}, View{}, err
	}
	return p, a.Router.resume(SectionCreate), nil
}

// SubmitPost saves the form and shows the dashboard. updated reports
// whether an existing post was changed rather than a new one created.
func (a *App) SubmitPost(ctx context.Context, title, content, category string) (post domain.Post, updated bool, v View, err error) {
	post, updated, err = a.Editor.Submit(ctx, a.currentUser(), title, content, category)
	if err != nil {
		return domain.Post{}, false, View{}, err
	}
	v, err = a.Router.Show(ctx, SectionDashboard)
	return post, updated, v, err
}

// CancelEdit abandons the form and shows the dashboard.
func (a *App) CancelEdit(ctx context.Context) (View, error) {
	a.Editor.Cancel(ctx)
	return a.Router.Show(ctx, SectionDashboard)
}

// DeletePost removes an owned post and refreshes the dashboard.
func (a *App) DeletePost(ctx context.Context, postID int64) (View, error) {
	if err := a.Content.DeletePost(ctx, postID, a.currentUser()); err != nil {
		return View{}, err
	}
	return a.Router.Show(ctx, SectionDashboard)
}

// ViewPost shows a post with its comments.
func (a *App) ViewPost(ctx context.Context, postID int64) (View, error) {
	return a.Router.ViewPost(ctx, postID)
}

// AddComment comments on postID as the active user and refreshes the post.
func (a *App) AddComment(ctx context.Context, postID int64, content string) (domain.Comment, View, error) {
	c, err := a.Content.AddComment(ctx, postID, a.currentUser(), content)
	if err != nil {
		return domain.Comment{}, View{}, err
	}
	v, err := a.Router.ViewPost(ctx, postID)
	return c, v, err
}

// Flush writes the collections and the session and reports any failure.
func (a *App) Flush(ctx context.Context) error {
	err := a.Store.Save(ctx)
	if serr := a.Store.SaveSession(ctx); serr != nil {
		err = errors.Join(err, serr)
	}
	if err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

func (a *App) currentUser() *domain.User {
	u, ok := a.Sessions.Current()
	if !ok {
		return nil
	}
	return &u
}
