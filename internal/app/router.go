package app

import (
	"context"
	"fmt"

	"blogsphere/internal/domain"
	"blogsphere/internal/store"
)

// Section names one screen of the interface.
type Section string

// Sections.
const (
	SectionHome      Section = "home"
	SectionLogin     Section = "login"
	SectionRegister  Section = "register"
	SectionDashboard Section = "dashboard"
	SectionCreate    Section = "create"
	SectionViewPost  Section = "viewPost"
)

// Sections lists every section in display order.
var Sections = []Section{
	SectionHome, SectionLogin, SectionRegister, SectionDashboard, SectionCreate, SectionViewPost,
}

// ParseSection maps a name to a Section.
func ParseSection(name string) (Section, error) {
	for _, s := range Sections {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownSection, name)
}

// View is what a section shows after its entry action ran.
type View struct {
	Section  Section
	Posts    []domain.Post
	Post     *domain.Post
	Comments []domain.Comment
}

type entryFunc func(ctx context.Context, v *View) error

// Router activates exactly one section at a time.
type Router struct {
	store   *store.Store
	content *ContentService
	editor  *Editor
	active  Section
	entries map[Section]entryFunc
}

// NewRouter returns a router showing the home section.
func NewRouter(st *store.Store, content *ContentService, editor *Editor) *Router {
	r := &Router{
		store:   st,
		content: content,
		editor:  editor,
		active:  SectionHome,
	}
	r.entries = map[Section]entryFunc{
		SectionHome:      r.loadPublic,
		SectionDashboard: r.loadDashboard,
		SectionCreate:    r.resetForm,
		SectionViewPost:  r.loadFocused,
	}
	return r
}

// Active returns the section currently shown.
func (r *Router) Active() Section {
	return r.active
}

// Show leaves the current section, resetting the authoring form, and
// activates section.
func (r *Router) Show(ctx context.Context, section Section) (View, error) {
	if _, err := ParseSection(string(section)); err != nil {
		return View{}, err
	}
	id, focused := r.store.FocusedPostID()
	r.editor.Reset(ctx)
	if section == SectionViewPost && focused {
		// Leaving the form clears the cursor; the post view still needs it.
		r.store.SetFocusedPostID(id)
	}
	return r.enter(ctx, section)
}

// ViewPost focuses postID and shows it with its comments.
func (r *Router) ViewPost(ctx context.Context, postID int64) (View, error) {
	if _, err := r.content.GetPost(postID); err != nil {
		return View{}, err
	}
	r.editor.Reset(ctx)
	r.store.SetFocusedPostID(postID)
	return r.enter(ctx, SectionViewPost)
}

// resume activates section without its entry action, so an open form
// stays as it is.
func (r *Router) resume(section Section) View {
	r.active = section
	return View{Section: section}
}

// enter runs the entry action of section and activates it.
func (r *Router) enter(ctx context.Context, section Section) (View, error) {
	v := View{Section: section}
	if fn, ok := r.entries[section]; ok {
		if err := fn(ctx, &v); err != nil {
			return View{}, err
		}
	}
	r.active = section
	return v, nil
}

func (r *Router) loadPublic(_ context.Context, v *View) error {
	v.Posts = r.content.ListPublicPosts()
	return nil
}

func (r *Router) loadDashboard(_ context.Context, v *View) error {
	if u, ok := r.store.ActiveUser(); ok {
		v.Posts = r.content.ListUserPosts(u.ID)
	}
	return nil
}

func (r *Router) resetForm(ctx context.Context, _ *View) error {
	r.editor.Reset(ctx)
	return nil
}

func (r *Router) loadFocused(_ context.Context, v *View) error {
	id, ok := r.store.FocusedPostID()
	if !ok {
		return domain.ErrNotFound
	}
	post, err := r.content.GetPost(id)
	if err != nil {
		return err
	}
	v.Post = &post
	v.Comments = r.content.ListComments(id)
	return nil
}
