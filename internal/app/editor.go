package app

import (
	"context"
	"errors"

	"blogsphere/internal/domain"
	"blogsphere/internal/store"

	"github.com/looplab/fsm"
)

// Authoring form states.
const (
	StateIdle     = "idle"
	StateCreating = "creating"
	StateEditing  = "editing"
)

const (
	eventBegin  = "begin"
	eventEdit   = "edit"
	eventFinish = "finish"
	eventReset  = "reset"
)

// Editor tracks the authoring form. At most one post is in edit at a time;
// the post being edited is the store's focused post.
type Editor struct {
	content *ContentService
	store   *store.Store
	fsm     *fsm.FSM
}

// NewEditor returns an idle editor.
func NewEditor(content *ContentService, st *store.Store) *Editor {
	e := &Editor{content: content, store: st}
	e.fsm = fsm.NewFSM(
		StateIdle,
		fsm.Events{
			{Name: eventBegin, Src: []string{StateIdle, StateCreating, StateEditing}, Dst: StateCreating},
			{Name: eventEdit, Src: []string{StateIdle, StateCreating, StateEditing}, Dst: StateEditing},
			{Name: eventFinish, Src: []string{StateCreating, StateEditing}, Dst: StateIdle},
			{Name: eventReset, Src: []string{StateCreating, StateEditing}, Dst: StateIdle},
		},
		fsm.Callbacks{
			"leave_" + StateEditing: func(_ context.Context, _ *fsm.Event) {
				e.store.ClearFocusedPost()
			},
		},
	)
	return e
}

// State returns the current form state.
func (e *Editor) State() string {
	return e.fsm.Current()
}

// EditingID returns the post in edit, if any.
func (e *Editor) EditingID() (int64, bool) {
	if e.State() != StateEditing {
		return 0, false
	}
	return e.store.FocusedPostID()
}

// Begin opens a blank form, discarding any edit in progress.
func (e *Editor) Begin(ctx context.Context) error {
	return e.fire(ctx, eventBegin)
}

// Edit loads postID into the form after checking that user owns it.
func (e *Editor) Edit(ctx context.Context, postID int64, user *domain.User) (domain.Post, error) {
	post, err := e.content.GetPost(postID)
	if err != nil {
		return domain.Post{}, err
	}
	if user == nil || !post.OwnedBy(user.ID) {
		return domain.Post{}, domain.ErrPermission
	}
	if err := e.fire(ctx, eventEdit); err != nil {
		return domain.Post{}, err
	}
	e.store.SetFocusedPostID(postID)
	return post, nil
}

// Submit saves the form. It updates the post in edit, or creates a new post
// otherwise, and returns to idle on success. updated reports which happened.
// A failed submit keeps the form open unless the edited post is gone.
func (e *Editor) Submit(ctx context.Context, user *domain.User, title, content, category string) (post domain.Post, updated bool, err error) {
	if e.State() == StateEditing {
		id, ok := e.store.FocusedPostID()
		if !ok {
			// The post was deleted while in edit.
			e.Reset(ctx)
			return domain.Post{}, false, domain.ErrNotFound
		}
		post, err = e.content.UpdatePost(ctx, id, user, title, content, category)
		if errors.Is(err, domain.ErrNotFound) {
			e.Reset(ctx)
		}
		if err != nil {
			return domain.Post{}, false, err
		}
		e.finish(ctx)
		return post, true, nil
	}

	post, err = e.content.CreatePost(ctx, user, title, content, category)
	if err != nil {
		return domain.Post{}, false, err
	}
	e.finish(ctx)
	return post, false, nil
}

// Cancel abandons the form.
func (e *Editor) Cancel(ctx context.Context) {
	e.Reset(ctx)
}

// Reset returns the form to idle and clears the post in edit.
func (e *Editor) Reset(ctx context.Context) {
	if e.State() == StateIdle {
		return
	}
	_ = e.fire(ctx, eventReset)
}

func (e *Editor) finish(ctx context.Context) {
	if e.State() != StateIdle {
		_ = e.fire(ctx, eventFinish)
	}
}

func (e *Editor) fire(ctx context.Context, event string) error {
	err := e.fsm.Event(ctx, event)
	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return nil
	}
	return err
}
