package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"blogsphere/internal/domain"
)

func TestValidationErrorIs(t *testing.T) {
	verr := domain.NewValidationError("title", "Title is required.")
	wrapped := fmt.Errorf("create post: %w", verr)

	if !errors.Is(wrapped, domain.ErrValidation) {
		t.Fatal("expected wrapped validation error to match ErrValidation")
	}
	if errors.Is(wrapped, domain.ErrNotFound) {
		t.Fatal("validation error must not match ErrNotFound")
	}

	var got *domain.ValidationError
	if !errors.As(wrapped, &got) {
		t.Fatal("expected errors.As to find *ValidationError")
	}
	if got.Message("title") != "Title is required." {
		t.Errorf("unexpected title message %q", got.Message("title"))
	}
	if got.Message("content") != "" {
		t.Errorf("expected no content message, got %q", got.Message("content"))
	}
}

func TestValidationErrorMessage(t *testing.T) {
	verr := &domain.ValidationError{}
	if !verr.Empty() {
		t.Fatal("expected empty validation error")
	}
	verr.Add("name", "Name is required.")
	verr.Add("email", "Email is required.")
	if verr.Empty() {
		t.Fatal("expected non-empty validation error")
	}
	want := "Name is required. Email is required."
	if verr.Error() != want {
		t.Errorf("Error() = %q; want %q", verr.Error(), want)
	}
}
