package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestError_Message(t *testing.T) {
	err := NotFound("vehicle not found")
	if err.Error() != "vehicle not found" {
		t.Errorf("expected 'vehicle not found', got %q", err.Error())
	}
	if err.Kind != ErrNotFound {
		t.Errorf("expected ErrNotFound kind, got %v", err.Kind)
	}
}

func TestError_WithUnderlying(t *testing.T) {
	underlying := fmt.Errorf("connection refused")
	err := Unavailable("failed to load vehicles", underlying)

	if err.Kind != ErrUnavailable {
		t.Errorf("expected ErrUnavailable kind, got %v", err.Kind)
	}
	expected := "failed to load vehicles: connection refused"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
	if !stderrors.Is(err, underlying) {
		t.Error("expected errors.Is to find the underlying error")
	}
}

func TestError_As(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", InvalidInput("bad tier value"))

	var appErr *Error
	if !stderrors.As(wrapped, &appErr) {
		t.Fatal("expected errors.As to unwrap *Error")
	}
	if appErr.Kind != ErrInvalidInput {
		t.Errorf("expected ErrInvalidInput kind, got %v", appErr.Kind)
	}
}

func TestFormattedConstructors(t *testing.T) {
	err := NotFoundf("vehicle %q not found", "Kirov")
	if err.Message != `vehicle "Kirov" not found` {
		t.Errorf("unexpected message %q", err.Message)
	}

	err = InvalidInputf("tier %d out of range", 11)
	if err.Message != "tier 11 out of range" {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	underlying := fmt.Errorf("boom")
	err := Wrap(underlying, ErrInternal, "something failed")
	if err.Kind != ErrInternal {
		t.Errorf("expected ErrInternal kind, got %v", err.Kind)
	}
	if stderrors.Unwrap(err) != underlying {
		t.Error("expected Unwrap to return the underlying error")
	}
}

func TestInternal(t *testing.T) {
	err := Internal(fmt.Errorf("db down"))
	if err.Kind != ErrInternal {
		t.Errorf("expected ErrInternal kind, got %v", err.Kind)
	}
	if err.Error() != "internal error: db down" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
