package errors

import (
	"errors"
	"fmt"
	"testing"
)

var errSample = New(KindValidation, 40001, "file too large")

func TestError_IsSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("upload: %w", errSample.Wrap(errors.New("boom")))

	if !errors.Is(wrapped, errSample) {
		t.Fatal("wrapped sentinel should match with errors.Is")
	}
	if KindOf(wrapped) != KindValidation {
		t.Errorf("expected KindValidation, got %v", KindOf(wrapped))
	}
	if got := errSample.Wrap(errors.New("boom")).Error(); got != "file too large: boom" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestError_WithMessageKeepsIdentity(t *testing.T) {
	e := errSample.WithMessage("file is 60 MB")
	if !errors.Is(e, errSample) {
		t.Error("WithMessage copy should still match the sentinel")
	}
	if e.Message != "file is 60 MB" {
		t.Errorf("unexpected message %q", e.Message)
	}
}

func TestKindOf_PlainError(t *testing.T) {
	if KindOf(errors.New("db down")) != KindInternal {
		t.Error("plain errors should classify as internal")
	}
	if KindOf(nil) != KindInternal {
		t.Error("nil should classify as internal")
	}
}

func TestKind_String(t *testing.T) {
	if KindStorageFailure.String() != "storage_failure" {
		t.Errorf("unexpected %s", KindStorageFailure.String())
	}
}
