package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	nf := fmt.Errorf("lookup: %w", NotFound("Routine task"))
	if !errors.Is(nf, ErrNotFound) {
		t.Fatalf("wrapped NotFoundError should match ErrNotFound")
	}
	if nf.Error() != "lookup: Routine task not found" {
		t.Fatalf("unexpected message: %q", nf.Error())
	}

	inv := Invalid("day_name", "must be a weekday")
	if !errors.Is(inv, ErrInvalidArgument) {
		t.Fatalf("ValidationError should match ErrInvalidArgument")
	}
	var ve *ValidationError
	if !errors.As(inv, &ve) || ve.Fields["day_name"] == "" {
		t.Fatalf("expected field detail, got %+v", ve)
	}

	if !errors.Is(Conflict("dup"), ErrConflict) {
		t.Fatalf("ConflictError should match ErrConflict")
	}
	if errors.Is(NotFound("x"), ErrConflict) {
		t.Fatalf("NotFoundError must not match ErrConflict")
	}
}

func TestValidationErrorMessageIsSorted(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"b": "two", "a": "one"}}
	if got := err.Error(); got != "validation failed: a: one; b: two" {
		t.Fatalf("unexpected message: %q", got)
	}
}
