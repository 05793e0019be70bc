package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
)

func TestFromPq_Classification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"unique violation", &pq.Error{Code: "23505"}, ErrConflict},
		{"check violation", &pq.Error{Code: "23514"}, ErrValidation},
		{"invalid text representation", &pq.Error{Code: "22P02"}, ErrValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mapped := FromPq(tc.err)
			if !errors.Is(mapped, tc.kind) {
				t.Fatalf("expected %v, got %v", tc.kind, mapped)
			}
		})
	}
}

func TestFromPq_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("failed to create user: %w", &pq.Error{Code: "23505"})

	mapped := FromPq(wrapped)
	if !errors.Is(mapped, ErrConflict) {
		t.Fatalf("expected ErrConflict for wrapped unique violation, got %v", mapped)
	}
}

func TestFromPq_Passthrough(t *testing.T) {
	// Unrecognized codes and non-pq errors surface unchanged, ending up as
	// a generic 500.
	unknown := &pq.Error{Code: "57014"}
	if mapped := FromPq(unknown); mapped != error(unknown) {
		t.Fatalf("expected unrecognized pq error to pass through, got %v", mapped)
	}

	plain := errors.New("connection reset")
	if mapped := FromPq(plain); mapped != plain {
		t.Fatalf("expected non-pq error to pass through, got %v", mapped)
	}

	if Status(plain) != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unclassified error, got %d", Status(plain))
	}
	if Message(plain) != "Internal Server Error" {
		t.Fatalf("expected generic message, got %q", Message(plain))
	}
}

func TestStatus_Taxonomy(t *testing.T) {
	tests := []struct {
		kind   error
		status int
	}{
		{ErrValidation, http.StatusBadRequest},
		{ErrConflict, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrTokenExpired, http.StatusUnauthorized},
		{ErrTokenInvalid, http.StatusUnauthorized},
		{ErrNotFound, http.StatusNotFound},
	}

	for _, tc := range tests {
		if got := Status(New(tc.kind, "x")); got != tc.status {
			t.Fatalf("Status(%v) = %d, want %d", tc.kind, got, tc.status)
		}
	}
}
