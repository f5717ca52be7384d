package apperr

import (
	"errors"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"conflict", Conflict("category %q already exists", "gold"), KindConflict},
		{"not found", NotFound("loan not found"), KindNotFound},
		{"forbidden", Forbidden("admin only"), KindForbidden},
		{"invalid", Invalid("amount must be positive"), KindInvalidInput},
		{"unauthenticated", Unauthenticated("no session"), KindUnauthenticated},
		{"plain error is uncategorized", errors.New("db gone"), Kind("")},
		{"nil", nil, Kind("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Fatalf("KindOf = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessageFormatting(t *testing.T) {
	err := NotFound("category %d not found", 42)
	if err.Error() != "category 42 not found" {
		t.Fatalf("message = %q", err.Error())
	}
	if !IsKind(err, KindNotFound) {
		t.Fatal("IsKind(KindNotFound) = false")
	}
}
