package password

import (
	"errors"
	"testing"
)

func TestHashAndCompare(t *testing.T) {
	h, err := Hash("pw")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if h == "pw" {
		t.Fatal("hash must not equal the plain password")
	}
	if err := Compare(h, "pw"); err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if err := Compare(h, "wrong"); !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected ErrMismatch, got %v", err)
	}
}
