package repositories

import "testing"

func TestOrderAfter(t *testing.T) {
	if got := orderAfter(0, false); got != 1 {
		t.Fatalf("first document in an empty collection: got order %d, want 1", got)
	}
	if got := orderAfter(1, true); got != 2 {
		t.Fatalf("after max order 1: got %d, want 2", got)
	}
	if got := orderAfter(7, true); got != 8 {
		t.Fatalf("after max order 7: got %d, want 8", got)
	}
}

func TestParseID(t *testing.T) {
	if _, err := parseID("not-an-object-id"); err != ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := parseID("65f000000000000000000001"); err != nil {
		t.Fatalf("valid hex id rejected: %v", err)
	}
}
