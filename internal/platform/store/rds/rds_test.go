package rds

import (
	"context"
	"testing"
)

// TestOpen_EmptyAddr rejects a missing endpoint up front
func TestOpen_EmptyAddr(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Config{})
	if err == nil {
		t.Fatalf("Open expected error for empty addr")
	}
}

// TestOpen_Lazy builds a client without dialing
func TestOpen_Lazy(t *testing.T) {
	t.Parallel()

	r, err := Open(context.Background(), Config{Addr: "localhost:6379"})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if r == nil {
		t.Fatalf("Open returned nil client")
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}
