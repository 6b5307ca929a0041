package net_test

import (
	"context"
	"testing"

	pnet "setlist/internal/platform/net"
)

func TestWithRequestAndAccessors(t *testing.T) {
	t.Parallel()

	t.Run("sets both ids", func(t *testing.T) {
		t.Parallel()
		ctx := pnet.WithRequest(context.Background(), "req-123", "u-abc")
		if got := pnet.RequestID(ctx); got != "req-123" {
			t.Fatalf("RequestID got %q want %q", got, "req-123")
		}
		if got := pnet.UserID(ctx); got != "u-abc" {
			t.Fatalf("UserID got %q want %q", got, "u-abc")
		}
	})

	t.Run("empty values are not stored", func(t *testing.T) {
		t.Parallel()
		ctx := pnet.WithRequest(context.Background(), "", "")
		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
		if got := pnet.UserID(ctx); got != "" {
			t.Fatalf("UserID got %q want empty", got)
		}
	})

	t.Run("user only", func(t *testing.T) {
		t.Parallel()
		ctx := pnet.WithUser(context.Background(), "u-only")
		if got := pnet.UserID(ctx); got != "u-only" {
			t.Fatalf("UserID got %q want %q", got, "u-only")
		}
		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
	})

	t.Run("base context stays clean", func(t *testing.T) {
		t.Parallel()
		base := context.Background()
		_ = pnet.WithRequest(base, "req-1", "u-1")
		if got := pnet.UserID(base); got != "" {
			t.Fatalf("UserID got %q want empty", got)
		}
	})
}
