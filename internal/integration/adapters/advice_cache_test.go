package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestAdviceCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewAdviceCache(client, time.Hour)
	ctx := context.Background()

	t.Run("miss then hit", func(t *testing.T) {
		_, ok, err := cache.Get(ctx, "advice:u1:2024-06-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected a miss on an empty cache")
		}

		if err := cache.Set(ctx, "advice:u1:2024-06-15", "少点外卖。"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		val, ok, err := cache.Get(ctx, "advice:u1:2024-06-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || val != "少点外卖。" {
			t.Errorf("expected a hit with the stored advice, got ok=%v val=%q", ok, val)
		}
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		if err := cache.Set(ctx, "advice:u2:2024-06-15", "坐地铁。"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		mr.FastForward(2 * time.Hour)

		_, ok, err := cache.Get(ctx, "advice:u2:2024-06-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected the entry to have expired")
		}
	})
}
