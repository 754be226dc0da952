package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	t.Run("allows up to the limit then blocks", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(3, time.Minute)

		for i := 0; i < 3; i++ {
			if !rl.allow("10.0.0.1") {
				t.Fatalf("attempt %d should be allowed", i+1)
			}
		}
		if rl.allow("10.0.0.1") {
			t.Error("fourth attempt should be blocked")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)

		if !rl.allow("10.0.0.1") {
			t.Fatal("first key should be allowed")
		}
		if !rl.allow("10.0.0.2") {
			t.Error("second key should be allowed")
		}
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

		if !rl.allow("10.0.0.1") {
			t.Fatal("first attempt should be allowed")
		}
		if rl.allow("10.0.0.1") {
			t.Fatal("second attempt should be blocked")
		}

		time.Sleep(20 * time.Millisecond)
		if !rl.allow("10.0.0.1") {
			t.Error("attempt after window expiry should be allowed")
		}
	})

	t.Run("reset clears all state", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)
		rl.allow("10.0.0.1")
		rl.Reset()
		if !rl.allow("10.0.0.1") {
			t.Error("attempt after reset should be allowed")
		}
	})
}
