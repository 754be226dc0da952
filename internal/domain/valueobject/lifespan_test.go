package valueobject

import "testing"

func TestDefaultLifespan(t *testing.T) {
	t.Run("known categories", func(t *testing.T) {
		cases := map[string]int{
			"手机": 36,
			"电脑": 54,
			"冰箱": 120,
		}
		for category, want := range cases {
			if got := DefaultLifespan(category); got != want {
				t.Errorf("DefaultLifespan(%s) = %d, want %d", category, got, want)
			}
		}
	})

	t.Run("unknown category defaults to 36 months", func(t *testing.T) {
		if got := DefaultLifespan("沙发"); got != 36 {
			t.Errorf("DefaultLifespan(沙发) = %d, want 36", got)
		}
	})
}
