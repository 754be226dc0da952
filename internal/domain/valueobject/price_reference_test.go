package valueobject

import "testing"

func TestPriceBandFor(t *testing.T) {
	t.Run("known category returns its band", func(t *testing.T) {
		band := PriceBandFor("餐饮")
		if band.Min != 15 || band.Max != 50 || band.Avg != 30 {
			t.Errorf("unexpected band for 餐饮: %+v", band)
		}
	})

	t.Run("unknown category falls back to universal band", func(t *testing.T) {
		band := PriceBandFor("unknown_xyz")
		if band.Min != 0 || band.Max != 1000 || band.Avg != 100 {
			t.Errorf("unexpected fallback band: %+v", band)
		}
	})
}

func TestPriceBandContains(t *testing.T) {
	band := PriceBand{Min: 15, Max: 50, Avg: 30}

	cases := []struct {
		name   string
		amount float64
		want   bool
	}{
		{"below min", 10, false},
		{"at min", 15, true},
		{"at average", 30, true},
		{"at max", 50, true},
		{"above max", 51, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := band.Contains(tc.amount); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.amount, got, tc.want)
			}
		})
	}
}
