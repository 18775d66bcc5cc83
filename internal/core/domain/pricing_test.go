package domain

import "testing"

func TestQuote(t *testing.T) {
	cases := []struct {
		name  string
		base  float64
		days  int
		count int
		want  float64
	}{
		{"single day single vehicle", 100, 1, 1, 110},
		{"multi day", 100, 3, 1, 330},
		{"multi vehicle", 100, 1, 2, 220},
		{"both", 50, 4, 3, 660},
		{"zero days clamps to one", 100, 0, 1, 110},
		{"negative count clamps to one", 100, 1, -5, 110},
		{"rounds to cents", 33.33, 1, 1, 36.66},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Quote(tc.base, tc.days, tc.count); got != tc.want {
				t.Fatalf("Quote(%v, %d, %d) = %v, want %v", tc.base, tc.days, tc.count, got, tc.want)
			}
		})
	}
}

func TestCommission(t *testing.T) {
	cases := []struct {
		name  string
		base  float64
		days  int
		count int
		want  float64
	}{
		{"ten percent of base", 100, 1, 1, 10},
		{"scales with duration", 100, 3, 2, 60},
		{"clamps blank form", 80, 0, 0, 8},
		{"rounds to cents", 33.33, 1, 1, 3.33},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Commission(tc.base, tc.days, tc.count); got != tc.want {
				t.Fatalf("Commission(%v, %d, %d) = %v, want %v", tc.base, tc.days, tc.count, got, tc.want)
			}
		})
	}
}

// The fee plus the undiscounted rental cost must reconstruct the quote, so
// the two figures shown side by side never disagree.
func TestQuoteAndCommissionAgree(t *testing.T) {
	base, days, count := 75.5, 5, 2
	quote := Quote(base, days, count)
	fee := Commission(base, days, count)
	raw := base * float64(days) * float64(count)

	if diff := quote - (raw + fee); diff > 0.01 || diff < -0.01 {
		t.Fatalf("quote %v != base cost %v + fee %v", quote, raw, fee)
	}
}
