package domain

import "math"

// markup is the flat service-fee multiplier applied on top of the base rate.
const markup = 1.10

// Quote computes the displayed rental total: (base rate × 1.10) × days × count.
// Days and count are clamped to at least 1 so a blank search form cannot
// produce a zero price. The result is rounded to cents.
func Quote(baseRatePerDay float64, days, count int) float64 {
	if days < 1 {
		days = 1
	}
	if count < 1 {
		count = 1
	}
	total := baseRatePerDay * markup * float64(days) * float64(count)
	return math.Round(total*100) / 100
}

// Commission returns the service-fee portion of a quoted total, shown next to
// the price so customers see the flat 10% surcharge separately.
func Commission(baseRatePerDay float64, days, count int) float64 {
	if days < 1 {
		days = 1
	}
	if count < 1 {
		count = 1
	}
	fee := baseRatePerDay * (markup - 1) * float64(days) * float64(count)
	return math.Round(fee*100) / 100
}
