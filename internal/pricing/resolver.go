package pricing

import "print4me/internal/domain"

// ResolvePages returns how many of a file's total pages are billed under sel.
// A range selection is clamped into [1, total]; an empty range bills nothing.
func ResolvePages(total int, sel *domain.FileSelection) int {
	if total <= 0 {
		return 0
	}
	if !sel.IsRange() {
		return total
	}

	from := sel.From
	if from == 0 {
		from = 1
	}
	to := sel.To
	if to == 0 {
		to = total
	}
	from = clamp(from, 1, total)
	to = clamp(to, 1, total)

	return max(0, to-from+1)
}

// BilledPages applies the manual override, if any, before resolving. The
// second return value reports whether the override was used.
func BilledPages(detected int, sel *domain.FileSelection) (int, bool) {
	if sel != nil && sel.ManualPages > 0 {
		return sel.ManualPages, true
	}
	return ResolvePages(detected, sel), false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
