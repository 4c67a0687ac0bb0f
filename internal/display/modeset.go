package display

import "sort"

// rateTolerance is the maximum difference (Hz) at which two reported refresh
// rates are treated as the same mode.
const rateTolerance = 0.01

// ModeSet maps resolution labels ("1920x1080") to the refresh rates available
// at that resolution. Resolution keys are held in lexicographic order so that
// positional indices into the set are stable across lookups; rate lists are
// sorted descending and deduplicated within rateTolerance.
type ModeSet struct {
	resolutions []string
	rates       map[string][]float64
}

// NewModeSet builds a ModeSet from raw per-resolution rate lists.
// Rates are sorted descending and near-duplicates collapsed, keeping the
// first representative. Resolutions with no rates are dropped.
func NewModeSet(raw map[string][]float64) ModeSet {
	set := ModeSet{rates: make(map[string][]float64, len(raw))}

	for res, rates := range raw {
		if len(rates) == 0 {
			continue
		}

		sorted := make([]float64, len(rates))
		copy(sorted, rates)
		sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

		deduped := sorted[:1]
		for _, r := range sorted[1:] {
			if deduped[len(deduped)-1]-r < rateTolerance {
				continue
			}
			deduped = append(deduped, r)
		}

		set.resolutions = append(set.resolutions, res)
		set.rates[res] = deduped
	}

	sort.Strings(set.resolutions)
	return set
}

// Len returns the number of resolutions in the set.
func (s ModeSet) Len() int {
	return len(s.resolutions)
}

// Empty reports whether the set has no resolutions at all.
func (s ModeSet) Empty() bool {
	return len(s.resolutions) == 0
}

// Resolutions returns the resolution labels in their stable lexicographic order.
func (s ModeSet) Resolutions() []string {
	return s.resolutions
}

// Resolution returns the resolution label at position i, or "" when i is out
// of range.
func (s ModeSet) Resolution(i int) string {
	if i < 0 || i >= len(s.resolutions) {
		return ""
	}
	return s.resolutions[i]
}

// Rates returns the descending refresh-rate list for a resolution label.
// Unknown labels yield nil.
func (s ModeSet) Rates(resolution string) []float64 {
	return s.rates[resolution]
}
