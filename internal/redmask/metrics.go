package redmask

import "sort"

// Lengths returns the length of every sequence, in assembly order.
func Lengths(seqs []*Sequence) []int {
	lengths := make([]int, len(seqs))
	for i, s := range seqs {
		lengths[i] = s.Len()
	}
	return lengths
}

// N50 returns the length L such that sequences of length >= L cover at
// least half of the assembly.
//
// This is the weighted median of the lengths (each length L counted L
// times), taking the upper of the two central values when the total is
// even. It's found by walking the lengths from longest to shortest rather
// than by building the weighted multiset, which would hold one entry per bp.
func N50(lengths []int) (int, error) {
	total := 0
	for _, l := range lengths {
		total += l
	}
	if total == 0 {
		return 0, ErrEmptyAssembly
	}

	sorted := append([]int(nil), lengths...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	covered := 0
	for _, l := range sorted {
		covered += l
		if 2*covered >= total {
			return l, nil
		}
	}

	return sorted[len(sorted)-1], nil
}
