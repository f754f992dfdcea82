package redmask

import "fmt"

// Interval is a maximal run of masked residues in one sequence. First and
// Last are both 0-based and inclusive.
type Interval struct {
	First int
	Last  int
}

// Len returns the number of residues in the interval.
func (i Interval) Len() int {
	return i.Last - i.First + 1
}

// Start is the 0-based BED start of the interval.
func (i Interval) Start() int {
	return i.First
}

// End is the BED end of the interval. BED is half-open, so it's one past Last.
func (i Interval) End() int {
	return i.Last + 1
}

// Slice returns the residues of seq covered by the interval, [Start, End).
func (i Interval) Slice(seq string) string {
	return seq[i.Start():i.End()]
}

// isMasked reports whether a residue is softmasked.
func isMasked(c byte) bool {
	return 'a' <= c && c <= 'z'
}

// MaskedOffsets returns the 0-based offsets of the lowercase residues in seq.
func MaskedOffsets(seq string) []int {
	var offsets []int
	for i := 0; i < len(seq); i++ {
		if isMasked(seq[i]) {
			offsets = append(offsets, i)
		}
	}
	return offsets
}

// GroupOffsets groups ascending offsets into intervals. A new interval
// starts at every offset that isn't one past the previous one.
func GroupOffsets(offsets []int) []Interval {
	var intervals []Interval
	for _, o := range offsets {
		if n := len(intervals); n > 0 && intervals[n-1].Last+1 == o {
			intervals[n-1].Last = o
			continue
		}
		intervals = append(intervals, Interval{First: o, Last: o})
	}
	return intervals
}

// Intervals returns the masked intervals of seq in ascending order. It's
// GroupOffsets(MaskedOffsets(seq)) without holding every offset in memory.
func Intervals(seq string) []Interval {
	var intervals []Interval
	for i := 0; i < len(seq); i++ {
		if !isMasked(seq[i]) {
			continue
		}

		first := i
		for i+1 < len(seq) && isMasked(seq[i+1]) {
			i++
		}
		intervals = append(intervals, Interval{First: first, Last: i})
	}
	return intervals
}

// readMasked reads the merged softmasked genome. Record IDs must be unique.
func readMasked(path string) ([]*Sequence, error) {
	seqs, err := read(path)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(seqs))
	for _, s := range seqs {
		if seen[s.ID] {
			return nil, fmt.Errorf("%w in %s: %s", ErrDuplicateID, path, s.ID)
		}
		seen[s.ID] = true
	}

	return seqs, nil
}
