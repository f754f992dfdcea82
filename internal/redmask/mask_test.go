package redmask

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestGroupOffsets(t *testing.T) {
	type args struct {
		offsets []int
	}
	tests := []struct {
		name string
		args args
		want []Interval
	}{
		{
			"runs and a single offset",
			args{
				offsets: []int{0, 1, 2, 5, 6, 9},
			},
			[]Interval{{0, 2}, {5, 6}, {9, 9}},
		},
		{
			"no masked offsets",
			args{
				offsets: []int{},
			},
			nil,
		},
		{
			"fully masked",
			args{
				offsets: []int{0, 1, 2, 3},
			},
			[]Interval{{0, 3}},
		},
		{
			"gap of one unmasked residue",
			args{
				offsets: []int{3, 5},
			},
			[]Interval{{3, 3}, {5, 5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GroupOffsets(tt.args.offsets); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GroupOffsets() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntervals(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want []Interval
	}{
		{
			"unmasked",
			"ACGTNACGT",
			nil,
		},
		{
			"fully masked",
			"acgt",
			[]Interval{{0, 3}},
		},
		{
			"isolated masked residue",
			"ACgTA",
			[]Interval{{2, 2}},
		},
		{
			"masked at both ends",
			"aaCGTnn",
			[]Interval{{0, 1}, {5, 6}},
		},
		{
			"offsets from the grouping example",
			"acgTAcgTAa",
			[]Interval{{0, 2}, {5, 6}, {9, 9}},
		},
		{
			"empty sequence",
			"",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intervals(tt.seq)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Intervals() = %v, want %v", got, tt.want)
			}

			// same as grouping the masked offsets
			if grouped := GroupOffsets(MaskedOffsets(tt.seq)); !reflect.DeepEqual(got, grouped) {
				t.Errorf("Intervals() = %v, GroupOffsets(MaskedOffsets()) = %v", got, grouped)
			}

			// disjoint, non-adjacent and ascending
			for i := 1; i < len(got); i++ {
				if got[i].First <= got[i-1].Last+1 {
					t.Errorf("intervals %v and %v touch or overlap", got[i-1], got[i])
				}
			}
		})
	}
}

// the residues of an interval, run back through the extractor, should be a
// single interval covering all of them
func TestInterval_roundTrip(t *testing.T) {
	seq := "NNacgtACGTtttgCCaG" + strings.Repeat("c", 70) + "T"

	for _, in := range Intervals(seq) {
		sub := in.Slice(seq)
		if len(sub) != in.Len() {
			t.Errorf("slice of %v has %d residues, want %d", in, len(sub), in.Len())
		}

		got := Intervals(sub)
		want := []Interval{{0, in.Len() - 1}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Intervals(%q) = %v, want %v", sub, got, want)
		}
	}
}

func TestInterval_bedCoordinates(t *testing.T) {
	in := Interval{First: 5, Last: 6}

	if in.Start() != 5 || in.End() != 7 {
		t.Errorf("BED coordinates = %d-%d, want 5-7", in.Start(), in.End())
	}
	if in.Len() != in.End()-in.Start() {
		t.Errorf("Len() = %d, BED length = %d", in.Len(), in.End()-in.Start())
	}
	if got := in.Slice("ACGTAcgTA"); got != "cg" {
		t.Errorf("Slice() = %s, want cg", got)
	}
}

func Test_readMasked(t *testing.T) {
	dir := t.TempDir()

	unique := filepath.Join(dir, "unique.fa")
	if err := os.WriteFile(unique, []byte(">b\nACgt\n>a\nttAA\n"), 0644); err != nil {
		t.Fatal(err)
	}
	seqs, err := readMasked(unique)
	if err != nil {
		t.Fatal(err)
	}
	if len(seqs) != 2 || seqs[0].ID != "b" || seqs[1].Seq != "ttAA" {
		t.Errorf("readMasked() = %v", seqs)
	}

	dup := filepath.Join(dir, "dup.fa")
	if err := os.WriteFile(dup, []byte(">a\nACgt\n>a\nttAA\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := readMasked(dup); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("readMasked() error = %v, want %v", err, ErrDuplicateID)
	}
}
