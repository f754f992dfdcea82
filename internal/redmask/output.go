package redmask

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
)

// Repeat is a single masked interval of the genome, as written to the
// BED and repeat FASTA outputs.
type Repeat struct {
	// N is the 1-based number of the repeat across the whole genome
	N int

	// SeqID is the ID of the sequence the repeat is in
	SeqID string

	// Interval of the repeat in the sequence
	Interval

	// Seq is the repeat's sequence, case preserved
	Seq string
}

// Label names the repeat in both outputs, eg "Repeat_12".
func (r Repeat) Label() string {
	return "Repeat_" + strconv.Itoa(r.N)
}

// Stats summarizes the masking of a genome.
type Stats struct {
	// Sequences is the number of sequences in the softmasked genome
	Sequences int

	// MaskedSequences is the number of sequences with at least one masked residue
	MaskedSequences int

	// Repeats is the number of masked intervals
	Repeats int

	// GenomeLength is the sum of the sequence lengths
	GenomeLength int

	// MaskedLength is the number of masked residues
	MaskedLength int
}

// Fraction is the masked fraction of the genome.
func (s Stats) Fraction() float64 {
	if s.GenomeLength == 0 {
		return 0
	}
	return float64(s.MaskedLength) / float64(s.GenomeLength)
}

// Percent is the masked percentage of the genome rounded to two decimals.
func (s Stats) Percent() string {
	return fmt.Sprintf("%.2f", s.Fraction()*100)
}

// repeats walks the sequences in natural order of their IDs and calls emit
// on each of their masked intervals. Repeats are numbered from 1 without gaps.
func repeats(seqs []*Sequence, emit func(Repeat) error) (stats Stats, err error) {
	byID := make(map[string]*Sequence, len(seqs))
	ids := make([]string, 0, len(seqs))
	for _, s := range seqs {
		byID[s.ID] = s
		ids = append(ids, s.ID)
	}
	sortNatural(ids)

	counter := 1
	for _, id := range ids {
		s := byID[id]
		stats.Sequences++
		stats.GenomeLength += s.Len()

		intervals := Intervals(s.Seq)
		if len(intervals) > 0 {
			stats.MaskedSequences++
		}

		for _, in := range intervals {
			r := Repeat{
				N:        counter,
				SeqID:    id,
				Interval: in,
				Seq:      in.Slice(s.Seq),
			}
			if err := emit(r); err != nil {
				return stats, err
			}

			stats.Repeats++
			stats.MaskedLength += in.Len()
			counter++
		}
	}

	return stats, nil
}

// writeBED writes a repeat as a BED line: seq id, start, end and label.
func writeBED(w io.Writer, r Repeat) error {
	_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", r.SeqID, r.Start(), r.End(), r.Label())
	return err
}

// writeRepeat writes a repeat as an unwrapped FASTA record, ">Repeat_N seqID".
func writeRepeat(w io.Writer, r Repeat) error {
	_, err := fmt.Fprintf(w, ">%s %s\n%s\n", r.Label(), r.SeqID, r.Seq)
	return err
}

// writeReport writes every masked interval of seqs to the BED file and the
// repeat FASTA, and returns the masking stats.
func writeReport(seqs []*Sequence, bedPath, fastaPath string) (stats Stats, err error) {
	bedFile, err := os.Create(bedPath)
	if err != nil {
		return stats, fmt.Errorf("failed to create BED output: %w", err)
	}
	defer bedFile.Close()

	faFile, err := os.Create(fastaPath)
	if err != nil {
		return stats, fmt.Errorf("failed to create repeat FASTA output: %w", err)
	}
	defer faFile.Close()

	bed := bufio.NewWriter(bedFile)
	fa := bufio.NewWriter(faFile)

	stats, err = repeats(seqs, func(r Repeat) error {
		if err := writeBED(bed, r); err != nil {
			return err
		}
		return writeRepeat(fa, r)
	})
	if err != nil {
		return stats, fmt.Errorf("failed to write repeats: %w", err)
	}

	if err := bed.Flush(); err != nil {
		return stats, fmt.Errorf("failed to write %s: %w", bedPath, err)
	}
	if err := fa.Flush(); err != nil {
		return stats, fmt.Errorf("failed to write %s: %w", fastaPath, err)
	}
	if err := bedFile.Close(); err != nil {
		return stats, err
	}
	return stats, faFile.Close()
}

// printSummary writes the masking stats as a table.
func printSummary(w io.Writer, softmasked string, stats Stats) error {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "\nmasked genome:\t%s\n", softmasked)
	commas.Fprintf(tw, "num scaffolds:\t%d\n", stats.Sequences)
	commas.Fprintf(tw, "masked scaffolds:\t%d\n", stats.MaskedSequences)
	commas.Fprintf(tw, "assembly size:\t%d bp\n", stats.GenomeLength)
	commas.Fprintf(tw, "masked repeats:\t%d bp (%s%%)\n", stats.MaskedLength, stats.Percent())
	commas.Fprintf(tw, "repeat intervals:\t%d\n\n", stats.Repeats)
	return tw.Flush()
}
