package redmask

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// lineWidth is the number of residues per line in written FASTA files
const lineWidth = 60

var (
	// ErrEmptyAssembly is returned when an assembly has no sequence to work on
	ErrEmptyAssembly = errors.New("empty assembly")

	// ErrDuplicateID is returned when two records of one file share an ID
	ErrDuplicateID = errors.New("duplicate sequence id")
)

// Sequence is a single record of a FASTA file. Residue case is kept as read,
// so after Red runs, lowercase residues are the masked ones.
type Sequence struct {
	// ID is the first word of the header. ">chr1 some description" is "chr1"
	ID string

	// Desc is the rest of the header line
	Desc string

	// Seq is the residue string
	Seq string
}

// Len returns the number of residues in the sequence.
func (s *Sequence) Len() int {
	return len(s.Seq)
}

// read a FASTA file (by its path on local FS) to a slice of Sequences.
func read(path string) ([]*Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	seqs, err := readFasta(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return seqs, nil
}

// readFasta parses every record of a multi-FASTA stream.
func readFasta(r io.Reader) (seqs []*Sequence, err error) {
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)

		residues := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			residues[i] = byte(l)
		}

		seqs = append(seqs, &Sequence{
			ID:   s.ID,
			Desc: s.Desc,
			Seq:  string(residues),
		})
	}

	return seqs, sc.Error()
}

// writeFasta writes the sequences as FASTA records with lineWidth residues per line.
func writeFasta(w io.Writer, seqs ...*Sequence) error {
	fw := fasta.NewWriter(w, lineWidth)
	for _, s := range seqs {
		ls := linear.NewSeq(s.ID, alphabet.BytesToLetters([]byte(s.Seq)), alphabet.DNA)
		ls.Desc = s.Desc

		if _, err := fw.Write(ls); err != nil {
			return fmt.Errorf("failed to write sequence %s: %w", s.ID, err)
		}
	}

	return nil
}

// writeFastaFile creates (or truncates) path and writes the sequences to it.
func writeFastaFile(path string, seqs ...*Sequence) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return writeFasta(f, seqs...)
}
