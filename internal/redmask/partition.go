package redmask

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Partition is the set of contigs a sequence is handed to Red in.
type Partition int

const (
	// Scoring sequences are only scanned (Red -dir)
	Scoring Partition = iota

	// Training sequences are used to train Red (Red -gnm)
	Training
)

// String returns the name of the partition.
func (p Partition) String() string {
	if p == Training {
		return "training"
	}
	return "scoring"
}

// PartitionCounts is the number of sequences written to each partition.
type PartitionCounts struct {
	Training int
	Scoring  int
}

// Classify assigns a sequence to the training set if it is at least
// minLength long, and to the scoring set otherwise.
func Classify(s *Sequence, minLength int) Partition {
	if s.Len() >= minLength {
		return Training
	}
	return Scoring
}

// Split writes every sequence to its own FASTA file, <id>.fa, in either
// the training or the scoring directory of the workspace.
func Split(seqs []*Sequence, minLength int, ws *Workspace) (counts PartitionCounts, err error) {
	seen := make(map[string]bool, len(seqs))

	for _, s := range seqs {
		if err := checkID(s.ID); err != nil {
			return counts, err
		}
		if seen[s.ID] {
			return counts, fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
		seen[s.ID] = true

		p := Classify(s, minLength)
		dir := ws.Score
		if p == Training {
			dir = ws.Train
		}

		if err := writeFastaFile(filepath.Join(dir, s.ID+".fa"), s); err != nil {
			return counts, fmt.Errorf("failed to write %s to the %s set: %w", s.ID, p, err)
		}

		if p == Training {
			counts.Training++
		} else {
			counts.Scoring++
		}
	}

	return counts, nil
}

// checkID rejects IDs that can't be used as a file name in a staging directory.
func checkID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("sequence id %q can't be used as a file name", id)
	}
	return nil
}
