package redmask

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrWorkspaceExists is returned if a staging directory of the run is already on disk
var ErrWorkspaceExists = errors.New("staging directory already exists")

// Workspace is the set of staging paths for a single run. It's made once,
// at startup, and passed to each step of the pipeline.
type Workspace struct {
	// ID of the run, used in every path below
	ID string

	// Train holds one FASTA per training contig
	Train string

	// Score holds one FASTA per scoring contig
	Score string

	// Output is where Red writes its .msk and score files
	Output string

	// Log captures Red's stdout and stderr. It is kept after Cleanup
	Log string
}

// NewRunID returns an ID unique to this process and invocation: the pid
// followed by 8 random hex characters.
func NewRunID() string {
	return fmt.Sprintf("%d-%s", os.Getpid(), strings.SplitN(uuid.NewString(), "-", 2)[0])
}

// NewWorkspace returns the paths of the run's staging area under root.
// Nothing is created until Create is called.
func NewWorkspace(root, id string) *Workspace {
	return &Workspace{
		ID:     id,
		Train:  filepath.Join(root, "redmask_train_"+id),
		Score:  filepath.Join(root, "redmask_contigs_"+id),
		Output: filepath.Join(root, "redmask_output_"+id),
		Log:    filepath.Join(root, "redmask_"+id+".log"),
	}
}

// dirs returns the staging directories.
func (w *Workspace) dirs() []string {
	return []string{w.Score, w.Output, w.Train}
}

// Create makes the staging directories and an empty log file. A stale log
// at the same path is replaced, but existing directories are an error.
func (w *Workspace) Create() error {
	for _, d := range w.dirs() {
		if _, err := os.Stat(d); err == nil {
			return fmt.Errorf("%w: %s", ErrWorkspaceExists, d)
		} else if !os.IsNotExist(err) {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(w.Log), 0755); err != nil {
		return fmt.Errorf("failed to create staging root: %w", err)
	}

	for i, d := range w.dirs() {
		if err := os.Mkdir(d, 0755); err != nil {
			for _, made := range w.dirs()[:i] {
				os.RemoveAll(made)
			}
			return fmt.Errorf("failed to create staging directory: %w", err)
		}
	}

	if err := os.Remove(w.Log); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove stale log %s: %w", w.Log, err)
	}

	f, err := os.Create(w.Log)
	if err != nil {
		return fmt.Errorf("failed to create log %s: %w", w.Log, err)
	}
	return f.Close()
}

// Cleanup removes the staging directories. It removes as much as it can
// and returns every error hit on the way.
func (w *Workspace) Cleanup() error {
	var errs []error
	for _, d := range w.dirs() {
		if err := os.RemoveAll(d); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
