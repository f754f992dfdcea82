package redmask

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// ErrDetectorNotFound is returned when the Red executable isn't on PATH
var ErrDetectorNotFound = errors.New("repeat detector not found")

// Detector finds repeats in the contigs of trainDir and scoreDir and writes
// one softmasked <id>.msk file per contig to outDir.
type Detector interface {
	Detect(ctx context.Context, trainDir, scoreDir, outDir string, minKmer int) error
}

// Red runs the external Red (REpeat Detector) binary.
type Red struct {
	// Path to the Red executable
	Path string

	// Log is the file Red's stdout and stderr are appended to
	Log string
}

// LookupRed finds the Red executable, by name or path, and returns a Red
// that logs to logPath.
func LookupRed(name, logPath string) (*Red, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not properly installed, install and re-run: %v", ErrDetectorNotFound, name, err)
	}

	return &Red{Path: path, Log: logPath}, nil
}

// args returns the command line flags for Red. Scores and masks are both
// written to outDir.
func (r *Red) args(trainDir, scoreDir, outDir string, minKmer int) []string {
	return []string{
		"-gnm", trainDir,
		"-dir", scoreDir,
		"-sco", outDir,
		"-min", strconv.Itoa(minKmer),
		"-msk", outDir,
	}
}

// Detect runs Red and waits for it to exit. Red is killed if ctx is done first.
func (r *Red) Detect(ctx context.Context, trainDir, scoreDir, outDir string, minKmer int) error {
	log, err := os.OpenFile(r.Log, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open Red log: %w", err)
	}
	defer log.Close()

	redCmd := exec.CommandContext(ctx, r.Path, r.args(trainDir, scoreDir, outDir, minKmer)...)
	redCmd.Stdout = log
	redCmd.Stderr = log

	if err := redCmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("Red was stopped: %w", ctxErr)
		}
		return fmt.Errorf("failed to execute Red: %w", err)
	}

	return nil
}
