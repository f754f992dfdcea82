// Package redmask masks the repeats of a genome assembly with Red and turns
// Red's softmasked contigs into a masked genome, a BED file of the repeats
// and a FASTA of their sequences.
package redmask

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"

	"github.com/wangzhennan14/redmask/config"
)

// Version of redmask
const Version = "0.1.0"

// Mask is the command line entry point. It checks that Red is installed,
// then runs the pipeline in a fresh workspace under conf.TmpDir and prints
// the summary to out.
func Mask(ctx context.Context, conf *config.Config, out io.Writer) (Stats, error) {
	logger.Infof("Running redmask v%s (%s)", Version, runtime.Version())

	ws := NewWorkspace(conf.TmpDir, NewRunID())
	red, err := LookupRed(conf.Red, ws.Log)
	if err != nil {
		return Stats{}, err
	}
	logger.Debugf("Using Red at %s", red.Path)

	return Run(ctx, conf, ws, red, out)
}

// Run masks conf.Genome with det.
//
// The assembly is split into training and scoring contigs by length, Red
// (or det) masks them, and its .msk files are merged, in natural order,
// into the softmasked genome. The lowercase runs of the softmasked genome
// are then written out as BED intervals and repeat sequences.
//
// The staging directories of ws are removed before Run returns, whether it
// fails or not. The log is kept.
func Run(ctx context.Context, conf *config.Config, ws *Workspace, det Detector, out io.Writer) (stats Stats, err error) {
	seqs, err := read(conf.Genome)
	if err != nil {
		return stats, fmt.Errorf("failed to read genome assembly: %w", err)
	}
	if len(seqs) == 0 {
		return stats, fmt.Errorf("%w: no sequences in %s", ErrEmptyAssembly, conf.Genome)
	}

	n50, err := N50(Lengths(seqs))
	if err != nil {
		return stats, fmt.Errorf("%s: %w", conf.Genome, err)
	}
	logger.Info(commas.Sprintf("Loading assembly with N50 of %d bp", n50))

	if err = ws.Create(); err != nil {
		return stats, err
	}
	defer func() {
		if cerr := ws.Cleanup(); cerr != nil {
			logger.Warningf("failed to clean up staging directories: %v", cerr)
		}
	}()

	logger.Infof("Splitting genome assembly into training set (contigs >= %s bp)", commas.Sprintf("%d", conf.TrainingLength))
	counts, err := Split(seqs, conf.TrainingLength, ws)
	if err != nil {
		return stats, err
	}
	logger.Debugf("%d training and %d scoring contigs", counts.Training, counts.Scoring)

	logger.Info("Finding repeats with Red (REpeat Detector)")
	detectCtx := ctx
	if conf.Timeout > 0 {
		var cancel context.CancelFunc
		detectCtx, cancel = context.WithTimeout(ctx, conf.Timeout)
		defer cancel()
	}
	if err = det.Detect(detectCtx, ws.Train, ws.Score, ws.Output, conf.MinKmer); err != nil {
		return stats, fmt.Errorf("failed to find repeats, see %s: %w", ws.Log, err)
	}

	logger.Info("Collecting results from Red")
	softmasked := conf.SoftmaskedPath()
	merged, err := Merge(ws.Output, softmasked)
	if err != nil {
		return stats, err
	}
	if merged == 0 {
		logger.Warningf("Red wrote no %s files, see %s", maskExt, ws.Log)
	}
	logger.Debugf("merged %d masked contigs into %s", merged, softmasked)

	logger.Info("Summarizing results and converting to BED format")
	masked, err := readMasked(softmasked)
	if err != nil {
		return stats, err
	}

	if stats, err = writeReport(masked, conf.BEDPath(), conf.RepeatsPath()); err != nil {
		return stats, err
	}

	if abs, absErr := filepath.Abs(softmasked); absErr == nil {
		softmasked = abs
	}
	return stats, printSummary(out, softmasked, stats)
}
