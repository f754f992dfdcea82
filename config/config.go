// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultMinKmer is the minimum number of observed k-mers passed to Red
	DefaultMinKmer = 3

	// DefaultTrainingLength is the minimum contig length routed to the training set
	DefaultTrainingLength = 1000

	// DefaultRed is the name of the Red executable looked up on PATH
	DefaultRed = "Red"

	// DefaultTmpDir is where the run's staging directories are created
	DefaultTmpDir = "."
)

// Config is the root-level settings struct and is a mix
// of settings available in redmask.yaml, the environment and
// those available from the command line
type Config struct {
	// path to the genome assembly in FASTA format
	Genome string `mapstructure:"genome"`

	// basename of the output files (B.softmasked.fa, B.repeats.bed, B.repeats.fasta)
	Output string `mapstructure:"output"`

	// minimum number of observed k-mers, passed to Red as -min
	MinKmer int `mapstructure:"min"`

	// contigs at least this long go to the training set
	TrainingLength int `mapstructure:"training"`

	// name or path of the Red executable
	Red string `mapstructure:"red"`

	// parent directory of the run's staging directories and log
	TmpDir string `mapstructure:"tmpdir"`

	// upper bound on the Red run. Zero means no limit
	Timeout time.Duration `mapstructure:"timeout"`

	// whether to log debug messages
	Verbose bool `mapstructure:"verbose"`
}

// Default returns a Config with every optional setting at its default.
func Default() *Config {
	return &Config{
		MinKmer:        DefaultMinKmer,
		TrainingLength: DefaultTrainingLength,
		Red:            DefaultRed,
		TmpDir:         DefaultTmpDir,
	}
}

// SetDefaults registers the default settings with viper.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("min", DefaultMinKmer)
	v.SetDefault("training", DefaultTrainingLength)
	v.SetDefault("red", DefaultRed)
	v.SetDefault("tmpdir", DefaultTmpDir)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("verbose", false)
}

// New returns a new Config struct populated by Viper settings (from
// redmask.yaml, REDMASK_* env vars and/or command line arguments).
func New(v *viper.Viper) (*Config, error) {
	c := Default()
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}

	return c, c.Validate()
}

// Validate checks that the required settings are present and in range.
func (c *Config) Validate() error {
	var errs []error
	if c.Genome == "" {
		errs = append(errs, errors.New("no genome assembly set [-i]"))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("no output basename set [-o]"))
	}
	if c.MinKmer < 1 {
		errs = append(errs, fmt.Errorf("min k-mer count must be positive, got %d", c.MinKmer))
	}
	if c.TrainingLength < 0 {
		errs = append(errs, fmt.Errorf("training length must not be negative, got %d", c.TrainingLength))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %s", c.Timeout))
	}
	if c.Red == "" {
		errs = append(errs, errors.New("no Red executable set"))
	}

	return errors.Join(errs...)
}

// SoftmaskedPath is the merged, case-masked genome.
func (c *Config) SoftmaskedPath() string {
	return c.Output + ".softmasked.fa"
}

// BEDPath is the repeat interval output.
func (c *Config) BEDPath() string {
	return c.Output + ".repeats.bed"
}

// RepeatsPath is the FASTA of extracted repeat sequences.
func (c *Config) RepeatsPath() string {
	return c.Output + ".repeats.fasta"
}
