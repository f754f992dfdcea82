package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("genome", "genome.fa")
	v.Set("output", "out/sample")
	v.Set("timeout", "90m")

	c, err := New(v)
	if err != nil {
		t.Fatal(err)
	}

	want := Config{
		Genome:         "genome.fa",
		Output:         "out/sample",
		MinKmer:        3,
		TrainingLength: 1000,
		Red:            "Red",
		TmpDir:         ".",
		Timeout:        90 * time.Minute,
	}
	if *c != want {
		t.Errorf("New() = %+v, want %+v", *c, want)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		c := Default()
		c.Genome = "genome.fa"
		c.Output = "sample"
		return c
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			"defaults with required settings",
			func(c *Config) {},
			false,
		},
		{
			"missing genome",
			func(c *Config) { c.Genome = "" },
			true,
		},
		{
			"missing output",
			func(c *Config) { c.Output = "" },
			true,
		},
		{
			"zero min k-mer count",
			func(c *Config) { c.MinKmer = 0 },
			true,
		},
		{
			"negative training length",
			func(c *Config) { c.TrainingLength = -1 },
			true,
		},
		{
			"zero training length sends everything to training",
			func(c *Config) { c.TrainingLength = 0 },
			false,
		},
		{
			"negative timeout",
			func(c *Config) { c.Timeout = -time.Second },
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_outputPaths(t *testing.T) {
	c := &Config{Output: "run/fungus"}

	if got := c.SoftmaskedPath(); got != "run/fungus.softmasked.fa" {
		t.Errorf("SoftmaskedPath() = %s", got)
	}
	if got := c.BEDPath(); got != "run/fungus.repeats.bed" {
		t.Errorf("BEDPath() = %s", got)
	}
	if got := c.RepeatsPath(); got != "run/fungus.repeats.fasta" {
		t.Errorf("RepeatsPath() = %s", got)
	}
}
