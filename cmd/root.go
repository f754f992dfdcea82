// Package cmd is for command line interactions with the redmask application
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wangzhennan14/redmask/config"
	"github.com/wangzhennan14/redmask/internal/redmask"
)

var cfgFile string

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "redmask",
	Short: "Wrapper for Red - repeat identification and masking for genome annotation",
	Long: `Wrapper for Red - repeat identification and masking for genome annotation

redmask splits a genome assembly into training contigs (at least --training bp)
and scoring contigs, runs Red (REpeat Detector) on them and collects its output into:

  <output>.softmasked.fa   the genome with repeats in lowercase
  <output>.repeats.bed     one BED line per repeat (0-based, half-open)
  <output>.repeats.fasta   the sequence of each repeat

Red must be on PATH (or set with --red).`,
	Example: "  redmask -i genome.fa -o genome",
	Version: redmask.Version,
	Args:    cobra.NoArgs,
	RunE:    runMask,

	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "redmask: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := RootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "settings file (default is ./redmask.yaml or $HOME/.redmask/redmask.yaml)")
	flags.StringP("genome", "i", "", "genome assembly FASTA format")
	flags.StringP("output", "o", "", "output basename")
	flags.IntP("min", "m", config.DefaultMinKmer, "minimum number of observed k-mers")
	flags.IntP("training", "t", config.DefaultTrainingLength, "min length for training")
	flags.String("red", config.DefaultRed, "name or path of the Red executable")
	flags.String("tmpdir", config.DefaultTmpDir, "directory for the staging directories and Red's log")
	flags.Duration("timeout", 0, "stop Red after this long, eg 12h (0 for no limit)")
	flags.BoolP("verbose", "v", false, "log debug messages")

	// Bind the parameters to viper
	for _, name := range []string{"genome", "output", "min", "training", "red", "tmpdir", "timeout", "verbose"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	config.SetDefaults(viper.GetViper())
}

// initConfig reads in the settings file and REDMASK_* environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("redmask")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".redmask"))
		}
	}

	viper.SetEnvPrefix("redmask")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "redmask: failed to read settings: %v\n", err)
			os.Exit(1)
		}
	}
}

// runMask runs the full masking pipeline with the settings from viper.
func runMask(cmd *cobra.Command, args []string) error {
	conf, err := config.New(viper.GetViper())
	if err != nil {
		cmd.Help()
		return err
	}

	redmask.SetupLogging(cmd.ErrOrStderr(), conf.Verbose)
	_, err = redmask.Mask(cmd.Context(), conf, cmd.OutOrStdout())
	return err
}
