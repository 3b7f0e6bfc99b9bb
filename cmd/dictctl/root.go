package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joshuapare/dictkit/dict"
	"github.com/joshuapare/dictkit/internal/logging"
	"github.com/joshuapare/dictkit/internal/yamldict"
	"github.com/joshuapare/dictkit/pkg/types"
)

var (
	// Global flags
	verbosity string
	quiet     bool

	log *zap.Logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "dictctl",
	Short: "Inspect and compare typed parameter dictionaries",
	Long: `dictctl is a tool for working with YAML parameter files through the
dictionary layer. It renders contents and type labels, simulates a
configuration pass to audit which entries a given set of reads would
leave untouched, and compares two files structurally.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, err := types.ParseVerbosity(verbosity)
		if err != nil {
			return err
		}
		log, err = logging.New(logging.Config{Verbosity: v})
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().
		StringVar(&verbosity, "verbosity", "M_WARNING", "Log verbosity (M_ALL, M_DEBUG, M_INFO, M_WARNING, M_ERROR, M_QUIET)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// loadDict reads and decodes a YAML parameter file
func loadDict(path string) (*dict.Dict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	d, err := yamldict.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return d, nil
}

// resolveSubtree walks a dotted key path down nested dictionaries
func resolveSubtree(d *dict.Dict, keyPath []string) (*dict.Dict, error) {
	for _, k := range keyPath {
		sub, err := dict.Get[*dict.Dict](d, k)
		if err != nil {
			return nil, err
		}
		d = sub
	}
	return d, nil
}
