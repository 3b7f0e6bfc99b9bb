package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/dictkit/internal/yamldict"
)

var exportOutput string

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Re-emit a parameter file in canonical form",
		Long: `The export command round-trips a parameter file through the dictionary
layer and writes it back out with sorted keys and inferred types made
explicit. Two files that dump as equal export to identical output, which
makes the result suitable for text diffing.

Example:
  dictctl export neuron.yaml
  dictctl export neuron.yaml -o canonical.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	d, err := loadDict(args[0])
	if err != nil {
		return err
	}
	out, err := yamldict.Encode(d)
	if err != nil {
		return err
	}
	if exportOutput == "" {
		printInfo("%s", out)
		return nil
	}
	if err := os.WriteFile(exportOutput, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	return nil
}
