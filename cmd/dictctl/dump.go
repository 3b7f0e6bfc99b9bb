package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var dumpKey string

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpKey, "key", "", "Dump only a nested dictionary (dot-separated path)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Human-readable dump of a parameter file",
		Long: `The dump command renders a parameter file as a dictionary, one entry
per line with its type label.

Example:
  dictctl dump neuron.yaml
  dictctl dump network.yaml --key conn_spec`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	d, err := loadDict(args[0])
	if err != nil {
		return err
	}
	if dumpKey != "" {
		d, err = resolveSubtree(d, strings.Split(dumpKey, "."))
		if err != nil {
			return err
		}
	}
	printInfo("%s\n", d)
	return nil
}
