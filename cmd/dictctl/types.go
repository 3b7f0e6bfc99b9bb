package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/dictkit/dict"
)

func init() {
	rootCmd.AddCommand(newTypesCmd())
}

func newTypesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types <file>",
		Short: "Show the type label of every entry",
		Long: `The types command lists each key of a parameter file together with the
type label its value was stored under. Useful when a configuration pass
rejects a cast and the stored alternative is not what you expected.

Example:
  dictctl types neuron.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes(args)
		},
	}
	return cmd
}

func runTypes(args []string) error {
	d, err := loadDict(args[0])
	if err != nil {
		return err
	}
	printInfo("%s", dict.DumpTypes(d))
	return nil
}
