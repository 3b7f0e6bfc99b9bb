package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/dictkit/dict"
)

func init() {
	rootCmd.AddCommand(newDiffCmd())
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <file1> <file2>",
		Short: "Compare two parameter files structurally",
		Long: `The diff command compares two parameter files as dictionaries. The
comparison ignores key order and access flags; it looks only at keys and
stored values. The exit status is non-zero when the files differ.

Example:
  dictctl diff before.yaml after.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
	return cmd
}

func runDiff(args []string) error {
	a, err := loadDict(args[0])
	if err != nil {
		return err
	}
	b, err := loadDict(args[1])
	if err != nil {
		return err
	}

	eq, err := a.Equal(b)
	if err != nil {
		return err
	}
	if eq {
		printInfo("dictionaries are equal\n")
		return nil
	}

	for _, k := range a.Keys() {
		if !b.Known(k) {
			printInfo("- %s only in %s\n", k, args[0])
		}
	}
	for _, k := range b.Keys() {
		if !a.Known(k) {
			printInfo("+ %s only in %s\n", k, args[1])
		}
	}
	for _, k := range a.Keys() {
		if !b.Known(k) {
			continue
		}
		av, _ := a.Find(k)
		bv, _ := b.Find(k)
		same, err := dict.ValueEqual(av, bv)
		if err != nil {
			return err
		}
		if !same {
			printInfo("~ %s: %s != %s\n", k, av, bv)
		}
	}
	return fmt.Errorf("dictionaries differ")
}
