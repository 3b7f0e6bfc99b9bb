package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joshuapare/dictkit/dict"
	"github.com/joshuapare/dictkit/pkg/types"
)

var auditRead []string

func init() {
	cmd := newAuditCmd()
	cmd.Flags().StringSliceVar(&auditRead, "read", nil, "Keys the simulated configuration pass reads")
	rootCmd.AddCommand(cmd)
}

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit <file>",
		Short: "Check a parameter file for entries a configuration pass would miss",
		Long: `The audit command simulates a configuration pass over a parameter file:
it clears the access flags, reads the keys named with --read, and then
reports every entry the pass left untouched. A clean run means the file
contains no unknown or misspelled keys relative to that read set.

Example:
  dictctl audit neuron.yaml --read tau_m,C_m,V_th`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(args)
		},
	}
	return cmd
}

func runAudit(args []string) error {
	d, err := loadDict(args[0])
	if err != nil {
		return err
	}

	d.InitAccessFlags(dict.ThreadLocal)
	for _, k := range auditRead {
		if _, err := d.At(k); err != nil {
			return err
		}
	}

	if err := d.AllEntriesAccessed(dict.ThreadLocal, "audit", args[0]); err != nil {
		var unread *types.UnaccessedError
		if errors.As(err, &unread) {
			log.Warn("unread entries", zap.Strings("keys", unread.Keys))
		}
		return err
	}

	printInfo("all %d entries read\n", d.Len())
	return nil
}
