// Package status implements the configuration discipline kernel consumers
// apply around dictionaries: all-or-nothing parameter updates against live
// state, and access-audited configuration passes.
//
// The core container reports each failure to its immediate caller and never
// rolls anything back; this package supplies the caller-side pattern that
// keeps live state valid. A consumer copies its parameter block, lets the
// setter read overrides from the dictionary into the copy, and commits only
// if every cast succeeded:
//
//	err := status.Apply(&neuron.params, d, func(p *Params, d *dict.Dict) error {
//	    if _, err := dict.UpdateValue(d, "tau_m", &p.TauM); err != nil {
//	        return err
//	    }
//	    _, err := dict.UpdateValue(d, "C_m", &p.CM)
//	    return err
//	})
package status

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/joshuapare/dictkit/dict"
)

// Apply runs set against a scratch copy of *live and commits the copy back
// only on full success. A failed cast therefore never leaves live state
// partially updated.
//
// The scratch copy is a plain struct copy. S must be a flat parameter block
// of value fields; a slice, map or pointer field would alias live state
// through the copy, and a setter writing through it before failing would
// break the all-or-nothing guarantee.
func Apply[S any](live *S, d *dict.Dict, set func(*S, *dict.Dict) error) error {
	scratch := *live
	if err := set(&scratch, d); err != nil {
		return err
	}
	*live = scratch
	return nil
}

// Configurator brackets configuration passes with the access audit.
type Configurator struct {
	// Guard certifies the serial phase for flag resets and audit checks.
	Guard dict.Guard

	// Log receives a debug line per pass and a warning when an audit fails.
	// Nil disables logging.
	Log *zap.Logger
}

// Configure runs one audited configuration pass over d: reset flags, run the
// setter, then require that every supplied key was consumed. where and what
// name the calling context and parameter group in diagnostics.
func (c *Configurator) Configure(d *dict.Dict, where, what string, set func(*dict.Dict) error) error {
	g := c.Guard
	if g == nil {
		g = dict.ThreadLocal
	}

	if c.Log != nil {
		c.Log.Debug("configuration pass",
			zap.String("where", where),
			zap.String("what", what),
			zap.Int("keys", d.Len()),
		)
	}

	d.InitAccessFlags(g)
	if err := set(d); err != nil {
		return fmt.Errorf("%s: %w", where, err)
	}
	if err := d.AllEntriesAccessed(g, where, what); err != nil {
		if c.Log != nil {
			c.Log.Warn("unread configuration keys", zap.String("where", where), zap.Error(err))
		}
		return err
	}
	return nil
}

// Collect builds a status dictionary by letting each provider write its
// current values into a fresh dictionary. Later providers overwrite earlier
// ones, so defaults go first.
func Collect(providers ...func(*dict.Dict)) *dict.Dict {
	d := dict.New()
	for _, fill := range providers {
		fill(d)
	}
	return d
}
