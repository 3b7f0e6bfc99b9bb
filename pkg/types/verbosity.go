package types

import (
	"fmt"
	"strings"
)

// Verbosity is the kernel message severity threshold. It is stored in status
// dictionaries like any other value, so it is part of the closed alternative
// set rather than a logging-layer detail.
//
// The numeric gaps are deliberate: they leave room for intermediate levels
// and match the thresholds used by the simulation kernel.
type Verbosity int

const (
	VerbosityAll        Verbosity = 0
	VerbosityDebug      Verbosity = 5
	VerbosityStatus     Verbosity = 7
	VerbosityInfo       Verbosity = 10
	VerbosityProgress   Verbosity = 15
	VerbosityDeprecated Verbosity = 18
	VerbosityWarning    Verbosity = 20
	VerbosityError      Verbosity = 30
	VerbosityFatal      Verbosity = 40
	VerbosityQuiet      Verbosity = 100
)

// String implements the Stringer interface for Verbosity.
func (v Verbosity) String() string {
	switch v {
	case VerbosityAll:
		return "M_ALL"
	case VerbosityDebug:
		return "M_DEBUG"
	case VerbosityStatus:
		return "M_STATUS"
	case VerbosityInfo:
		return "M_INFO"
	case VerbosityProgress:
		return "M_PROGRESS"
	case VerbosityDeprecated:
		return "M_DEPRECATED"
	case VerbosityWarning:
		return "M_WARNING"
	case VerbosityError:
		return "M_ERROR"
	case VerbosityFatal:
		return "M_FATAL"
	case VerbosityQuiet:
		return "M_QUIET"
	default:
		return fmt.Sprintf("Verbosity(%d)", int(v))
	}
}

// ParseVerbosity maps a level name (with or without the M_ prefix, any case)
// to a Verbosity. Unknown names return an error.
func ParseVerbosity(name string) (Verbosity, error) {
	for _, v := range []Verbosity{
		VerbosityAll, VerbosityDebug, VerbosityStatus, VerbosityInfo,
		VerbosityProgress, VerbosityDeprecated, VerbosityWarning,
		VerbosityError, VerbosityFatal, VerbosityQuiet,
	} {
		if strings.EqualFold(name, v.String()) || strings.EqualFold("M_"+name, v.String()) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown verbosity level %q", name)
}
