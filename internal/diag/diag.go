// Package diag carries structured diagnostics for mapping failures and the
// shared zerolog setup.
package diag

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

type Severity string

const (
	Info Severity = "info"
	Warn Severity = "warning"
	Err  Severity = "error"
)

// Diagnostic is a machine-readable finding about a pattern, detailed enough
// for a UI to explain what went wrong and what to do about it.
type Diagnostic struct {
	Severity       Severity       `json:"severity"`
	Code           string         `json:"code"`
	Summary        string         `json:"summary"`
	Detail         string         `json:"detail,omitempty"`
	LikelyCauses   []string       `json:"likely_causes,omitempty"`
	SuggestedFixes []string       `json:"suggested_fixes,omitempty"`
	Evidence       map[string]any `json:"evidence,omitempty"`
}

// TableInvalid describes a mapping table that failed validation.
func TableInvalid(detail string) Diagnostic {
	return Diagnostic{
		Severity: Warn,
		Code:     "mapping_table_invalid",
		Summary:  "stored mapping table does not match its geometry",
		Detail:   detail,
		LikelyCauses: []string{
			"layout parameters edited after the table was generated",
			"metadata file edited by hand",
		},
		SuggestedFixes: []string{
			"regenerate the mapping table from the layout parameters",
		},
	}
}

// GeometryRejected describes geometry that cannot produce a table; the
// pattern falls back to a rectangular layout.
func GeometryRejected(detail string) Diagnostic {
	return Diagnostic{
		Severity: Err,
		Code:     "geometry_rejected",
		Summary:  "layout parameters cannot produce a mapping table",
		Detail:   detail,
		LikelyCauses: []string{
			"non-positive led count or radius",
			"design grid too small for the projected shape",
		},
		SuggestedFixes: []string{
			"fix the layout parameters or enlarge the design grid",
			"pattern will export as a plain rectangular layout meanwhile",
		},
	}
}

// Log emits d through the given logger.
func (d Diagnostic) Log(log zerolog.Logger) {
	var ev *zerolog.Event
	switch d.Severity {
	case Err:
		ev = log.Error()
	case Warn:
		ev = log.Warn()
	default:
		ev = log.Info()
	}
	ev.Str("code", d.Code).Str("detail", d.Detail).Msg(d.Summary)
}

// NewLogger builds the process-wide console logger.
func NewLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
