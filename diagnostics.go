package nlskit

import "log/slog"

// Stage identifies the resolution step a diagnostic originated from.
type Stage string

const (
	// StageManifest covers loading the language pack manifest.
	StageManifest Stage = "manifest"
	// StageLookup covers matching the requested locale against the manifest.
	StageLookup Stage = "lookup"
	// StageValidate covers checking that a matched pack entry is usable.
	StageValidate Stage = "validate"
	// StageCacheCheck covers determining the cache state for a pack and commit.
	StageCacheCheck Stage = "cache_check"
	// StageMaterialize covers building and persisting the translated messages.
	StageMaterialize Stage = "materialize"
)

// Kind classifies a diagnostic and decides how loudly it is logged.
type Kind int

const (
	// KindAbsent marks expected absence: no manifest installed, no pack
	// matching the locale. Logged at debug level.
	KindAbsent Kind = iota
	// KindMalformed marks unusable input: bad JSON, missing pack fields,
	// inconsistent catalogs. Logged as a warning.
	KindMalformed
	// KindIO marks filesystem failures reading or writing cache state.
	// Logged as an error.
	KindIO
	// KindCorruption marks an explicit corruption sentinel. Logged as a warning.
	KindCorruption
)

// String returns a short taxonomy label for logging.
func (k Kind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindIO:
		return "io"
	case KindCorruption:
		return "corruption"
	default:
		return "absent"
	}
}

func (k Kind) level() slog.Level {
	switch k {
	case KindMalformed, KindCorruption:
		return slog.LevelWarn
	case KindIO:
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

// Diagnostic explains why a resolution stage produced no value. Stages hand
// diagnostics up the pipeline instead of logging themselves; the resolution
// boundary logs each one exactly once and collapses to the default
// configuration.
type Diagnostic struct {
	Stage Stage
	Kind  Kind
	Err   error
}

// Error makes a Diagnostic usable with the standard error helpers.
func (d *Diagnostic) Error() string {
	if d.Err == nil {
		return string(d.Stage) + ": " + d.Kind.String()
	}
	return string(d.Stage) + ": " + d.Err.Error()
}

// Unwrap exposes the underlying cause for errors.Is checks.
func (d *Diagnostic) Unwrap() error {
	return d.Err
}

func absent(stage Stage, err error) *Diagnostic {
	return &Diagnostic{Stage: stage, Kind: KindAbsent, Err: err}
}

func malformed(stage Stage, err error) *Diagnostic {
	return &Diagnostic{Stage: stage, Kind: KindMalformed, Err: err}
}

func ioFailure(stage Stage, err error) *Diagnostic {
	return &Diagnostic{Stage: stage, Kind: KindIO, Err: err}
}

func corruption(stage Stage, err error) *Diagnostic {
	return &Diagnostic{Stage: stage, Kind: KindCorruption, Err: err}
}
