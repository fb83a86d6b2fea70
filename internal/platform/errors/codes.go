// Package errors provides coded errors with metadata for operator alerts.
package errors

// Code is a machine-readable error code. Codes double as message keys in the
// alerts i18n namespace.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Light source errors
	CodeLightSourcesUnavailable Code = "LIGHT_SOURCES_UNAVAILABLE"
	CodeLightSourcesInvalid     Code = "LIGHT_SOURCES_INVALID"
	CodeLightSourceNotFound     Code = "LIGHT_SOURCE_NOT_FOUND"

	// Sight errors
	CodeGenericLightMissing Code = "GENERIC_LIGHT_MISSING"

	// Identifier errors
	CodeIDGenerationFailed Code = "ID_GENERATION_FAILED"
)

// Severity describes how an operator should treat a coded error.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Severity maps a code to the level it is surfaced at. Conditions the
// registry recovers from by omitting a single entry are warnings; lost
// collections are errors.
func (c Code) Severity() Severity {
	switch c {
	case CodeGenericLightMissing, CodeLightSourceNotFound:
		return SeverityWarning
	default:
		return SeverityError
	}
}

// Codes lists every code in declaration order.
func Codes() []Code {
	return []Code{
		CodeUnknown,
		CodeLightSourcesUnavailable,
		CodeLightSourcesInvalid,
		CodeLightSourceNotFound,
		CodeGenericLightMissing,
		CodeIDGenerationFailed,
	}
}
