// Package errors provides the machine's structured error reporting: every
// fatal condition the CEK machine raises (stuck reduction, free identifier,
// fuel exhaustion) is surfaced as a *Report rather than a bare error string,
// so a caller driving many reductions can inspect the code and data
// programmatically instead of pattern-matching on message text.
package errors

import (
	"encoding/json"
	"errors"

	"github.com/pleiad/castcic/internal/schema"
)

// Report is the canonical structured error shape produced by this module.
type Report struct {
	Schema  string         `json:"schema"`         // always schema.ErrorV1
	Code    string         `json:"code"`           // MCH001, MCH002, MCH003
	Phase   string         `json:"phase"`          // always "machine"
	Message string         `json:"message"`        // human-readable summary
	Data    map[string]any `json:"data,omitempty"` // structured context (e.g. the stuck state)
	Fix     *Fix           `json:"fix,omitempty"`  // suggested remediation, if any
}

// Fix is a suggested remediation for a Report, with a confidence score.
type Fix struct {
	Suggestion string  `json:"suggestion"`
	Confidence float64 `json:"confidence"`
}

// ReportError wraps a Report as an error so it survives errors.As
// unwrapping through ordinary Go error-handling chains.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown machine error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport extracts a Report from an error chain, if present.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// Wrap wraps r as an error. Returns nil if r is nil.
func Wrap(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// New builds a machine-phase Report for the given code, message, and
// structured context data.
func New(code, message string, data map[string]any) *Report {
	return &Report{
		Schema:  schema.ErrorV1,
		Code:    code,
		Phase:   "machine",
		Message: message,
		Data:    data,
	}
}

// ToJSON renders the report deterministically (sorted keys).
func (r *Report) ToJSON(compact bool) (string, error) {
	data, err := schema.MarshalDeterministic(r)
	if err != nil {
		return "", err
	}
	formatted, err := schema.FormatJSON(data)
	if err != nil {
		return "", err
	}
	if compact {
		var buf []byte
		if buf, err = json.Marshal(json.RawMessage(formatted)); err != nil {
			return "", err
		}
		return string(buf), nil
	}
	return string(formatted), nil
}
