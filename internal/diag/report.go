package diag

import (
	"encoding/json"
	"errors"

	"github.com/ddlc/ddlc/internal/srcspan"
)

// Severity classifies a Report's impact on the caller's exit status.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Report is the canonical structured diagnostic emitted by every stage of
// the compiler that can fail.
type Report struct {
	Schema    string         `json:"schema"` // always "ddlc.diag/v1"
	Code      string         `json:"code"`
	Phase     string         `json:"phase"`
	Severity  Severity       `json:"severity"`
	Message   string         `json:"message"`
	Span      *srcspan.Span  `json:"span,omitempty"`
	Secondary []srcspan.Span `json:"secondary,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// ReportError wraps a Report so it survives errors.As unwrapping.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown diagnostic"
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

// Wrap wraps a Report as an error.
func Wrap(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// ToJSON renders the report deterministically.
func (r *Report) ToJSON(compact bool) (string, error) {
	var (
		data []byte
		err  error
	)
	if compact {
		data, err = json.Marshal(r)
	} else {
		data, err = json.MarshalIndent(r, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// New builds a Report with severity error and the given code/phase/message.
func New(code, phase, message string, span *srcspan.Span) *Report {
	return &Report{
		Schema:   "ddlc.diag/v1",
		Code:     code,
		Phase:    phase,
		Severity: SeverityError,
		Message:  message,
		Span:     span,
	}
}

// WithData returns a copy of r with Data merged in.
func (r *Report) WithData(data map[string]any) *Report {
	cp := *r
	cp.Data = data
	return &cp
}
