package diag

// Sink collects diagnostics across a single elaboration run. Unlike a
// returned error, a Sink never aborts the caller: each rule appends at
// most one Report for the subterm it is elaborating and continues with
// its siblings, so one bad module yields every diagnostic at once.
type Sink struct {
	reports []*Report
}

// NewSink returns an empty diagnostic sink.
func NewSink() *Sink {
	return &Sink{}
}

// Add appends a report, in discovery order.
func (s *Sink) Add(r *Report) {
	if r == nil {
		return
	}
	s.reports = append(s.reports, r)
}

// Reports returns all collected reports in discovery order.
func (s *Sink) Reports() []*Report {
	return s.reports
}

// HasErrors reports whether any collected diagnostic has error severity.
func (s *Sink) HasErrors() bool {
	for _, r := range s.reports {
		if r.Severity == SeverityError {
			return true
		}
	}
	return false
}
