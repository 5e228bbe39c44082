package errors

import (
	"fmt"

	"github.com/kbukum/httpkit/logger"
)

// Reporter writes service errors to a logging sink. It keeps logging out of
// error construction.
type Reporter struct {
	sink logger.Sink
}

// NewReporter creates a Reporter. A nil sink uses the "errors" component logger.
func NewReporter(sink logger.Sink) *Reporter {
	if sink == nil {
		sink = logger.Get("errors")
	}
	return &Reporter{sink: sink}
}

// Report writes exactly one error record for e and returns e.
func (r *Reporter) Report(e *ServiceError) *ServiceError {
	if e == nil {
		return nil
	}
	r.sink.Record(fmt.Sprintf("service error: %s (code %d)", e.Message, e.Code), logger.SeverityError, e.Source, e)
	return e
}

// New builds a catalog-driven error and reports it.
func (r *Reporter) New(entry Entry) *ServiceError {
	return r.Report(FromEntry(entry))
}

// Newf builds a catalog-driven error with a formatted message and reports it.
func (r *Reporter) Newf(entry Entry, format string) *ServiceError {
	return r.Report(FromEntryf(entry, format))
}

// Rekey re-resolves e against target and reports the result. Nothing is
// reported when resolution fails.
func (r *Reporter) Rekey(e *ServiceError, target *Catalog) (*ServiceError, error) {
	out, err := e.Rekey(target)
	if err != nil {
		return out, err
	}
	return r.Report(out), nil
}
