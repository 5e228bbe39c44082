// Package errors provides the structured service error used across httpkit.
//
// A ServiceError carries a numeric code, a human-readable message and an
// optional source tag. Codes and messages can be derived from a Catalog of
// known error conditions. Construction never logs; a Reporter writes the
// error to a logger.Sink when the call site wants it recorded.
//
//	reporter := errors.NewReporter(logger.Get("orders"))
//	return reporter.New(errors.InvalidToken)
package errors
