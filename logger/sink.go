package logger

import "github.com/rs/zerolog"

// Severity classifies a record written to a Sink.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

func (s Severity) level() zerolog.Level {
	switch s {
	case SeverityDebug:
		return zerolog.DebugLevel
	case SeverityInfo:
		return zerolog.InfoLevel
	case SeverityWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// Sink receives error occurrences. It is the only logging surface the errors
// package depends on.
type Sink interface {
	Record(msg string, severity Severity, source string, err error)
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(msg string, severity Severity, source string, err error)

// Record calls f.
func (f SinkFunc) Record(msg string, severity Severity, source string, err error) {
	f(msg, severity, source, err)
}

// Record writes one log event at the given severity.
func (l *Logger) Record(msg string, severity Severity, source string, err error) {
	event := l.logger.WithLevel(severity.level())
	if source != "" {
		event = event.Str(FieldSource, source)
	}
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}

var _ Sink = (*Logger)(nil)
