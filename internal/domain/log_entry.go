package domain

import "time"

// LogLevel enumerates severities stored in the audit log.
type LogLevel string

const (
	LogLevelDebug LogLevel = "Debug"
	LogLevelInfo  LogLevel = "Info"
	LogLevelWarn  LogLevel = "Warn"
	LogLevelError LogLevel = "Error"

	// LogLevelAll is the listing sentinel that disables level filtering.
	LogLevelAll LogLevel = "All"
)

// IsValid reports whether the level is a known severity (the All sentinel is
// a filter value, not a severity).
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	}
	return false
}

// LogEntry is one audit log record.
type LogEntry struct {
	ID       int64
	Time     time.Time
	Level    LogLevel
	Actor    string
	RemoteIP string
	Message  string
}
