package logger

import (
	"testing"
)

// TestLogger routes log output through the test log so messages show up
// with the failing test instead of on stderr
type TestLogger struct {
	t      *testing.T
	fields map[string]interface{}
}

// NewTestLogger creates a logger bound to the given test
func NewTestLogger(t *testing.T) Logger {
	return &TestLogger{t: t}
}

func (l *TestLogger) log(level, msg string) {
	if l.t == nil {
		return
	}
	if len(l.fields) > 0 {
		l.t.Logf("[%s] %s %v", level, msg, l.fields)
		return
	}
	l.t.Logf("[%s] %s", level, msg)
}

func (l *TestLogger) Debug(msg string) { l.log("DEBUG", msg) }
func (l *TestLogger) Info(msg string)  { l.log("INFO", msg) }
func (l *TestLogger) Warn(msg string)  { l.log("WARN", msg) }
func (l *TestLogger) Error(msg string) { l.log("ERROR", msg) }
func (l *TestLogger) Fatal(msg string) { l.log("FATAL", msg) }

// WithField returns a logger carrying the field on subsequent lines
func (l *TestLogger) WithField(key string, value interface{}) Logger {
	fields := make(map[string]interface{}, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value
	return &TestLogger{t: l.t, fields: fields}
}

// WithFields returns a logger carrying the fields on subsequent lines
func (l *TestLogger) WithFields(fields map[string]interface{}) Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &TestLogger{t: l.t, fields: merged}
}
