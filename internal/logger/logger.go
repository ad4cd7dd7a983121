package logger

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Logger writes one JSON object per line. Every entry carries the service
// name it was created with plus an action tag, so log streams from the
// order service, the processor pool and the subscriber stay distinguishable.
type Logger struct {
	service string
	mu      *sync.Mutex
	out     io.Writer
}

func New(service string) *Logger {
	return &Logger{service: service, mu: &sync.Mutex{}, out: os.Stdout}
}

// NewWriter is used by tests to capture output.
func NewWriter(service string, w io.Writer) *Logger {
	return &Logger{service: service, mu: &sync.Mutex{}, out: w}
}

// With returns a logger for a sub-component sharing the same sink.
func (l *Logger) With(service string) *Logger {
	return &Logger{service: service, mu: l.mu, out: l.out}
}

func (l *Logger) log(level, action string, fields map[string]any, err error) {
	entry := map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"level":     level,
		"service":   l.service,
		"action":    action,
		"hostname":  hostname(),
	}
	for k, v := range fields {
		entry[k] = v
	}
	if err != nil {
		entry["error"] = err.Error()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = json.NewEncoder(l.out).Encode(entry)
}

func (l *Logger) Info(action string, fields map[string]any)  { l.log("INFO", action, fields, nil) }
func (l *Logger) Debug(action string, fields map[string]any) { l.log("DEBUG", action, fields, nil) }
func (l *Logger) Error(action string, err error, fields map[string]any) {
	l.log("ERROR", action, fields, err)
}

func hostname() string { h, _ := os.Hostname(); return h }
