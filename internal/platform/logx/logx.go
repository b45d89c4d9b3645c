// internal/platform/logx/logx.go
package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	// LevelOff silences every message, errors included.
	LevelOff
)

// EnvLevel is the environment variable read by New.
const EnvLevel = "URLSUMMARY_LOG_LEVEL"

type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Err(err error, kv ...any)
	With(kv ...any) Logger
	SetLevel(lvl Level)
}

type simpleLogger struct {
	mu    *sync.Mutex
	lvl   *Level
	scope []string // fixed key=value pairs
	lg    *log.Logger
}

// New builds a logger writing to w whose level comes from URLSUMMARY_LOG_LEVEL.
func New(w io.Writer) Logger {
	return NewWriter(w, ParseLevel(os.Getenv(EnvLevel)))
}

// NewWriter creates a logger writing to w.
func NewWriter(w io.Writer, lvl Level) Logger {
	return &simpleLogger{
		mu:  &sync.Mutex{},
		lvl: &lvl,
		lg:  log.New(w, "", 0),
	}
}

// NewNop returns a logger that discards everything.
func NewNop() Logger {
	return NewWriter(io.Discard, LevelOff)
}

func (s *simpleLogger) With(kv ...any) Logger {
	return &simpleLogger{
		mu:    s.mu,
		lvl:   s.lvl,
		scope: append(append([]string{}, s.scope...), kvPairs(kv...)...),
		lg:    s.lg,
	}
}

// SetLevel changes the level of this logger and of every logger derived from it with With.
func (s *simpleLogger) SetLevel(lvl Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.lvl = lvl
}

func (s *simpleLogger) Debug(msg string, kv ...any) { s.log(LevelDebug, "DBG", msg, kv...) }
func (s *simpleLogger) Info(msg string, kv ...any)  { s.log(LevelInfo, "INF", msg, kv...) }
func (s *simpleLogger) Warn(msg string, kv ...any)  { s.log(LevelWarn, "WRN", msg, kv...) }
func (s *simpleLogger) Err(err error, kv ...any) {
	if err == nil {
		return
	}
	kv = append([]any{"error", err.Error()}, kv...)
	s.log(LevelError, "ERR", "", kv...)
}

func (s *simpleLogger) log(l Level, tag, msg string, kv ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l < *s.lvl {
		return
	}
	ts := time.Now().Format("15:04:05")
	fields := append([]string{}, s.scope...)
	fields = append(fields, kvPairs(kv...)...)
	line := fmt.Sprintf("%s %s %s", ts, tag, msg)
	if len(strings.TrimSpace(msg)) == 0 && len(fields) > 0 {
		// no message, only fields (Err): avoid the double space
		line = fmt.Sprintf("%s %s", ts, tag)
	}
	if len(fields) > 0 {
		line = fmt.Sprintf("%s %s", line, strings.Join(fields, " "))
	}
	s.lg.Println(line)
}

func kvPairs(kv ...any) []string {
	out := make([]string, 0, len(kv))
	for i := 0; i < len(kv); i += 2 {
		var k, v any
		k = kv[i]
		if i+1 < len(kv) {
			v = kv[i+1]
		} else {
			v = "(missing)"
		}
		out = append(out, fmt.Sprintf("%v=%v", k, v))
	}
	return out
}

// ParseLevel maps a level name to a Level. Unknown names map to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "dbg":
		return LevelDebug
	case "info", "inf", "":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "err", "error":
		return LevelError
	case "off", "none", "silent":
		return LevelOff
	default:
		return LevelInfo
	}
}
