package tree

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/legionfuzz/mcts/config"
	"github.com/pkg/errors"
)

// Logger writes the human-readable, ANSI-colored, tag-prefixed records
// described in spec.md section 6. It is not a stable interface; the tags
// and formatting may change between releases.
type Logger struct {
	l *log.Logger
	f *os.File
}

// OpenLogger opens the log sink named by the AFLNET_LEGION_LOG environment
// variable (spec.md section 4.1). Per spec.md section 7, logging failures
// are silent: if the variable is unset, records are discarded rather than
// failing Initialisation.
func OpenLogger() (*Logger, error) {
	path := os.Getenv(config.LogPathEnvVar)
	if path == "" {
		return &Logger{l: log.New(io.Discard, "", 0)}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &Logger{l: log.New(io.Discard, "", 0)}, errors.Wrapf(err, "tree: opening log sink %s", path)
	}
	return &Logger{l: log.New(f, "", log.Ltime|log.Lmicroseconds), f: f}, nil
}

// Close releases the underlying log file, if one was opened.
func (lg *Logger) Close() error {
	if lg.f == nil {
		return nil
	}
	return lg.f.Close()
}

// record writes one tagged, colorized record.
func (lg *Logger) record(tag string, colour Color, format string, args ...interface{}) {
	if lg == nil || lg.l == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if code := colour.ansiCode(); code != 0 {
		lg.l.Printf("[%s] \033[1;%dm%s\033[0m", tag, code, msg)
		return
	}
	lg.l.Printf("[%s] %s", tag, msg)
}

func (lg *Logger) selection(format string, args ...interface{}) {
	lg.record("SELECTION", White, format, args...)
}

func (lg *Logger) expansion(format string, args ...interface{}) {
	lg.record("MCTS-EXPANSION", Golden, format, args...)
}

func (lg *Logger) propagation(format string, args ...interface{}) {
	lg.record("PROPAGATION", White, format, args...)
}

func (lg *Logger) bestChild(format string, args ...interface{}) {
	lg.record("BEST_CHILD", White, format, args...)
}

func (lg *Logger) bestSeed(format string, args ...interface{}) {
	lg.record("BEST_SEED", Golden, format, args...)
}
