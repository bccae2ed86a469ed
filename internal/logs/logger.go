package logs

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
	"github.com/xyproto/env/v2"
)

// ParseLevel maps debug, info, warn and error to a slog level. Anything else
// gives the fallback.
func ParseLevel(s string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}

// LevelFromEnv reads JIT_LOG_LEVEL, defaulting to warn
func LevelFromEnv() slog.Level {
	return ParseLevel(env.Str("JIT_LOG_LEVEL", "warn"), slog.LevelWarn)
}

// New returns a logger writing text records to w. When the process runs with
// its output connected to the systemd journal (JOURNAL_STREAM is set), records
// are also sent to the journal.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	var handlers []slog.Handler

	terminalHandler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	handlers = append(handlers, terminalHandler)

	if env.Str("JOURNAL_STREAM") != "" {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = terminalHandler.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// toJournalKey converts an attribute key to the upper-case form journald
// requires for field names
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
	return str
}
