package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

const (
	initialBufferCapacity = 256
	timestampLayout       = "2006-01-02T15:04:05-07:00"
)

// CustomHandler writes one line per record:
// "2006-01-02T15:04:05-07:00 LEVEL msg key=value".
// Handlers derived through WithAttrs/WithGroup share the writer and its lock.
type CustomHandler struct {
	writer io.Writer
	mu     *sync.Mutex
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

// NewWriterHandler creates a new handler that writes to the specified writer.
func NewWriterHandler(w io.Writer, level Level) *CustomHandler {
	return &CustomHandler{
		writer: w,
		mu:     &sync.Mutex{},
		level:  level.ToSlogLevel(),
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, initialBufferCapacity)

	buf = append(buf, r.Time.Local().Format(timestampLayout)...)
	buf = append(buf, ' ')
	buf = append(buf, r.Level.String()...)
	buf = append(buf, ' ')
	buf = append(buf, r.Message...)

	for _, a := range h.attrs {
		buf = h.appendAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		buf = h.appendAttr(buf, a)

		return true
	})

	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.writer.Write(buf)

	return err
}

func (h *CustomHandler) appendAttr(buf []byte, a slog.Attr) []byte {
	if a.Equal(slog.Attr{}) {
		return buf
	}

	buf = append(buf, ' ')

	if len(h.groups) > 0 {
		buf = append(buf, strings.Join(h.groups, ".")...)
		buf = append(buf, '.')
	}

	buf = append(buf, a.Key...)
	buf = append(buf, '=')

	val := a.Value.Resolve().String()
	if strings.ContainsAny(val, " \t\n\r\"") {
		return append(buf, quoteValue(val)...)
	}

	return append(buf, val...)
}

var valueEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func quoteValue(s string) string {
	return `"` + valueEscaper.Replace(s) + `"`
}

// WithAttrs returns a new handler with the given attributes added.
func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append(make([]slog.Attr, 0, len(h.attrs)+len(attrs)), h.attrs...), attrs...)

	return &clone
}

// WithGroup returns a new handler with the given group name added.
func (h *CustomHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.groups = append(append(make([]string, 0, len(h.groups)+1), h.groups...), name)

	return &clone
}

// writeRaw writes s without formatting; used for session headers.
func (h *CustomHandler) writeRaw(s string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, _ = io.WriteString(h.writer, s)
}

// Close closes the underlying writer if it implements io.Closer.
func (h *CustomHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if closer, ok := h.writer.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}
