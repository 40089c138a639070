package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
)

// idNumberPattern matches CN ID numbers embedded in attribute values:
// 18 characters with an optional 'X' check symbol, or the legacy 15 digits.
// Word boundaries keep unrelated long digit runs (timestamps, counters)
// from being clipped mid-number.
var idNumberPattern = regexp.MustCompile(`\b\d{14}(?:\d[0-9Xx]{3}|\d)\b`)

// MaskNumber redacts the birth-date digits of a CN ID number, keeping the
// region code and the sequence/check tail readable for correlation.
func MaskNumber(number string) string {
	switch len(number) {
	case 18:
		return number[:6] + "********" + number[14:]
	case 15:
		return number[:6] + "******" + number[12:]
	default:
		return number
	}
}

// MaskHandler wraps an slog.Handler to mask ID numbers in log attributes.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because it integrates with standard slog APIs and works with any
// underlying handler (text, JSON, etc.).
type MaskHandler struct {
	// handler is the underlying slog handler that receives masked records.
	handler slog.Handler
}

// NewMaskHandler creates a new MaskHandler wrapping the given handler.
// If handler is nil, the returned MaskHandler uses slog.Default().Handler().
func NewMaskHandler(handler slog.Handler) *MaskHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &MaskHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *MaskHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it to the underlying
// handler. The message itself is masked too; numbers show up in messages
// when callers interpolate instead of using attributes.
func (h *MaskHandler) Handle(ctx context.Context, r slog.Record) error {
	masked := slog.NewRecord(r.Time, r.Level, maskString(r.Message), r.PC)
	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(h.maskAttr(a))
		return true
	})
	return h.handler.Handle(ctx, masked)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are masked before being added.
func (h *MaskHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	maskedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		maskedAttrs[i] = h.maskAttr(a)
	}
	return &MaskHandler{handler: h.handler.WithAttrs(maskedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *MaskHandler) WithGroup(name string) slog.Handler {
	return &MaskHandler{handler: h.handler.WithGroup(name)}
}

// maskAttr masks a single attribute, recursively handling groups.
func (h *MaskHandler) maskAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		maskedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			maskedAttrs[i] = h.maskAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(maskedAttrs...)}
	}

	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, maskString(a.Value.String()))
	}
	return a
}

// maskString masks every ID number occurring in s.
func maskString(s string) string {
	return idNumberPattern.ReplaceAllStringFunc(s, MaskNumber)
}

// NewMaskedLogger creates a slog.Logger that masks ID numbers in all output.
//
// Parameters:
//   - w: the io.Writer to write log output to (typically os.Stderr)
//   - verbose: if true, sets log level to Debug; otherwise Warn
func NewMaskedLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewMaskHandler(textHandler))
}
