package telemetry

import (
	"fmt"
	"log/slog"
	"os"
)

// InitSlog installs the default text logger on stderr.
func InitSlog(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// SlogAPI implements API on top of the default slog logger.
type SlogAPI struct{}

// attrs turns params into "params.<i>" pairs after the given leading pairs.
func attrs(leading []any, params []any) []any {
	out := make([]any, 0, len(leading)+len(params)*2)
	out = append(out, leading...)
	for i, p := range params {
		if err, ok := p.(error); ok {
			out = append(out, fmt.Sprintf("params.%d", i), err.Error())
			continue
		}
		out = append(out, fmt.Sprintf("params.%d", i), p)
	}
	return out
}

func (SlogAPI) ReportBroken(id string, params ...any) {
	slog.Error("broken component", attrs([]any{"id", id}, params)...)
}

func (SlogAPI) ReportWarning(id string, params ...any) {
	slog.Warn(id, attrs(nil, params)...)
}

func (SlogAPI) ReportDebug(message string, params ...any) {
	slog.Debug(message, attrs(nil, params)...)
}

func (SlogAPI) ReportCount(id string, count int64) {
	slog.Info("count", "id", id, "n", count)
}
