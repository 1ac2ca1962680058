package llm

import (
	"context"
	"log/slog"
)

type LLMCallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Attempts  int
	Success   bool
	ErrorCode string
}

type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// LogObserver reports each call through slog.
type LogObserver struct {
	log *slog.Logger
}

func NewLogObserver(log *slog.Logger) *LogObserver {
	if log == nil {
		log = slog.Default()
	}
	return &LogObserver{log: log.With("component", "llm")}
}

func (o *LogObserver) OnCallComplete(e LLMCallEvent) {
	level := slog.LevelInfo
	if !e.Success {
		level = slog.LevelWarn
	}
	o.log.Log(context.Background(), level, "llm_call",
		"task", string(e.Task),
		"model", e.Model,
		"latency_ms", e.LatencyMs,
		"attempts", e.Attempts,
		"success", e.Success,
		"error_code", e.ErrorCode,
	)
}

type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}
