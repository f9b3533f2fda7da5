package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics tracks operational counters on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	ToolCalls          *prometheus.CounterVec
	ToolDuration       *prometheus.HistogramVec
	LLMCalls           *prometheus.CounterVec
	TranscriptRequests *prometheus.CounterVec
}

// NewMetrics creates all counters and registers them.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		ToolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vidpost",
			Subsystem: "tool",
			Name:      "calls_total",
			Help:      "Tool invocations by outcome.",
		}, []string{"tool", "status"}),
		ToolDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vidpost",
			Subsystem: "tool",
			Name:      "duration_seconds",
			Help:      "Tool invocation duration in seconds.",
			Buckets:   []float64{0.05, 0.25, 1, 2, 5, 10, 30, 60},
		}, []string{"tool"}),
		LLMCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vidpost",
			Subsystem: "llm",
			Name:      "calls_total",
			Help:      "Completion requests by backend and outcome.",
		}, []string{"provider", "status"}),
		TranscriptRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vidpost",
			Subsystem: "transcript",
			Name:      "requests_total",
			Help:      "Transcript fetch attempts by path and outcome.",
		}, []string{"path", "status"}),
	}
	reg.MustRegister(m.ToolCalls, m.ToolDuration, m.LLMCalls, m.TranscriptRequests)
	return m
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveTool records one tool call.
func (m *Metrics) ObserveTool(tool string, ok bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	s := "ok"
	if !ok {
		s = "error"
	}
	m.ToolCalls.WithLabelValues(tool, s).Inc()
	m.ToolDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
}

// ObserveLLM records one completion request.
func (m *Metrics) ObserveLLM(provider string, err error) {
	if m == nil {
		return
	}
	m.LLMCalls.WithLabelValues(provider, status(err)).Inc()
}

// ObserveTranscript records one transcript attempt on the given path.
func (m *Metrics) ObserveTranscript(path string, err error) {
	if m == nil {
		return
	}
	m.TranscriptRequests.WithLabelValues(path, status(err)).Inc()
}

// Format renders counters as "name{labels} value" lines, sorted.
// Histograms are reported as their sample count and sum.
func (m *Metrics) Format() string {
	if m == nil {
		return ""
	}
	families, err := m.Registry.Gather()
	if err != nil {
		slog.Warn("metrics gather failed", slog.Any("error", err))
		return ""
	}
	var lines []string
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			labels := formatLabels(metric.GetLabel())
			switch {
			case metric.GetCounter() != nil:
				lines = append(lines, fmt.Sprintf("%s%s %g", f.GetName(), labels, metric.GetCounter().GetValue()))
			case metric.GetHistogram() != nil:
				h := metric.GetHistogram()
				lines = append(lines,
					fmt.Sprintf("%s_count%s %d", f.GetName(), labels, h.GetSampleCount()),
					fmt.Sprintf("%s_sum%s %g", f.GetName(), labels, h.GetSampleSum()),
				)
			}
		}
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n") + "\n"
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
