// Package postserver exposes the video-to-post pipeline as MCP tools.
//
// Every tool runs through the same path: decode arguments, apply defaults,
// validate, check credentials, call the engine, and wrap the outcome in a
// toolutil.Envelope. Nothing escapes as a Go error or a panic.
package postserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go_vidpost/internal/engine"
	"github.com/anatolykoptev/go_vidpost/internal/engine/sources"
	"github.com/anatolykoptev/go_vidpost/internal/engine/writer"
	"github.com/anatolykoptev/go_vidpost/internal/keystore"
	"github.com/anatolykoptev/go_vidpost/internal/toolutil"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TranscriptFetcher resolves a video URL to its transcript.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, rawURL, fallbackKey string) (*sources.Transcript, error)
}

// Deps are the collaborators a Dispatcher owns. Store, Fetcher and Writer are required.
type Deps struct {
	Store   *keystore.Store
	Fetcher TranscriptFetcher
	Writer  *writer.Writer
	Metrics *engine.Metrics
	Tracer  trace.Tracer
}

// Dispatcher holds the tool registry and the state every tool shares.
type Dispatcher struct {
	store   *keystore.Store
	fetcher TranscriptFetcher
	writer  *writer.Writer
	metrics *engine.Metrics
	tracer  trace.Tracer
	tools   []Tool
}

// New builds a Dispatcher with every tool registered.
func New(deps Deps) *Dispatcher {
	d := &Dispatcher{
		store:   deps.Store,
		fetcher: deps.Fetcher,
		writer:  deps.Writer,
		metrics: deps.Metrics,
		tracer:  deps.Tracer,
	}
	if d.tracer == nil {
		d.tracer = noop.NewTracerProvider().Tracer("")
	}
	d.tools = []Tool{
		d.setCredentialsTool(),
		d.checkCredentialsTool(),
		d.extractTranscriptTool(),
		d.summarizeTool(),
		d.generatePostTool(),
		d.videoToPostTool(),
	}
	return d
}

// Tool is one named operation.
type Tool struct {
	Name        string
	Description string
	ReadOnly    bool

	call     func(ctx context.Context, raw json.RawMessage) (map[string]any, error)
	register func(server *mcp.Server)
}

// newTool binds a typed input to both entry points: raw JSON through Call and
// SDK-decoded input through the MCP handler. prepare applies defaults and validates.
func newTool[In any](d *Dispatcher, name, desc string, readOnly bool,
	prepare func(*In) error,
	run func(context.Context, In) (map[string]any, error),
) Tool {
	exec := func(ctx context.Context, in In) (map[string]any, error) {
		if prepare != nil {
			if err := prepare(&in); err != nil {
				return nil, err
			}
		}
		return run(ctx, in)
	}
	return Tool{
		Name:        name,
		Description: desc,
		ReadOnly:    readOnly,
		call: func(ctx context.Context, raw json.RawMessage) (map[string]any, error) {
			var in In
			if err := decodeArgs(raw, &in); err != nil {
				return nil, err
			}
			return exec(ctx, in)
		},
		register: func(server *mcp.Server) {
			mcp.AddTool(server, &mcp.Tool{
				Name:        name,
				Description: desc,
				Annotations: &mcp.ToolAnnotations{ReadOnlyHint: readOnly},
			}, func(ctx context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
				env := d.invoke(ctx, name, func(ctx context.Context) (map[string]any, error) {
					return exec(ctx, in)
				})
				return toolutil.Result(env), nil, nil
			})
		},
	}
}

func decodeArgs(raw json.RawMessage, dst any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return engine.Errorf(engine.KindValidation, "invalid arguments: %v", err)
	}
	return nil
}

// Tools lists the registered tools in registration order.
func (d *Dispatcher) Tools() []Tool {
	return d.tools
}

// Register adds every tool to the MCP server.
func (d *Dispatcher) Register(server *mcp.Server) {
	for _, t := range d.tools {
		t.register(server)
	}
}

// Call runs the named tool with raw JSON arguments.
func (d *Dispatcher) Call(ctx context.Context, name string, raw json.RawMessage) toolutil.Envelope {
	for _, t := range d.tools {
		if t.Name == name {
			return d.invoke(ctx, name, func(ctx context.Context) (map[string]any, error) {
				return t.call(ctx, raw)
			})
		}
	}
	slog.Warn("unknown tool", slog.String("tool", name))
	return toolutil.Fail(engine.Errorf(engine.KindValidation, "unknown tool: %s", name))
}

// invoke wraps one tool execution with tracing, metrics, logging and panic recovery.
func (d *Dispatcher) invoke(ctx context.Context, name string, fn func(context.Context) (map[string]any, error)) (env toolutil.Envelope) {
	reqID := uuid.NewString()
	ctx, span := d.tracer.Start(ctx, "tool."+name, trace.WithAttributes(
		attribute.String("tool.name", name),
		attribute.String("request.id", reqID),
	))
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("tool panic", slog.String("tool", name), slog.String("request_id", reqID), slog.Any("panic", r))
			env = toolutil.Fail(fmt.Errorf("internal error in %s: %v", name, r))
		}
		elapsed := time.Since(start)
		d.metrics.ObserveTool(name, env.Success, elapsed)
		if !env.Success {
			span.SetStatus(codes.Error, env.Error)
		}
		span.End()
		slog.Info("tool call",
			slog.String("tool", name),
			slog.String("request_id", reqID),
			slog.Bool("success", env.Success),
			slog.Duration("elapsed", elapsed))
	}()

	payload, err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		slog.Warn("tool failed",
			slog.String("tool", name),
			slog.String("request_id", reqID),
			slog.String("kind", string(engine.KindOf(err))),
			slog.Any("error", err))
		return toolutil.Fail(err)
	}
	return toolutil.OK(payload)
}

// completionKey is the credential gate for tools that call the completion provider.
func (d *Dispatcher) completionKey() (string, error) {
	key, ok := d.store.Get(keystore.Completion)
	if !ok {
		return "", engine.Errorf(engine.KindMissingCredential,
			"%s credential not set: use the set_credentials tool first", keystore.Completion)
	}
	return key, nil
}

func (d *Dispatcher) transcriptKey() string {
	key, _ := d.store.Get(keystore.Transcript)
	return key
}
