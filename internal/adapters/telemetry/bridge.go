package telemetry

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/props/internal/core/domain"
	"go.trai.ch/props/internal/core/ports"
)

// exceptionEvent is the event name OpenTelemetry uses for recorded errors.
const exceptionEvent = "exception"

var _ sdktrace.SpanProcessor = (*VertexBridge)(nil)

// VertexBridge implements sdktrace.SpanProcessor to mirror spans as progress vertices.
type VertexBridge struct {
	telemetry ports.Telemetry

	mu       sync.Mutex
	vertices map[trace.SpanID]ports.Vertex
}

// NewVertexBridge returns a new VertexBridge recording onto telemetry.
func NewVertexBridge(telemetry ports.Telemetry) *VertexBridge {
	return &VertexBridge{
		telemetry: telemetry,
		vertices:  make(map[trace.SpanID]ports.Vertex),
	}
}

// OnStart opens a vertex for the span. Spans started with ports.AttrInternal set are recorded
// as internal vertices.
func (b *VertexBridge) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	var opts []ports.VertexOption
	if boolAttribute(s.Attributes(), ports.AttrInternal) {
		opts = append(opts, ports.WithInternal())
	}
	_, vertex := b.telemetry.Record(parent, s.Name(), opts...)

	b.mu.Lock()
	b.vertices[sc.SpanID()] = vertex
	b.mu.Unlock()
}

// OnEnd replays the span's events as vertex logs and completes the vertex opened for the span.
func (b *VertexBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	id := s.SpanContext().SpanID()

	b.mu.Lock()
	vertex, ok := b.vertices[id]
	delete(b.vertices, id)
	b.mu.Unlock()
	if !ok {
		return
	}

	for _, event := range s.Events() {
		if event.Name == exceptionEvent {
			vertex.Log(domain.LogLevelError, eventMessage(event))
			continue
		}
		vertex.Log(domain.LogLevelInfo, eventMessage(event))
	}

	if boolAttribute(s.Attributes(), ports.AttrCached) {
		vertex.Cached()
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "task failed"
		}
		err = errors.New(desc)
	}
	vertex.Complete(err)
}

func boolAttribute(attrs []attribute.KeyValue, key string) bool {
	for _, attr := range attrs {
		if string(attr.Key) == key {
			return attr.Value.AsBool()
		}
	}
	return false
}

// eventMessage renders an event as its name followed by key=value pairs. Exceptions render as
// their message alone.
func eventMessage(event sdktrace.Event) string {
	if event.Name == exceptionEvent {
		for _, attr := range event.Attributes {
			if attr.Key == "exception.message" {
				return attr.Value.AsString()
			}
		}
	}

	var b strings.Builder
	b.WriteString(event.Name)
	for _, attr := range event.Attributes {
		b.WriteString(" " + string(attr.Key) + "=" + attr.Value.Emit())
	}
	return b.String()
}

// ForceFlush does nothing.
func (b *VertexBridge) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing; the telemetry session is closed by its owner.
func (b *VertexBridge) Shutdown(context.Context) error {
	return nil
}
