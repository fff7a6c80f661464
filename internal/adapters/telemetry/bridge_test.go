package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"go.trai.ch/props/internal/adapters/telemetry"
	"go.trai.ch/props/internal/core/domain"
	"go.trai.ch/props/internal/core/ports"
	"go.trai.ch/props/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestVertexBridge_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	tel.EXPECT().Record(gomock.Any(), "resolve compile").
		Return(context.Background(), vertex)
	vertex.EXPECT().Complete(nil)

	tracer := telemetry.NewOTelTracer("test", telemetry.NewVertexBridge(tel))
	_, span := tracer.Start(context.Background(), "resolve compile")
	span.End()
}

func TestVertexBridge_Cached(t *testing.T) {
	ctrl := gomock.NewController(t)
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	tel.EXPECT().Record(gomock.Any(), "status compile").
		Return(context.Background(), vertex)
	gomock.InOrder(
		vertex.EXPECT().Cached(),
		vertex.EXPECT().Complete(nil),
	)

	tracer := telemetry.NewOTelTracer("test", telemetry.NewVertexBridge(tel))
	_, span := tracer.Start(context.Background(), "status compile")
	span.SetAttribute(ports.AttrCached, true)
	span.End()
}

func TestVertexBridge_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	tel.EXPECT().Record(gomock.Any(), "resolve broken").
		Return(context.Background(), vertex)
	vertex.EXPECT().Log(domain.LogLevelError, "overlapping names")
	vertex.EXPECT().Complete(gomock.Any()).Do(func(err error) {
		if err == nil || err.Error() != "overlapping names" {
			t.Errorf("unexpected completion error: %v", err)
		}
	})

	tracer := telemetry.NewOTelTracer("test", telemetry.NewVertexBridge(tel))
	_, span := tracer.Start(context.Background(), "resolve broken")
	span.RecordError(errors.New("overlapping names"))
	span.End()
}

func TestVertexBridge_InternalSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	tel.EXPECT().Record(gomock.Any(), "resolve", gomock.Any()).
		Return(context.Background(), vertex)
	vertex.EXPECT().Log(domain.LogLevelInfo, `plan_emitted tasks=["generate","compile"]`)
	vertex.EXPECT().Complete(nil)

	tracer := telemetry.NewOTelTracer("test", telemetry.NewVertexBridge(tel))
	ctx, span := tracer.Start(context.Background(), "resolve", ports.WithAttribute(ports.AttrInternal, true))
	tracer.EmitPlan(ctx, []string{"generate", "compile"})
	span.End()
}
