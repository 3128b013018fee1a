package server

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/chazu/patchwork/patch"
)

const tracerName = "github.com/chazu/patchwork/server"

// patchCodeKey records the patch error code of a failed call.
const patchCodeKey = attribute.Key("patchwork.code")

// TracingInterceptor starts a span per call and carries W3C trace context
// in request headers. It is installed on both ends by New and NewClient.
type TracingInterceptor struct {
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
}

// NewTracingInterceptor traces with tp; nil uses the global provider.
func NewTracingInterceptor(tp trace.TracerProvider) *TracingInterceptor {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &TracingInterceptor{
		tracer:     tp.Tracer(tracerName),
		propagator: propagation.TraceContext{},
	}
}

func (t *TracingInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		spec := req.Spec()
		kind := trace.SpanKindServer
		if spec.IsClient {
			kind = trace.SpanKindClient
		} else {
			ctx = t.propagator.Extract(ctx, propagation.HeaderCarrier(req.Header()))
		}
		ctx, span := t.start(ctx, spec, kind)
		defer span.End()
		if spec.IsClient {
			t.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header()))
		}

		res, err := next(ctx, req)
		finish(span, err)
		return res, err
	}
}

func (t *TracingInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return func(ctx context.Context, spec connect.Spec) connect.StreamingClientConn {
		ctx, span := t.start(ctx, spec, trace.SpanKindClient)
		conn := next(ctx, spec)
		t.propagator.Inject(ctx, propagation.HeaderCarrier(conn.RequestHeader()))
		return &tracedClientConn{StreamingClientConn: conn, span: span}
	}
}

func (t *TracingInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		ctx = t.propagator.Extract(ctx, propagation.HeaderCarrier(conn.RequestHeader()))
		ctx, span := t.start(ctx, conn.Spec(), trace.SpanKindServer)
		defer span.End()
		err := next(ctx, conn)
		finish(span, err)
		return err
	}
}

func (t *TracingInterceptor) start(ctx context.Context, spec connect.Spec, kind trace.SpanKind) (context.Context, trace.Span) {
	name := strings.TrimPrefix(spec.Procedure, "/")
	service, method, _ := strings.Cut(name, "/")
	return t.tracer.Start(ctx, name,
		trace.WithSpanKind(kind),
		trace.WithAttributes(semconv.RPCSystemConnectRPC, semconv.RPCService(service), semconv.RPCMethod(method)),
	)
}

func finish(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(semconv.RPCConnectRPCErrorCodeKey.String(connect.CodeOf(err).String()))
	if code := CodeOf(err); code != patch.CodeUnknown {
		span.SetAttributes(patchCodeKey.String(string(code)))
	}
}

// tracedClientConn ends the span when the response side closes.
type tracedClientConn struct {
	connect.StreamingClientConn
	span trace.Span
}

func (c *tracedClientConn) CloseResponse() error {
	err := c.StreamingClientConn.CloseResponse()
	c.span.End()
	return err
}
