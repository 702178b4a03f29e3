// Package otel adapts the calla request observer to OpenTelemetry
// tracing. Each completed API call becomes one client span carrying the
// HTTP method, URL, status code, Webex tracking ID and attempt count.
//
//	tp := trace.NewTracerProvider(...)
//	client := calla.New(token,
//	    core.WithObserver(otel.NewObserver(tp.Tracer("calla"))),
//	)
package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/petal-labs/calla/core"
)

// Observer records one span per completed API request. The observer
// callbacks carry no context, so spans are recorded after the fact with
// the observed start and end timestamps rather than opened live.
type Observer struct {
	tracer trace.Tracer
}

// NewObserver wraps a tracer in a request observer.
func NewObserver(tracer trace.Tracer) *Observer {
	return &Observer{tracer: tracer}
}

// OnRequestStart is a no-op; the span is recorded on completion, when
// the outcome and timing are known.
func (o *Observer) OnRequestStart(e core.RequestStartEvent) {}

// OnRequestEnd records the completed request as a client span.
func (o *Observer) OnRequestEnd(e core.RequestEndEvent) {
	_, span := o.tracer.Start(context.Background(), e.Method+" "+e.URL,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithTimestamp(e.Start),
	)

	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", e.Method),
		attribute.String("url.full", e.URL),
		attribute.Int("http.request.resend_count", e.Attempts-1),
	}
	if e.Status != 0 {
		attrs = append(attrs, attribute.Int("http.response.status_code", e.Status))
	}
	if e.TrackingID != "" {
		attrs = append(attrs, attribute.String("webex.tracking_id", e.TrackingID))
	}
	span.SetAttributes(attrs...)

	if e.Err != nil {
		span.RecordError(e.Err)
		span.SetStatus(codes.Error, e.Err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	span.End(trace.WithTimestamp(e.End))
}

// Compile-time check that Observer implements core.RequestObserver.
var _ core.RequestObserver = (*Observer)(nil)
