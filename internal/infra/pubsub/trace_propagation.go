package pubsub

import (
	"context"
	"sort"

	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Headers travel next to a message payload, the way kafka record headers do.
type Headers map[string][]byte

var messagePropagator propagation.TextMapPropagator = propagation.NewCompositeTextMapPropagator(
	propagation.TraceContext{},
	b3.New(b3.WithInjectEncoding(b3.B3MultipleHeader)),
)

type headerCarrier Headers

func (c headerCarrier) Get(key string) string {
	return string(c[key])
}

func (c headerCarrier) Set(key, value string) {
	c[key] = []byte(value)
}

func (c headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// InjectTrace returns the headers that carry the span context of ctx. An
// empty set is returned when ctx holds no valid span.
func InjectTrace(ctx context.Context) Headers {
	headers := Headers{}
	messagePropagator.Inject(ctx, headerCarrier(headers))
	return headers
}

// ExtractTrace returns ctx with the remote span found in headers. Missing or
// malformed headers leave ctx untouched.
func ExtractTrace(ctx context.Context, headers Headers) context.Context {
	if len(headers) == 0 {
		return ctx
	}
	return messagePropagator.Extract(ctx, headerCarrier(headers))
}

// StartConsumerSpan opens the span a handler runs under for one message.
func StartConsumerSpan(ctx context.Context, topic Topic, key Key) (context.Context, trace.Span) {
	return otel.Tracer("tagback-server/pubsub").Start(ctx, string(topic)+" receive",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.destination", string(topic)),
			attribute.String("messaging.message_key", string(key)),
		),
	)
}
