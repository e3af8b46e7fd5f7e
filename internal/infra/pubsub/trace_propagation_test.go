package pubsub_test

import (
	"context"
	"tagback-server/internal/infra/pubsub"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"
)

var _ = ginkgo.Describe("Trace propagation", func() {
	var (
		recorder *tracetest.SpanRecorder
		tp       *trace.TracerProvider
	)

	ginkgo.BeforeEach(func() {
		recorder = tracetest.NewSpanRecorder()
		tp = trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
		otel.SetTracerProvider(tp)
	})

	ginkgo.AfterEach(func() {
		_ = tp.Shutdown(context.Background())
	})

	ginkgo.It("carries the span through w3c and b3 headers", func() {
		ctx, span := tp.Tracer("test").Start(context.Background(), "publish")
		defer span.End()

		headers := pubsub.InjectTrace(ctx)

		gomega.Expect(headers).To(gomega.HaveKey("traceparent"))
		gomega.Expect(headers).To(gomega.HaveKey("x-b3-traceid"))
		gomega.Expect(string(headers["x-b3-traceid"])).To(gomega.Equal(span.SpanContext().TraceID().String()))

		extracted := oteltrace.SpanContextFromContext(pubsub.ExtractTrace(context.Background(), headers))
		gomega.Expect(extracted.IsRemote()).To(gomega.BeTrue())
		gomega.Expect(extracted.TraceID()).To(gomega.Equal(span.SpanContext().TraceID()))
		gomega.Expect(extracted.SpanID()).To(gomega.Equal(span.SpanContext().SpanID()))
	})

	ginkgo.It("injects nothing without a span", func() {
		gomega.Expect(pubsub.InjectTrace(context.Background())).To(gomega.BeEmpty())
	})

	ginkgo.It("ignores malformed headers", func() {
		headers := pubsub.Headers{
			"traceparent":  []byte("not-a-traceparent"),
			"x-b3-traceid": []byte("zz"),
		}

		ctx := pubsub.ExtractTrace(context.Background(), headers)

		gomega.Expect(oteltrace.SpanContextFromContext(ctx).IsValid()).To(gomega.BeFalse())
	})

	ginkgo.It("accepts b3 only headers from older producers", func() {
		headers := pubsub.Headers{
			"x-b3-traceid": []byte("1234567890abcdef1234567890abcdef"),
			"x-b3-spanid":  []byte("1234567890abcdef"),
			"x-b3-sampled": []byte("1"),
		}

		sc := oteltrace.SpanContextFromContext(pubsub.ExtractTrace(context.Background(), headers))

		gomega.Expect(sc.TraceID().String()).To(gomega.Equal("1234567890abcdef1234567890abcdef"))
		gomega.Expect(sc.IsSampled()).To(gomega.BeTrue())
	})

	ginkgo.It("runs memory subscribers under a consumer span of the publisher trace", func() {
		pubsub.GetMemoryBroker().Reset()
		consumeCtx, cancel := context.WithCancel(context.Background())
		defer cancel()

		seen := make(chan oteltrace.SpanContext, 1)
		consumer := pubsub.NewMemoryConsumerFactory("trace").New()
		go func() {
			_ = consumer.Consume(consumeCtx, "tag_scans", func(ctx context.Context, _ pubsub.Key, _ pubsub.Prototype) error {
				seen <- oteltrace.SpanContextFromContext(ctx)
				return nil
			}, nil)
		}()
		time.Sleep(20 * time.Millisecond)

		publisher, err := pubsub.NewMemoryPublisherFactory().New("tag_scans", nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx, span := tp.Tracer("test").Start(context.Background(), "scan")
		gomega.Expect(publisher.Publish(ctx, "ABCD-2345", "scan")).To(gomega.Succeed())

		var received oteltrace.SpanContext
		gomega.Eventually(seen, time.Second).Should(gomega.Receive(&received))
		span.End()

		gomega.Expect(received.TraceID()).To(gomega.Equal(span.SpanContext().TraceID()))
		gomega.Expect(received.SpanID()).NotTo(gomega.Equal(span.SpanContext().SpanID()))
	})
})
