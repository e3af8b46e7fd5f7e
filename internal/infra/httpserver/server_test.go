package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"
)

type routeController struct {
	status int
}

func (c routeController) AddRoutes(router *http.ServeMux) {
	router.HandleFunc("GET /v1/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		gomega.Expect(GetSpanFromContext(r).SpanContext().HasSpanID()).To(gomega.BeTrue())
		w.WriteHeader(c.status)
	})
}

var _ = ginkgo.Describe("HTTPServer", func() {
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

	attributesOf := func(span trace.ReadOnlySpan) map[attribute.Key]attribute.Value {
		result := make(map[attribute.Key]attribute.Value)
		for _, kv := range span.Attributes() {
			result[kv.Key] = kv.Value
		}
		return result
	}

	ginkgo.Context("tracing", func() {
		ginkgo.It("names the server span after the matched route", func() {
			server := NewServer(ServerConfig{}, routeController{status: http.StatusOK})
			rec := httptest.NewRecorder()

			server.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/v1/items/42", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			spans := recorder.Ended()
			gomega.Expect(spans).To(gomega.HaveLen(1))
			gomega.Expect(spans[0].Name()).To(gomega.Equal("GET /v1/items/{id}"))
			gomega.Expect(spans[0].SpanKind()).To(gomega.Equal(oteltrace.SpanKindServer))
			gomega.Expect(attributesOf(spans[0])["http.status_code"].AsInt64()).To(gomega.BeEquivalentTo(200))
		})

		ginkgo.It("marks server errors on the span", func() {
			server := NewServer(ServerConfig{}, routeController{status: http.StatusInternalServerError})

			server.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/v1/items/42", nil))

			gomega.Expect(recorder.Ended()[0].Status().Code).To(gomega.Equal(codes.Error))
		})

		ginkgo.It("keeps the generic name for unrouted requests", func() {
			server := NewServer(ServerConfig{})

			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/nowhere", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNotFound))
			gomega.Expect(recorder.Ended()[0].Name()).To(gomega.Equal("http.request"))
		})

		ginkgo.It("continues a b3 trace and answers with it", func() {
			server := NewServer(ServerConfig{})
			req := httptest.NewRequest("GET", "/healthz", nil)
			req.Header.Set("b3", "80f198ee56343ba864fe8b2a57d3eff7-e457b5a2e4d86bd1-1")
			rec := httptest.NewRecorder()

			server.Handler().ServeHTTP(rec, req)

			gomega.Expect(rec.Header().Get("X-B3-TraceId")).To(gomega.Equal("80f198ee56343ba864fe8b2a57d3eff7"))
			gomega.Expect(recorder.Ended()[0].Parent().SpanID().String()).To(gomega.Equal("e457b5a2e4d86bd1"))
		})

		ginkgo.It("continues a w3c trace", func() {
			server := NewServer(ServerConfig{})
			req := httptest.NewRequest("GET", "/healthz", nil)
			req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")

			server.Handler().ServeHTTP(httptest.NewRecorder(), req)

			gomega.Expect(recorder.Ended()[0].SpanContext().TraceID().String()).To(gomega.Equal("4bf92f3577b34da6a3ce929d0e0e4736"))
		})
	})

	ginkgo.Context("caller identity", func() {
		ginkgo.It("records the forwarded user on the span", func() {
			server := NewServer(ServerConfig{})
			req := httptest.NewRequest("GET", "/healthz", nil)
			req.Header.Set(UserIDHeader, "owner-1")
			req.Header.Set(UserRoleHeader, RoleOperator)

			server.Handler().ServeHTTP(httptest.NewRecorder(), req)

			attrs := attributesOf(recorder.Ended()[0])
			gomega.Expect(attrs["user.id"].AsString()).To(gomega.Equal("owner-1"))
			gomega.Expect(attrs["user.role"].AsString()).To(gomega.Equal(RoleOperator))
		})

		ginkgo.It("returns a no-op span outside the middleware", func() {
			span := GetSpanFromContext(httptest.NewRequest("GET", "/healthz", nil))

			gomega.Expect(span).NotTo(gomega.BeNil())
			gomega.Expect(span.SpanContext().IsValid()).To(gomega.BeFalse())
		})
	})

	ginkgo.It("serves healthz and readiness", func() {
		server := NewServer(ServerConfig{Addr: ":0"}, NewReadinessController(nil))

		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))

		rec = httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/readyz", nil))
		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
	})
})
