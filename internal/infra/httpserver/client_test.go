package httpserver

import (
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("ClientInfo", func() {
	ginkgo.It("should prefer the forwarded address", func() {
		req := httptest.NewRequest("GET", "/v1/public/tags/AB7K-3MQ9", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		req.Header.Set("User-Agent", "Mozilla/5.0")
		req.Header.Set("Accept-Language", "nl-NL,nl;q=0.9,en;q=0.8")

		info := ClientInfo(req)

		gomega.Expect(info.IPAddress).To(gomega.Equal("203.0.113.7"))
		gomega.Expect(info.UserAgent).To(gomega.Equal("Mozilla/5.0"))
		gomega.Expect(info.Language).To(gomega.Equal("nl-NL"))
	})

	ginkgo.It("should fall back to the socket address", func() {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "198.51.100.4:5123"

		info := ClientInfo(req)

		gomega.Expect(info.IPAddress).To(gomega.Equal("198.51.100.4"))
		gomega.Expect(info.Language).To(gomega.BeEmpty())
	})
})
