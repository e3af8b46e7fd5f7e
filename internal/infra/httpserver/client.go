package httpserver

import (
	"net"
	"net/http"
	"strings"

	shareddomain "tagback-server/internal/shared_kernel/domain"
)

// ClientInfo describes an anonymous visitor from what the request carries.
// The left-most X-Forwarded-For entry wins over the socket address.
func ClientInfo(r *http.Request) shareddomain.ClientInfo {
	return shareddomain.ClientInfo{
		UserAgent: r.UserAgent(),
		IPAddress: clientIP(r),
		Language:  primaryLanguage(r.Header.Get("Accept-Language")),
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func primaryLanguage(header string) string {
	first, _, _ := strings.Cut(header, ",")
	tag, _, _ := strings.Cut(first, ";")
	return strings.TrimSpace(tag)
}
