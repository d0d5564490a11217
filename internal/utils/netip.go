package utils

import (
	"net"
	"net/http"
	"strings"
)

// ParseHostNoPort returns the host part (no port) from strings like
// "ip:port", "[v6]:port", or "ip".
func ParseHostNoPort(s string) string {
	if s == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(s); err == nil {
		return h
	}
	return s
}

// ClientIP resolves the real client IP. With trustProxy it prefers the
// left-most X-Forwarded-For entry, then X-Real-IP; otherwise RemoteAddr only.
// Only set trustProxy when the service sits behind a trusted reverse proxy.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); xff != "" {
			if i := strings.IndexByte(xff, ','); i >= 0 {
				xff = xff[:i]
			}
			if ip := ParseHostNoPort(strings.TrimSpace(xff)); ip != "" {
				return ip
			}
		}
		if xrip := strings.TrimSpace(r.Header.Get("X-Real-IP")); xrip != "" {
			if ip := ParseHostNoPort(xrip); ip != "" {
				return ip
			}
		}
	}
	return ParseHostNoPort(r.RemoteAddr)
}
