package httpapi

import (
	"context"
	"net"
	"net/http"
	"strings"
)

// resolveClientIP walks the usual proxy headers before falling back to the
// socket address, so access logs show the real caller when the service sits
// behind a reverse proxy.
func resolveClientIP(ctx context.Context, r *http.Request) string {
	_ = ctx

	candidates := []string{
		r.Header.Get("X-Forwarded-For"),
		r.Header.Get("X-Real-IP"),
		r.RemoteAddr,
	}

	for _, candidate := range candidates {
		if ip := normalizeIP(candidate); ip != "" {
			return ip
		}
	}

	return ""
}

func normalizeIP(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if strings.Contains(value, ",") {
		value = strings.TrimSpace(strings.Split(value, ",")[0])
	}

	if host, _, err := net.SplitHostPort(value); err == nil {
		value = strings.TrimSpace(host)
	}

	parsed := net.ParseIP(value)
	if parsed == nil {
		return ""
	}
	return parsed.String()
}
