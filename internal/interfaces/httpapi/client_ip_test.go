package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "forwarded chain wins",
			remoteAddr: "10.0.0.9:4312",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			want:       "203.0.113.7",
		},
		{
			name:       "real ip fallback",
			remoteAddr: "10.0.0.9:4312",
			headers:    map[string]string{"X-Real-IP": "198.51.100.4"},
			want:       "198.51.100.4",
		},
		{
			name:       "socket address fallback",
			remoteAddr: "192.0.2.10:55000",
			want:       "192.0.2.10",
		},
		{
			name:       "garbage header skipped",
			remoteAddr: "192.0.2.10:55000",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip"},
			want:       "192.0.2.10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/overview", nil)
			req.RemoteAddr = tt.remoteAddr
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			got := resolveClientIP(context.Background(), req)
			if got != tt.want {
				t.Fatalf("resolveClientIP=%q want=%q", got, tt.want)
			}
		})
	}
}
