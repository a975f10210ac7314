package sqldb

import (
	"testing"
	"time"
)

func TestDateStringScan(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "time", value: time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC), want: "2026-02-05"},
		{name: "string", value: "2026-02-05", want: "2026-02-05"},
		{name: "bytes", value: []byte("2026-02-05"), want: "2026-02-05"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d dateString
			if err := d.Scan(tc.value); err != nil {
				t.Fatalf("scan: %v", err)
			}
			if string(d) != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, d)
			}
		})
	}
}

func TestDateStringScanRejectsUnknownTypes(t *testing.T) {
	var d dateString
	if err := d.Scan(42); err == nil {
		t.Fatal("expected error for unsupported value")
	}
}

func TestNullableText(t *testing.T) {
	if got := nullableText(""); got != nil {
		t.Fatalf("expected nil for empty string, got %v", got)
	}
	if got := nullableText("hola"); got != "hola" {
		t.Fatalf("expected pass-through, got %v", got)
	}
}

func TestBoolToInt(t *testing.T) {
	if boolToInt(true) != 1 {
		t.Fatal("expected true to map to 1")
	}
	if boolToInt(false) != 0 {
		t.Fatal("expected false to map to 0")
	}
}
