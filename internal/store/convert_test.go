package store

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
)

func TestToPgTimestamptz(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"2024-01-01T00:00:00.000Z", true},
		{"2024-01-02T08:30:00.000+02:00", true},
		{"2024-01-01T00:00:00Z", false}, // missing millis
		{"2024-01-01", false},
		{"", false},
		{"yesterday", false},
	}

	for _, tt := range tests {
		got := toPgTimestamptz(tt.input)
		if got.Valid != tt.valid {
			t.Errorf("toPgTimestamptz(%q).Valid = %v, want %v", tt.input, got.Valid, tt.valid)
		}
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	in := "2024-01-01T12:34:56.789Z"
	ts := toPgTimestamptz(in)
	if !ts.Valid {
		t.Fatalf("toPgTimestamptz(%q) invalid", in)
	}
	if got := formatTimestamp(ts); got != in {
		t.Errorf("round trip = %q, want %q", got, in)
	}
}

func TestFormatTimestamp_NormalizesToUTC(t *testing.T) {
	ts := toPgTimestamptz("2024-01-02T08:30:00.000+02:00")
	want := "2024-01-02T06:30:00.000Z"
	if got := formatTimestamp(ts); got != want {
		t.Errorf("formatTimestamp = %q, want %q", got, want)
	}
}

func TestFormatTimestamp_Invalid(t *testing.T) {
	if got := formatTimestamp(pgtype.Timestamptz{}); got != "" {
		t.Errorf("formatTimestamp(invalid) = %q, want empty", got)
	}
}

func TestPgUUIDString_Invalid(t *testing.T) {
	if got := pgUUIDString(pgtype.UUID{}); got != "" {
		t.Errorf("pgUUIDString(invalid) = %q, want empty", got)
	}
}
