package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	d, err := Parse("2026-09-01")
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "2026-09-01" {
		t.Errorf("String() = %q", d.String())
	}

	for _, bad := range []string{"", "tomorrow", "01/09/2026", "2026-13-01", "2026-9-1"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded", bad)
		}
	}
}

func TestParseFuzzy(t *testing.T) {
	// Saturday.
	base := time.Date(2026, time.August, 22, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"exact date", "2026-09-01", "2026-09-01", false},
		{"tomorrow", "tomorrow", "2026-08-23", false},
		{"today", "today", "2026-08-22", false},
		{"next friday", "next friday", "2026-08-28", false},
		{"case insensitive", "Tomorrow", "2026-08-23", false},
		{"empty", "", "", true},
		{"gibberish", "fnord", "", true},
		{"partial match rejected", "finish report tomorrow", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseFuzzy(tt.input, base)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFuzzy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if d.String() != tt.want {
				t.Errorf("ParseFuzzy(%q) = %s, want %s", tt.input, d.String(), tt.want)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	d := New(2026, time.September, 1)
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2026-09-01"` {
		t.Errorf("MarshalJSON() = %s", data)
	}

	var parsed Date
	if err := parsed.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if parsed.String() != d.String() {
		t.Errorf("round trip = %s, want %s", parsed.String(), d.String())
	}
}
