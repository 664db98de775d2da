package task

import (
	"testing"
	"time"

	"github.com/duke-cli/duke/internal/date"
)

func datePtr(year int, month time.Month, day int) *date.Date {
	d := date.New(year, month, day)
	return &d
}

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name string
		task *Task
		want string
	}{
		{
			name: "pending todo",
			task: &Task{Kind: ToDo, Description: "read a book"},
			want: "T|0|read a book",
		},
		{
			name: "done todo",
			task: &Task{Kind: ToDo, Description: "read a book", Done: true},
			want: "T|1|read a book",
		},
		{
			name: "deadline",
			task: &Task{Kind: Deadline, Description: "return library book", Date: datePtr(2026, time.September, 1)},
			want: "D|0|return library book|2026-09-01",
		},
		{
			name: "event",
			task: &Task{Kind: Event, Description: "project meeting", Done: true, Date: datePtr(2026, time.August, 31)},
			want: "E|1|project meeting|2026-08-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLine(tt.task); got != tt.want {
				t.Errorf("FormatLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLine(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		lines := []string{
			"T|0|read a book",
			"T|1|water the plants",
			"D|0|return library book|2026-09-01",
			"E|1|project meeting|2026-08-31",
		}
		for _, line := range lines {
			parsed, err := ParseLine(line)
			if err != nil {
				t.Fatalf("ParseLine(%q): %v", line, err)
			}
			if got := FormatLine(parsed); got != line {
				t.Errorf("FormatLine(ParseLine(%q)) = %q", line, got)
			}
		}
	})

	t.Run("fields", func(t *testing.T) {
		parsed, err := ParseLine("D|1|return library book|2026-09-01")
		if err != nil {
			t.Fatal(err)
		}
		if parsed.Kind != Deadline {
			t.Errorf("Kind = %q, want Deadline", parsed.Kind)
		}
		if !parsed.Done {
			t.Error("Done = false, want true")
		}
		if parsed.Description != "return library book" {
			t.Errorf("Description = %q", parsed.Description)
		}
		if parsed.Date == nil || parsed.Date.String() != "2026-09-01" {
			t.Errorf("Date = %v, want 2026-09-01", parsed.Date)
		}
	})
}

func TestParseLineMalformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"garbage", "hello world"},
		{"too few fields", "T|1"},
		{"too many fields", "D|0|desc|2026-09-01|extra"},
		{"unknown kind", "X|0|mystery"},
		{"lowercase kind", "t|0|read a book"},
		{"bad status bit", "T|2|read a book"},
		{"word status bit", "T|done|read a book"},
		{"empty description", "T|0|"},
		{"todo with date", "T|0|read a book|2026-09-01"},
		{"deadline without date", "D|0|return library book"},
		{"event without date", "E|1|project meeting"},
		{"bad date", "D|0|return book|tomorrow"},
		{"date wrong format", "D|0|return book|01/09/2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLine(tt.line); err == nil {
				t.Errorf("ParseLine(%q) succeeded, want error", tt.line)
			}
		})
	}
}
