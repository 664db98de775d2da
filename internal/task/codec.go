package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/duke-cli/duke/internal/date"
)

// Separator is the field separator of the line format. Descriptions
// must not contain it; ValidateDescription enforces that at add time.
const Separator = "|"

// Line format: <KindTag>|<status-bit>|<description>[|<date>]
const (
	minFields = 3
	maxFields = 4
)

// FormatLine serializes a task into its storage line.
// Dateless kinds produce 3 fields, dated kinds 4.
func FormatLine(t *Task) string {
	fields := []string{string(t.Kind), t.StatusBit(), t.Description}
	if t.Date != nil {
		fields = append(fields, t.Date.String())
	}
	return strings.Join(fields, Separator)
}

// ParseLine parses one storage line into a Task. The inverse of
// FormatLine: kind tag, status bit, description, optional date.
func ParseLine(line string) (*Task, error) {
	fields := strings.Split(line, Separator)
	if len(fields) < minFields || len(fields) > maxFields {
		return nil, fmt.Errorf("expected %d or %d fields, got %d", minFields, maxFields, len(fields))
	}

	var kind Kind
	switch Kind(fields[0]) {
	case ToDo, Deadline, Event:
		kind = Kind(fields[0])
	default:
		return nil, fmt.Errorf("unknown kind tag %q", fields[0])
	}

	var done bool
	switch fields[1] {
	case "1":
		done = true
	case "0":
		done = false
	default:
		return nil, fmt.Errorf("invalid status bit %q", fields[1])
	}

	desc := fields[2]
	if desc == "" {
		return nil, errors.New("empty description")
	}

	t := &Task{Kind: kind, Description: desc, Done: done}

	if len(fields) == maxFields {
		if !kind.HasDate() {
			return nil, fmt.Errorf("kind %q does not take a date", fields[0])
		}
		d, err := date.Parse(fields[3])
		if err != nil {
			return nil, err
		}
		t.Date = &d
	} else if kind.HasDate() {
		return nil, fmt.Errorf("kind %q requires a date", fields[0])
	}

	return t, nil
}
