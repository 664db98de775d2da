// Package task defines the task model and its on-disk line format.
package task

import (
	"github.com/duke-cli/duke/internal/date"
)

// Kind is the task subtype. Subtypes differ only in whether a
// calendar date is attached.
type Kind string

// Task kinds and their one-letter storage tags.
const (
	ToDo     Kind = "T"
	Deadline Kind = "D"
	Event    Kind = "E"
)

// Kinds returns all task kinds in display order.
func Kinds() []Kind {
	return []Kind{ToDo, Deadline, Event}
}

// Name returns the human-readable kind name.
func (k Kind) Name() string {
	switch k {
	case ToDo:
		return "todo"
	case Deadline:
		return "deadline"
	case Event:
		return "event"
	default:
		return string(k)
	}
}

// HasDate reports whether the kind carries a calendar date.
func (k Kind) HasDate() bool {
	return k == Deadline || k == Event
}

// KindFromName maps a kind name ("todo", "deadline", "event") back to
// its Kind. Returns false if the name is unknown.
func KindFromName(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.Name() == name {
			return k, true
		}
	}
	return "", false
}

// Task represents one entry in the task list.
type Task struct {
	Kind        Kind       `json:"kind"`
	Description string     `json:"description"`
	Done        bool       `json:"done"`
	Date        *date.Date `json:"date,omitempty"`

	// Number is the 1-based position in the task list (not stored in
	// the line format; assigned on load).
	Number int `json:"number,omitempty"`
}

// StatusBit returns "1" for done tasks and "0" otherwise.
func (t *Task) StatusBit() string {
	if t.Done {
		return "1"
	}
	return "0"
}
