package output

import (
	"testing"
	"time"

	"github.com/duke-cli/duke/internal/date"
	"github.com/duke-cli/duke/internal/task"
)

func TestFormatTaskLine(t *testing.T) {
	d := date.New(2026, time.September, 1)

	tests := []struct {
		name string
		task *task.Task
		want string
	}{
		{
			name: "pending todo",
			task: &task.Task{Kind: task.ToDo, Description: "read a book", Number: 1},
			want: "#1 [todo][ ] read a book",
		},
		{
			name: "done todo",
			task: &task.Task{Kind: task.ToDo, Description: "read a book", Done: true, Number: 2},
			want: "#2 [todo][x] read a book",
		},
		{
			name: "deadline uses by",
			task: &task.Task{Kind: task.Deadline, Description: "return library book", Date: &d, Number: 3},
			want: "#3 [deadline][ ] return library book by:2026-09-01",
		},
		{
			name: "event uses at",
			task: &task.Task{Kind: task.Event, Description: "project meeting", Date: &d, Done: true, Number: 4},
			want: "#4 [event][x] project meeting at:2026-09-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTaskLine(tt.task); got != tt.want {
				t.Errorf("FormatTaskLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
