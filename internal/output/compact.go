package output

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/duke-cli/duke/internal/task"
	"github.com/duke-cli/duke/internal/tasklist"
)

// TaskCompact renders a list of tasks in one-line-per-record compact format.
func TaskCompact(w io.Writer, tasks []*task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, "No tasks found.")
		return
	}

	for _, t := range tasks {
		fmt.Fprintln(w, FormatTaskLine(t))
	}
}

// StatsCompact renders a summary in compact format.
func StatsCompact(w io.Writer, s tasklist.Stats) {
	fmt.Fprintf(w, "%d tasks (%d done, %d pending)\n", s.Total, s.Done, s.Pending)
	for _, kc := range s.Kinds {
		fmt.Fprintln(w, "  "+kc.Kind+": "+strconv.Itoa(kc.Count))
	}
}

// FormatTaskLine builds the one-line representation of a task:
// "#3 [deadline][x] return library book by:2026-09-01".
func FormatTaskLine(t *task.Task) string {
	status := " "
	if t.Done {
		status = "x"
	}
	line := "#" + strconv.Itoa(t.Number) + " [" + t.Kind.Name() + "][" + status + "] " + t.Description

	if t.Date != nil {
		switch t.Kind {
		case task.Deadline:
			line += " by:" + t.Date.String()
		case task.Event:
			line += " at:" + t.Date.String()
		}
	}

	return line
}
