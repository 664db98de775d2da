package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/duke-cli/duke/internal/task"
	"github.com/duke-cli/duke/internal/tasklist"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Kind colors shared between table and TUI rendering.
	kindStyles = map[task.Kind]lipgloss.Style{
		task.ToDo:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		task.Deadline: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		task.Event:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	}

	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
)

// DisableColor strips all styling from table output.
func DisableColor() {
	headerStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
	kindStyles = map[task.Kind]lipgloss.Style{}
	doneStyle = lipgloss.NewStyle()
	pendingStyle = lipgloss.NewStyle()
}

// TaskTable renders a list of tasks as a formatted table.
func TaskTable(w io.Writer, tasks []*task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, "No tasks found.")
		return
	}

	// Calculate column widths.
	const pad = 2
	numW, kindW, statusW, descW, dateW := 3, 10, 9, 6, 12
	for _, t := range tasks {
		numW = max(numW, len(strconv.Itoa(t.Number))+pad)
		descW = max(descW, min(len(t.Description)+pad, 60)) //nolint:mnd // max description column width
	}

	// Print header.
	header := fmt.Sprintf("%-*s %-*s %-*s %-*s %-*s",
		numW, "#", kindW, "KIND", statusW, "STATUS", descW, "DESCRIPTION", dateW, "DATE")
	fmt.Fprintln(w, headerStyle.Render(strings.TrimRight(header, " ")))

	// Print rows.
	for _, t := range tasks {
		desc := t.Description
		const maxDesc = 58
		if len(desc) > maxDesc {
			desc = desc[:maxDesc-3] + "..."
		}
		date := dimStyle.Render("--")
		if t.Date != nil {
			date = t.Date.String()
		}

		row := fmt.Sprintf("%-*d %s %s %s %s",
			numW, t.Number,
			padRight(kindDisplay(t.Kind), kindW),
			padRight(statusDisplay(t.Done), statusW),
			padRight(desc, descW),
			date)
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

// TaskDetail renders a single task with full detail.
func TaskDetail(w io.Writer, t *task.Task) {
	titleLine := fmt.Sprintf("Task #%d: %s", t.Number, t.Description)
	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(titleLine))
	fmt.Fprintln(w, strings.Repeat("─", len(titleLine)))

	printField(w, "Kind", kindDisplay(t.Kind))
	printField(w, "Status", statusDisplay(t.Done))
	if t.Date != nil {
		label := "Date"
		switch t.Kind {
		case task.Deadline:
			label = "By"
		case task.Event:
			label = "At"
		}
		printField(w, label, t.Date.String())
	}
}

// StatsTable renders task list summary counts.
func StatsTable(w io.Writer, s tasklist.Stats) {
	fmt.Fprintf(w, "Total: %d tasks (%d done, %d pending)\n\n", s.Total, s.Done, s.Pending)

	header := fmt.Sprintf("%-12s %6s %6s", "KIND", "COUNT", "DONE")
	fmt.Fprintln(w, headerStyle.Render(header))

	for _, kc := range s.Kinds {
		const kindColW = 12
		fmt.Fprintf(w, "%s %6d %6d\n",
			padRight(kindName(kc.Kind), kindColW), kc.Count, kc.Done)
	}
}

// Messagef prints a simple formatted message line.
func Messagef(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format+"\n", args...)
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-8s %s\n", label+":", value)
}

// padRight pads s with spaces to the given visible width, accounting for ANSI
// escape codes that are invisible but consume bytes.
func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

func kindDisplay(k task.Kind) string {
	if st, ok := kindStyles[k]; ok {
		return st.Render(k.Name())
	}
	return k.Name()
}

// kindName styles a kind given by name, for summary rows.
func kindName(name string) string {
	if k, ok := task.KindFromName(name); ok {
		return kindDisplay(k)
	}
	return name
}

func statusDisplay(done bool) string {
	if done {
		return doneStyle.Render("done")
	}
	return pendingStyle.Render("pending")
}
