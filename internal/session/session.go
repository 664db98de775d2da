// Package session implements the interactive read-eval loop: one
// command per line, executed against the task list and mirrored to
// disk, with a human reply per command. Errors never terminate the
// loop; only "bye" or EOF does.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/duke-cli/duke/internal/clierr"
	"github.com/duke-cli/duke/internal/config"
	"github.com/duke-cli/duke/internal/date"
	"github.com/duke-cli/duke/internal/filelock"
	"github.com/duke-cli/duke/internal/output"
	"github.com/duke-cli/duke/internal/store"
	"github.com/duke-cli/duke/internal/task"
	"github.com/duke-cli/duke/internal/tasklist"
)

// Session runs the interactive loop over one list+store pair.
type Session struct {
	cfg   *config.Config
	st    *store.Store
	in    io.Reader
	out   io.Writer
	now   func() time.Time // clock for natural-language dates; defaults to time.Now
	tasks []*task.Task
}

// New creates a Session reading commands from in and writing replies to out.
func New(cfg *config.Config, st *store.Store, in io.Reader, out io.Writer) *Session {
	return &Session{cfg: cfg, st: st, in: in, out: out, now: time.Now}
}

// SetNow overrides the clock used for natural-language dates (for testing).
func (s *Session) SetNow(fn func() time.Time) {
	s.now = fn
}

// Run greets, processes commands until "bye" or EOF, and says goodbye.
func (s *Session) Run() error {
	if err := s.reload(); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Hello! I'm %s.\nWhat can I do for you?\n", s.cfg.AssistantName())

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		reply, quit := s.exec(scanner.Text())
		if reply != "" {
			fmt.Fprintln(s.out, reply)
		}
		if quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	// EOF counts as goodbye.
	fmt.Fprintln(s.out, farewell)
	return nil
}

const farewell = "Bye. Hope to see you again soon!"

// exec runs one command line and returns the reply plus whether the
// session should end.
func (s *Session) exec(line string) (string, bool) {
	cmd, err := Parse(line)
	if err != nil {
		return oops(err), false
	}

	switch cmd.Verb {
	case VerbBye:
		return farewell, true
	case VerbList:
		return s.execList(), false
	case VerbFind:
		return s.execFind(cmd.Arg), false
	case VerbTodo, VerbDeadline, VerbEvent:
		return s.execAdd(cmd), false
	case VerbMark:
		return s.execSetDone(cmd.Arg, true), false
	case VerbUnmark:
		return s.execSetDone(cmd.Arg, false), false
	case VerbDelete:
		return s.execDelete(cmd.Arg), false
	default:
		return oops(errUnknown), false
	}
}

func (s *Session) execList() string {
	if len(s.tasks) == 0 {
		return "Your list is empty. Add something with 'todo'."
	}
	reply := "Here are the tasks in your list:"
	for _, t := range s.tasks {
		reply += "\n  " + output.FormatTaskLine(t)
	}
	return reply
}

func (s *Session) execFind(keyword string) string {
	matches := tasklist.Find(s.tasks, keyword)
	if len(matches) == 0 {
		return fmt.Sprintf("No tasks matching %q.", keyword)
	}
	reply := "Here are the matching tasks in your list:"
	for _, t := range matches {
		reply += "\n  " + output.FormatTaskLine(t)
	}
	return reply
}

func (s *Session) execAdd(cmd Command) string {
	t := &task.Task{Description: cmd.Arg}
	switch cmd.Verb {
	case VerbTodo:
		t.Kind = task.ToDo
	case VerbDeadline:
		t.Kind = task.Deadline
	case VerbEvent:
		t.Kind = task.Event
	}

	if err := task.ValidateDescription(t.Description); err != nil {
		return oops(err)
	}
	if err := task.ValidateUnique(t.Description, s.tasks); err != nil {
		return oops(err)
	}
	if t.Kind.HasDate() {
		d, err := date.ParseFuzzy(cmd.Date, s.now())
		if err != nil {
			return oops(err)
		}
		t.Date = &d
	}

	if err := s.mutate(func() error { return s.st.Append(t) }); err != nil {
		return oops(err)
	}
	tasklist.LogMutation(s.cfg.Dir(), "add", len(s.tasks), t.Description)

	return fmt.Sprintf("Got it. I've added this task:\n  %s\nNow you have %s in the list.",
		output.FormatTaskLine(s.tasks[len(s.tasks)-1]), countNoun(len(s.tasks)))
}

func (s *Session) execSetDone(arg string, done bool) string {
	n, err := s.taskNumber(arg)
	if err != nil {
		return oops(err)
	}

	if err := s.mutate(func() error { return s.st.SetDone(n, done) }); err != nil {
		return oops(err)
	}

	action, lead := "mark", "Nice! I've marked this task as done:"
	if !done {
		action, lead = "unmark", "OK, I've marked this task as not done yet:"
	}
	tasklist.LogMutation(s.cfg.Dir(), action, n, s.tasks[n-1].Description)

	return lead + "\n  " + output.FormatTaskLine(s.tasks[n-1])
}

func (s *Session) execDelete(arg string) string {
	n, err := s.taskNumber(arg)
	if err != nil {
		return oops(err)
	}
	removed := s.tasks[n-1]

	if err := s.mutate(func() error { return s.st.Remove(n) }); err != nil {
		return oops(err)
	}
	tasklist.LogMutation(s.cfg.Dir(), "delete", n, removed.Description)

	return fmt.Sprintf("Noted. I've removed this task:\n  %s\nNow you have %s in the list.",
		output.FormatTaskLine(removed), countNoun(len(s.tasks)))
}

// taskNumber parses a 1-based task number and checks it against the
// current list.
func (s *Session) taskNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(s.tasks) {
		return 0, task.ValidateTaskNumber(arg)
	}
	return n, nil
}

// mutate runs op under the duke directory lock, then reloads the
// in-memory list so numbering reflects the file.
func (s *Session) mutate(op func() error) error {
	unlock, err := filelock.Lock(s.cfg.LockPath())
	if err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	defer unlock() //nolint:errcheck // best-effort unlock on exit

	if err := op(); err != nil {
		return err
	}
	return s.reload()
}

func (s *Session) reload() error {
	tasks, warnings, err := s.st.Load()
	if err != nil {
		return err
	}
	// Malformed lines are dropped quietly; the session keeps going
	// with whatever parsed.
	_ = warnings
	s.tasks = tasks
	return nil
}

var errUnknown = errors.New("i'm sorry, but i don't know what that means :-(")

// oops renders any error as the assistant's fixed complaint prefix
// plus the human-readable message.
func oops(err error) string {
	var cliErr *clierr.Error
	if errors.As(err, &cliErr) {
		return "OOPS!!! " + cliErr.Message
	}
	return "OOPS!!! " + err.Error()
}

func countNoun(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}
