package session

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/duke-cli/duke/internal/config"
	"github.com/duke-cli/duke/internal/store"
)

// runScript feeds the lines to a fresh session over a temp duke
// directory and returns the full transcript plus the task file content
// afterwards.
func runScript(t *testing.T, lines ...string) (transcript, fileContent string) {
	t.Helper()

	cfg, err := config.Init(filepath.Join(t.TempDir(), "duke"))
	if err != nil {
		t.Fatal(err)
	}
	st := store.New(cfg.TaskPath())

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer

	s := New(cfg, st, in, &out)
	s.SetNow(func() time.Time {
		return time.Date(2026, time.August, 22, 10, 0, 0, 0, time.UTC)
	})
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(cfg.TaskPath())
	if err != nil {
		t.Fatal(err)
	}
	return out.String(), string(data)
}

func wantContains(t *testing.T, transcript string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(transcript, w) {
			t.Errorf("transcript missing %q\n--- transcript ---\n%s", w, transcript)
		}
	}
}

func TestSessionGreetingAndFarewell(t *testing.T) {
	transcript, _ := runScript(t, "bye")

	wantContains(t, transcript,
		"Hello! I'm Duke.",
		"What can I do for you?",
		"Bye. Hope to see you again soon!")
}

func TestSessionFarewellOnEOF(t *testing.T) {
	transcript, _ := runScript(t, "list")
	wantContains(t, transcript, "Bye. Hope to see you again soon!")
}

func TestSessionAddAndList(t *testing.T) {
	transcript, file := runScript(t,
		"todo read a book",
		"deadline return library book /by 2026-09-01",
		"event project meeting /at tomorrow",
		"list",
		"bye")

	wantContains(t, transcript,
		"Got it. I've added this task:",
		"#1 [todo][ ] read a book",
		"Now you have 1 task in the list.",
		"Now you have 3 tasks in the list.",
		"Here are the tasks in your list:",
		"#2 [deadline][ ] return library book by:2026-09-01",
		"#3 [event][ ] project meeting at:2026-08-23")

	want := "T|0|read a book\n" +
		"D|0|return library book|2026-09-01\n" +
		"E|0|project meeting|2026-08-23\n"
	if file != want {
		t.Errorf("task file = %q, want %q", file, want)
	}
}

func TestSessionMarkUnmark(t *testing.T) {
	transcript, file := runScript(t,
		"todo read a book",
		"todo water the plants",
		"mark 2",
		"unmark 2",
		"mark 1",
		"bye")

	wantContains(t, transcript,
		"Nice! I've marked this task as done:",
		"#2 [todo][x] water the plants",
		"OK, I've marked this task as not done yet:",
		"#2 [todo][ ] water the plants",
		"#1 [todo][x] read a book")

	want := "T|1|read a book\nT|0|water the plants\n"
	if file != want {
		t.Errorf("task file = %q, want %q", file, want)
	}
}

func TestSessionDelete(t *testing.T) {
	transcript, file := runScript(t,
		"todo one",
		"todo two",
		"todo three",
		"delete 2",
		"list",
		"bye")

	wantContains(t, transcript,
		"Noted. I've removed this task:",
		"#2 [todo][ ] two",
		"Now you have 2 tasks in the list.")

	// Remaining tasks renumber, so "three" becomes #2.
	wantContains(t, transcript, "#2 [todo][ ] three")

	if file != "T|0|one\nT|0|three\n" {
		t.Errorf("task file = %q", file)
	}
}

func TestSessionInvalidTaskNumber(t *testing.T) {
	transcript, _ := runScript(t,
		"todo only one",
		"mark 5",
		"mark zero",
		"delete 0",
		"bye")

	if got := strings.Count(transcript, "OOPS!!! please enter a valid task number"); got != 3 {
		t.Errorf("got %d invalid-number complaints, want 3\n%s", got, transcript)
	}
}

func TestSessionErrorsKeepLoopAlive(t *testing.T) {
	transcript, file := runScript(t,
		"frobnicate",
		"todo read a book",
		"todo read a book",
		"todo still|works",
		"todo after errors",
		"bye")

	wantContains(t, transcript,
		"OOPS!!! i'm sorry, but i don't know what that means :-(",
		"already exists",
		"must not contain")

	// The loop survived every error and the last add landed.
	if file != "T|0|read a book\nT|0|after errors\n" {
		t.Errorf("task file = %q", file)
	}
}

func TestSessionEmptyList(t *testing.T) {
	transcript, _ := runScript(t, "list", "bye")
	wantContains(t, transcript, "Your list is empty.")
}

func TestSessionFind(t *testing.T) {
	transcript, _ := runScript(t,
		"todo read a book",
		"todo water the plants",
		"deadline return library book /by 2026-09-01",
		"find book",
		"find unicorn",
		"bye")

	wantContains(t, transcript,
		"Here are the matching tasks in your list:",
		"#1 [todo][ ] read a book",
		"#3 [deadline][ ] return library book by:2026-09-01",
		`No tasks matching "unicorn".`)

	// Matches keep their list numbers: the find reply must not contain
	// a renumbered "#2" for the deadline.
	if strings.Contains(transcript, "#2 [deadline]") {
		t.Error("find renumbered its matches")
	}
}

func TestSessionDeadlineNeedsDate(t *testing.T) {
	transcript, file := runScript(t,
		"deadline return book",
		"event meeting",
		"bye")

	wantContains(t, transcript,
		"OOPS!!! every deadline needs a date:",
		"OOPS!!! every event needs a date:")

	if file != "" {
		t.Errorf("task file = %q, want empty", file)
	}
}

func TestSessionNaturalLanguageDate(t *testing.T) {
	// The clock is pinned to Saturday 2026-08-22.
	transcript, file := runScript(t,
		"deadline finish report /by next friday",
		"bye")

	wantContains(t, transcript, "by:2026-08-28")
	if !strings.Contains(file, "|2026-08-28") {
		t.Errorf("task file = %q", file)
	}
}

func TestSessionPicksUpExistingFile(t *testing.T) {
	cfg, err := config.Init(filepath.Join(t.TempDir(), "duke"))
	if err != nil {
		t.Fatal(err)
	}
	seed := "T|1|already here\nnot a task line\nT|0|second\n"
	if err := os.WriteFile(cfg.TaskPath(), []byte(seed), 0o600); err != nil {
		t.Fatal(err)
	}

	st := store.New(cfg.TaskPath())
	var out bytes.Buffer
	s := New(cfg, st, strings.NewReader("list\nbye\n"), &out)
	if err := s.Run(); err != nil {
		t.Fatal(err)
	}

	// The malformed line is dropped quietly; numbering counts only
	// well-formed lines.
	wantContains(t, out.String(),
		"#1 [todo][x] already here",
		"#2 [todo][ ] second")
}
