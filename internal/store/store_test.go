package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/duke-cli/duke/internal/clierr"
	"github.com/duke-cli/duke/internal/date"
	"github.com/duke-cli/duke/internal/task"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "tasks.txt"))
}

func mustFileContent(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestLoadMissingFile(t *testing.T) {
	st := newTestStore(t)

	tasks, warnings, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tasks) != 0 || len(warnings) != 0 {
		t.Errorf("got %d tasks, %d warnings from missing file", len(tasks), len(warnings))
	}
}

func TestAppendAndLoad(t *testing.T) {
	st := newTestStore(t)

	d := date.New(2026, time.September, 1)
	if err := st.Append(&task.Task{Kind: task.ToDo, Description: "read a book"}); err != nil {
		t.Fatal(err)
	}
	if err := st.Append(&task.Task{Kind: task.Deadline, Description: "return library book", Date: &d}); err != nil {
		t.Fatal(err)
	}

	tasks, warnings, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	if tasks[0].Number != 1 || tasks[1].Number != 2 {
		t.Errorf("numbers = %d, %d; want 1, 2", tasks[0].Number, tasks[1].Number)
	}
	if tasks[1].Description != "return library book" || tasks[1].Date == nil {
		t.Errorf("second task = %+v", tasks[1])
	}

	want := "T|0|read a book\nD|0|return library book|2026-09-01\n"
	if got := mustFileContent(t, st.Path()); got != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
}

func TestSetDoneRoundTrip(t *testing.T) {
	st := newTestStore(t)
	for _, desc := range []string{"one", "two", "three"} {
		if err := st.Append(&task.Task{Kind: task.ToDo, Description: desc}); err != nil {
			t.Fatal(err)
		}
	}

	if err := st.SetDone(2, true); err != nil {
		t.Fatal(err)
	}
	tasks, _, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}
	if tasks[0].Done || !tasks[1].Done || tasks[2].Done {
		t.Errorf("done bits = %v %v %v, want false true false",
			tasks[0].Done, tasks[1].Done, tasks[2].Done)
	}

	// Unmark restores the original file exactly.
	if err := st.SetDone(2, false); err != nil {
		t.Fatal(err)
	}
	want := "T|0|one\nT|0|two\nT|0|three\n"
	if got := mustFileContent(t, st.Path()); got != want {
		t.Errorf("file content after unmark = %q, want %q", got, want)
	}
}

func TestRemove(t *testing.T) {
	st := newTestStore(t)
	for _, desc := range []string{"one", "two", "three"} {
		if err := st.Append(&task.Task{Kind: task.ToDo, Description: desc}); err != nil {
			t.Fatal(err)
		}
	}

	if err := st.Remove(2); err != nil {
		t.Fatal(err)
	}

	tasks, _, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	// Remaining tasks renumber from 1.
	if tasks[0].Description != "one" || tasks[0].Number != 1 {
		t.Errorf("first = %+v", tasks[0])
	}
	if tasks[1].Description != "three" || tasks[1].Number != 2 {
		t.Errorf("second = %+v", tasks[1])
	}
}

func TestMutationOutOfRange(t *testing.T) {
	st := newTestStore(t)
	if err := st.Append(&task.Task{Kind: task.ToDo, Description: "only"}); err != nil {
		t.Fatal(err)
	}

	for _, n := range []int{0, -1, 2, 99} {
		err := st.SetDone(n, true)
		var cliErr *clierr.Error
		if !errors.As(err, &cliErr) || cliErr.Code != clierr.TaskNotFound {
			t.Errorf("SetDone(%d) = %v, want %s", n, err, clierr.TaskNotFound)
		}
		if err := st.Remove(n); err == nil {
			t.Errorf("Remove(%d) succeeded", n)
		}
	}
}

func TestLoadLenient(t *testing.T) {
	st := newTestStore(t)
	content := "T|0|good one\n" +
		"this is not a task line\n" +
		"\n" +
		"D|0|missing date\n" +
		"T|1|good two\n"
	if err := os.WriteFile(st.Path(), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	tasks, warnings, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	// Numbering counts only well-formed lines.
	if tasks[0].Description != "good one" || tasks[0].Number != 1 {
		t.Errorf("first = %+v", tasks[0])
	}
	if tasks[1].Description != "good two" || tasks[1].Number != 2 {
		t.Errorf("second = %+v", tasks[1])
	}

	// Blank lines are skipped quietly; the two bad lines warn.
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(warnings), warnings)
	}
	if warnings[0].LineNo != 2 || warnings[1].LineNo != 4 {
		t.Errorf("warning lines = %d, %d; want 2, 4", warnings[0].LineNo, warnings[1].LineNo)
	}
}

func TestRewriteDropsMalformedLines(t *testing.T) {
	st := newTestStore(t)
	content := "T|0|one\ngarbage line\nT|0|two\n"
	if err := os.WriteFile(st.Path(), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	// Task 2 is "two": malformed lines don't count.
	if err := st.SetDone(2, true); err != nil {
		t.Fatal(err)
	}

	want := "T|0|one\nT|1|two\n"
	if got := mustFileContent(t, st.Path()); got != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
}

func TestRewriteLeavesNoTempFile(t *testing.T) {
	st := newTestStore(t)
	if err := st.Append(&task.Task{Kind: task.ToDo, Description: "one"}); err != nil {
		t.Fatal(err)
	}
	if err := st.SetDone(1, true); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(st.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
}

func TestRewrite(t *testing.T) {
	st := newTestStore(t)
	if err := st.Append(&task.Task{Kind: task.ToDo, Description: "old"}); err != nil {
		t.Fatal(err)
	}

	err := st.Rewrite([]*task.Task{
		{Kind: task.ToDo, Description: "new one", Done: true},
		{Kind: task.ToDo, Description: "new two"},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := "T|1|new one\nT|0|new two\n"
	if got := mustFileContent(t, st.Path()); got != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
}

func TestEnsure(t *testing.T) {
	st := newTestStore(t)
	if err := st.Ensure(); err != nil {
		t.Fatal(err)
	}
	if got := mustFileContent(t, st.Path()); got != "" {
		t.Errorf("new file not empty: %q", got)
	}

	// Ensure never truncates an existing file.
	if err := st.Append(&task.Task{Kind: task.ToDo, Description: "keep me"}); err != nil {
		t.Fatal(err)
	}
	if err := st.Ensure(); err != nil {
		t.Fatal(err)
	}
	if got := mustFileContent(t, st.Path()); got != "T|0|keep me\n" {
		t.Errorf("Ensure truncated file: %q", got)
	}
}
