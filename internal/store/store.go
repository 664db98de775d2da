// Package store persists the task list to a flat pipe-delimited text
// file. Creations append a line; status changes and deletions rewrite
// the whole file through a temporary file and rename. O(n) per
// mutation, by the nature of the format.
package store

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/duke-cli/duke/internal/clierr"
	"github.com/duke-cli/duke/internal/task"
)

const (
	fileMode = 0o600

	// tmpSuffix names the scratch file used for whole-file rewrites.
	// It lives next to the task file so the final rename stays on one
	// filesystem.
	tmpSuffix = ".tmp"
)

// Store reads and writes the task file.
type Store struct {
	path string
}

// New creates a Store for the task file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the task file path.
func (s *Store) Path() string {
	return s.path
}

// Ensure creates an empty task file if none exists.
func (s *Store) Ensure() error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, fileMode) //nolint:gosec // task file path from trusted config
	if err != nil {
		return fmt.Errorf("creating task file: %w", err)
	}
	return f.Close()
}

// Warning describes a line that could not be parsed during loading.
type Warning struct {
	LineNo int // 1-based line number in the file
	Line   string
	Err    error
}

// Load reads the task file line-by-line and parses each line into a
// Task. Malformed lines are skipped and returned as warnings rather
// than aborting the load. A missing file yields an empty list.
// Loaded tasks are numbered 1..n in file order.
func (s *Store) Load() ([]*task.Task, []Warning, error) {
	f, err := os.Open(s.path) //nolint:gosec // task file path from trusted config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("reading task file: %w", err)
	}
	defer f.Close()

	var tasks []*task.Task
	var warnings []Warning

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, parseErr := task.ParseLine(line)
		if parseErr != nil {
			warnings = append(warnings, Warning{LineNo: lineNo, Line: line, Err: parseErr})
			continue
		}
		t.Number = len(tasks) + 1
		tasks = append(tasks, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading task file: %w", err)
	}

	return tasks, warnings, nil
}

// Append writes one new task line to the end of the file, creating
// the file if needed.
func (s *Store) Append(t *task.Task) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileMode) //nolint:gosec // task file path from trusted config
	if err != nil {
		return fmt.Errorf("opening task file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(task.FormatLine(t) + "\n"); err != nil {
		return fmt.Errorf("writing task line: %w", err)
	}
	return nil
}

// SetDone rewrites the file with task n's status bit replaced.
// n is 1-based and counts well-formed task lines; malformed lines are
// dropped during the rewrite so on-disk numbering stays aligned with
// the loaded list.
func (s *Store) SetDone(n int, done bool) error {
	return s.rewriteLines(n, func(t *task.Task) *task.Task {
		t.Done = done
		return t
	})
}

// Remove rewrites the file with task n omitted (compaction).
// n is 1-based, with the same counting rules as SetDone.
func (s *Store) Remove(n int) error {
	return s.rewriteLines(n, func(*task.Task) *task.Task {
		return nil
	})
}

// Rewrite replaces the entire file content with the given tasks.
func (s *Store) Rewrite(tasks []*task.Task) error {
	var buf strings.Builder
	for _, t := range tasks {
		buf.WriteString(task.FormatLine(t))
		buf.WriteByte('\n')
	}
	return s.replaceWith(buf.String())
}

// rewriteLines streams the task file into a temporary file, applying
// change to the nth well-formed task line. change returns the
// replacement task, or nil to drop the line. The temporary file is
// renamed over the original on success.
func (s *Store) rewriteLines(n int, change func(*task.Task) *task.Task) error {
	tasks, _, err := s.Load()
	if err != nil {
		return err
	}
	if n < 1 || n > len(tasks) {
		return clierr.Newf(clierr.TaskNotFound, "task not found: #%d", n).
			WithDetails(map[string]any{"number": n})
	}

	var buf strings.Builder
	for i, t := range tasks {
		if i+1 == n {
			t = change(t)
			if t == nil {
				continue
			}
		}
		buf.WriteString(task.FormatLine(t))
		buf.WriteByte('\n')
	}

	return s.replaceWith(buf.String())
}

// replaceWith writes content to the temporary file and renames it
// over the task file.
func (s *Store) replaceWith(content string) error {
	tmp := s.path + tmpSuffix
	if err := os.WriteFile(tmp, []byte(content), fileMode); err != nil {
		return fmt.Errorf("writing temp task file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing task file: %w", err)
	}
	return nil
}
