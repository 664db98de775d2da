// Package tasklist provides list-level operations on task collections:
// filtering, searching, sorting, and summary counts. Everything is a
// linear scan over the in-memory list.
package tasklist

import (
	"strings"

	"github.com/duke-cli/duke/internal/task"
)

// FilterOptions defines which tasks to include.
type FilterOptions struct {
	Kinds   []task.Kind
	Done    *bool  // nil=no filter, true=only done, false=only pending
	Keyword string // case-insensitive substring match on description
}

// Filter returns tasks matching all specified criteria (AND logic).
func Filter(tasks []*task.Task, opts FilterOptions) []*task.Task {
	var result []*task.Task
	for _, t := range tasks {
		if matchesFilter(t, opts) {
			result = append(result, t)
		}
	}
	return result
}

// Find returns tasks whose description contains keyword,
// case-insensitively. The original list order (and numbering) is
// preserved.
func Find(tasks []*task.Task, keyword string) []*task.Task {
	return Filter(tasks, FilterOptions{Keyword: keyword})
}

func matchesFilter(t *task.Task, opts FilterOptions) bool {
	if len(opts.Kinds) > 0 && !containsKind(opts.Kinds, t.Kind) {
		return false
	}
	if opts.Done != nil && t.Done != *opts.Done {
		return false
	}
	if opts.Keyword != "" && !matchesKeyword(t, opts.Keyword) {
		return false
	}
	return true
}

func matchesKeyword(t *task.Task, keyword string) bool {
	return strings.Contains(strings.ToLower(t.Description), strings.ToLower(keyword))
}

func containsKind(kinds []task.Kind, k task.Kind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}
