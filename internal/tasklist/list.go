package tasklist

import "github.com/duke-cli/duke/internal/task"

// ListOptions combines filtering, sorting, and truncation for a single
// list query.
type ListOptions struct {
	Filter  FilterOptions
	SortBy  string
	Reverse bool
	Limit   int // 0 means no limit
}

// List applies filter, sort, and limit in that order. The input slice
// is not modified; sorting happens on the filtered copy.
func List(tasks []*task.Task, opts ListOptions) []*task.Task {
	result := Filter(tasks, opts.Filter)
	Sort(result, opts.SortBy, opts.Reverse)
	if opts.Limit > 0 && len(result) > opts.Limit {
		result = result[:opts.Limit]
	}
	return result
}
