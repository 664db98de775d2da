package tasklist

import (
	"strconv"
	"strings"

	"github.com/duke-cli/duke/internal/clierr"
	"github.com/duke-cli/duke/internal/task"
)

// KindCount holds a count for one task kind.
type KindCount struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
	Done  int    `json:"done"`
}

// Stats is the aggregate task list summary.
type Stats struct {
	Total   int         `json:"total"`
	Done    int         `json:"done"`
	Pending int         `json:"pending"`
	Kinds   []KindCount `json:"kinds"`
}

// Summarize computes counts by kind and status from all tasks.
func Summarize(tasks []*task.Task) Stats {
	kindMap := make(map[task.Kind]*KindCount, len(task.Kinds()))
	for _, k := range task.Kinds() {
		kindMap[k] = &KindCount{Kind: k.Name()}
	}

	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			s.Done++
		}
		if kc, ok := kindMap[t.Kind]; ok {
			kc.Count++
			if t.Done {
				kc.Done++
			}
		}
	}
	s.Pending = s.Total - s.Done

	s.Kinds = make([]KindCount, 0, len(task.Kinds()))
	for _, k := range task.Kinds() {
		s.Kinds = append(s.Kinds, *kindMap[k])
	}
	return s
}

// ParseNumbers splits a comma-separated task number string into
// deduplicated 1-based ints, preserving input order.
func ParseNumbers(arg string) ([]int, error) {
	parts := strings.Split(arg, ",")
	seen := make(map[int]bool, len(parts))
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, task.ValidateTaskNumber(p)
		}
		if !seen[n] {
			nums = append(nums, n)
			seen[n] = true
		}
	}
	if len(nums) == 0 {
		return nil, clierr.New(clierr.InvalidTaskNumber, "please enter a valid task number")
	}
	return nums, nil
}
