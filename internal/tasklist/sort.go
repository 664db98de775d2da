package tasklist

import (
	"sort"

	"github.com/duke-cli/duke/internal/task"
)

// Sort fields accepted by --sort.
const (
	fieldNumber = "number"
	fieldKind   = "kind"
	fieldDate   = "date"
	fieldStatus = "status"
)

// ValidSortFields returns the list of valid --sort field names.
func ValidSortFields() []string {
	return []string{fieldNumber, fieldKind, fieldDate, fieldStatus}
}

// Sort sorts tasks by the given field. Kind order follows the
// declaration order (todo, deadline, event), not alphabetical.
// Sorting is stable so equal keys keep list order.
func Sort(tasks []*task.Task, field string, reverse bool) {
	sort.SliceStable(tasks, func(i, j int) bool {
		less := compareTasks(tasks[i], tasks[j], field)
		if reverse {
			return !less
		}
		return less
	})
}

func compareTasks(a, b *task.Task, field string) bool {
	switch field {
	case fieldKind:
		return kindIndex(a.Kind) < kindIndex(b.Kind)
	case fieldDate:
		return compareDate(a, b)
	case fieldStatus:
		// Pending before done.
		return !a.Done && b.Done
	default:
		return a.Number < b.Number
	}
}

func compareDate(a, b *task.Task) bool {
	if a.Date == nil && b.Date == nil {
		return false
	}
	if a.Date == nil {
		return false // nil sorts last
	}
	if b.Date == nil {
		return true
	}
	return a.Date.Before(b.Date.Time)
}

func kindIndex(k task.Kind) int {
	for i, kind := range task.Kinds() {
		if kind == k {
			return i
		}
	}
	return -1
}
