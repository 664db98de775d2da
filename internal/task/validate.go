package task

import (
	"strings"

	"github.com/duke-cli/duke/internal/clierr"
)

// ValidateDescription checks that a description is usable: non-empty
// and free of the line-format separator.
func ValidateDescription(desc string) error {
	if strings.TrimSpace(desc) == "" {
		return clierr.New(clierr.InvalidInput, "task description must not be empty")
	}
	if strings.Contains(desc, Separator) {
		return clierr.Newf(clierr.InvalidInput,
			"task description must not contain %q", Separator).
			WithDetails(map[string]any{"description": desc})
	}
	return nil
}

// ValidateUnique checks that desc does not collide with an existing
// task description. Descriptions are unique within the list.
func ValidateUnique(desc string, existing []*Task) error {
	for _, t := range existing {
		if t.Description == desc {
			return clierr.Newf(clierr.DuplicateTask,
				"a task with description %q already exists (#%d)", desc, t.Number).
				WithDetails(map[string]any{
					"description": desc,
					"number":      t.Number,
				})
		}
	}
	return nil
}

// ValidateKindName checks that a kind filter name is known.
func ValidateKindName(name string) (Kind, error) {
	k, ok := KindFromName(name)
	if !ok {
		return "", clierr.Newf(clierr.InvalidKind, "invalid kind %q", name).
			WithDetails(map[string]any{
				"kind":    name,
				"allowed": []string{ToDo.Name(), Deadline.Name(), Event.Name()},
			})
	}
	return k, nil
}

// ValidateTaskNumber returns the fixed error for non-numeric or
// out-of-range task numbers.
func ValidateTaskNumber(input string) *clierr.Error {
	return clierr.New(clierr.InvalidTaskNumber, "please enter a valid task number").
		WithDetails(map[string]any{"input": input})
}

// ValidateDate returns a CLIError for invalid date input.
func ValidateDate(field, input string, err error) *clierr.Error {
	return clierr.Newf(clierr.InvalidDate, "invalid %s date: %v", field, err).
		WithDetails(map[string]any{
			"field": field,
			"input": input,
		})
}
