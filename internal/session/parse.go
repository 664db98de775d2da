package session

import (
	"strings"

	"github.com/duke-cli/duke/internal/clierr"
)

// Verb identifies a session command.
type Verb string

// Session verbs.
const (
	VerbTodo     Verb = "todo"
	VerbDeadline Verb = "deadline"
	VerbEvent    Verb = "event"
	VerbMark     Verb = "mark"
	VerbUnmark   Verb = "unmark"
	VerbDelete   Verb = "delete"
	VerbList     Verb = "list"
	VerbFind     Verb = "find"
	VerbBye      Verb = "bye"
)

// Date markers separating the description from the date argument.
const (
	byMarker = "/by"
	atMarker = "/at"
)

// Command is one parsed session command. Arg holds the description,
// task number, or search keyword depending on the verb; Date is only
// set for deadline and event.
type Command struct {
	Verb Verb
	Arg  string
	Date string
}

// Parse splits one input line into a Command. Verbs are matched
// case-insensitively; arguments keep their original case.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, errUnknown
	}

	verbStr, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch Verb(strings.ToLower(verbStr)) {
	case VerbList:
		return Command{Verb: VerbList}, nil
	case VerbBye:
		return Command{Verb: VerbBye}, nil
	case VerbTodo:
		return Command{Verb: VerbTodo, Arg: rest}, nil
	case VerbDeadline:
		return parseDated(VerbDeadline, rest, byMarker)
	case VerbEvent:
		return parseDated(VerbEvent, rest, atMarker)
	case VerbMark:
		return requireArg(VerbMark, rest, "mark which task? e.g. 'mark 2'")
	case VerbUnmark:
		return requireArg(VerbUnmark, rest, "unmark which task? e.g. 'unmark 2'")
	case VerbDelete:
		return requireArg(VerbDelete, rest, "delete which task? e.g. 'delete 2'")
	case VerbFind:
		return requireArg(VerbFind, rest, "find what? e.g. 'find book'")
	default:
		return Command{}, errUnknown
	}
}

// parseDated splits "DESC <marker> DATE" for deadline/event commands.
func parseDated(verb Verb, rest, marker string) (Command, error) {
	desc, dateStr, found := cutMarker(rest, marker)
	if !found || dateStr == "" {
		return Command{}, clierr.Newf(clierr.InvalidInput,
			"every %s needs a date: '%s DESCRIPTION %s DATE'", verb, verb, marker)
	}
	return Command{Verb: verb, Arg: desc, Date: dateStr}, nil
}

// cutMarker splits rest around a whitespace-delimited marker token.
func cutMarker(rest, marker string) (before, after string, found bool) {
	idx := strings.Index(rest, " "+marker+" ")
	if idx < 0 {
		return rest, "", false
	}
	before = strings.TrimSpace(rest[:idx])
	after = strings.TrimSpace(rest[idx+len(marker)+2:])
	return before, after, true
}

func requireArg(verb Verb, rest, hint string) (Command, error) {
	if rest == "" {
		return Command{}, clierr.New(clierr.InvalidInput, hint)
	}
	return Command{Verb: verb, Arg: rest}, nil
}
