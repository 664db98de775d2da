package session

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Command
		wantErr bool
	}{
		{"list", "list", Command{Verb: VerbList}, false},
		{"bye", "bye", Command{Verb: VerbBye}, false},
		{"verb case insensitive", "LIST", Command{Verb: VerbList}, false},
		{"todo", "todo read a book", Command{Verb: VerbTodo, Arg: "read a book"}, false},
		{
			name: "deadline",
			line: "deadline return library book /by 2026-09-01",
			want: Command{Verb: VerbDeadline, Arg: "return library book", Date: "2026-09-01"},
		},
		{
			name: "event",
			line: "event project meeting /at next monday",
			want: Command{Verb: VerbEvent, Arg: "project meeting", Date: "next monday"},
		},
		{"mark", "mark 2", Command{Verb: VerbMark, Arg: "2"}, false},
		{"unmark", "unmark 2", Command{Verb: VerbUnmark, Arg: "2"}, false},
		{"delete", "delete 3", Command{Verb: VerbDelete, Arg: "3"}, false},
		{"find", "find book", Command{Verb: VerbFind, Arg: "book"}, false},
		{"surrounding whitespace", "  list  ", Command{Verb: VerbList}, false},
		{"empty line", "", Command{}, true},
		{"unknown verb", "blah blah", Command{}, true},
		{"deadline without marker", "deadline return book", Command{}, true},
		{"deadline empty date", "deadline return book /by ", Command{}, true},
		{"event without marker", "event meeting", Command{}, true},
		{"mark without number", "mark", Command{}, true},
		{"find without keyword", "find", Command{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.line, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}
