package task

import (
	"errors"
	"testing"

	"github.com/duke-cli/duke/internal/clierr"
)

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		name    string
		desc    string
		wantErr bool
	}{
		{"plain", "read a book", false},
		{"unicode", "café meeting ☕", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"contains separator", "read|a|book", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDescription(tt.desc)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDescription(%q) = %v, wantErr %v", tt.desc, err, tt.wantErr)
			}
		})
	}
}

func TestValidateUnique(t *testing.T) {
	existing := []*Task{
		{Kind: ToDo, Description: "read a book", Number: 1},
		{Kind: ToDo, Description: "water the plants", Number: 2},
	}

	if err := ValidateUnique("walk the dog", existing); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := ValidateUnique("read a book", existing)
	if err == nil {
		t.Fatal("duplicate description accepted")
	}
	var cliErr *clierr.Error
	if !errors.As(err, &cliErr) || cliErr.Code != clierr.DuplicateTask {
		t.Errorf("error = %v, want code %s", err, clierr.DuplicateTask)
	}
}

func TestValidateKindName(t *testing.T) {
	for _, name := range []string{"todo", "deadline", "event"} {
		k, err := ValidateKindName(name)
		if err != nil {
			t.Errorf("ValidateKindName(%q): %v", name, err)
		}
		if k.Name() != name {
			t.Errorf("ValidateKindName(%q) = %q", name, k.Name())
		}
	}

	if _, err := ValidateKindName("chore"); err == nil {
		t.Error("unknown kind accepted")
	}
}

func TestValidateTaskNumber(t *testing.T) {
	err := ValidateTaskNumber("abc")
	if err.Message != "please enter a valid task number" {
		t.Errorf("message = %q", err.Message)
	}
	if err.Code != clierr.InvalidTaskNumber {
		t.Errorf("code = %q", err.Code)
	}
}
