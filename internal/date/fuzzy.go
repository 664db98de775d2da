package date

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// parser recognizes English natural-language dates ("tomorrow",
// "next friday", "in 3 days"). Built once; when parsers are stateless
// after rule registration.
var parser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// ParseFuzzy parses s as an exact YYYY-MM-DD date, or failing that as a
// natural-language expression resolved against base. The time-of-day
// component of a natural-language match is discarded.
func ParseFuzzy(s string, base time.Time) (Date, error) {
	if d, err := Parse(s); err == nil {
		return d, nil
	}

	r, err := parser.Parse(s, base)
	if err != nil || r == nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or a phrase like %q", s, "next friday")
	}
	// Reject partial matches such as "read book tomorrow" — the whole
	// input must be the date expression.
	if strings.TrimSpace(s) != strings.TrimSpace(r.Text) {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or a phrase like %q", s, "next friday")
	}

	t := r.Time
	return New(t.Year(), t.Month(), t.Day()), nil
}
