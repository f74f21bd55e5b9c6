// Package input parses what the user types into the search prompt.
package input

import (
	"strconv"
	"strings"

	"github.com/javiermolinar/dulcinea/internal/task"
)

// Query is a parsed search prompt.
//
// Words starting with '#' name categories ("#work #family"), a word like
// "+4w" limits the time window to four weeks and everything else is title
// text. Unknown categories are kept as text.
type Query struct {
	Text        string
	Categories  []task.Category
	WithinWeeks int
	HasWithin   bool
}

// ParseQuery splits prompt input into title text and filter tokens.
func ParseQuery(s string) Query {
	var q Query
	var text []string
	for _, word := range strings.Fields(s) {
		if cat, ok := categoryToken(word); ok {
			q.Categories = append(q.Categories, cat)
			continue
		}
		if n, ok := windowToken(word); ok {
			q.WithinWeeks = n
			q.HasWithin = true
			continue
		}
		text = append(text, word)
	}
	q.Text = strings.Join(text, " ")
	return q
}

func categoryToken(word string) (task.Category, bool) {
	if len(word) < 2 || word[0] != '#' {
		return "", false
	}
	cat, err := task.ParseCategory(word[1:])
	if err != nil {
		return "", false
	}
	return cat, true
}

func windowToken(word string) (int, bool) {
	if len(word) < 3 || word[0] != '+' || (word[len(word)-1] != 'w' && word[len(word)-1] != 'W') {
		return 0, false
	}
	n, err := strconv.Atoi(word[1 : len(word)-1])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// CompleteCategory completes a trailing "#prefix" to the first category
// whose name starts with prefix.
func CompleteCategory(s string) (string, bool) {
	idx := strings.LastIndexAny(s, " ")
	last := s[idx+1:]
	if !strings.HasPrefix(last, "#") {
		return "", false
	}
	prefix := strings.ToLower(last[1:])
	for _, c := range task.Categories() {
		if strings.HasPrefix(string(c), prefix) {
			return s[:idx+1] + "#" + string(c) + " ", true
		}
	}
	return "", false
}
