package input

import (
	"reflect"
	"testing"

	"github.com/javiermolinar/dulcinea/internal/task"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Query
	}{
		{
			name:  "plain text",
			input: "team sync",
			want:  Query{Text: "team sync"},
		},
		{
			name:  "categories",
			input: "trip #Family #health",
			want:  Query{Text: "trip", Categories: []task.Category{task.CategoryFamily, task.CategoryHealth}},
		},
		{
			name:  "window",
			input: "+4w review",
			want:  Query{Text: "review", WithinWeeks: 4, HasWithin: true},
		},
		{
			name:  "unknown category stays text",
			input: "#chores",
			want:  Query{Text: "#chores"},
		},
		{
			name:  "malformed window stays text",
			input: "+xw +4d",
			want:  Query{Text: "+xw +4d"},
		},
		{
			name:  "empty",
			input: "   ",
			want:  Query{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQuery(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseQuery(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompleteCategory(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"trip #fa", "trip #family ", true},
		{"#h", "#health ", true},
		{"#", "#work ", true},
		{"trip", "", false},
		{"#zzz", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := CompleteCategory(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("CompleteCategory(%q) = %q, %t; want %q, %t", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
