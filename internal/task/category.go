package task

import "strings"

// Category is the opaque label a task is filed under.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryFamily   Category = "family"
	CategoryHealth   Category = "health"
	CategoryOther    Category = "other"
)

// CategoryInfo holds the display name and color of a category.
type CategoryInfo struct {
	Name  string
	Color string // hex, e.g. "#3b82f6"
}

var categoryTable = map[Category]CategoryInfo{
	CategoryWork:     {Name: "Work", Color: "#3b82f6"},
	CategoryPersonal: {Name: "Personal", Color: "#22c55e"},
	CategoryFamily:   {Name: "Family", Color: "#eab308"},
	CategoryHealth:   {Name: "Health", Color: "#ef4444"},
	CategoryOther:    {Name: "Other", Color: "#a855f7"},
}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryWork,
		CategoryPersonal,
		CategoryFamily,
		CategoryHealth,
		CategoryOther,
	}
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// Valid returns true if the category is a known value.
func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

// Info returns the label and color of the category.
// Unknown categories fall back to Other.
func (c Category) Info() CategoryInfo {
	if info, ok := categoryTable[c]; ok {
		return info
	}
	return categoryTable[CategoryOther]
}

// Index returns the position of the category in display order, or -1.
func (c Category) Index() int {
	for i, cat := range Categories() {
		if cat == c {
			return i
		}
	}
	return -1
}
