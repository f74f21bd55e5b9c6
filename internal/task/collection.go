package task

import (
	"sort"
	"time"
)

// Collection is the resident, in-memory set of tasks the engine works on.
// It is not safe for concurrent use; all access happens on the event loop.
type Collection struct {
	tasks  map[int64]*Task
	nextID int64
}

// NewCollection creates a collection seeded with the given tasks.
func NewCollection(tasks ...*Task) *Collection {
	c := &Collection{
		tasks:  make(map[int64]*Task),
		nextID: 1,
	}
	c.Merge(tasks)
	return c
}

// Len returns the number of tasks.
func (c *Collection) Len() int {
	return len(c.tasks)
}

// Add inserts a task. A zero ID is replaced by the next free ID.
func (c *Collection) Add(t *Task) *Task {
	if t.ID == 0 {
		t.ID = c.nextID
	}
	c.tasks[t.ID] = t
	if t.ID >= c.nextID {
		c.nextID = t.ID + 1
	}
	return t
}

// Merge inserts or replaces tasks by ID.
func (c *Collection) Merge(tasks []*Task) {
	for _, t := range tasks {
		if t == nil {
			continue
		}
		c.Add(t)
	}
}

// Task returns the task with the given ID.
func (c *Collection) Task(id int64) (*Task, bool) {
	t, ok := c.tasks[id]
	return t, ok
}

// SetRange replaces a task's range in place.
func (c *Collection) SetRange(id int64, r Range) error {
	t, ok := c.tasks[id]
	if !ok {
		return ErrTaskNotFound
	}
	t.SetRange(r)
	return nil
}

// Remove deletes a task.
func (c *Collection) Remove(id int64) error {
	if _, ok := c.tasks[id]; !ok {
		return ErrTaskNotFound
	}
	delete(c.tasks, id)
	return nil
}

// All returns every task ordered by ID.
func (c *Collection) All() []*Task {
	result := make([]*Task, 0, len(c.tasks))
	for _, t := range c.tasks {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Intersecting returns the tasks overlapping [start, end], ordered by ID.
func (c *Collection) Intersecting(start, end time.Time) []*Task {
	window := NewRange(start, end)
	var result []*Task
	for _, t := range c.All() {
		if t.Range().Overlaps(window) {
			result = append(result, t)
		}
	}
	return result
}
