// Package gesture arbitrates the pointer gestures on the month grid: range
// selection, task move and task resize. At most one gesture is active.
package gesture

import (
	"time"

	"github.com/javiermolinar/dulcinea/internal/task"
)

// Kind names the variant of a State.
type Kind int

const (
	KindIdle Kind = iota
	KindSelecting
	KindMoving
	KindResizing
)

func (k Kind) String() string {
	switch k {
	case KindSelecting:
		return "selecting"
	case KindMoving:
		return "moving"
	case KindResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// State is the current interaction. Its concrete type is one of Idle,
// Selecting, MovingTask or ResizingTask.
type State interface {
	Kind() Kind
	sealed()
}

// Idle means no gesture is in progress.
type Idle struct{}

// Selecting is a drag-select anchored where the pointer went down.
type Selecting struct {
	Anchor  time.Time
	Current time.Time
}

// Range returns the selection with its endpoints ordered.
func (s Selecting) Range() task.Range {
	return task.NewRange(s.Anchor, s.Current)
}

// MovingTask drags a whole task. OffsetDays is the distance between the
// task's start and the day that was grabbed.
type MovingTask struct {
	TaskID     int64
	Original   task.Range
	OffsetDays int
	Preview    task.Range
}

// ResizingTask drags one edge of a task.
type ResizingTask struct {
	TaskID   int64
	Edge     task.Edge
	Original task.Range
	Preview  task.Range
}

func (Idle) Kind() Kind         { return KindIdle }
func (Selecting) Kind() Kind    { return KindSelecting }
func (MovingTask) Kind() Kind   { return KindMoving }
func (ResizingTask) Kind() Kind { return KindResizing }

func (Idle) sealed()         {}
func (Selecting) sealed()    {}
func (MovingTask) sealed()   {}
func (ResizingTask) sealed() {}

// Highlight returns the range the presentation should highlight for s and
// the task it belongs to, if any. ok is false when idle.
func Highlight(s State) (r task.Range, taskID int64, ok bool) {
	switch st := s.(type) {
	case Selecting:
		return st.Range(), 0, true
	case MovingTask:
		return st.Preview, st.TaskID, true
	case ResizingTask:
		return st.Preview, st.TaskID, true
	default:
		return task.Range{}, 0, false
	}
}
