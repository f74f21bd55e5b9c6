package gesture

import (
	"fmt"
	"time"

	"github.com/javiermolinar/dulcinea/internal/task"
)

// Button identifies the pointer button of an event.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonMiddle
	ButtonSecondary
)

// TargetKind is what the presentation found under the pointer.
type TargetKind int

const (
	TargetGrid TargetKind = iota
	TargetTaskBody
	TargetTaskEdge
)

// Target is the hit-test result attached to a pointer event.
type Target struct {
	Kind   TargetKind
	TaskID int64
	Edge   task.Edge
}

// GridTarget is an empty part of the grid.
func GridTarget() Target {
	return Target{Kind: TargetGrid}
}

// BodyTarget is the body of a task bar.
func BodyTarget(id int64) Target {
	return Target{Kind: TargetTaskBody, TaskID: id}
}

// EdgeTarget is the start or end handle of a task bar.
func EdgeTarget(id int64, edge task.Edge) Target {
	return Target{Kind: TargetTaskEdge, TaskID: id, Edge: edge}
}

func (t Target) String() string {
	switch t.Kind {
	case TargetTaskBody:
		return fmt.Sprintf("task %d", t.TaskID)
	case TargetTaskEdge:
		return fmt.Sprintf("task %d %s edge", t.TaskID, t.Edge)
	default:
		return "grid"
	}
}

// PointerEvent is a pointer down, move or up in container coordinates.
type PointerEvent struct {
	X, Y   float64
	Button Button
	Target Target
}

// Locator resolves a pointer position to the date displayed under it.
type Locator interface {
	DateAt(x, y float64) (time.Time, bool)
}

// TaskSource looks tasks up by ID.
type TaskSource interface {
	Task(id int64) (*task.Task, bool)
}

// Capture routes all pointer events to the machine while a gesture is
// active. Acquire returns the function that gives the capture back.
type Capture interface {
	Acquire() (release func())
}

// CaptureFunc adapts a function to Capture.
type CaptureFunc func() func()

// Acquire calls f.
func (f CaptureFunc) Acquire() func() {
	return f()
}

// NopCapture is a Capture that does nothing.
type NopCapture struct{}

// Acquire returns a no-op release.
func (NopCapture) Acquire() func() {
	return func() {}
}

// OutcomeType classifies the result of feeding an event to the machine.
type OutcomeType int

const (
	OutcomeNone OutcomeType = iota
	OutcomeRejected
	OutcomeStarted
	OutcomeUpdated
	OutcomeSelectionCommitted
	OutcomeTaskCommitted
	OutcomeCancelled
	OutcomeDiscarded
)

func (o OutcomeType) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeStarted:
		return "started"
	case OutcomeUpdated:
		return "updated"
	case OutcomeSelectionCommitted:
		return "selection-committed"
	case OutcomeTaskCommitted:
		return "task-committed"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeDiscarded:
		return "discarded"
	default:
		return "none"
	}
}

// Outcome describes what an event did.
//
// Range is the normalized selection for selection outcomes and the task's
// new range for move/resize outcomes. For OutcomeCancelled on a task
// gesture it is the range the task had when the gesture started.
type Outcome struct {
	Type    OutcomeType
	Gesture Kind
	TaskID  int64
	Range   task.Range
}

// Changed reports whether the outcome altered the machine state or a range.
func (o Outcome) Changed() bool {
	return o.Type != OutcomeNone && o.Type != OutcomeRejected
}
