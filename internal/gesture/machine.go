package gesture

import (
	"time"

	"github.com/javiermolinar/dulcinea/internal/dateutil"
	"github.com/javiermolinar/dulcinea/internal/task"
)

// Machine owns the single current gesture.
//
// Every method returns an Outcome; none of them return errors. Pointer
// positions the Locator cannot resolve are skipped and the gesture keeps its
// last valid value, including on release.
type Machine struct {
	locator Locator
	tasks   TaskSource
	capture Capture

	state   State
	release func()
}

// New creates an idle machine. A nil capture is replaced by NopCapture.
func New(locator Locator, tasks TaskSource, capture Capture) *Machine {
	if capture == nil {
		capture = NopCapture{}
	}
	return &Machine{
		locator: locator,
		tasks:   tasks,
		capture: capture,
		state:   Idle{},
	}
}

// State returns the current gesture state.
func (m *Machine) State() State {
	return m.state
}

// Active reports whether a gesture is in progress.
func (m *Machine) Active() bool {
	return m.state.Kind() != KindIdle
}

// PointerDown starts a gesture according to the event target. It is
// rejected while another gesture is active.
func (m *Machine) PointerDown(ev PointerEvent) Outcome {
	if m.Active() {
		return Outcome{Type: OutcomeRejected, Gesture: m.state.Kind()}
	}
	if ev.Button != ButtonPrimary {
		return Outcome{}
	}
	date, ok := m.locator.DateAt(ev.X, ev.Y)
	if !ok {
		return Outcome{}
	}
	date = dateutil.TruncateToDay(date)

	switch ev.Target.Kind {
	case TargetGrid:
		m.enter(Selecting{Anchor: date, Current: date})
		return Outcome{Type: OutcomeStarted, Gesture: KindSelecting, Range: task.SingleDay(date)}

	case TargetTaskBody:
		t, ok := m.tasks.Task(ev.Target.TaskID)
		if !ok {
			return Outcome{}
		}
		r := t.Range()
		m.enter(MovingTask{
			TaskID:     t.ID,
			Original:   r,
			OffsetDays: dateutil.DaysBetween(r.Start, date),
			Preview:    r,
		})
		return Outcome{Type: OutcomeStarted, Gesture: KindMoving, TaskID: t.ID, Range: r}

	case TargetTaskEdge:
		t, ok := m.tasks.Task(ev.Target.TaskID)
		if !ok {
			return Outcome{}
		}
		r := t.Range()
		m.enter(ResizingTask{
			TaskID:   t.ID,
			Edge:     ev.Target.Edge,
			Original: r,
			Preview:  r,
		})
		return Outcome{Type: OutcomeStarted, Gesture: KindResizing, TaskID: t.ID, Range: r}
	}
	return Outcome{}
}

// PointerMove updates the active gesture with the date under the pointer.
func (m *Machine) PointerMove(ev PointerEvent) Outcome {
	if !m.Active() {
		return Outcome{}
	}
	if m.taskVanished() {
		return m.discard()
	}
	date, ok := m.locator.DateAt(ev.X, ev.Y)
	if !ok {
		return Outcome{Type: OutcomeNone, Gesture: m.state.Kind()}
	}
	return m.update(date)
}

// PointerUp ends the active gesture. A selection is surfaced as
// OutcomeSelectionCommitted for the caller to confirm; a move or resize
// commits its last preview as OutcomeTaskCommitted.
func (m *Machine) PointerUp(ev PointerEvent) Outcome {
	if !m.Active() {
		return Outcome{}
	}
	if m.taskVanished() {
		return m.discard()
	}
	if date, ok := m.locator.DateAt(ev.X, ev.Y); ok {
		m.update(date)
	}

	switch st := m.state.(type) {
	case Selecting:
		m.finish()
		return Outcome{Type: OutcomeSelectionCommitted, Gesture: KindSelecting, Range: st.Range()}
	case MovingTask:
		m.finish()
		return Outcome{Type: OutcomeTaskCommitted, Gesture: KindMoving, TaskID: st.TaskID, Range: st.Preview}
	case ResizingTask:
		m.finish()
		return Outcome{Type: OutcomeTaskCommitted, Gesture: KindResizing, TaskID: st.TaskID, Range: st.Preview}
	}
	return Outcome{}
}

// Cancel abandons the active gesture without committing. A gesture whose task
// is gone is discarded instead.
func (m *Machine) Cancel() Outcome {
	if m.taskVanished() {
		return m.discard()
	}
	out := Outcome{Type: OutcomeCancelled, Gesture: m.state.Kind()}
	switch st := m.state.(type) {
	case Idle:
		return Outcome{}
	case Selecting:
		out.Range = st.Range()
	case MovingTask:
		out.TaskID = st.TaskID
		out.Range = st.Original
	case ResizingTask:
		out.TaskID = st.TaskID
		out.Range = st.Original
	}
	m.finish()
	return out
}

func (m *Machine) update(date time.Time) Outcome {
	switch st := m.state.(type) {
	case Selecting:
		st.Current = dateutil.TruncateToDay(date)
		m.state = st
		return Outcome{Type: OutcomeUpdated, Gesture: KindSelecting, Range: st.Range()}
	case MovingTask:
		st.Preview = task.MoveTo(st.Original, dateutil.TruncateToDay(date).AddDate(0, 0, -st.OffsetDays))
		m.state = st
		return Outcome{Type: OutcomeUpdated, Gesture: KindMoving, TaskID: st.TaskID, Range: st.Preview}
	case ResizingTask:
		st.Preview = task.Resize(st.Original, st.Edge, date)
		m.state = st
		return Outcome{Type: OutcomeUpdated, Gesture: KindResizing, TaskID: st.TaskID, Range: st.Preview}
	}
	return Outcome{}
}

func (m *Machine) taskVanished() bool {
	var id int64
	switch st := m.state.(type) {
	case MovingTask:
		id = st.TaskID
	case ResizingTask:
		id = st.TaskID
	default:
		return false
	}
	_, ok := m.tasks.Task(id)
	return !ok
}

func (m *Machine) discard() Outcome {
	out := Outcome{Type: OutcomeDiscarded, Gesture: m.state.Kind()}
	switch st := m.state.(type) {
	case MovingTask:
		out.TaskID = st.TaskID
	case ResizingTask:
		out.TaskID = st.TaskID
	}
	m.finish()
	return out
}

func (m *Machine) enter(s State) {
	m.state = s
	m.release = m.capture.Acquire()
}

// finish returns to Idle and gives the capture back exactly once.
func (m *Machine) finish() {
	m.state = Idle{}
	if m.release != nil {
		release := m.release
		m.release = nil
		release()
	}
}
