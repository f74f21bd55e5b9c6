package tui

import "testing"

func TestMouseCapture(t *testing.T) {
	c := &mouseCapture{}
	if c.flush() != nil {
		t.Fatal("nothing queued, flush should be nil")
	}

	release := c.Acquire()
	if !c.Held() {
		t.Fatal("Acquire should hold the capture")
	}
	if c.flush() == nil {
		t.Fatal("Acquire should queue a mode change")
	}
	if c.flush() != nil {
		t.Error("flush should drain the queue")
	}

	release()
	if c.Held() {
		t.Error("release should give the capture back")
	}

	c.Acquire()()
	if len(c.pending) != 3 {
		t.Errorf("pending = %d, want 3", len(c.pending))
	}
	if c.flush() == nil {
		t.Error("expected a sequence")
	}
}
