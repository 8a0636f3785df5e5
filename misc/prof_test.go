package misc

import (
	"testing"
	"time"
)

func TestProfTimerElapsed(t *testing.T) {
	timer := NewProfTimer("test")
	timer.Start = timer.Start.Add(-time.Second)

	if got := timer.Elapsed(); got < time.Second {
		t.Errorf("Elapsed() = %v, want at least 1s", got)
	}
	if timer.Name != "test" {
		t.Errorf("Name = %q", timer.Name)
	}
}
