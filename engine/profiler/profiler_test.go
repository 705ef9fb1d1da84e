package profiler

import (
	"testing"
	"time"
)

func TestTickWithinInterval(t *testing.T) {
	p := NewProfiler(WithInterval(time.Hour))
	for i := 0; i < 10; i++ {
		if p.Tick() {
			t.Fatal("tick logged before the interval elapsed")
		}
	}
}

func TestTickLogsAfterInterval(t *testing.T) {
	p := NewProfiler(WithInterval(time.Millisecond))
	p.Tick()
	time.Sleep(5 * time.Millisecond)
	if !p.Tick() {
		t.Fatal("tick did not log after the interval elapsed")
	}
	if p.frameCount != 0 {
		t.Fatalf("frame count = %d after logging, want 0", p.frameCount)
	}
}

func TestWithIntervalClampsNonPositive(t *testing.T) {
	p := NewProfiler(WithInterval(0))
	if p.updateInterval != time.Second {
		t.Fatalf("interval = %v, want default 1s", p.updateInterval)
	}
}
