package driver

import (
	"testing"
	"time"
)

func TestManualFire(t *testing.T) {
	fired := 0
	m := NewManual(time.Second, func() { fired++ })

	if n := m.Fire(3); n != 0 {
		t.Fatalf("Fire before Start = %d, want 0", n)
	}

	m.Start()
	if n := m.Fire(3); n != 3 {
		t.Fatalf("Fire(3) = %d, want 3", n)
	}
	if fired != 3 || m.Fired() != 3 {
		t.Fatalf("fired = %d, Fired() = %d, want 3", fired, m.Fired())
	}

	m.Stop()
	if n := m.Fire(3); n != 0 {
		t.Fatalf("Fire after Stop = %d, want 0", n)
	}
}

func TestManualStopInCallback(t *testing.T) {
	var m *Manual
	fired := 0
	m = NewManual(time.Millisecond, func() {
		fired++
		if fired == 2 {
			m.Stop()
		}
	})

	m.Start()
	if n := m.Fire(10); n != 2 {
		t.Fatalf("Fire(10) = %d, want 2", n)
	}
	if m.Running() {
		t.Fatal("Running() = true after callback stopped the driver")
	}
}

func TestManualCreator(t *testing.T) {
	d := ManualCreator(250*time.Millisecond, func() {})
	if _, ok := d.(*Manual); !ok {
		t.Fatalf("ManualCreator returned %T", d)
	}
	if d.Interval() != 250*time.Millisecond {
		t.Fatalf("Interval() = %v", d.Interval())
	}
}
