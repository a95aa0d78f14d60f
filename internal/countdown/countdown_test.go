package countdown

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{180, "03:00"},
		{179, "02:59"},
		{61, "01:01"},
		{59, "00:59"},
		{0, "00:00"},
		{-5, "00:00"},
		{3600, "60:00"},
	}
	for _, tt := range tests {
		if got := Format(tt.seconds); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFraction(t *testing.T) {
	tests := []struct {
		remaining, total int
		want             float64
	}{
		{180, 180, 1},
		{90, 180, 0.5},
		{0, 180, 0},
		{200, 180, 1},
		{-1, 180, 0},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := Fraction(tt.remaining, tt.total); got != tt.want {
			t.Errorf("Fraction(%d, %d) = %v, want %v", tt.remaining, tt.total, got, tt.want)
		}
	}
}

func TestTicker_StoppedChannelIsNil(t *testing.T) {
	tk := New(time.Millisecond)
	if tk.Running() {
		t.Fatal("new ticker should be stopped")
	}
	if tk.C() != nil {
		t.Fatal("stopped ticker should expose a nil channel")
	}
	// Stopping twice is fine.
	tk.Stop()
	tk.Stop()
}

func TestTicker_DefaultInterval(t *testing.T) {
	if got := New(0).Interval(); got != DefaultInterval {
		t.Errorf("Interval = %v, want %v", got, DefaultInterval)
	}
}

func TestTicker_StartStopRestart(t *testing.T) {
	tk := New(5 * time.Millisecond)

	for run := 0; run < 2; run++ {
		tk.Start()
		if !tk.Running() {
			t.Fatalf("run %d: expected running", run)
		}
		for i := 0; i < 2; i++ {
			select {
			case <-tk.C():
			case <-time.After(time.Second):
				t.Fatalf("run %d: no tick within 1s", run)
			}
		}
		tk.Stop()
		if tk.C() != nil {
			t.Fatalf("run %d: expected nil channel after stop", run)
		}
	}
}
