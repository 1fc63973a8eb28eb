package bluenoise

import "testing"

func TestProgressReporter_MonotonicAndEndsAtHundred(t *testing.T) {
	var values []float32
	p := newProgressReporter(func(v float32) { values = append(values, v) }, 10000)
	for i := 0; i < 10000; i++ {
		p.add(1)
	}
	p.finish()

	if len(values) == 0 {
		t.Fatal("no progress reported")
	}
	prev := float32(-1)
	for i, v := range values {
		if v <= prev {
			t.Fatalf("report %d: %v not greater than previous %v", i, v, prev)
		}
		prev = v
	}
	if values[len(values)-1] != 100 {
		t.Fatalf("last report %v want 100", values[len(values)-1])
	}
	hundreds := 0
	for _, v := range values {
		if v == 100 {
			hundreds++
		}
	}
	if hundreds != 1 {
		t.Fatalf("100%% reported %d times want 1", hundreds)
	}
}

func TestProgressReporter_FinishAlwaysReports(t *testing.T) {
	var values []float32
	p := newProgressReporter(func(v float32) { values = append(values, v) }, 10)
	p.add(10)
	p.finish()
	if len(values) != 1 || values[0] != 100 {
		t.Fatalf("got %v want exactly [100]", values)
	}
}

func TestProgressReporter_NilCallback(t *testing.T) {
	p := newProgressReporter(nil, 100)
	p.add(BatchSize * 2)
	p.finish()
}
