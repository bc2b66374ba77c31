package input

import "testing"

func TestIdleProducesNothing(t *testing.T) {
	for i := 0; i < 10; i++ {
		if s := Idle.Sample(0.1); s != (Sample{}) {
			t.Fatalf("Idle sample = %+v, want zero", s)
		}
	}
}

func TestSourceFunc(t *testing.T) {
	var got float64
	src := SourceFunc(func(dt float64) Sample {
		got = dt
		return Sample{Horizontal: 1, Fire: true}
	})

	s := src.Sample(0.25)
	if got != 0.25 {
		t.Fatalf("dt passed through as %v, want 0.25", got)
	}
	if s.Horizontal != 1 || !s.Fire {
		t.Fatalf("sample = %+v", s)
	}
}

func TestDigitalAxis(t *testing.T) {
	tests := []struct {
		neg, pos bool
		want     float64
	}{
		{false, false, 0},
		{true, false, -1},
		{false, true, 1},
		{true, true, 0},
	}
	for _, tt := range tests {
		if got := digitalAxis(tt.neg, tt.pos); got != tt.want {
			t.Fatalf("digitalAxis(%v, %v) = %v, want %v", tt.neg, tt.pos, got, tt.want)
		}
	}
}
