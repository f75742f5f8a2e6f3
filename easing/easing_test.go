package easing

import (
	"errors"
	"math"
	"testing"
)

func TestBoundaryFidelity(t *testing.T) {
	for _, name := range Names() {
		fn, err := ByName(name).Resolve()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if v := fn(0); math.Abs(v) > 1e-12 {
			t.Errorf("%s(0) = %f, expected 0", name, v)
		}
		if v := fn(1); math.Abs(v-1) > 1e-12 {
			t.Errorf("%s(1) = %f, expected 1", name, v)
		}
	}
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		t        float64
		expected float64
	}{
		{Linear, 0.25, 0.25},
		{Linear, 0.75, 0.75},
		{InQuad, 0.5, 0.25},
		{OutQuad, 0.5, 0.75},
		{InOutQuad, 0.25, 0.125},
		{InOutQuad, 0.75, 0.875},
		{InCubic, 0.5, 0.125},
		{OutCubic, 0.5, 0.875},
		{InOutCubic, 0.25, 0.0625},
		{InOutCubic, 0.75, 0.9375},
		{InOutSine, 0.5, 0.5},
	}
	for _, tt := range tests {
		fn, err := ByName(tt.name).Resolve()
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if v := fn(tt.t); math.Abs(v-tt.expected) > 1e-9 {
			t.Errorf("%s(%f) = %f, expected %f", tt.name, tt.t, v, tt.expected)
		}
	}
}

func TestInOutCubicContinuity(t *testing.T) {
	fn, err := ByName(InOutCubic).Resolve()
	if err != nil {
		t.Fatal(err)
	}
	lo, hi := fn(0.5-1e-9), fn(0.5)
	if math.Abs(hi-0.5) > 1e-9 {
		t.Errorf("expected 0.5 at midpoint, got %f", hi)
	}
	if math.Abs(hi-lo) > 1e-6 {
		t.Errorf("discontinuity at midpoint: %f vs %f", lo, hi)
	}
}

func TestMonotonic(t *testing.T) {
	for _, name := range Names() {
		fn, _ := ByName(name).Resolve()
		prev := fn(0)
		for i := 1; i <= 100; i++ {
			v := fn(float64(i) / 100)
			if v < prev-1e-12 {
				t.Errorf("%s not monotonic at t=%f", name, float64(i)/100)
				break
			}
			prev = v
		}
	}
}

func TestUnknownName(t *testing.T) {
	_, err := ByName("bounce").Resolve()
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("expected ErrUnknown, got %v", err)
	}
}

func TestUnderscoreSpelling(t *testing.T) {
	fn, err := ByName("ease_in_out_quad").Resolve()
	if err != nil {
		t.Fatalf("underscored name rejected: %v", err)
	}
	if v := fn(0.25); math.Abs(v-0.125) > 1e-9 {
		t.Errorf("expected 0.125, got %f", v)
	}
}

func TestByFunc(t *testing.T) {
	fn, err := ByFunc(func(t float64) float64 { return 2 * t }).Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Custom functions are not range-validated.
	if v := fn(1); v != 2 {
		t.Errorf("expected 2, got %f", v)
	}
}

func TestZeroValueDefaults(t *testing.T) {
	var e Easing
	fn, err := e.Resolve()
	if err != nil {
		t.Fatalf("zero value should resolve: %v", err)
	}
	if v := fn(0.25); math.Abs(v-0.125) > 1e-9 {
		t.Errorf("expected default ease-in-out-quad, got %f at 0.25", v)
	}
}
