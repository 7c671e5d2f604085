package fermentation

import (
	"testing"
)

func TestDecayCurveEndpoints(t *testing.T) {
	cases := []struct {
		desc  string
		start float64
		final float64
		k     float64
	}{
		{
			desc:  "falling temperature",
			start: 101.3,
			final: 55.3,
			k:     TempDecayConstant,
		},
		{
			desc:  "rising temperature",
			start: 55.3,
			final: 101.3,
			k:     TempDecayConstant,
		},
		{
			desc:  "gravity",
			start: 1.0615,
			final: 1.015,
			k:     GravityDecayConstant,
		},
	}
	for _, c := range cases {
		curve := NewDecayCurve(c.start, c.final, c.k)
		if got := curve.At(0); got != c.start {
			t.Errorf("%s: value at f=0 incorrect: got %v want %v", c.desc, got, c.start)
		}
		if got := curve.At(1); got != c.final {
			t.Errorf("%s: value at f=1 incorrect: got %v want %v", c.desc, got, c.final)
		}
	}
}

func TestDecayCurveClampsFraction(t *testing.T) {
	curve := NewDecayCurve(101.3, 55.3, TempDecayConstant)
	if got := curve.At(-0.5); got != 101.3 {
		t.Errorf("value below f=0 incorrect: got %v want %v", got, 101.3)
	}
	if got := curve.At(1.5); got != 55.3 {
		t.Errorf("value above f=1 incorrect: got %v want %v", got, 55.3)
	}
}

func TestDecayCurveMonotonic(t *testing.T) {
	const steps = 1000

	falling := NewDecayCurve(101.3, 55.3, TempDecayConstant)
	prev := falling.At(0)
	for i := 1; i <= steps; i++ {
		v := falling.At(float64(i) / steps)
		if v > prev {
			t.Fatalf("falling curve increased at step %d: %v -> %v", i, prev, v)
		}
		prev = v
	}

	rising := NewDecayCurve(55.3, 101.3, TempDecayConstant)
	prev = rising.At(0)
	for i := 1; i <= steps; i++ {
		v := rising.At(float64(i) / steps)
		if v < prev {
			t.Fatalf("rising curve decreased at step %d: %v -> %v", i, prev, v)
		}
		prev = v
	}
}

// The halfway reading should sit below the linear midpoint: the decay family
// front-loads the change.
func TestDecayCurveConcave(t *testing.T) {
	og, fg := 1.0615, 1.015
	curve := NewDecayCurve(og, fg, GravityDecayConstant)
	mid := curve.At(0.5)
	linear := (og + fg) / 2
	if mid >= linear {
		t.Errorf("midpoint not concave: got %v want below linear midpoint %v", mid, linear)
	}
	if mid < fg {
		t.Errorf("midpoint undershot final value: got %v limit %v", mid, fg)
	}
}

func TestDecayCurveConstant(t *testing.T) {
	curve := NewDecayCurve(1.050, 1.050, GravityDecayConstant)
	for _, f := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := curve.At(f); got != 1.050 {
			t.Errorf("constant curve moved at f=%v: got %v want %v", f, got, 1.050)
		}
	}
}
