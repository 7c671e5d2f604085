package fermentation

import "math"

// Default decay constants for the two reading curves. Gravity is
// front-loaded harder than temperature: a batch sheds most of its gravity
// early in the fermentation, while the thermal mass lags the chamber
// setpoint more gently.
const (
	TempDecayConstant    = 3.0
	GravityDecayConstant = 5.0
)

// Curve maps an elapsed fraction of the run in [0, 1] to a reading value.
type Curve interface {
	At(f float64) float64
}

// constantCurve is the degenerate curve used when start and final coincide.
type constantCurve float64

func (c constantCurve) At(float64) float64 {
	return float64(c)
}

// decayCurve is an exponential decay from start toward final, normalized so
// that At(0) == start and At(1) == final exactly. Monotonic for any k > 0;
// larger k front-loads the change.
type decayCurve struct {
	start float64
	final float64
	k     float64
}

func (c *decayCurve) At(f float64) float64 {
	if f <= 0 {
		return c.start
	}
	if f >= 1 {
		return c.final
	}
	w := (math.Exp(-c.k*f) - math.Exp(-c.k)) / (1 - math.Exp(-c.k))
	return c.final + (c.start-c.final)*w
}

// NewDecayCurve returns a Curve decaying from start to final with decay
// constant k.
func NewDecayCurve(start, final, k float64) Curve {
	if start == final {
		return constantCurve(start)
	}
	return &decayCurve{start: start, final: final, k: k}
}
