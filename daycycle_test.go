package tileshade

import (
	"math"
	"testing"
)

func TestDayCycleWrapsHours(t *testing.T) {
	d := NewDayCycle(25)
	assertNear(t, "Hour", d.Hour(), 1)

	d.SetTime(-6)
	assertNear(t, "Hour", d.Hour(), 18)

	d.SetTime(24)
	assertNear(t, "Hour", d.Hour(), 0)
}

func TestDayCycleUpdateAdvancesClock(t *testing.T) {
	d := NewDayCycle(23)
	d.Speed = 2 // two game hours per second
	d.Update(0.25)
	assertNear(t, "Hour", d.Hour(), 23.5)
	d.Update(0.5)
	assertNear(t, "Hour", d.Hour(), 0.5)
}

func TestDayCyclePausedByDefault(t *testing.T) {
	d := NewDayCycle(10)
	d.Update(100)
	assertNear(t, "Hour", d.Hour(), 10)
}

func TestDayCycleSunAngle(t *testing.T) {
	d := NewDayCycle(6)
	assertNear(t, "dawn angle", d.SunAngle(), math.Pi)
	d.SetTime(12)
	assertNear(t, "noon angle", d.SunAngle(), math.Pi/2)
	d.SetTime(18)
	assertNear(t, "dusk angle", d.SunAngle(), 0)
	d.SetTime(2)
	// Before dawn the angle clamps to the dawn value.
	assertNear(t, "night angle", d.SunAngle(), math.Pi)
}

func TestDayCycleShadowLength(t *testing.T) {
	d := NewDayCycle(12)
	assertNear(t, "noon length", d.ShadowLength(), d.MinShadowLength)
	d.SetTime(6)
	assertNear(t, "dawn length", d.ShadowLength(), d.MaxShadowLength)
	d.SetTime(0)
	assertNear(t, "night length", d.ShadowLength(), d.MaxShadowLength)
}

func TestDayCycleShadowStrength(t *testing.T) {
	d := NewDayCycle(12)
	assertNear(t, "noon strength", d.ShadowStrength(), d.MaxStrength)
	d.SetTime(0)
	assertNear(t, "midnight strength", d.ShadowStrength(), 0)
	d.SetTime(9)
	if s := d.ShadowStrength(); s <= 0 || s >= d.MaxStrength {
		t.Errorf("morning strength = %v, want between 0 and %v", s, d.MaxStrength)
	}
}

func TestDayCycleAmbientDarkness(t *testing.T) {
	d := NewDayCycle(12)
	assertNear(t, "noon darkness", d.AmbientDarkness(), 0)
	d.SetTime(0)
	assertNear(t, "midnight darkness", d.AmbientDarkness(), d.MaxDarkness)
	if d.IsNight() != true {
		t.Error("midnight should be night")
	}
	d.SetTime(12)
	if d.IsNight() {
		t.Error("noon should not be night")
	}
}

func TestDayCycleTransitionShortestPath(t *testing.T) {
	d := NewDayCycle(23)
	d.TransitionTo(1, 1, nil)

	d.Update(0.5)
	h := d.Hour()
	// Halfway through, the clock sits inside the 23 -> 1 wrap window
	// rather than rewinding through the whole day.
	if !(h >= 23 || h <= 1) {
		t.Errorf("mid-transition hour = %v, want within the wrap window", h)
	}

	d.Update(0.6)
	assertNear(t, "final hour", d.Hour(), 1)
}

func TestDayCycleTransitionCancelledBySetTime(t *testing.T) {
	d := NewDayCycle(8)
	d.TransitionTo(20, 5, nil)
	d.SetTime(10)
	d.Update(1)
	assertNear(t, "Hour", d.Hour(), 10)
}

func TestDayCycleApplyTo(t *testing.T) {
	f := newTestFilter(t)
	d := NewDayCycle(12)
	d.ApplyTo(f)

	dir := f.SunDirection()
	assertNear(t, "dir.X", dir.X, 0)
	assertNear(t, "dir.Y", dir.Y, 1)
	assertNear(t, "StepSize", f.StepSize(), 1)
	if v := f.uniforms["ShadowLength"].(float32); math.Abs(float64(v)-d.MinShadowLength) > 1e-5 {
		t.Errorf("ShadowLength = %v, want %v", v, d.MinShadowLength)
	}
	if v := f.uniforms["Falloff"].(float32); v != 2 {
		t.Errorf("Falloff = %v, want smooth (2)", v)
	}
}
