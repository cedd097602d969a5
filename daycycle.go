package tileshade

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DayCycle drives a ShadowFilter (and optionally a LightLayer) from a
// simulated time of day. The sun travels an east-to-west arc: shadows are
// long at dawn and dusk, short at noon, and disappear at night while the
// ambient darkness ramps up.
//
// All tunables are plain fields and may be adjusted at any time; Update and
// the derived getters read them live.
type DayCycle struct {
	// Speed is the simulation rate in game hours per real second.
	// Zero freezes the clock (transitions still run).
	Speed float64

	// MinShadowLength and MaxShadowLength bound the derived shadow length
	// in tiles (noon and dawn/dusk respectively).
	MinShadowLength float64
	MaxShadowLength float64

	// MaxStrength is the shadow darkness at full sun elevation.
	MaxStrength float64

	// MaxDarkness is the ambient overlay alpha at deepest night.
	MaxDarkness float64

	// Precision and Falloff are passed through to SetShadowParams.
	Precision float64
	Falloff   string

	hour       float64 // current time of day in [0, 24)
	transition *gween.Tween
}

// NewDayCycle creates a paused day cycle at the given hour with default
// shadow tuning.
func NewDayCycle(hour float64) *DayCycle {
	return &DayCycle{
		MinShadowLength: 1.5,
		MaxShadowLength: 8,
		MaxStrength:     0.55,
		MaxDarkness:     0.75,
		Precision:       1.0,
		Falloff:         "smooth",
		hour:            wrapHour(hour),
	}
}

// Hour returns the current time of day in [0, 24).
func (d *DayCycle) Hour() float64 {
	return d.hour
}

// SetTime jumps the clock to the given hour and cancels any running
// transition.
func (d *DayCycle) SetTime(hour float64) {
	d.hour = wrapHour(hour)
	d.transition = nil
}

// TransitionTo tweens the clock to the given hour over duration seconds,
// taking the shortest way around the 24-hour wrap. Passing a nil ease
// function uses ease.InOutQuad.
func (d *DayCycle) TransitionTo(hour float64, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.InOutQuad
	}
	target := wrapHour(hour)
	from := d.hour
	delta := math.Mod(target-from+36, 24) - 12
	d.transition = gween.New(float32(from), float32(from+delta), duration, easeFn)
}

// Update advances the clock by dt seconds.
func (d *DayCycle) Update(dt float64) {
	if d.transition != nil {
		v, finished := d.transition.Update(float32(dt))
		d.hour = wrapHour(float64(v))
		if finished {
			d.transition = nil
		}
		return
	}
	if d.Speed != 0 {
		d.hour = wrapHour(d.hour + d.Speed*dt)
	}
}

// sunHeight is the normalized sun elevation: 0 at 06:00 and 18:00, 1 at
// noon, -1 at midnight.
func (d *DayCycle) sunHeight() float64 {
	return math.Sin((d.hour - 6) / 24 * 2 * math.Pi)
}

// IsNight reports whether the sun is below the horizon.
func (d *DayCycle) IsNight() bool {
	return d.sunHeight() < 0
}

// SunAngle returns the direction shadows are cast, in radians. At dawn the
// sun sits in the east so shadows point west (pi); the angle sweeps through
// straight-down (pi/2) at noon to east (0) at dusk. At night the angle
// holds its dusk value; strength is zero then anyway.
func (d *DayCycle) SunAngle() float64 {
	t := (d.hour - 6) / 12
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return math.Pi * (1 - t)
}

// ShadowLength returns the shadow length in tiles for the current sun
// elevation: MaxShadowLength at the horizon down to MinShadowLength at the
// zenith.
func (d *DayCycle) ShadowLength() float64 {
	h := d.sunHeight()
	if h < 0 {
		h = 0
	}
	return d.MaxShadowLength + (d.MinShadowLength-d.MaxShadowLength)*h
}

// ShadowStrength returns the shadow darkness for the current sun elevation.
// Zero at night, easing up to MaxStrength as the sun climbs.
func (d *DayCycle) ShadowStrength() float64 {
	h := d.sunHeight()
	if h <= 0 {
		return 0
	}
	// Quick ramp near the horizon so sunrise shadows appear early.
	t := math.Sqrt(h)
	return d.MaxStrength * t
}

// AmbientDarkness returns the ambient overlay alpha for a LightLayer:
// zero while the sun is up, then a smoothstep ramp to MaxDarkness as the
// sun sinks below the horizon.
func (d *DayCycle) AmbientDarkness() float64 {
	h := d.sunHeight()
	if h >= 0 {
		return 0
	}
	t := clamp01(-h / 0.6)
	return d.MaxDarkness * t * t * (3 - 2*t)
}

// ApplyTo pushes the derived sun direction and shadow parameters into the
// filter. Call once per frame after Update.
func (d *DayCycle) ApplyTo(f *ShadowFilter) {
	f.SetSunDirection(d.SunAngle())
	f.SetShadowParams(d.ShadowLength(), d.ShadowStrength(), d.Precision, d.Falloff)
}

func wrapHour(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}
