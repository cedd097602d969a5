package tileshade

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// SunConfig configures the static sun when no day cycle is running.
type SunConfig struct {
	// AngleDeg is the direction shadows are cast, in degrees.
	AngleDeg float64 `yaml:"angle"`
}

// ShadowConfig configures the shadow pass. Values map directly onto
// ShadowFilter.SetShadowParams, so the same coercion rules apply: zero
// precision means 1.0, unknown falloff names mean "smooth".
type ShadowConfig struct {
	Length     float64 `yaml:"length"`
	Strength   float64 `yaml:"strength"`
	Precision  float64 `yaml:"precision"`
	Falloff    string  `yaml:"falloff"`
	WallShadow bool    `yaml:"wall_shadow"`
}

// DayCycleConfig configures the optional day cycle driver.
type DayCycleConfig struct {
	Enabled bool    `yaml:"enabled"`
	Hour    float64 `yaml:"hour"`
	Speed   float64 `yaml:"speed"` // game hours per real second
}

// LightConfig describes one point light. Position and radius are in tiles.
// A zero intensity means full brightness so minimal entries stay useful.
type LightConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Radius    float64 `yaml:"radius"`
	Intensity float64 `yaml:"intensity"`
	Color     struct {
		R float64 `yaml:"r"`
		G float64 `yaml:"g"`
		B float64 `yaml:"b"`
	} `yaml:"color"`
}

// Config bundles every tuneable of the package for loading from YAML.
type Config struct {
	TileWidth  int            `yaml:"tile_width"`
	TileHeight int            `yaml:"tile_height"`
	Sun        SunConfig      `yaml:"sun"`
	Shadow     ShadowConfig   `yaml:"shadow"`
	DayCycle   DayCycleConfig `yaml:"day_cycle"`
	Lights     []LightConfig  `yaml:"lights"`
}

// DefaultConfig returns the built-in defaults: 48px tiles, a south-west sun
// and medium smooth shadows.
func DefaultConfig() Config {
	return Config{
		TileWidth:  defaultTileSize,
		TileHeight: defaultTileSize,
		Sun:        SunConfig{AngleDeg: 45},
		Shadow: ShadowConfig{
			Length:    defaultShadowLength,
			Strength:  defaultShadowStrength,
			Precision: defaultStepSize,
			Falloff:   "smooth",
		},
		DayCycle: DayCycleConfig{Hour: 12},
	}
}

// ParseConfig decodes YAML into a Config, starting from DefaultConfig so
// omitted keys keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config from r.
func LoadConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ApplyTo pushes the sun and shadow settings into the filter. Wall shadows
// only activate if the filter has already received a real wall map.
func (c Config) ApplyTo(f *ShadowFilter) {
	f.SetSunDirection(c.Sun.AngleDeg * math.Pi / 180)
	f.SetShadowParams(c.Shadow.Length, c.Shadow.Strength, c.Shadow.Precision, c.Shadow.Falloff)
	f.SetWallShadowEnabled(c.Shadow.WallShadow)
}

// BuildDayCycle constructs a DayCycle from the config, or nil when the day
// cycle is disabled.
func (c Config) BuildDayCycle() *DayCycle {
	if !c.DayCycle.Enabled {
		return nil
	}
	d := NewDayCycle(c.DayCycle.Hour)
	d.Speed = c.DayCycle.Speed
	d.Precision = c.Shadow.Precision
	d.Falloff = c.Shadow.Falloff
	return d
}

// BuildLights constructs enabled Light values from the config's light list.
func (c Config) BuildLights() []*Light {
	if len(c.Lights) == 0 {
		return nil
	}
	lights := make([]*Light, 0, len(c.Lights))
	for _, lc := range c.Lights {
		intensity := lc.Intensity
		if intensity == 0 {
			intensity = 1
		}
		col := Color{R: lc.Color.R, G: lc.Color.G, B: lc.Color.B, A: 1}
		if lc.Color.R == 0 && lc.Color.G == 0 && lc.Color.B == 0 {
			col = ColorWhite
		}
		lights = append(lights, &Light{
			X:         lc.X,
			Y:         lc.Y,
			Radius:    lc.Radius,
			Intensity: intensity,
			Enabled:   true,
			Color:     col,
		})
	}
	return lights
}
