// Package config provides configuration loading and access for the demo
// player.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all demo and physics configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Noise     NoiseConfig     `yaml:"noise"`
	Flow      FlowConfig      `yaml:"flow"`
	Orbit     OrbitConfig     `yaml:"orbit"`
	Springs   SpringsConfig   `yaml:"springs"`
	Rope      RopeConfig      `yaml:"rope"`
	Cloth     ClothConfig     `yaml:"cloth"`
	Burst     BurstConfig     `yaml:"burst"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds the shared simulation parameters every demo reads at
// the start of a tick. The UI sliders write into the per-tick input
// snapshot, never back into the loaded config.
type PhysicsConfig struct {
	DT         float64 `yaml:"dt"`         // step length (1 = frame units)
	Gravity    float64 `yaml:"gravity"`    // downward force magnitude
	Friction   float64 `yaml:"friction"`   // Verlet velocity retention per step
	Stiffness  float64 `yaml:"stiffness"`  // constraint stiffness in [0,1]
	Iterations int     `yaml:"iterations"` // constraint relaxation passes per frame
}

// NoiseConfig selects and shapes the scalar noise source.
type NoiseConfig struct {
	Kind      string  `yaml:"kind"`       // "perlin" or "simplex"
	Scale     float64 `yaml:"scale"`      // coordinate scale fed to the curl field
	TimeScale float64 `yaml:"time_scale"` // tick-to-noise-time conversion
}

// FlowConfig holds the curl-noise swarm demo parameters.
type FlowConfig struct {
	Count        int     `yaml:"count"`
	MaxSpeed     float64 `yaml:"max_speed"`
	FieldForce   float64 `yaml:"field_force"`
	LifespanMin  int     `yaml:"lifespan_min"`
	LifespanMax  int     `yaml:"lifespan_max"`
	TrailSamples int     `yaml:"trail_samples"`
}

// OrbitConfig holds the mouse attraction/repulsion demo parameters.
type OrbitConfig struct {
	Count          int     `yaml:"count"`
	AttractForce   float64 `yaml:"attract_force"`
	RepelForce     float64 `yaml:"repel_force"`
	MinPullDist    float64 `yaml:"min_pull_dist"`
	InitialSpeed   float64 `yaml:"initial_speed"`
	ParticleRadius float64 `yaml:"particle_radius"`
}

// SpringsConfig holds the anchored-spring grid demo parameters.
type SpringsConfig struct {
	Columns    int     `yaml:"columns"`
	Rows       int     `yaml:"rows"`
	RestLength float64 `yaml:"rest_length"`
	K          float64 `yaml:"k"`
	Damping    float64 `yaml:"damping"`
	PluckRange float64 `yaml:"pluck_range"`
	PluckForce float64 `yaml:"pluck_force"`
}

// RopeConfig holds the verlet chain demo parameters.
type RopeConfig struct {
	Segments      int     `yaml:"segments"`
	SegmentLength float64 `yaml:"segment_length"`
	GrabRange     float64 `yaml:"grab_range"`
}

// ClothConfig holds the verlet cloth demo parameters.
type ClothConfig struct {
	Columns   int     `yaml:"columns"`
	Rows      int     `yaml:"rows"`
	Spacing   float64 `yaml:"spacing"`
	WindForce float64 `yaml:"wind_force"`
	TearRange float64 `yaml:"tear_range"`
}

// BurstConfig holds the fireworks demo parameters.
type BurstConfig struct {
	SpawnInterval int     `yaml:"spawn_interval"` // ticks between launches
	SparkCount    int     `yaml:"spark_count"`    // sparks per burst
	SparkLife     int     `yaml:"spark_life"`
	LaunchSpeed   float64 `yaml:"launch_speed"`
	SparkSpeed    float64 `yaml:"spark_speed"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // window length in ticks
}

// DerivedConfig holds values computed after loading.
type DerivedConfig struct {
	ScreenW float64 // Screen.Width as float64
	ScreenH float64 // Screen.Height as float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields present
		// in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects parameter values the core treats as contract violations.
func (c *Config) validate() error {
	if c.Physics.Stiffness < 0 || c.Physics.Stiffness > 1 {
		return fmt.Errorf("physics.stiffness must be in [0,1], got %g", c.Physics.Stiffness)
	}
	if c.Physics.Friction <= 0 || c.Physics.Friction > 1 {
		return fmt.Errorf("physics.friction must be in (0,1], got %g", c.Physics.Friction)
	}
	if c.Physics.Iterations < 1 {
		return fmt.Errorf("physics.iterations must be at least 1, got %d", c.Physics.Iterations)
	}
	if c.Physics.DT <= 0 {
		return fmt.Errorf("physics.dt must be positive, got %g", c.Physics.DT)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW = float64(c.Screen.Width)
	c.Derived.ScreenH = float64(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
