package orrery

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Defaults for the simulation constants. G is explicitly non physical: it is
// tuned for visually faster orbits.
const (
	DefaultG               = 2.0
	defaultMaxSpeed        = 1200.0
	defaultMaxRotationRate = 6.0
	defaultDampStrength    = 0.08
	defaultLinearDamp      = 0.001
	defaultAngularDamp     = 0.02
	defaultMaxCargo        = 500.0
)

// SimConfig carries the tunable simulation constants.
type SimConfig struct {
	G                 float64 // shared gravitational constant
	MaxSpeed          float64 // linear speed clamp
	MaxRotationRate   float64 // angular velocity clamp, rad/s
	DampeningStrength float64 // active inertial dampening rate
	LinearDampening   float64 // passive space friction, linear
	AngularDampening  float64 // passive space friction, angular
	MaxCargo          float64 // default cargo clamp for vehicles
	OutputDir         string  // where exported traces are written
}

// DefaultSimConfig returns the built-in constants.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		G:                 DefaultG,
		MaxSpeed:          defaultMaxSpeed,
		MaxRotationRate:   defaultMaxRotationRate,
		DampeningStrength: defaultDampStrength,
		LinearDampening:   defaultLinearDamp,
		AngularDampening:  defaultAngularDamp,
		MaxCargo:          defaultMaxCargo,
		OutputDir:         ".",
	}
}

// LoadSimConfig reads conf.toml from the directory named by the
// ORRERY_CONFIG environment variable. When the variable is unset, the
// defaults are returned so the core works without any configuration file.
func LoadSimConfig() (SimConfig, error) {
	cfg := DefaultSimConfig()
	confPath := os.Getenv("ORRERY_CONFIG")
	if confPath == "" {
		return cfg, nil
	}
	v := viper.New()
	v.SetConfigName("conf")
	v.AddConfigPath(confPath)
	v.SetDefault("physics.gravitational_constant", cfg.G)
	v.SetDefault("physics.max_speed", cfg.MaxSpeed)
	v.SetDefault("physics.max_rotation_rate", cfg.MaxRotationRate)
	v.SetDefault("physics.dampening_strength", cfg.DampeningStrength)
	v.SetDefault("physics.linear_dampening", cfg.LinearDampening)
	v.SetDefault("physics.angular_dampening", cfg.AngularDampening)
	v.SetDefault("physics.max_cargo", cfg.MaxCargo)
	v.SetDefault("general.output_path", cfg.OutputDir)
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("%s/conf.toml not found: %s", confPath, err)
	}
	cfg.G = v.GetFloat64("physics.gravitational_constant")
	cfg.MaxSpeed = v.GetFloat64("physics.max_speed")
	cfg.MaxRotationRate = v.GetFloat64("physics.max_rotation_rate")
	cfg.DampeningStrength = v.GetFloat64("physics.dampening_strength")
	cfg.LinearDampening = v.GetFloat64("physics.linear_dampening")
	cfg.AngularDampening = v.GetFloat64("physics.angular_dampening")
	cfg.MaxCargo = v.GetFloat64("physics.max_cargo")
	cfg.OutputDir = v.GetString("general.output_path")
	return cfg, nil
}
