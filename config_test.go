package orrery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSimConfig(t *testing.T) {
	cfg := DefaultSimConfig()
	if cfg.G != 2.0 {
		t.Fatalf("G = %f", cfg.G)
	}
	if cfg.MaxSpeed != 1200 || cfg.MaxRotationRate != 6 {
		t.Fatalf("clamps = %f, %f", cfg.MaxSpeed, cfg.MaxRotationRate)
	}
	if cfg.DampeningStrength != 0.08 || cfg.LinearDampening != 0.001 || cfg.AngularDampening != 0.02 {
		t.Fatalf("dampening = %+v", cfg)
	}
	if cfg.MaxCargo != 500 {
		t.Fatalf("max cargo = %f", cfg.MaxCargo)
	}
}

func TestLoadSimConfigUnset(t *testing.T) {
	t.Setenv("ORRERY_CONFIG", "")
	cfg, err := LoadSimConfig()
	if err != nil {
		t.Fatalf("defaults must load without a file: %s", err)
	}
	if cfg != DefaultSimConfig() {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadSimConfigMissingFile(t *testing.T) {
	t.Setenv("ORRERY_CONFIG", t.TempDir())
	if _, err := LoadSimConfig(); err == nil {
		t.Fatal("missing conf.toml not reported")
	}
}

func TestLoadSimConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	conf := []byte(`[physics]
gravitational_constant = 3.5
max_speed = 900.0

[general]
output_path = "/tmp/traces"
`)
	if err := os.WriteFile(filepath.Join(dir, "conf.toml"), conf, 0644); err != nil {
		t.Fatalf("could not write conf.toml: %s", err)
	}
	t.Setenv("ORRERY_CONFIG", dir)
	cfg, err := LoadSimConfig()
	if err != nil {
		t.Fatalf("could not load config: %s", err)
	}
	if cfg.G != 3.5 || cfg.MaxSpeed != 900 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.OutputDir != "/tmp/traces" {
		t.Fatalf("output dir = %s", cfg.OutputDir)
	}
	// Keys absent from the file keep their defaults.
	if cfg.MaxCargo != 500 || cfg.MaxRotationRate != 6 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}
