package loader

import "testing"

func TestDefaultSimConfig(t *testing.T) {
	cfg := DefaultSimConfig()

	if cfg.VillageType != "4-4-4-6" {
		t.Errorf("expected default village type 4-4-4-6, got %s", cfg.VillageType)
	}
	if cfg.ServerSpeed != 1 {
		t.Errorf("expected default server speed 1, got %v", cfg.ServerSpeed)
	}
	if cfg.Resources.Wood != 750 || cfg.Resources.Crop != 750 {
		t.Errorf("expected default resources 750, got %+v", cfg.Resources)
	}
}

func TestLoadSimConfig(t *testing.T) {
	dir := writeFixture(t, "sim.yaml", `
village_type: 3-3-3-9
capital: true
server_speed: 3
resources:
  wood: 1000
  clay: 1000
  iron: 1000
  crop: 500
`)

	cfg, err := LoadSimConfig(dir + "/sim.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.VillageType != "3-3-3-9" || !cfg.Capital || cfg.ServerSpeed != 3 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Resources.Crop != 500 {
		t.Errorf("expected crop 500, got %v", cfg.Resources.Crop)
	}
}

func TestLoadSimConfigKeepsDefaults(t *testing.T) {
	dir := writeFixture(t, "sim.yaml", "capital: true\n")

	cfg, err := LoadSimConfig(dir + "/sim.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.VillageType != "4-4-4-6" || cfg.ServerSpeed != 1 {
		t.Errorf("omitted keys should keep defaults, got %+v", cfg)
	}
	if cfg.Resources.Iron != 750 {
		t.Errorf("expected default iron 750, got %v", cfg.Resources.Iron)
	}
}

func TestLoadSimConfigMissingFile(t *testing.T) {
	if _, err := LoadSimConfig(t.TempDir() + "/absent.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadSimConfigMalformed(t *testing.T) {
	dir := writeFixture(t, "sim.yaml", "village_type: [not, a, string\n")
	if _, err := LoadSimConfig(dir + "/sim.yaml"); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestSimConfigValidate(t *testing.T) {
	cfg := DefaultSimConfig()
	cfg.ServerSpeed = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero server speed")
	}

	cfg = DefaultSimConfig()
	cfg.Preset = "cropper9"
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset with default village type should be valid: %v", err)
	}

	cfg.VillageType = "3-3-3-9"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when both preset and village_type are set")
	}
}
