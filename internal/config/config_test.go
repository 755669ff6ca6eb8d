package config

import (
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Pricing.MachineCm3PerHr <= 0 {
		t.Error("default machine throughput must be positive")
	}
	if len(cfg.Ladder) == 0 {
		t.Error("default ladder must not be empty")
	}
	if cfg.Ladder[0].Quantity != 1 || cfg.Ladder[0].Discount != 0 {
		t.Errorf("ladder must start at quantity 1 with no discount: %+v", cfg.Ladder[0])
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Pricing != Default().Pricing {
		t.Errorf("missing file did not produce defaults: %+v", cfg.Pricing)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.Pricing.BaseFee = 12.5
	cfg.Server.Addr = ":9999"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Pricing.BaseFee != 12.5 {
		t.Errorf("base fee = %v, want 12.5", loaded.Pricing.BaseFee)
	}
	if loaded.Server.Addr != ":9999" {
		t.Errorf("addr = %s, want :9999", loaded.Server.Addr)
	}
}
