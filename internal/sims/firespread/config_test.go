package firespread

import (
	"testing"
)

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"size":             "64",
		"h":                "32",
		"seed":             "5",
		"decay":            "1.7",
		"base_probability": "0.2",
		"fuel_alpha":       "-1",
		"elevation_model":  "simplex",
		"unknown":          "3",
		"wind_factor":      "fast",
	})
	if cfg.Width != 64 || cfg.Height != 32 {
		t.Fatalf("size = %dx%d, want 64x32", cfg.Width, cfg.Height)
	}
	if cfg.Seed != 5 {
		t.Fatalf("seed = %d, want 5", cfg.Seed)
	}
	p := cfg.Params
	if p.Decay != 1 {
		t.Fatalf("decay = %f, want clamp to 1", p.Decay)
	}
	if p.BaseProbability != 0.2 {
		t.Fatalf("base probability = %f, want 0.2", p.BaseProbability)
	}
	if p.FuelAlpha != DefaultParams().FuelAlpha {
		t.Fatalf("fuel alpha = %f, negative value should be rejected", p.FuelAlpha)
	}
	if p.WindFactor != DefaultParams().WindFactor {
		t.Fatalf("wind factor = %f, unparsable value should be ignored", p.WindFactor)
	}
	if p.ElevationModel != ElevationSimplex {
		t.Fatalf("elevation model = %q", p.ElevationModel)
	}
}

func TestFromMapNil(t *testing.T) {
	if got, want := FromMap(nil), DefaultConfig(); got != want {
		t.Fatalf("FromMap(nil) = %+v, want defaults", got)
	}
}

func TestSetFloatParameter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 4, 4
	e, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if !e.SetFloatParameter("burned_threshold", 0.3) {
		t.Fatal("burned_threshold rejected")
	}
	if e.SetFloatParameter("temp_divisor", 0) {
		t.Fatal("zero temperature divisor accepted")
	}
	if e.SetFloatParameter("seed", 3) {
		t.Fatal("seed is not a float parameter")
	}
	p, ok := e.Parameters().Lookup("burned_threshold")
	if !ok || p.Value != "0.3" {
		t.Fatalf("snapshot burned_threshold = %+v", p)
	}
	if p, ok := e.Parameters().Lookup("w"); !ok || p.Value != "4" {
		t.Fatalf("snapshot width = %+v", p)
	}
}

func TestSnapshotCoversEveryFloatParameter(t *testing.T) {
	snap := Snapshot(DefaultConfig())
	for _, group := range snap.Groups {
		for _, param := range group.Params {
			if param.Type != "float" {
				continue
			}
			p := DefaultParams()
			if p.floatField(param.Key) == nil {
				t.Fatalf("snapshot key %q has no setter", param.Key)
			}
		}
	}
}
