package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverridesOnlyListedValues(t *testing.T) {
	origPhysics := Physics
	origPlayer := Player
	t.Cleanup(func() {
		Physics = origPhysics
		Player = origPlayer
	})

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
physics:
  gravity: 1.5
  max_fall_speed: 12
player:
  half_width: 6
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if Physics.Gravity != 1.5 {
		t.Errorf("Gravity = %v, want 1.5", Physics.Gravity)
	}
	if Physics.MaxFallSpeed != 12 {
		t.Errorf("MaxFallSpeed = %v, want 12", Physics.MaxFallSpeed)
	}
	if Physics.SnapTolerance != origPhysics.SnapTolerance {
		t.Errorf("SnapTolerance = %v, want untouched default", Physics.SnapTolerance)
	}
	if Player.HalfWidth != 6 {
		t.Errorf("HalfWidth = %v, want 6", Player.HalfWidth)
	}
	if Player.HalfHeight != origPlayer.HalfHeight {
		t.Errorf("HalfHeight = %v, want untouched default", Player.HalfHeight)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err == nil {
		t.Error("Load of malformed YAML should fail")
	}
}
