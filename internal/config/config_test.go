package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMapBallSpeed(t *testing.T) {
	tests := []struct {
		name  string
		scale int
		want  float64
	}{
		{"minimum", 1, 180},
		{"default", 5, 260},
		{"maximum", 10, 360},
		{"below range", 0, 180},
		{"above range", 15, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapBallSpeed(tt.scale); got != tt.want {
				t.Errorf("MapBallSpeed(%d) = %v, expected %v", tt.scale, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	cfg := Config{BallSpeed: 20, StartingLevel: -4}
	cfg.Clamp()

	if cfg.BallSpeed != 10 {
		t.Errorf("BallSpeed = %d, expected 10", cfg.BallSpeed)
	}
	if cfg.StartingLevel != 1 {
		t.Errorf("StartingLevel = %d, expected 1", cfg.StartingLevel)
	}
	if cfg.LevelPack != "classic" {
		t.Errorf("LevelPack = %q, expected classic fallback", cfg.LevelPack)
	}
	if cfg.PlayerName != "player" {
		t.Errorf("PlayerName = %q, expected player fallback", cfg.PlayerName)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Name != "default" {
		t.Errorf("Name = %q, expected default", cfg.Name)
	}
	if cfg.BallSpeed != 5 {
		t.Errorf("BallSpeed = %d, expected 5", cfg.BallSpeed)
	}
	if cfg.RandomSeed != -1 {
		t.Errorf("RandomSeed = %d, expected -1", cfg.RandomSeed)
	}
	if cfg.StartingLevel != 1 {
		t.Errorf("StartingLevel = %d, expected 1", cfg.StartingLevel)
	}
	if cfg.LevelPack != "classic" {
		t.Errorf("LevelPack = %q, expected classic", cfg.LevelPack)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset Preset
		want   int
	}{
		{PresetEasy, 3},
		{PresetNormal, 5},
		{PresetHard, 8},
	}

	for _, tt := range tests {
		cfg := Default()
		ApplyPreset(&cfg, tt.preset)
		if cfg.BallSpeed != tt.want {
			t.Errorf("ApplyPreset(%q): BallSpeed = %d, expected %d", tt.preset, cfg.BallSpeed, tt.want)
		}
	}

	if !IsValidPreset(PresetHard) {
		t.Error("IsValidPreset(hard) = false")
	}
	if IsValidPreset("impossible") {
		t.Error("IsValidPreset(impossible) = true")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()

	cfg := Config{
		Name:          "speedrun",
		PlayerName:    "ada",
		BallSpeed:     9,
		RandomSeed:    42,
		StartingLevel: 2,
		LevelPack:     "gauntlet",
	}
	if err := Save(dir, cfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(dir, "speedrun")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("Load() = %+v, expected %+v", loaded, cfg)
	}
}

func TestLoadDefaultWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir(), "default")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Name != "default" || cfg.BallSpeed != 5 {
		t.Errorf("Load(default) = %+v, expected the embedded default", cfg)
	}

	// Empty name means default too.
	cfg, err = Load(t.TempDir(), "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Name != "default" {
		t.Errorf("Load(\"\") name = %q, expected default", cfg.Name)
	}
}

func TestLoadUnknownProfile(t *testing.T) {
	if _, err := Load(t.TempDir(), "missing"); err == nil {
		t.Error("Load of a missing profile should fail")
	}
}

func TestLoadClampsValues(t *testing.T) {
	dir := t.TempDir()
	raw := "name: wild\nball_speed: 99\nstarting_level: -1\n"
	if err := os.WriteFile(filepath.Join(dir, "wild.yaml"), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(dir, "wild")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.BallSpeed != 10 || loaded.StartingLevel != 1 {
		t.Errorf("Load() did not clamp: %+v", loaded)
	}
}

func TestLoadPath(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{Name: "portable", BallSpeed: 7}
	if err := Save(dir, cfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := LoadPath(filepath.Join(dir, "portable.yaml"))
	if err != nil {
		t.Fatalf("LoadPath() failed: %v", err)
	}
	if loaded.Name != "portable" || loaded.BallSpeed != 7 {
		t.Errorf("LoadPath() = %+v", loaded)
	}
}

func TestDefaultProfileProtected(t *testing.T) {
	dir := t.TempDir()

	if err := Save(dir, Config{Name: "default"}); err == nil {
		t.Error("Save(default) should be rejected")
	}
	if err := Delete(dir, "default"); err == nil {
		t.Error("Delete(default) should be rejected")
	}
}

func TestListIncludesDefault(t *testing.T) {
	dir := t.TempDir()

	names, err := List(dir)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(names) != 1 || names[0] != "default" {
		t.Errorf("List() = %v, expected just the builtin default", names)
	}

	if err := Save(dir, Config{Name: "alpha"}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := Save(dir, Config{Name: "zeta"}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	names, err = List(dir)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	want := []string{"alpha", "default", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("List() = %v, expected %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List()[%d] = %q, expected %q", i, names[i], want[i])
		}
	}
}

func TestDelete(t *testing.T) {
	dir := t.TempDir()
	if err := Save(dir, Config{Name: "doomed"}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if err := Delete(dir, "doomed"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := Load(dir, "doomed"); err == nil {
		t.Error("profile should be gone after Delete")
	}

	if err := Delete(dir, "doomed"); err == nil {
		t.Error("deleting a missing profile should fail")
	}
}
