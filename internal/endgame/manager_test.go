package endgame

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/brickstorm/internal/config"
	"github.com/vovakirdan/brickstorm/internal/game"
)

func testConfig() config.Config {
	return config.Config{
		Name:          "custom",
		PlayerName:    "ada",
		BallSpeed:     7,
		RandomSeed:    42,
		StartingLevel: 1,
		LevelPack:     "classic",
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	m := NewManager(t.TempDir())

	e := game.New(42)
	e.LaunchBall()
	snap := e.Snapshot("trial_run", "custom")

	if err := m.Save(snap, testConfig(), false); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := m.Load("trial_run")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// The manager stamps the config echo on save; with that applied the
	// snapshot must round-trip exactly.
	want := snap
	want.ConfigName = "custom"
	want.ConfigBallSpeed = 7
	want.ConfigRandomSeed = 42
	want.ConfigStartingLevel = 1

	if !reflect.DeepEqual(loaded, want) {
		t.Error("loaded snapshot differs from the saved one")
	}
}

func TestSaveRejectsBadNames(t *testing.T) {
	m := NewManager(t.TempDir())
	e := game.New(1)

	for _, name := range []string{"", "no spaces", "sub/dir", "dots.are.out", "../escape"} {
		snap := e.Snapshot(name, "default")
		if err := m.Save(snap, testConfig(), false); err == nil {
			t.Errorf("Save(%q) should be rejected", name)
		}
	}
}

func TestSaveRefusesOverwrite(t *testing.T) {
	m := NewManager(t.TempDir())
	e := game.New(1)
	snap := e.Snapshot("keeper", "default")

	if err := m.Save(snap, testConfig(), false); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := m.Save(snap, testConfig(), false); err == nil {
		t.Error("second Save without overwrite should fail")
	}
	if err := m.Save(snap, testConfig(), true); err != nil {
		t.Errorf("Save with overwrite failed: %v", err)
	}
}

func TestList(t *testing.T) {
	m := NewManager(t.TempDir())

	// Empty directory lists nothing.
	saves, err := m.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(saves) != 0 {
		t.Errorf("List() = %v, expected none", saves)
	}

	e := game.New(1)
	e.AdvanceLevel()
	for _, name := range []string{"zulu", "alpha"} {
		if err := m.Save(e.Snapshot(name, "default"), testConfig(), false); err != nil {
			t.Fatalf("Save(%q) failed: %v", name, err)
		}
	}

	saves, err = m.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(saves) != 2 {
		t.Fatalf("List() returned %d saves, expected 2", len(saves))
	}
	if saves[0].Name != "alpha" || saves[1].Name != "zulu" {
		t.Errorf("List() not sorted by name: %v", saves)
	}
	if saves[0].Level != 2 || saves[0].Lives != 3 {
		t.Errorf("summary = %+v, expected level 2 with 3 lives", saves[0])
	}
}

func TestDelete(t *testing.T) {
	m := NewManager(t.TempDir())
	e := game.New(1)

	if err := m.Save(e.Snapshot("doomed", "default"), testConfig(), false); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if !m.Exists("doomed") {
		t.Fatal("Exists() = false after save")
	}

	if err := m.Delete("doomed"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if m.Exists("doomed") {
		t.Error("Exists() = true after delete")
	}
	if err := m.Delete("doomed"); err == nil {
		t.Error("deleting a missing save should fail")
	}
}

func TestLoadMissing(t *testing.T) {
	m := NewManager(t.TempDir())
	if _, err := m.Load("absent"); err == nil {
		t.Error("Load of a missing save should fail")
	}
}

func TestLoadFillsConfigEchoDefaults(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)

	// A hand-written save without the config echo fields.
	raw := `name: bare
level: 1
lives: 2
bounds: {x: 0, y: 0, w: 640, h: 480}
`
	if err := os.WriteFile(filepath.Join(dir, "bare.yaml"), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	snap, err := m.Load("bare")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if snap.ConfigBallSpeed != 5 {
		t.Errorf("ConfigBallSpeed = %d, expected default 5", snap.ConfigBallSpeed)
	}
	if snap.ConfigStartingLevel != 1 {
		t.Errorf("ConfigStartingLevel = %d, expected default 1", snap.ConfigStartingLevel)
	}
}

func TestValidate(t *testing.T) {
	good := game.New(1).Snapshot("ok", "default")

	tests := []struct {
		name    string
		mutate  func(*game.EndgameSnapshot)
		wantErr bool
	}{
		{"fresh game", func(s *game.EndgameSnapshot) {}, false},
		{"zero playfield", func(s *game.EndgameSnapshot) { s.Bounds.W = 0 }, true},
		{"oversized playfield", func(s *game.EndgameSnapshot) { s.Bounds.H = 6000 }, true},
		{"level zero", func(s *game.EndgameSnapshot) { s.Level = 0 }, true},
		{"negative lives", func(s *game.EndgameSnapshot) { s.Lives = -1 }, true},
		{"brick flood", func(s *game.EndgameSnapshot) {
			s.Bricks = make([]game.BrickState, 5001)
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := good
			snap.Bricks = append([]game.BrickState(nil), good.Bricks...)
			tt.mutate(&snap)
			err := Validate(snap)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
