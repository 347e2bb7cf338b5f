// Package endgame persists named snapshots of games in progress as YAML
// files, so a run can be saved and resumed later.
package endgame

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/brickstorm/internal/config"
	"github.com/vovakirdan/brickstorm/internal/game"
)

var nameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Manager stores endgame snapshots in a single directory, one YAML file
// per save.
type Manager struct {
	dir string
}

// NewManager creates a manager over the given directory. The directory is
// created lazily on the first save.
func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// DefaultDir returns the user endgame directory, or empty if the home
// directory is unavailable.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickstorm", "endgames")
}

// Summary is one saved endgame in a listing.
type Summary struct {
	Name       string
	ConfigName string
	Level      int
	Score      int
	Lives      int
}

// ValidateName checks that a save name is usable as a file name: letters,
// digits, and underscores only.
func ValidateName(name string) error {
	if !nameRe.MatchString(name) {
		return fmt.Errorf("endgame: invalid name %q: use letters, digits, and underscores", name)
	}
	return nil
}

// Save writes the snapshot under its name, stamping the config echo from
// the active profile so the save can be resumed under the same rules.
// An existing save of the same name is refused unless overwrite is set.
func (m *Manager) Save(snap game.EndgameSnapshot, cfg config.Config, overwrite bool) error {
	if err := ValidateName(snap.Name); err != nil {
		return err
	}
	if err := Validate(snap); err != nil {
		return err
	}

	snap.ConfigName = cfg.Name
	snap.ConfigBallSpeed = cfg.BallSpeed
	snap.ConfigRandomSeed = cfg.RandomSeed
	snap.ConfigStartingLevel = cfg.StartingLevel

	if !overwrite {
		if _, err := os.Stat(m.path(snap.Name)); err == nil {
			return fmt.Errorf("endgame: save %q already exists", snap.Name)
		}
	}

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("endgame: cannot create directory %s: %w", m.dir, err)
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("endgame: cannot encode save %q: %w", snap.Name, err)
	}
	if err := os.WriteFile(m.path(snap.Name), data, 0o644); err != nil {
		return fmt.Errorf("endgame: cannot write save %q: %w", snap.Name, err)
	}
	return nil
}

// Load reads and validates a named snapshot. Config echo fields missing
// from the file get the defaults the original run would have used.
func (m *Manager) Load(name string) (game.EndgameSnapshot, error) {
	if err := ValidateName(name); err != nil {
		return game.EndgameSnapshot{}, err
	}

	data, err := os.ReadFile(m.path(name))
	if err != nil {
		return game.EndgameSnapshot{}, fmt.Errorf("endgame: cannot read save %q: %w", name, err)
	}

	var snap game.EndgameSnapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return game.EndgameSnapshot{}, fmt.Errorf("endgame: cannot parse save %q: %w", name, err)
	}

	snap.Name = name
	if snap.ConfigBallSpeed == 0 {
		snap.ConfigBallSpeed = 5
	}
	if snap.ConfigStartingLevel == 0 {
		snap.ConfigStartingLevel = 1
	}

	if err := Validate(snap); err != nil {
		return game.EndgameSnapshot{}, err
	}
	return snap, nil
}

// List returns a summary of every readable save, sorted by name.
// Unreadable or invalid files are skipped.
func (m *Manager) List() ([]Summary, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("endgame: cannot read directory %s: %w", m.dir, err)
	}

	var out []Summary
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".yaml")
		snap, err := m.Load(name)
		if err != nil {
			continue
		}
		out = append(out, Summary{
			Name:       name,
			ConfigName: snap.ConfigName,
			Level:      snap.Level,
			Score:      snap.Score,
			Lives:      snap.Lives,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes a named save.
func (m *Manager) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := os.Remove(m.path(name)); err != nil {
		return fmt.Errorf("endgame: cannot delete save %q: %w", name, err)
	}
	return nil
}

// Exists reports whether a save with the given name is on disk.
func (m *Manager) Exists(name string) bool {
	if ValidateName(name) != nil {
		return false
	}
	_, err := os.Stat(m.path(name))
	return err == nil
}

// Validate checks that a snapshot is sane enough to restore: a positive
// playfield no larger than 5000 on a side, level at least 1, lives not
// negative, and a bounded brick list.
func Validate(snap game.EndgameSnapshot) error {
	if snap.Bounds.W <= 0 || snap.Bounds.H <= 0 {
		return fmt.Errorf("endgame: save %q has an empty playfield", snap.Name)
	}
	if snap.Bounds.W > 5000 || snap.Bounds.H > 5000 {
		return fmt.Errorf("endgame: save %q playfield too large", snap.Name)
	}
	if snap.Level < 1 {
		return fmt.Errorf("endgame: save %q has invalid level %d", snap.Name, snap.Level)
	}
	if snap.Lives < 0 {
		return fmt.Errorf("endgame: save %q has negative lives", snap.Name)
	}
	if len(snap.Bricks) > 5000 {
		return fmt.Errorf("endgame: save %q has too many bricks", snap.Name)
	}
	return nil
}

func (m *Manager) path(name string) string {
	return filepath.Join(m.dir, name+".yaml")
}
