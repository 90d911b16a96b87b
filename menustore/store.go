// Package menustore persists parsed menus on disk, one <week>.json per week
// number.
//
// Writes are atomic (write .tmp then rename) so readers never observe a
// partial file, and same-week writes are serialized by a per-week mutex:
// concurrent uploads of the same week get deterministic last-write-wins
// semantics instead of interleaved output.
package menustore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/hazyhaar/kantina/menu"
)

// ErrNotFound is returned by Load when no menu is stored for the week.
var ErrNotFound = errors.New("menu not found")

// weekKeyRe restricts store keys to digit runs. Week keys come from user
// filenames; anything else must not reach the filesystem.
var weekKeyRe = regexp.MustCompile(`^[0-9]+$`)

// Store is an on-disk menu store rooted at a single directory.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a Store targeting dir. The directory is created on first save.
func New(dir string) *Store {
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}
}

// Save writes the menu for the given week and returns the file path.
func (s *Store) Save(week string, m *menu.Menu) (string, error) {
	if !weekKeyRe.MatchString(week) {
		return "", fmt.Errorf("menustore: invalid week key %q", week)
	}

	lock := s.weekLock(week)
	lock.Lock()
	defer lock.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("menustore: mkdir %s: %w", s.dir, err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("menustore: marshal week %s: %w", week, err)
	}

	target := filepath.Join(s.dir, week+".json")
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("menustore: write tmp: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("menustore: rename: %w", err)
	}
	return target, nil
}

// Load reads the stored menu for the given week. Returns ErrNotFound when no
// file exists for it.
func (s *Store) Load(week string) (*menu.Menu, error) {
	if !weekKeyRe.MatchString(week) {
		return nil, fmt.Errorf("menustore: invalid week key %q: %w", week, ErrNotFound)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, week+".json"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("menustore: week %s: %w", week, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("menustore: read week %s: %w", week, err)
	}

	var m menu.Menu
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("menustore: parse week %s: %w", week, err)
	}
	return &m, nil
}

// weekLock returns the mutex serializing writes for one week key.
func (s *Store) weekLock(week string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[week]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[week] = lock
	}
	return lock
}
