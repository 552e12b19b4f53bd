package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrProfileExists is returned when creating a profile whose name is taken.
	ErrProfileExists = errors.New("client profile already exists")
	// ErrProfileNotFound is returned when no profile file exists for a name.
	ErrProfileNotFound = errors.New("client profile not found")
	// ErrInvalidProfileName is returned when a name would resolve to a file
	// outside the clients directory.
	ErrInvalidProfileName = errors.New("invalid client profile name")
)

// Store persists client profiles as one JSON file per client.
type Store struct {
	dir string
}

// NewStore creates the profiles directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create clients directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Create writes a new profile. The profile name is the unique key.
func (s *Store) Create(p *Profile) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProfileName)
	}
	path, err := s.path(p.Name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrProfileExists, p.Name)
	}
	return s.write(path, p)
}

// Get loads a profile by name.
func (s *Store) Get(name string) (*Profile, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
		}
		return nil, fmt.Errorf("failed to read profile %s: %w", name, err)
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", name, err)
	}
	return &p, nil
}

// Update overwrites an existing profile.
func (s *Store) Update(name string, p *Profile) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	p.Name = name
	return s.write(path, p)
}

// Delete removes a profile.
func (s *Store) Delete(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return os.Remove(path)
}

// List returns all stored client names, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read clients directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		p, err := s.Get(strings.TrimSuffix(e.Name(), ".json"))
		if err != nil {
			continue
		}
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) write(path string, p *Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile %s: %w", p.Name, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", p.Name, err)
	}
	return nil
}

// path maps a client name to its file. Names come from the network, so
// anything that would resolve outside the clients directory is rejected.
func (s *Store) path(name string) (string, error) {
	safe := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
	if safe == "" || safe == "." || safe == ".." || strings.ContainsAny(safe, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidProfileName, name)
	}
	path := filepath.Join(s.dir, safe+".json")
	if filepath.Dir(path) != filepath.Clean(s.dir) {
		return "", fmt.Errorf("%w: %q", ErrInvalidProfileName, name)
	}
	return path, nil
}
