// Package registry manages the per-country source classification lists:
// which outlets exist, where their feeds live, and their bias/reliability
// ratings. The analysis engine never touches the registry directly — it
// receives a read-only map built here once per run.
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/newslens/newslens/internal/model"
)

// ErrSourceExists is returned when adding a source whose id is already
// registered for that country.
var ErrSourceExists = errors.New("source already exists")

// Registry holds source lists keyed by country code.
type Registry struct {
	path    string
	sources map[string][]model.Source
}

// Load reads the registry file at path, seeding it with the built-in
// defaults when it does not exist yet. Classification tuning is routine,
// so the file stays user-editable YAML.
func Load(path string) (*Registry, error) {
	r := &Registry{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read registry: %w", err)
		}
		r.sources = defaultSources()
		if err := r.Save(); err != nil {
			return nil, fmt.Errorf("seed registry: %w", err)
		}
		return r, nil
	}

	if err := yaml.Unmarshal(data, &r.sources); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}
	if r.sources == nil {
		r.sources = make(map[string][]model.Source)
	}
	return r, nil
}

// Save writes the registry back to its file.
func (r *Registry) Save() error {
	data, err := yaml.Marshal(r.sources)
	if err != nil {
		return fmt.Errorf("marshal registry: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create registry dir: %w", err)
		}
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write registry: %w", err)
	}
	return nil
}

// ByCountry returns the sources registered for a country code, ordered by id.
func (r *Registry) ByCountry(country string) []model.Source {
	sources := make([]model.Source, len(r.sources[normalizeCountry(country)]))
	copy(sources, r.sources[normalizeCountry(country)])
	sort.Slice(sources, func(i, j int) bool { return sources[i].ID < sources[j].ID })
	return sources
}

// Map returns a country's sources as an id-keyed lookup map, the read-only
// view the engine consumes.
func (r *Registry) Map(country string) map[string]model.Source {
	list := r.sources[normalizeCountry(country)]
	m := make(map[string]model.Source, len(list))
	for _, src := range list {
		m[src.ID] = src
	}
	return m
}

// Countries returns the sorted list of country codes with registered sources.
func (r *Registry) Countries() []string {
	codes := make([]string, 0, len(r.sources))
	for code := range r.sources {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Add registers a new source and persists the registry.
func (r *Registry) Add(src model.Source) error {
	country := normalizeCountry(src.Country)
	src.Country = country

	for _, existing := range r.sources[country] {
		if existing.ID == src.ID {
			return fmt.Errorf("%w: %s/%s", ErrSourceExists, country, src.ID)
		}
	}

	if r.sources == nil {
		r.sources = make(map[string][]model.Source)
	}
	r.sources[country] = append(r.sources[country], src)
	return r.Save()
}

// Remove deletes a source by country and id, reporting whether it existed.
func (r *Registry) Remove(country, id string) (bool, error) {
	country = normalizeCountry(country)
	list := r.sources[country]

	for i, src := range list {
		if src.ID == id {
			r.sources[country] = append(list[:i], list[i+1:]...)
			return true, r.Save()
		}
	}
	return false, nil
}

func normalizeCountry(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DefaultPath returns the standard registry location under the user's home.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".newslens", "sources.yaml"), nil
}
