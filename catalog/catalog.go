package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/halewijn/edo31/logging"
	"github.com/halewijn/edo31/theory/chord"
	"github.com/halewijn/edo31/theory/scale"
	"github.com/halewijn/edo31/util"
)

// Entry is one published scale together with every chord derivation
// computed for it. Entries are immutable after generation.
type Entry struct {
	scale.Scale
	Chords chord.Set `json:"chords"`
}

// Family is one generator family's output. Exactly one of Scales (flat
// array shape) or Groups (object keyed by sub-family) is populated; the
// serialized file carries the shape directly with no wrapper.
type Family struct {
	Name   string
	Scales []Entry
	Groups map[string][]Entry
}

// Count returns the number of entries in the family across both shapes.
func (f Family) Count() int {
	if f.Groups != nil {
		total := 0
		for _, entries := range f.Groups {
			total += len(entries)
		}
		return total
	}
	return len(f.Scales)
}

// Manifest records one generation run.
type Manifest struct {
	RunID        string         `json:"run_id"`
	GeneratedAt  time.Time      `json:"generated_at"`
	ScaleCount   int            `json:"scale_count"`
	FamilyCounts map[string]int `json:"family_counts"`
	Params       any            `json:"params,omitempty"`
}

// Catalog is the full output of one generation run.
type Catalog struct {
	Manifest Manifest
	Families []Family
}

// NewCatalog stamps a manifest for a fresh run.
func NewCatalog(params any) *Catalog {
	return &Catalog{
		Manifest: Manifest{
			RunID:        uuid.NewString(),
			GeneratedAt:  time.Now().UTC(),
			FamilyCounts: make(map[string]int),
			Params:       params,
		},
	}
}

// AddFamily appends a family and updates the manifest counts.
func (c *Catalog) AddFamily(f Family) {
	c.Families = append(c.Families, f)
	c.Manifest.FamilyCounts[f.Name] = f.Count()
	c.Manifest.ScaleCount += f.Count()
}

// Write serializes the catalog into dir: one JSON document per family plus
// manifest.json. Family files are either a flat entry array or an object
// keyed by sub-family, matching the family's shape.
func (c *Catalog) Write(dir string) error {
	if err := util.EnsureDir(dir); err != nil {
		return err
	}

	logger := logging.WithFields(logging.Fields{"component": "catalog"})

	for _, family := range c.Families {
		var payload any
		if family.Groups != nil {
			payload = family.Groups
		} else {
			payload = family.Scales
		}
		path := filepath.Join(dir, family.Name+".json")
		if err := writeJSON(path, payload); err != nil {
			return err
		}
		logger.Info("wrote family", logging.Fields{
			"family": family.Name,
			"scales": family.Count(),
			"path":   path,
		})
	}

	return writeJSON(filepath.Join(dir, "manifest.json"), c.Manifest)
}

func writeJSON(path string, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// LoadManifest reads manifest.json from a generated catalog directory.
func LoadManifest(dir string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		return m, fmt.Errorf("reading manifest: %w", err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("decoding manifest: %w", err)
	}
	return m, nil
}

// LoadFamilyFlat reads a flat-shaped family file.
func LoadFamilyFlat(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return entries, nil
}

// LoadFamilyGrouped reads a sub-family-keyed family file.
func LoadFamilyGrouped(path string) (map[string][]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var groups map[string][]Entry
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return groups, nil
}
