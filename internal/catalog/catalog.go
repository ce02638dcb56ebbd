// Package catalog holds the fixed course catalog used by the local
// recommendation path. The catalog is loaded once at process start and is
// immutable thereafter; concurrent reads need no synchronization.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed catalog.json
var embeddedCatalog []byte

// Entry is a static catalog record.
type Entry struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Organization  string   `json:"organization"`
	Skills        []string `json:"skills"`
	Prerequisites []string `json:"prerequisites"`
	Price         string   `json:"price"`
	Difficulty    string   `json:"difficulty"`
	Duration      string   `json:"duration"`
	Roadmap       []string `json:"roadmap"`
}

// Catalog is a read-only set of catalog entries.
type Catalog struct {
	entries []Entry
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	var entries []Entry
	if err := json.Unmarshal(embeddedCatalog, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}
	return &Catalog{entries: entries}, nil
}

// New builds a catalog from explicit entries. Used by the Postgres loader
// and by tests.
func New(entries []Entry) *Catalog {
	return &Catalog{entries: entries}
}

// Entries returns the catalog records. Callers must not mutate them.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Len returns the number of catalog records.
func (c *Catalog) Len() int {
	return len(c.entries)
}
