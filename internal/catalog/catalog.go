package catalog

import (
	"github.com/sablemoor/RitualBot_Go/internal/utils"
)

// Entry is a single item definition in the catalog JSON
type Entry struct {
	InternalName string   `json:"internal_name"`
	DisplayName  string   `json:"display_name"`
	IconURL      string   `json:"icon_url,omitempty"`
	BaseValue    int      `json:"base_value"`
	Tags         []string `json:"tags,omitempty"`
	Aliases      []string `json:"aliases,omitempty"`
}

// Config represents the JSON configuration for the item catalog
type Config struct {
	Version     string  `json:"version"`
	Description string  `json:"description"`
	Items       []Entry `json:"items"`
}

// Catalog is an immutable, name-indexed view over the loaded item set.
// Display names and aliases share one normalized index so OCR tokens can be
// matched without caring about case or punctuation.
type Catalog struct {
	entries []Entry
	byID    map[string]int
	index   map[string]int // normalized display name / alias -> entry offset
}

// New builds an indexed catalog from entries. Loaders and tests use this
// directly; production code normally goes through a Loader.
func New(entries []Entry) *Catalog {
	c := &Catalog{
		entries: entries,
		byID:    make(map[string]int, len(entries)),
		index:   make(map[string]int),
	}
	for i, e := range entries {
		c.byID[e.InternalName] = i
		c.index[utils.NormalizeName(e.DisplayName)] = i
		for _, alias := range e.Aliases {
			c.index[utils.NormalizeName(alias)] = i
		}
	}
	return c
}

// Get returns the entry with the given internal name.
func (c *Catalog) Get(internalName string) (Entry, bool) {
	i, ok := c.byID[internalName]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Lookup resolves a display name or alias, normalizing the input first.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	i, ok := c.index[utils.NormalizeName(name)]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// NormalizedNames returns every normalized key in the index. The resolver
// ranges over these for fuzzy matching.
func (c *Catalog) NormalizedNames() []string {
	names := make([]string, 0, len(c.index))
	for name := range c.index {
		names = append(names, name)
	}
	return names
}

// EntryForNormalized returns the entry a normalized index key points at.
func (c *Catalog) EntryForNormalized(key string) (Entry, bool) {
	i, ok := c.index[key]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// All returns the full entry list in load order.
func (c *Catalog) All() []Entry {
	return c.entries
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
