// Package catalog holds the static DLL and API description table used to
// annotate import reports.
package catalog

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

const (
	// DefaultSummary is used for DLLs that have no catalog entry.
	DefaultSummary = "no summary available"
	// DefaultDescription is used for functions that have no catalog entry.
	DefaultDescription = "no description available"
)

// Function is a single API function and its description.
type Function struct {
	Name        string
	Description string
}

// Entry describes one DLL.
type Entry struct {
	Name      string
	Summary   string
	Functions []Function
}

// Catalog is an immutable, case-insensitive index over a set of entries.
type Catalog struct {
	entries []Entry
	dlls    map[string]int
	funcs   []map[string]int
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the compiled-in catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New(builtin)
	})
	return defaultCatalog
}

// New builds a catalog from entries. Entries and their function lists are
// copied, so later changes to the arguments do not affect the catalog.
// A repeated DLL name replaces the earlier entry's summary and appends its
// functions; a repeated function name keeps the last description.
func New(entries []Entry) *Catalog {
	c := &Catalog{dlls: make(map[string]int, len(entries))}
	for _, e := range entries {
		c.add(e)
	}
	return c
}

func (c *Catalog) add(e Entry) {
	key := NormalizeDLL(e.Name)
	idx, ok := c.dlls[key]
	if !ok {
		idx = len(c.entries)
		c.dlls[key] = idx
		c.entries = append(c.entries, Entry{Name: key})
		c.funcs = append(c.funcs, make(map[string]int, len(e.Functions)))
	}

	entry := &c.entries[idx]
	if e.Summary != "" {
		entry.Summary = e.Summary
	}
	for _, fn := range e.Functions {
		fkey := fold(fn.Name)
		if i, exists := c.funcs[idx][fkey]; exists {
			entry.Functions[i].Description = fn.Description
			continue
		}
		c.funcs[idx][fkey] = len(entry.Functions)
		entry.Functions = append(entry.Functions, fn)
	}
}

// Merge returns a new catalog containing c's entries overlaid with other's.
// Neither input is modified.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	merged := New(c.entries)
	if other != nil {
		for _, e := range other.entries {
			merged.add(e)
		}
	}
	return merged
}

// Len returns the number of DLL entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = cloneEntry(e)
	}
	return out
}

// Lookup returns a copy of the entry for dll.
func (c *Catalog) Lookup(dll string) (Entry, bool) {
	idx, ok := c.dlls[NormalizeDLL(dll)]
	if !ok {
		return Entry{}, false
	}
	return cloneEntry(c.entries[idx]), true
}

// Summary returns the DLL summary, or DefaultSummary when dll is unknown.
func (c *Catalog) Summary(dll string) string {
	idx, ok := c.dlls[NormalizeDLL(dll)]
	if !ok || c.entries[idx].Summary == "" {
		return DefaultSummary
	}
	return c.entries[idx].Summary
}

// Describe looks up the description of fn exported by dll.
func (c *Catalog) Describe(dll, fn string) (string, bool) {
	idx, ok := c.dlls[NormalizeDLL(dll)]
	if !ok {
		return "", false
	}
	return c.describeIn(idx, fn)
}

// Search looks fn up in every DLL, in catalog order, and returns the first
// description found.
func (c *Catalog) Search(fn string) (string, bool) {
	for idx := range c.entries {
		if desc, ok := c.describeIn(idx, fn); ok {
			return desc, true
		}
	}
	return "", false
}

func (c *Catalog) describeIn(idx int, fn string) (string, bool) {
	for _, key := range lookupKeys(fn) {
		if i, ok := c.funcs[idx][key]; ok {
			return c.entries[idx].Functions[i].Description, true
		}
	}
	return "", false
}

// NormalizeDLL returns the canonical (case-folded, trimmed) form of a DLL name.
func NormalizeDLL(name string) string {
	return fold(strings.TrimSpace(name))
}

// lookupKeys returns the keys tried for a function name: the folded name, then
// the name without its trailing A/W character-set suffix.
func lookupKeys(fn string) []string {
	key := fold(fn)
	keys := []string{key}
	if n := len(key); n > 1 && (key[n-1] == 'a' || key[n-1] == 'w') {
		keys = append(keys, key[:n-1])
	}
	return keys
}

func fold(s string) string {
	return cases.Fold().String(s)
}

func cloneEntry(e Entry) Entry {
	e.Functions = append([]Function(nil), e.Functions...)
	return e
}
