package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/abhisek/statpick/internal/locale"
)

// ErrNotFound is returned by Lookup for an identifier outside the catalog.
// Terminal outcomes only name catalog IDs, so seeing it means a bug.
var ErrNotFound = errors.New("test not found")

// Catalog is the validated, read-only set of test records for one locale.
type Catalog struct {
	locale   locale.Locale
	records  []TestRecord
	byID     map[ID]int
	families map[Family]FamilyInfo
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Load(locale.English)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
})

// Default returns the English catalog.
func Default() *Catalog {
	return defaultCatalog()
}

// newCatalog indexes records and orders them by IDs().
func newCatalog(records []TestRecord, families map[Family]FamilyInfo) *Catalog {
	order := make(map[ID]int, len(records))
	for i, id := range IDs() {
		order[id] = i
	}

	sorted := make([]TestRecord, len(records))
	for i, r := range records {
		sorted[i] = r.clone()
	}
	slices.SortStableFunc(sorted, func(a, b TestRecord) int {
		return order[a.ID] - order[b.ID]
	})

	c := &Catalog{
		records:  sorted,
		byID:     make(map[ID]int, len(sorted)),
		families: maps.Clone(families),
	}
	for i, r := range sorted {
		c.byID[r.ID] = i
	}
	return c
}

// Locale returns the language the catalog text is written in.
func (c *Catalog) Locale() locale.Locale {
	return c.locale
}

// Lookup returns the record for id.
func (c *Catalog) Lookup(id ID) (TestRecord, error) {
	i, ok := c.byID[id]
	if !ok {
		return TestRecord{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return c.records[i].clone(), nil
}

// All returns every record in display order.
func (c *Catalog) All() []TestRecord {
	out := make([]TestRecord, len(c.records))
	for i, r := range c.records {
		out[i] = r.clone()
	}
	return out
}

// ByFamily returns the records of one family in display order.
func (c *Catalog) ByFamily(f Family) []TestRecord {
	var out []TestRecord
	for _, r := range c.records {
		if r.Family == f {
			out = append(out, r.clone())
		}
	}
	return out
}

// FamilyName returns the localized display name of f.
func (c *Catalog) FamilyName(f Family) string {
	if info, ok := c.families[f]; ok {
		return info.Name
	}
	return string(f)
}

// FamilyDescription returns a one-line localized summary of f, or "" for
// an unknown family.
func (c *Catalog) FamilyDescription(f Family) string {
	return c.families[f].Description
}
