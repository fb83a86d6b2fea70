// Package lookup defines random lookup tables.
package lookup

import (
	"fmt"
	"sort"

	"github.com/louisbranch/tabletop/internal/campaign/asset"
)

// Entry maps an inclusive roll range to a result.
type Entry struct {
	Min, Max int
	Value    string
	ImageID  asset.ID
}

// Covers reports whether roll falls inside the entry's range.
func (e Entry) Covers(roll int) bool {
	return roll >= e.Min && roll <= e.Max
}

// Spec holds the inputs for a Table.
type Spec struct {
	Name string
	// Roll is the dice expression players roll against the table.
	Roll        string
	Visible     bool
	AllowLookup bool
	ImageID     asset.ID
	Entries     []Entry
}

// Table is an immutable lookup table. Registries share tables between
// copies, so a table never changes once built.
type Table struct {
	spec Spec
}

// NewTable validates spec and builds a table. Entries are sorted by Min and
// must not overlap.
func NewTable(spec Spec) (*Table, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("lookup table name is required")
	}
	entries := append([]Entry(nil), spec.Entries...)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Min < entries[j].Min })
	for i, e := range entries {
		if e.Min > e.Max {
			return nil, fmt.Errorf("table %q: entry %q has min %d > max %d", spec.Name, e.Value, e.Min, e.Max)
		}
		if i > 0 && e.Min <= entries[i-1].Max {
			return nil, fmt.Errorf("table %q: entries %q and %q overlap", spec.Name, entries[i-1].Value, e.Value)
		}
	}
	spec.Entries = entries
	return &Table{spec: spec}, nil
}

// Name returns the table name.
func (t *Table) Name() string { return t.get().Name }

// Roll returns the dice expression rolled against the table.
func (t *Table) Roll() string { return t.get().Roll }

// Visible reports whether players can see the table.
func (t *Table) Visible() bool { return t.get().Visible }

// AllowLookup reports whether players may roll on the table.
func (t *Table) AllowLookup() bool { return t.get().AllowLookup }

// ImageID returns the table's own image, if any.
func (t *Table) ImageID() asset.ID { return t.get().ImageID }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.get().Entries) }

// Entries returns a copy of the entries in roll order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.get().Entries...)
}

// Bounds returns the lowest and highest roll the table covers.
func (t *Table) Bounds() (min, max int) {
	entries := t.get().Entries
	if len(entries) == 0 {
		return 0, 0
	}
	return entries[0].Min, entries[len(entries)-1].Max
}

// Lookup returns the entry covering roll.
func (t *Table) Lookup(roll int) (Entry, bool) {
	entries := t.get().Entries
	i := sort.Search(len(entries), func(i int) bool { return entries[i].Max >= roll })
	if i < len(entries) && entries[i].Covers(roll) {
		return entries[i], true
	}
	return Entry{}, false
}

// AllAssetIDs returns the table image and every entry image.
func (t *Table) AllAssetIDs() []asset.ID {
	spec := t.get()
	var ids []asset.ID
	if !spec.ImageID.IsZero() {
		ids = append(ids, spec.ImageID)
	}
	for _, e := range spec.Entries {
		if !e.ImageID.IsZero() {
			ids = append(ids, e.ImageID)
		}
	}
	return ids
}

// get returns the table's inputs; a nil table reads as empty.
func (t *Table) get() Spec {
	if t == nil {
		return Spec{}
	}
	return t.spec
}

// Spec returns a copy of the inputs the table was built from.
func (t *Table) Spec() Spec {
	s := t.get()
	s.Entries = t.Entries()
	return s
}
