// Package taxonomy contains the pure category-hierarchy logic: indexed
// lookup over a loaded category list, hierarchical display paths, and the
// default starter taxonomy seeded for new users. Nothing here touches
// storage; callers hand in already-loaded snapshots.
package taxonomy

import (
	"sort"
	"strings"

	"ledgerly/internal/models"
)

// PathSeparator joins category names in display paths ("Food > Groceries").
const PathSeparator = " > "

// Index provides O(1) category lookup by ID alongside a name-sorted
// sequence for display. The two are kept separate so nothing downstream
// depends on map iteration order.
type Index struct {
	byID   map[string]*models.Category
	Sorted []*models.Category
}

// NewIndex builds an Index over the given categories.
func NewIndex(categories []models.Category) *Index {
	idx := &Index{
		byID:   make(map[string]*models.Category, len(categories)),
		Sorted: make([]*models.Category, 0, len(categories)),
	}
	for i := range categories {
		c := &categories[i]
		idx.byID[c.ID] = c
		idx.Sorted = append(idx.Sorted, c)
	}
	sort.Slice(idx.Sorted, func(i, j int) bool {
		return idx.Sorted[i].Name < idx.Sorted[j].Name
	})
	return idx
}

// Get returns the category with the given ID, or nil if absent.
func (idx *Index) Get(id string) *models.Category {
	return idx.byID[id]
}

// Len returns the number of indexed categories.
func (idx *Index) Len() int {
	return len(idx.byID)
}

// ResolvePath returns the category's full hierarchical path in root-to-leaf
// order, e.g. "Food > Groceries". A category without a parent resolves to
// its own name. A dangling parent reference stops the walk and yields the
// partial path; corrupted store data must never be fatal here.
func ResolvePath(cat *models.Category, idx *Index) string {
	if cat == nil {
		return ""
	}
	names := []string{cat.Name}
	seen := map[string]bool{cat.ID: true}

	current := cat
	for current.ParentID != nil {
		parent := idx.Get(*current.ParentID)
		if parent == nil || seen[parent.ID] {
			break
		}
		seen[parent.ID] = true
		names = append(names, parent.Name)
		current = parent
	}

	// Reverse to root-to-leaf order.
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, PathSeparator)
}

// RootName returns the name of the category's top-level ancestor, used for
// roll-up groupings. A main category is its own root. A dangling parent
// reference falls back to the category's own name.
func RootName(cat *models.Category, idx *Index) string {
	if cat == nil {
		return ""
	}
	seen := map[string]bool{cat.ID: true}
	current := cat
	for current.ParentID != nil {
		parent := idx.Get(*current.ParentID)
		if parent == nil || seen[parent.ID] {
			break
		}
		seen[parent.ID] = true
		current = parent
	}
	return current.Name
}
