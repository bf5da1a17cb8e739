// Package content defines the content entities served by the portal. Every
// record is a read-only projection of the remote content API; the portal never
// originates items outside the admin CRUD calls.
package content

import "github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"

// Kind identifies one content collection.
type Kind string

// CategoryAll is the synthetic "all items" category prepended to every
// category vocabulary at read time. It never reaches the remote API.
const CategoryAll = "Semua"

const (
	KindNews       Kind = "news"
	KindProjects   Kind = "projects"
	KindJournals   Kind = "journals"
	KindFacilities Kind = "facilities"
)

// AllKinds returns every content kind in a stable order.
func AllKinds() []Kind {
	return []Kind{KindNews, KindProjects, KindJournals, KindFacilities}
}

// KnownKind reports whether k is one of the four content kinds.
func KnownKind(k Kind) bool {
	switch k {
	case KindNews, KindProjects, KindJournals, KindFacilities:
		return true
	}
	return false
}

// HasCategories reports whether the kind carries a category vocabulary.
// Facilities are uncategorized.
func (k Kind) HasCategories() bool {
	return k != KindFacilities
}

// Item is a content record as returned by the remote API. Each item belongs
// to exactly one level (or the universal wildcard). List endpoints return
// summary projections; the detail endpoint returns the same shape with the
// full body populated.
type Item struct {
	ID       string         `json:"id"`
	Level    levels.LevelID `json:"jenjang"`
	Category string         `json:"category,omitempty"`
	Title    string         `json:"title"`
	Excerpt  string         `json:"excerpt,omitempty"`
	Body     string         `json:"body,omitempty"`

	// Kind-specific fields
	Author      string `json:"author,omitempty"`      // news, journals
	Mentor      string `json:"mentor,omitempty"`      // projects
	Score       int    `json:"score,omitempty"`       // projects, journals
	Image       string `json:"image,omitempty"`       // media reference
	PublishedAt string `json:"publishedAt,omitempty"` // server-side wall clock
}

// FindByID returns the first item in items whose ID matches, or nil.
func FindByID(items []Item, id string) *Item {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

// Related returns up to max items from items, excluding the one with the
// given ID, preserving fetch order.
func Related(items []Item, excludeID string, max int) []Item {
	related := make([]Item, 0, max)
	for i := range items {
		if items[i].ID == excludeID {
			continue
		}
		related = append(related, items[i])
		if len(related) == max {
			break
		}
	}
	return related
}
