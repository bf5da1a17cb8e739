// Package levels defines the education-level (jenjang) domain entities.
package levels

// LevelID identifies one education branch of the institution. It is a closed
// enumeration: external input (hostname labels, env vars, request params) is
// converted into a LevelID at the boundary and anything unknown maps to the
// universal level.
type LevelID string

const (
	// Universal is the wildcard level spanning all branches. Content tagged
	// with it is visible everywhere, and filtering by it means no filter.
	Universal LevelID = "UMUM"

	LevelTK  LevelID = "TK"
	LevelSD  LevelID = "SD"
	LevelSMP LevelID = "SMP"
	LevelSMA LevelID = "SMA"
)

// Level holds the display metadata for one education level.
type Level struct {
	ID          LevelID `json:"id"`
	DisplayName string  `json:"displayName"`
	ThemeColor  string  `json:"themeColor"`
	TypeLabel   string  `json:"typeLabel"`
}

// Mapping is the full level-configuration map keyed by LevelID.
type Mapping map[LevelID]Level

// DefaultMapping returns the baked-in level set used whenever the
// authoritative mapping has not loaded yet. It is a fallback only and is
// never merged with a late-arriving remote mapping.
func DefaultMapping() Mapping {
	return Mapping{
		Universal: {ID: Universal, DisplayName: "Yayasan Unggul Bangsa", ThemeColor: "slate", TypeLabel: "Pusat"},
		LevelTK:   {ID: LevelTK, DisplayName: "TKIT Unggul Bangsa", ThemeColor: "rose", TypeLabel: "Taman Kanak-kanak"},
		LevelSD:   {ID: LevelSD, DisplayName: "SDIT Unggul Bangsa", ThemeColor: "emerald", TypeLabel: "Sekolah Dasar"},
		LevelSMP:  {ID: LevelSMP, DisplayName: "SMPIT Unggul Bangsa", ThemeColor: "sky", TypeLabel: "Sekolah Menengah Pertama"},
		LevelSMA:  {ID: LevelSMA, DisplayName: "SMAIT Unggul Bangsa", ThemeColor: "indigo", TypeLabel: "Sekolah Menengah Atas"},
	}
}

// Known reports whether id is part of the closed level set.
func Known(id LevelID) bool {
	switch id {
	case Universal, LevelTK, LevelSD, LevelSMP, LevelSMA:
		return true
	}
	return false
}

// AllIDs returns every known level ID with the universal level first.
func AllIDs() []LevelID {
	return []LevelID{Universal, LevelTK, LevelSD, LevelSMP, LevelSMA}
}
