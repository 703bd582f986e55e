package types

import "time"

// CategoryType identifies one of the fixed classification buckets.
type CategoryType string

const (
	CategoryDrivers        CategoryType = "drivers"
	CategoryCoreUtilities  CategoryType = "core-utilities"
	CategoryExtraUtilities CategoryType = "extra-utilities"
	CategoryWebBrowsers    CategoryType = "web-browsers"
	CategoryTextEditors    CategoryType = "text-editors"
	CategoryLaunchers      CategoryType = "launchers"
	CategoryApplications   CategoryType = "applications"
	CategoryNotUsing       CategoryType = "not-using"
	CategoryScripts        CategoryType = "scripts"
	CategoryLocations      CategoryType = "locations"
	CategoryFonts          CategoryType = "fonts"
	CategoryThemes         CategoryType = "themes"
	CategoryIconThemes     CategoryType = "icon-themes"
	CategoryCursorThemes   CategoryType = "cursor-themes"
)

// Category describes one fixed classification bucket. The set of
// categories is closed and declared at compile time.
type Category struct {
	ID          CategoryType `json:"id"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
}

// Entry represents a user-tracked installable item.
type Entry struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Category       CategoryType `json:"category"`
	PackageName    string       `json:"packageName,omitempty"`
	InstallCommand string       `json:"installCommand,omitempty"`
	ConfigLocation string       `json:"configLocation,omitempty"`
	Notes          string       `json:"notes,omitempty"`
	IsInstalled    bool         `json:"isInstalled"`
	AddedAt        time.Time    `json:"addedAt"`
}

// EntryInput holds the caller-supplied fields for a new entry. ID and
// AddedAt are assigned by the store.
type EntryInput struct {
	Name           string       `json:"name" binding:"required"`
	Description    string       `json:"description"`
	Category       CategoryType `json:"category" binding:"required"`
	PackageName    string       `json:"packageName"`
	InstallCommand string       `json:"installCommand"`
	ConfigLocation string       `json:"configLocation"`
	Notes          string       `json:"notes"`
	IsInstalled    bool         `json:"isInstalled"`
}

// EntryPatch holds a partial update for an entry. Nil fields are left
// untouched; ID and AddedAt are never patchable.
type EntryPatch struct {
	Name           *string       `json:"name"`
	Description    *string       `json:"description"`
	Category       *CategoryType `json:"category"`
	PackageName    *string       `json:"packageName"`
	InstallCommand *string       `json:"installCommand"`
	ConfigLocation *string       `json:"configLocation"`
	Notes          *string       `json:"notes"`
	IsInstalled    *bool         `json:"isInstalled"`
}

// User represents a tracked local account, keyed by username.
type User struct {
	Username string `json:"username"`
	IsRoot   bool   `json:"isRoot"`
}

// InstallStatus filters entry listings by the installed flag.
type InstallStatus string

const (
	StatusAll          InstallStatus = "all"
	StatusInstalled    InstallStatus = "installed"
	StatusNotInstalled InstallStatus = "not-installed"
)

// SortField selects the entry listing sort key.
type SortField string

const (
	SortByName     SortField = "name"
	SortByCategory SortField = "category"
)

// SortDirection selects ascending or descending order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// EntryFilter narrows an entry listing. Zero values mean "no filter".
type EntryFilter struct {
	Category CategoryType
	Search   string
	Status   InstallStatus
}

// EntrySort orders an entry listing.
type EntrySort struct {
	Field     SortField
	Direction SortDirection
}

// CategoryCount holds the aggregate counts for one category.
type CategoryCount struct {
	Category  CategoryType `json:"category"`
	Label     string       `json:"label"`
	Total     int          `json:"total"`
	Installed int          `json:"installed"`
}

// CatalogStats contains per-category aggregates over the full catalog.
type CatalogStats struct {
	TotalEntries   int             `json:"totalEntries"`
	TotalInstalled int             `json:"totalInstalled"`
	TotalUsers     int             `json:"totalUsers"`
	Categories     []CategoryCount `json:"categories"`
}
