package catalog

import "github.com/archdash/backend/internal/shared/types"

// categories is the fixed category set. Declaration order is the display
// and script-section order, so keep it stable.
var categories = []types.Category{
	{ID: types.CategoryDrivers, Label: "Drivers", Description: "Graphics, audio, and other hardware drivers"},
	{ID: types.CategoryCoreUtilities, Label: "Core Utilities", Description: "Essential system tools and daemons"},
	{ID: types.CategoryExtraUtilities, Label: "Extra Utilities", Description: "Optional helpers and quality-of-life tools"},
	{ID: types.CategoryWebBrowsers, Label: "Web Browsers", Description: "Browsers and web runtimes"},
	{ID: types.CategoryTextEditors, Label: "Text Editors", Description: "Editors and IDEs"},
	{ID: types.CategoryLaunchers, Label: "Launchers", Description: "Application launchers and menus"},
	{ID: types.CategoryApplications, Label: "Applications", Description: "Desktop applications"},
	{ID: types.CategoryNotUsing, Label: "Not Using", Description: "Tracked but currently unused packages"},
	{ID: types.CategoryScripts, Label: "Scripts", Description: "Custom scripts and one-off commands"},
	{ID: types.CategoryLocations, Label: "Locations", Description: "Important filesystem locations"},
	{ID: types.CategoryFonts, Label: "Fonts", Description: "Installed font packages"},
	{ID: types.CategoryThemes, Label: "Themes", Description: "GTK and shell themes"},
	{ID: types.CategoryIconThemes, Label: "Icon Themes", Description: "Icon sets"},
	{ID: types.CategoryCursorThemes, Label: "Cursor Themes", Description: "Cursor sets"},
}

// Categories returns the fixed category definitions in declaration order.
// The returned slice is a copy; callers may not mutate the set.
func Categories() []types.Category {
	out := make([]types.Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByID looks up a category definition by id.
func CategoryByID(id types.CategoryType) (types.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return types.Category{}, false
}
