package types

// SystemDetails holds the scalar system fields reported by the probe.
type SystemDetails struct {
	Hostname     string `json:"hostname"`
	BaseInstall  string `json:"baseInstall"`
	Kernel       string `json:"kernel"`
	Bootloader   string `json:"bootloader"`
	LoginManager string `json:"loginManager"`
	Font         string `json:"font"`
	Theme        string `json:"theme"`
	IconTheme    string `json:"iconTheme"`
	CursorTheme  string `json:"cursorTheme"`
}

// DriverInfo holds detected driver names.
type DriverInfo struct {
	Graphics string `json:"graphics"`
	Audio    string `json:"audio"`
}

// PackageLists holds the installed-package names grouped by the probe's
// fixed package categories.
type PackageLists struct {
	CoreOsUtilities []string `json:"coreOsUtilities"`
	ExtraUtilities  []string `json:"extraUtilities"`
	WebBrowsers     []string `json:"webBrowsers"`
	TextEditors     []string `json:"textEditors"`
	Launchers       []string `json:"launchers"`
	Applications    []string `json:"applications"`
}

// ThemeLists holds the installed theming assets grouped by kind.
type ThemeLists struct {
	Fonts        []string `json:"fonts"`
	Themes       []string `json:"themes"`
	IconThemes   []string `json:"iconThemes"`
	CursorThemes []string `json:"cursorThemes"`
}

// SystemInfo is the snapshot returned by the host system probe. Every
// field is always populated: readers never see a partial snapshot.
type SystemInfo struct {
	System   SystemDetails `json:"system"`
	Users    []string      `json:"users"`
	Drivers  DriverInfo    `json:"drivers"`
	Packages PackageLists  `json:"packages"`
	Themes   ThemeLists    `json:"themes"`
}

const unknown = "Unknown"

// FallbackSystemInfo returns the snapshot substituted when the live probe
// fetch fails: every string field "Unknown", every list empty.
func FallbackSystemInfo() SystemInfo {
	return SystemInfo{
		System: SystemDetails{
			Hostname:     unknown,
			BaseInstall:  unknown,
			Kernel:       unknown,
			Bootloader:   unknown,
			LoginManager: unknown,
			Font:         unknown,
			Theme:        unknown,
			IconTheme:    unknown,
			CursorTheme:  unknown,
		},
		Users: []string{},
		Drivers: DriverInfo{
			Graphics: unknown,
			Audio:    unknown,
		},
		Packages: PackageLists{
			CoreOsUtilities: []string{},
			ExtraUtilities:  []string{},
			WebBrowsers:     []string{},
			TextEditors:     []string{},
			Launchers:       []string{},
			Applications:    []string{},
		},
		Themes: ThemeLists{
			Fonts:        []string{},
			Themes:       []string{},
			IconThemes:   []string{},
			CursorThemes: []string{},
		},
	}
}
