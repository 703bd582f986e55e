package script

import (
	"fmt"
	"strings"

	"github.com/archdash/backend/internal/domain/catalog"
	"github.com/archdash/backend/internal/shared/types"
)

// DefaultFilename is the suggested download name for generated scripts.
const DefaultFilename = "arch-install-script.sh"

var header = []string{
	"#!/bin/bash",
	"#",
	"# Install script generated by ArchDash.",
	"# Review before running: commands execute with your privileges.",
	"",
}

// Generate renders a shell install script for the given entries. An empty
// or nil subset includes every category; otherwise only entries whose
// category is in the subset appear. Entries are grouped under a header
// comment per category, in the fixed category declaration order, and
// categories without matching entries are omitted. Installed and
// not-installed entries are treated alike.
func Generate(entries []types.Entry, subset []types.CategoryType) string {
	included := make(map[types.CategoryType]bool, len(subset))
	for _, c := range subset {
		included[c] = true
	}

	byCategory := make(map[types.CategoryType][]types.Entry)
	for _, entry := range entries {
		if len(included) > 0 && !included[entry.Category] {
			continue
		}
		byCategory[entry.Category] = append(byCategory[entry.Category], entry)
	}

	lines := append([]string{}, header...)
	for _, category := range catalog.Categories() {
		group := byCategory[category.ID]
		if len(group) == 0 {
			continue
		}

		lines = append(lines, fmt.Sprintf("# %s", category.Label))
		for _, entry := range group {
			lines = append(lines, commandLine(entry))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// commandLine picks the shell line for one entry.
func commandLine(entry types.Entry) string {
	if entry.InstallCommand != "" {
		return entry.InstallCommand
	}
	if entry.PackageName != "" {
		return fmt.Sprintf("sudo pacman -S --needed %s", entry.PackageName)
	}
	return fmt.Sprintf("# %s: no install command defined", entry.Name)
}
