//go:build darwin

package search

import (
	"github.com/towelWet/TowelHost/internal/xdg"
)

// DefaultUserDir returns ~/Library/Audio/Plug-Ins/Components.
func DefaultUserDir() string {
	return xdg.ExpandPathSilent("~/Library/Audio/Plug-Ins/Components")
}

// DefaultSystemDir returns /Library/Audio/Plug-Ins/Components.
func DefaultSystemDir() string {
	return "/Library/Audio/Plug-Ins/Components"
}
