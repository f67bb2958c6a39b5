//go:build !darwin

package search

import (
	"path/filepath"

	"github.com/towelWet/TowelHost/internal/xdg"
)

// DefaultUserDir returns $XDG_DATA_HOME/towelhost/Components.
func DefaultUserDir() string {
	return filepath.Join(xdg.DataDir(), "Components")
}

// DefaultSystemDir returns /usr/local/lib/towelhost/Components.
func DefaultSystemDir() string {
	return "/usr/local/lib/towelhost/Components"
}
