// Package plugin resolves plugin bundles by short name and instantiates them
// through a plugin.Format.
package plugin

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/towelWet/TowelHost/internal/search"
)

var (
	// ErrNameUndetermined is returned when no plugin name could be derived.
	ErrNameUndetermined = errors.New("could not determine plugin name")

	// ErrNotFound is returned when no candidate location exists.
	ErrNotFound = errors.New("plugin bundle not found")

	// ErrNotABundle is returned when the matched path is not a directory.
	ErrNotABundle = errors.New("plugin file is not a valid bundle (not a directory)")

	// ErrDiscoveryEmpty marks failures where the bundle declared no usable plugin.
	ErrDiscoveryEmpty = errors.New("no valid plugin found in bundle")

	// ErrInstantiationFailed is returned when every instantiation attempt failed.
	ErrInstantiationFailed = errors.New("failed to create any plugin instance from bundle")

	// ErrLoaderClosed is returned when loading through a closed loader.
	ErrLoaderClosed = errors.New("loader has been closed")
)

const noErrorMessage = "no error message provided by plugin format"

// NotFoundError lists where a bundle was looked for.
type NotFoundError struct {
	Name      string
	Dirs      search.Dirs
	Attempted []search.Candidate
}

func (e *NotFoundError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "could not find plugin %q. Searched in:", e.Name)

	n := 0
	line := func(label, dir string) {
		if dir == "" {
			return
		}

		n++
		fmt.Fprintf(&b, "\n  %d. %s: %s", n, label, dir)
	}

	line("same folder as app", e.Dirs.App)
	line("user plugins", e.Dirs.User)
	line("system plugins", e.Dirs.System)

	if n == 0 {
		for _, c := range e.Attempted {
			n++
			fmt.Fprintf(&b, "\n  %d. %s", n, c.Path)
		}
	}

	return b.String()
}

func notFound(name string, gen *search.Generator, attempted []search.Candidate) error {
	err := errors.Mark(&NotFoundError{Name: name, Dirs: gen.Dirs(), Attempted: attempted}, ErrNotFound)

	return errors.WithHintf(err, "Place the %s bundle next to the renamed app.", gen.Extension())
}

// discoveryEmptyHint lists the usual reasons a bundle declares nothing, with
// the quarantine removal command for path.
func discoveryEmptyHint(path string) string {
	return fmt.Sprintf(`The bundle was found but no plugin could be created from it. Common causes:
  - the plugin is unsigned or quarantined by Gatekeeper
  - the plugin was built for a different architecture
  - the plugin failed validation

Quick fix (remove quarantine):
  sudo xattr -r -d com.apple.quarantine %q

Other options:
  - open the plugin once from Finder (right-click, Open)
  - allow it under System Settings, Privacy & Security
  - run "auval -a" to check whether the system sees it
  - check Console.app for plugin loading errors`, path)
}

// FormatError renders err and its hints for display to the user.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	if hints := errors.FlattenHints(err); hints != "" {
		msg += "\n\n" + hints
	}

	return msg
}
