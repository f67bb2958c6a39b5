package host

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

const appBundleExt = ".app"

// appBundle returns the .app directory containing exePath when the executable
// sits in X.app/Contents/MacOS.
func appBundle(exePath string) (string, bool) {
	macOS := filepath.Dir(exePath)
	contents := filepath.Dir(macOS)
	bundle := filepath.Dir(contents)

	if filepath.Base(macOS) != "MacOS" || filepath.Base(contents) != "Contents" {
		return "", false
	}

	if !strings.EqualFold(filepath.Ext(bundle), appBundleExt) {
		return "", false
	}

	return bundle, true
}

// ExecutableName derives the plugin name from the executable path: the
// application bundle name without extension, or the executable name without
// extension when not inside a bundle.
func ExecutableName(exePath string) string {
	if exePath == "" {
		return ""
	}

	if bundle, ok := appBundle(exePath); ok {
		return trimExt(filepath.Base(bundle))
	}

	return trimExt(filepath.Base(exePath))
}

// AppLocation returns the directory searched first for bundles: the one
// holding the application bundle, or the executable's directory.
func AppLocation(exePath string) string {
	if bundle, ok := appBundle(exePath); ok {
		return filepath.Dir(bundle)
	}

	return filepath.Dir(exePath)
}

// CurrentExecutable returns the running executable path with symlinks resolved.
func CurrentExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "failed to locate executable")
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return exe, nil
}

func trimExt(name string) string {
	if ext := filepath.Ext(name); ext != "" && ext != name {
		return strings.TrimSuffix(name, ext)
	}

	return name
}
