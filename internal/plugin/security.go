package plugin

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

const maxPanicMessageLen = 200

var (
	// ErrPathTraversal is returned when path traversal patterns are detected.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrPathNotAllowed is returned when a path escapes its bundle.
	ErrPathNotAllowed = errors.New("path not inside bundle")

	// ErrInvalidExtension is returned when a file extension is not allowed.
	ErrInvalidExtension = errors.New("invalid file extension")

	// ErrPluginPanicked marks errors recovered from a panicking format.
	ErrPluginPanicked = errors.New("plugin panicked")
)

var (
	pathTraversalPattern = regexp.MustCompile(`(?:^|/)\.\.(?:/|$)`)
	filePathPattern      = regexp.MustCompile(`(?:/[a-zA-Z0-9._-]+)+(?:\.[a-zA-Z0-9]+)?`)
)

// ValidateContained checks that rel, once joined to root and with symlinks
// resolved, stays inside root. It returns the resolved absolute path.
func ValidateContained(root, rel string) (string, error) {
	if rel == "" {
		return "", errors.New("path is required")
	}

	if filepath.IsAbs(rel) || pathTraversalPattern.MatchString(filepath.ToSlash(rel)) {
		return "", errors.Wrapf(ErrPathTraversal, "%s", rel)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve bundle path")
	}

	absRoot = evalSymlinksIfExists(absRoot)
	resolved := evalSymlinksIfExists(filepath.Join(absRoot, rel))

	if !isPathUnderDir(resolved, absRoot) {
		return "", errors.Wrapf(ErrPathNotAllowed, "%s resolves outside %s", rel, root)
	}

	return resolved, nil
}

// evalSymlinksIfExists resolves symlinks when the path exists and returns it
// unchanged otherwise.
func evalSymlinksIfExists(path string) string {
	if _, err := os.Lstat(path); err != nil {
		return path
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}

	return resolved
}

func isPathUnderDir(path, dir string) bool {
	if path == dir {
		return true
	}

	return strings.HasPrefix(path, strings.TrimSuffix(dir, string(filepath.Separator))+string(filepath.Separator))
}

// ValidateExtension checks if the file has an allowed extension.
func ValidateExtension(path string, allowed []string) error {
	if len(allowed) == 0 {
		return nil
	}

	ext := filepath.Ext(path)
	if ext == "" {
		return errors.Wrap(ErrInvalidExtension, "file has no extension")
	}

	for _, allowedExt := range allowed {
		if strings.EqualFold(ext, allowedExt) {
			return nil
		}
	}

	return errors.Wrapf(ErrInvalidExtension,
		"extension %q not in allowed list %v", ext, allowed)
}

// SanitizePanicMessage removes file paths from a recovered panic value and
// limits its length.
func SanitizePanicMessage(msg string) string {
	if msg == "" {
		return msg
	}

	sanitized := filePathPattern.ReplaceAllString(msg, "[path]")

	if len(sanitized) > maxPanicMessageLen {
		sanitized = sanitized[:maxPanicMessageLen] + "..."
	}

	return sanitized
}

// PanicError converts a recovered value into an error marked ErrPluginPanicked.
func PanicError(recovered any, during string) error {
	return errors.Mark(
		errors.Newf("plugin panicked during %s: %s", during, SanitizePanicMessage(fmt.Sprint(recovered))),
		ErrPluginPanicked,
	)
}
