// Package search generates the ordered list of locations where a plugin
// bundle may live for a given short name.
package search

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Tier is the priority class of a candidate. Lower tiers win.
type Tier int

const (
	// TierDirect marks a name that was itself a usable path.
	TierDirect Tier = iota

	// TierApp is the directory holding the application.
	TierApp

	// TierUser is the per-user plugin directory.
	TierUser

	// TierSystem is the system-wide plugin directory.
	TierSystem
)

func (t Tier) String() string {
	switch t {
	case TierDirect:
		return "direct"
	case TierApp:
		return "app"
	case TierUser:
		return "user"
	case TierSystem:
		return "system"
	default:
		return "unknown"
	}
}

// Variant describes how a candidate path was derived from the name.
type Variant int

const (
	// VariantExact is <dir>/<name>.
	VariantExact Variant = iota

	// VariantExtension is <dir>/<name><ext>.
	VariantExtension

	// VariantSubfolder is <dir>/<stem>/<stem><ext>.
	VariantSubfolder

	// VariantLowerExact is VariantExact with the name lower-cased.
	VariantLowerExact

	// VariantLowerExtension is VariantExtension with the name lower-cased.
	VariantLowerExtension

	// VariantLowerSubfolder is VariantSubfolder with the name lower-cased.
	VariantLowerSubfolder

	// VariantScan is a directory entry matched ignoring case.
	VariantScan
)

func (v Variant) String() string {
	switch v {
	case VariantExact:
		return "exact"
	case VariantExtension:
		return "extension"
	case VariantSubfolder:
		return "subfolder"
	case VariantLowerExact:
		return "lower-exact"
	case VariantLowerExtension:
		return "lower-extension"
	case VariantLowerSubfolder:
		return "lower-subfolder"
	case VariantScan:
		return "scan"
	default:
		return "unknown"
	}
}

// Candidate is one location to check.
type Candidate struct {
	Path    string
	Tier    Tier
	Variant Variant
}

// Dirs holds the tier directories. Empty entries are skipped.
type Dirs struct {
	App    string
	User   string
	System string
}

// Generator produces candidate lists. It only ever lists directories.
type Generator struct {
	dirs      Dirs
	extension string
	patterns  []string
}

// NewGenerator creates a Generator. extension must include the leading dot.
// patterns are doublestar patterns used by the case-insensitive scan; when
// empty, "*<extension>" is used.
func NewGenerator(dirs Dirs, extension string, patterns []string) *Generator {
	if len(patterns) == 0 {
		patterns = []string{"*" + extension}
	}

	lowered := make([]string, len(patterns))
	for i, p := range patterns {
		lowered[i] = strings.ToLower(p)
	}

	return &Generator{
		dirs:      dirs,
		extension: extension,
		patterns:  lowered,
	}
}

// Extension returns the bundle extension.
func (g *Generator) Extension() string {
	return g.extension
}

// Dirs returns the tier directories.
func (g *Generator) Dirs() Dirs {
	return g.dirs
}

// Roots returns the non-empty tier directories in priority order.
func (g *Generator) Roots() []string {
	var roots []string

	for _, dir := range []string{g.dirs.App, g.dirs.User, g.dirs.System} {
		if dir != "" {
			roots = append(roots, dir)
		}
	}

	return roots
}

// Generate returns the candidates for name in priority order.
// Resolution must take the first one that exists.
func (g *Generator) Generate(name string) []Candidate {
	if name == "" {
		return nil
	}

	var out []Candidate

	tiers := []struct {
		dir  string
		tier Tier
	}{
		{g.dirs.App, TierApp},
		{g.dirs.User, TierUser},
		{g.dirs.System, TierSystem},
	}

	lower := strings.ToLower(name)

	for _, t := range tiers {
		if t.dir == "" {
			continue
		}

		out = g.appendVariants(out, t.dir, t.tier, name, false)

		if lower != name {
			out = g.appendVariants(out, t.dir, t.tier, lower, true)
		}
	}

	stem := g.stem(name)

	for _, t := range tiers[1:] {
		if t.dir == "" {
			continue
		}

		for _, path := range g.scan(t.dir, stem) {
			out = appendUnique(out, Candidate{Path: path, Tier: t.tier, Variant: VariantScan})
		}
	}

	return out
}

func (g *Generator) appendVariants(out []Candidate, dir string, tier Tier, name string, lowered bool) []Candidate {
	exact, ext, sub := VariantExact, VariantExtension, VariantSubfolder
	if lowered {
		exact, ext, sub = VariantLowerExact, VariantLowerExtension, VariantLowerSubfolder
	}

	out = appendUnique(out, Candidate{Path: filepath.Join(dir, name), Tier: tier, Variant: exact})

	if !g.hasExtension(name) {
		out = appendUnique(out, Candidate{Path: filepath.Join(dir, name+g.extension), Tier: tier, Variant: ext})
	}

	stem := g.stem(name)

	return appendUnique(out, Candidate{
		Path:    filepath.Join(dir, stem, stem+g.extension),
		Tier:    tier,
		Variant: sub,
	})
}

// scan lists dir and returns the directory entries matching a scan pattern
// whose stem equals stem ignoring case. Unreadable directories yield nothing.
func (g *Generator) scan(dir, stem string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var matches []string

	for _, entry := range entries {
		name := entry.Name()
		if !g.matchesPattern(name) {
			continue
		}

		if !strings.EqualFold(strings.TrimSuffix(name, filepath.Ext(name)), stem) {
			continue
		}

		path := filepath.Join(dir, name)
		if !isDir(entry, path) {
			continue
		}

		matches = append(matches, path)
	}

	return matches
}

func (g *Generator) matchesPattern(name string) bool {
	lower := strings.ToLower(name)

	for _, pattern := range g.patterns {
		if ok, _ := doublestar.Match(pattern, lower); ok {
			return true
		}
	}

	return false
}

func (g *Generator) hasExtension(name string) bool {
	return len(name) >= len(g.extension) &&
		strings.EqualFold(name[len(name)-len(g.extension):], g.extension)
}

func (g *Generator) stem(name string) string {
	if g.hasExtension(name) {
		return name[:len(name)-len(g.extension)]
	}

	return name
}

// isDir follows symlinks so linked bundles are found.
func isDir(entry os.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}

	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}

	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}

func appendUnique(out []Candidate, c Candidate) []Candidate {
	if n := len(out); n > 0 && out[n-1].Path == c.Path {
		return out
	}

	return append(out, c)
}
