package plugin

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/towelWet/TowelHost/internal/search"
	"github.com/towelWet/TowelHost/pkg/logger"
)

// ResolvedBundle is a bundle directory confirmed to exist.
type ResolvedBundle struct {
	// Name is the short name the bundle was resolved from.
	Name string

	// Path is the bundle directory.
	Path string

	// Candidate is the search entry that matched.
	Candidate search.Candidate

	// ChildCount is the number of entries directly inside the bundle.
	ChildCount int
}

// DiskUsage returns the total size of regular files inside the bundle and
// how many of them there are.
func (b *ResolvedBundle) DiskUsage() (size int64, files int, err error) {
	err = filepath.WalkDir(b.Path, func(_ string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return infoErr
		}

		size += info.Size()
		files++

		return nil
	})

	return size, files, errors.Wrapf(err, "failed to measure %s", b.Path)
}

// Resolver turns a short plugin name into a bundle directory.
type Resolver struct {
	gen *search.Generator
	log logger.Logger
}

// NewResolver creates a Resolver walking the candidates of gen.
func NewResolver(gen *search.Generator, log logger.Logger) *Resolver {
	return &Resolver{gen: gen, log: log}
}

// Candidates returns the locations Resolve would check for name, in order.
func (r *Resolver) Candidates(name string) []search.Candidate {
	if filepath.IsAbs(name) || pathExists(name) {
		return []search.Candidate{{Path: name, Tier: search.TierDirect, Variant: search.VariantExact}}
	}

	return r.gen.Generate(name)
}

// Resolve returns the first existing candidate for name.
// Absolute and existing paths are used as they are.
func (r *Resolver) Resolve(name string) (*ResolvedBundle, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.Wrap(ErrNameUndetermined, "empty plugin name")
	}

	candidates := r.Candidates(name)

	r.log.Debug("searching for plugin", "name", name, "candidates", len(candidates))

	var (
		match search.Candidate
		found bool
	)

	for _, c := range candidates {
		exists := pathExists(c.Path)
		r.log.Debug("checking path", "path", c.Path, "tier", c.Tier, "variant", c.Variant, "found", exists)

		if exists {
			match, found = c, true

			break
		}
	}

	if !found {
		r.log.Error("plugin not found", "name", name, "attempted", len(candidates))

		return nil, notFound(name, r.gen, candidates)
	}

	info, err := os.Stat(match.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat %s", match.Path)
	}

	if !info.IsDir() {
		r.log.Error("plugin path is not a bundle", "path", match.Path)

		return nil, errors.WithHint(
			errors.Wrapf(ErrNotABundle, "%s", match.Path),
			"Bundles are directories. Copy the whole bundle, not a single file from inside it.",
		)
	}

	bundle := &ResolvedBundle{
		Name:      bundleName(name, r.gen.Extension()),
		Path:      match.Path,
		Candidate: match,
	}

	if entries, readErr := os.ReadDir(match.Path); readErr == nil {
		bundle.ChildCount = len(entries)
	}

	if bundle.ChildCount == 0 {
		r.log.Info("warning: bundle directory is empty", "path", match.Path)
	}

	r.log.Info("plugin bundle found",
		"path", match.Path,
		"tier", match.Tier,
		"variant", match.Variant,
		"children", bundle.ChildCount,
	)

	return bundle, nil
}

// bundleName strips directories and the bundle extension from name.
func bundleName(name, ext string) string {
	base := filepath.Base(name)
	if len(base) > len(ext) && strings.EqualFold(base[len(base)-len(ext):], ext) {
		return base[:len(base)-len(ext)]
	}

	return base
}

func pathExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
