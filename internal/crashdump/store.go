package crashdump

import (
	"cmp"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/towelWet/TowelHost/internal/xdg"
)

const (
	// FilePerm is the file permission for dump files.
	FilePerm fs.FileMode = 0o600

	// DirPerm is the permission of the dump directory.
	DirPerm fs.FileMode = 0o700

	// FileExtension is the extension for dump files.
	FileExtension = ".json"

	// DefaultMaxDumps is how many dumps Write keeps.
	DefaultMaxDumps = 10

	tempSuffix      = ".tmp"
	maxSummaryLen   = 80
	summaryEllipsis = "..."
)

var (
	// ErrDumpNotFound is returned when a dump does not exist.
	ErrDumpNotFound = errors.New("crash dump not found")

	// ErrInvalidDumpDir is returned when the dump directory is unusable.
	ErrInvalidDumpDir = errors.New("invalid dump directory")
)

// Summary is a dump listing entry.
type Summary struct {
	ID         string
	Timestamp  time.Time
	PanicValue string
	FilePath   string
	Size       int64
}

// Store keeps dumps as JSON files in one directory.
type Store struct {
	dir      string
	maxDumps int
}

// DefaultDir returns the dump directory under the XDG state directory.
func DefaultDir() string {
	return xdg.CrashDir()
}

// NewStore creates a Store in dir. maxDumps <= 0 uses DefaultMaxDumps.
func NewStore(dir string, maxDumps int) (*Store, error) {
	if dir == "" {
		return nil, errors.Wrap(ErrInvalidDumpDir, "dump directory cannot be empty")
	}

	expanded, err := xdg.ExpandPath(dir)
	if err != nil {
		return nil, errors.Mark(err, ErrInvalidDumpDir)
	}

	if maxDumps <= 0 {
		maxDumps = DefaultMaxDumps
	}

	return &Store{dir: expanded, maxDumps: maxDumps}, nil
}

// Dir returns the dump directory.
func (s *Store) Dir() string {
	return s.dir
}

// Write stores info atomically and prunes the oldest dumps beyond the limit.
// It returns the file path.
func (s *Store) Write(info *CrashInfo) (string, error) {
	if info == nil {
		return "", errors.New("crash info is nil")
	}

	if err := xdg.EnsureDir(s.dir); err != nil {
		return "", errors.Mark(err, ErrInvalidDumpDir)
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal crash info")
	}

	path := filepath.Join(s.dir, info.ID+FileExtension)
	tmp := path + tempSuffix

	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return "", errors.Wrap(err, "failed to write crash dump")
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)

		return "", errors.Wrap(err, "failed to write crash dump")
	}

	_, _ = s.Prune(s.maxDumps)

	return path, nil
}

// List returns all dumps, newest first. Unreadable files are skipped.
func (s *Store) List() ([]Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read dump directory")
	}

	summaries := make([]Summary, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), FileExtension) {
			continue
		}

		summary, err := s.summary(entry)
		if err != nil {
			continue
		}

		summaries = append(summaries, summary)
	}

	slices.SortFunc(summaries, func(a, b Summary) int {
		return cmp.Compare(b.Timestamp.UnixNano(), a.Timestamp.UnixNano())
	})

	return summaries, nil
}

func (s *Store) summary(entry fs.DirEntry) (Summary, error) {
	path := filepath.Join(s.dir, entry.Name())

	info, err := load(path)
	if err != nil {
		return Summary{}, err
	}

	stat, err := entry.Info()
	if err != nil {
		return Summary{}, errors.Wrap(err, "failed to stat dump")
	}

	value := info.PanicValue
	if len(value) > maxSummaryLen {
		value = value[:maxSummaryLen] + summaryEllipsis
	}

	return Summary{
		ID:         info.ID,
		Timestamp:  info.Timestamp,
		PanicValue: value,
		FilePath:   path,
		Size:       stat.Size(),
	}, nil
}

// Get loads the dump with the given ID.
func (s *Store) Get(id string) (*CrashInfo, error) {
	if id == "" || strings.ContainsAny(id, `/\`) {
		return nil, errors.Wrapf(ErrDumpNotFound, "ID: %q", id)
	}

	return load(filepath.Join(s.dir, id+FileExtension))
}

func load(path string) (*CrashInfo, error) {
	//nolint:gosec // G304: path is built from the dump directory and a validated ID
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrDumpNotFound, "file: %s", path)
		}

		return nil, errors.Wrap(err, "failed to read dump file")
	}

	var info CrashInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	return &info, nil
}

// Prune removes the oldest dumps beyond keep and returns how many it removed.
// keep of zero removes everything.
func (s *Store) Prune(keep int) (int, error) {
	summaries, err := s.List()
	if err != nil {
		return 0, err
	}

	removed := 0

	for i := max(keep, 0); i < len(summaries); i++ {
		if err := os.Remove(summaries[i].FilePath); err != nil {
			continue
		}

		removed++
	}

	return removed, nil
}
