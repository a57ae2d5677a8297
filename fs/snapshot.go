package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/lauds"
	"github.com/ulikunitz/xz"
)

// Snapshot file names inside a date directory.
const (
	MorningPrayerFile = "morning.html.xz"
	ReadingsFile      = "readings.html.xz"
)

// Ensure SnapshotStore implements lauds.SnapshotStore at compile time.
var _ lauds.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore keeps xz-compressed raw pages in one directory per date.
// Pages are written to a temporary directory first and moved into place
// once both are on disk, so a snapshot is never half written.
type SnapshotStore struct {
	baseDir string
}

// NewSnapshotStore creates a new SnapshotStore rooted at baseDir.
func NewSnapshotStore(baseDir string) *SnapshotStore {
	return &SnapshotStore{baseDir: baseDir}
}

func (s *SnapshotStore) dateDir(date time.Time) string {
	return filepath.Join(s.baseDir, date.Format(lauds.DateLayout))
}

// SaveSnapshot stores the pages for a date, replacing earlier ones. An
// empty readings page is not stored.
func (s *SnapshotStore) SaveSnapshot(ctx context.Context, date time.Time, pages *lauds.Pages) error {
	if pages == nil || pages.MorningPrayer == "" {
		return lauds.Errorf(lauds.EINVALID, "morning prayer page required")
	}

	final := s.dateDir(date)
	tmp := final + ".tmp"
	if err := os.RemoveAll(tmp); err != nil {
		return err
	}
	if err := os.MkdirAll(tmp, 0755); err != nil {
		return err
	}

	if err := writeCompressed(filepath.Join(tmp, MorningPrayerFile), pages.MorningPrayer); err != nil {
		os.RemoveAll(tmp)
		return err
	}
	if pages.Readings != "" {
		if err := writeCompressed(filepath.Join(tmp, ReadingsFile), pages.Readings); err != nil {
			os.RemoveAll(tmp)
			return err
		}
	}

	if err := os.RemoveAll(final); err != nil {
		return err
	}
	return os.Rename(tmp, final)
}

// LoadSnapshot returns the stored pages for a date.
func (s *SnapshotStore) LoadSnapshot(ctx context.Context, date time.Time) (*lauds.Pages, error) {
	dir := s.dateDir(date)

	morning, err := ReadPage(filepath.Join(dir, MorningPrayerFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, lauds.Errorf(lauds.ENOTFOUND, "snapshot for %s not found", date.Format(lauds.DateLayout))
	}
	if err != nil {
		return nil, err
	}

	readings, err := ReadPage(filepath.Join(dir, ReadingsFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	return &lauds.Pages{MorningPrayer: morning, Readings: readings}, nil
}

// ReadPage reads a saved page. Files ending in .xz are decompressed.
func ReadPage(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("failed to open %s: %w", path, err)
		}
		r = xr
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(b), nil
}

func writeCompressed(path, content string) error {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, content); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
