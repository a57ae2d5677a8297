package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/lauds"
	main "github.com/fwojciec/lauds/cmd/lauds"
	"github.com/fwojciec/lauds/etree"
	"github.com/fwojciec/lauds/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportDeps(t *testing.T, stdout, stderr *bytes.Buffer) *main.Dependencies {
	t.Helper()
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Records: &mock.RecordService{
			FindRecordByDateFn: func(_ context.Context, d time.Time) (*lauds.Record, error) {
				r := storedRecord(t)
				r.Date = d
				return r, nil
			},
		},
		Exporter: etree.NewExporter(),
	}
}

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes JSON to stdout", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := exportDeps(t, stdout, &bytes.Buffer{})

		err := (&main.ExportCmd{Dates: []string{"2025-11-11"}, Format: main.FormatJSON}).Run(deps)

		require.NoError(t, err)
		var got lauds.Record
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, date(t, "2025-11-11"), got.Date)
	})

	t.Run("writes OpenLyrics to stdout", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := exportDeps(t, stdout, &bytes.Buffer{})

		err := (&main.ExportCmd{Dates: []string{"2025-11-11"}, Format: main.FormatOpenLyrics}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `<song xmlns="`+etree.Namespace+`"`)
		assert.Contains(t, stdout.String(), "Morning Prayer 2025-11-11")
	})

	t.Run("writes Markdown to stdout", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := exportDeps(t, stdout, &bytes.Buffer{})

		err := (&main.ExportCmd{Dates: []string{"2025-11-11"}, Format: main.FormatMarkdown}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Morning Prayer 2025-11-11")
	})

	t.Run("writes one JSON file per record into the output directory", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "export")
		stdout := &bytes.Buffer{}
		deps := exportDeps(t, stdout, &bytes.Buffer{})

		err := (&main.ExportCmd{Dates: []string{"2025-11-11", "2025-11-12"}, Format: main.FormatJSON, Out: out}).Run(deps)

		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(out, "2025-11-11.json"))
		assert.FileExists(t, filepath.Join(out, "2025-11-12.json"))
		assert.Contains(t, stdout.String(), "Wrote 2 record(s)")
	})

	t.Run("writes OpenLyrics files into the output directory", func(t *testing.T) {
		t.Parallel()

		out := t.TempDir()
		deps := exportDeps(t, &bytes.Buffer{}, &bytes.Buffer{})

		err := (&main.ExportCmd{Dates: []string{"2025-11-11"}, Format: main.FormatOpenLyrics, Out: out}).Run(deps)

		require.NoError(t, err)
		content, err := os.ReadFile(filepath.Join(out, "2025-11-11.xml"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "<verseOrder>")
	})

	t.Run("stops at the first missing record", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := exportDeps(t, stdout, stderr)
		deps.Records = &mock.RecordService{
			FindRecordByDateFn: func(_ context.Context, _ time.Time) (*lauds.Record, error) {
				return nil, lauds.Errorf(lauds.ENOTFOUND, "record not found")
			},
		}

		err := (&main.ExportCmd{Dates: []string{"2025-11-11"}, Format: main.FormatJSON}).Run(deps)

		assert.Equal(t, lauds.ENOTFOUND, lauds.ErrorCode(err))
		assert.Contains(t, stderr.String(), "record not found")
		assert.Empty(t, stdout.String())
	})

	t.Run("returns exporter errors", func(t *testing.T) {
		t.Parallel()

		exportErr := errors.New("disk full")
		stderr := &bytes.Buffer{}
		deps := exportDeps(t, &bytes.Buffer{}, stderr)
		deps.Exporter = &mock.Exporter{
			ExportFn: func(_ io.Writer, _ *lauds.Record) error {
				return exportErr
			},
		}

		err := (&main.ExportCmd{Dates: []string{"2025-11-11"}, Format: main.FormatOpenLyrics}).Run(deps)

		assert.Equal(t, exportErr, err)
		assert.Contains(t, stderr.String(), "disk full")
	})
}
