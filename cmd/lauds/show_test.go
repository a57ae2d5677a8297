package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/fwojciec/lauds"
	main "github.com/fwojciec/lauds/cmd/lauds"
	"github.com/fwojciec/lauds/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedRecord(t *testing.T) *lauds.Record {
	t.Helper()
	return &lauds.Record{
		ID:   "rec-123",
		Date: date(t, "2025-11-11"),
		Psalmody: lauds.Psalmody{
			Antiphon1: lauds.Antiphon{
				Text:       "My soul is thirsting for you, O Lord my God.",
				Format:     lauds.FormatAllResponse,
				PsalmTitle: "Psalm 63:2-9",
			},
		},
		ConcludingPrayer: "Lord God,\nyou gave us Saint Martin.\n— Amen.",
		Failures: []lauds.Failure{
			{Section: lauds.SectionGospel, Code: lauds.ENOTFOUND, Message: "gospel title not found"},
		},
		CreatedAt: time.Date(2025, 11, 11, 8, 0, 0, 0, time.UTC),
	}
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the record preview with its placeholders", func(t *testing.T) {
		t.Parallel()

		var requested time.Time
		records := &mock.RecordService{
			FindRecordByDateFn: func(_ context.Context, d time.Time) (*lauds.Record, error) {
				requested = d
				return storedRecord(t), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		err := (&main.ShowCmd{Date: "2025-11-11"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, date(t, "2025-11-11"), requested)
		output := stdout.String()
		assert.Contains(t, output, "# Morning Prayer 2025-11-11")
		assert.Contains(t, output, "My soul is thirsting for you, O Lord my God.")
		assert.Contains(t, output, "## Placeholders")
		assert.Contains(t, output, "- gospel (not_found): gospel title not found")
		assert.Contains(t, output, "Stored ")
	})

	t.Run("prints the record as JSON", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordByDateFn: func(_ context.Context, _ time.Time) (*lauds.Record, error) {
				return storedRecord(t), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		err := (&main.ShowCmd{Date: "2025-11-11", JSON: true}).Run(deps)

		require.NoError(t, err)
		var got lauds.Record
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, "rec-123", got.ID)
		assert.Equal(t, "Psalm 63:2-9", got.Psalmody.Antiphon1.PsalmTitle)
	})

	t.Run("suggests fetching when the record does not exist", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordByDateFn: func(_ context.Context, _ time.Time) (*lauds.Record, error) {
				return nil, lauds.Errorf(lauds.ENOTFOUND, "record not found")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Records: records,
		}

		err := (&main.ShowCmd{Date: "2025-11-11"}).Run(deps)

		assert.Equal(t, lauds.ENOTFOUND, lauds.ErrorCode(err))
		assert.Contains(t, stderr.String(), "lauds fetch 2025-11-11")
		assert.Empty(t, stdout.String())
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		err := (&main.ShowCmd{Date: "yesterday"}).Run(deps)

		assert.Equal(t, lauds.EINVALID, lauds.ErrorCode(err))
	})
}
