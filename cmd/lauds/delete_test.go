package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/lauds"
	main "github.com/fwojciec/lauds/cmd/lauds"
	"github.com/fwojciec/lauds/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes the record for a date", func(t *testing.T) {
		t.Parallel()

		var deleted time.Time
		records := &mock.RecordService{
			DeleteRecordFn: func(_ context.Context, d time.Time) error {
				deleted = d
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		err := (&main.DeleteCmd{Date: "2025-11-11", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, date(t, "2025-11-11"), deleted)
		assert.Contains(t, stdout.String(), "Deleted record for 2025-11-11")
	})

	t.Run("requires --force", func(t *testing.T) {
		t.Parallel()

		called := false
		records := &mock.RecordService{
			DeleteRecordFn: func(_ context.Context, _ time.Time) error {
				called = true
				return nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Records: records,
		}

		err := (&main.DeleteCmd{Date: "2025-11-11"}).Run(deps)

		assert.Equal(t, lauds.EINVALID, lauds.ErrorCode(err))
		assert.False(t, called)
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("reports a missing record", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			DeleteRecordFn: func(_ context.Context, _ time.Time) error {
				return lauds.Errorf(lauds.ENOTFOUND, "record not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Records: records,
		}

		err := (&main.DeleteCmd{Date: "2025-11-11", Force: true}).Run(deps)

		assert.Equal(t, lauds.ENOTFOUND, lauds.ErrorCode(err))
		assert.Contains(t, stderr.String(), "lauds list")
	})
}
