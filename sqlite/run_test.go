package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/bodytext"
	"github.com/fwojciec/bodytext/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testRun() *bodytext.Run {
	return &bodytext.Run{
		Rows: []bodytext.Row{
			{
				InputURL:   "http://a",
				FinalURL:   "https://a/",
				HTTPStatus: 200,
				Title:      "A",
				BodyText:   "Hello",
				BodyLen:    5,
			},
			{
				InputURL: "http://b",
				Error:    "timeout",
			},
		},
		Succeeded: 1,
		Failed:    1,
	}
}

func TestRunService_SaveRun(t *testing.T) {
	t.Parallel()

	t.Run("saves run with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		run := testRun()

		require.NoError(t, svc.SaveRun(context.Background(), run))

		assert.NotEmpty(t, run.ID, "ID should be generated")
		assert.False(t, run.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("preserves caller-assigned ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		run := testRun()
		run.ID = "run-123"
		run.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		require.NoError(t, svc.SaveRun(context.Background(), run))
		assert.Equal(t, "run-123", run.ID)
	})

	t.Run("rejects empty run", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)

		err := svc.SaveRun(context.Background(), &bodytext.Run{})
		require.Error(t, err)
		assert.Equal(t, bodytext.EINVALID, bodytext.ErrorCode(err))
	})
}

func TestRunService_FindRunByID(t *testing.T) {
	t.Parallel()

	t.Run("returns run with rows in position order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		run := testRun()
		ctx := context.Background()

		require.NoError(t, svc.SaveRun(ctx, run))

		got, err := svc.FindRunByID(ctx, run.ID)
		require.NoError(t, err)

		assert.Equal(t, run.ID, got.ID)
		assert.Equal(t, 1, got.Succeeded)
		assert.Equal(t, 1, got.Failed)
		require.Len(t, got.Rows, 2)
		assert.Equal(t, run.Rows[0], got.Rows[0])
		assert.Equal(t, run.Rows[1], got.Rows[1])
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)

		_, err := svc.FindRunByID(context.Background(), "nope")
		require.Error(t, err)
		assert.Equal(t, bodytext.ENOTFOUND, bodytext.ErrorCode(err))
	})
}

func TestRunService_FindRuns(t *testing.T) {
	t.Parallel()

	t.Run("returns runs newest first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			run := testRun()
			run.ID = fmt.Sprintf("run-%d", i)
			run.CreatedAt = time.Date(2025, 6, 1+i, 0, 0, 0, 0, time.UTC)
			require.NoError(t, svc.SaveRun(ctx, run))
		}

		runs, err := svc.FindRuns(ctx, 0)
		require.NoError(t, err)
		require.Len(t, runs, 3)
		assert.Equal(t, "run-2", runs[0].ID)
		assert.Equal(t, "run-0", runs[2].ID)
		assert.Empty(t, runs[0].Rows, "listing does not load rows")
	})

	t.Run("applies limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			run := testRun()
			run.ID = fmt.Sprintf("run-%d", i)
			run.CreatedAt = time.Date(2025, 6, 1+i, 0, 0, 0, 0, time.UTC)
			require.NoError(t, svc.SaveRun(ctx, run))
		}

		runs, err := svc.FindRuns(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})
}
