package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-bridge/internal/domain"
)

func TestSpace_InsertGetUpdateDelete(t *testing.T) {
	t.Parallel()

	db := openTestDB(t, testStorageConfig(t))
	space := db.Space()
	ctx := context.Background()

	inserted, err := space.Insert(ctx, "water plants", false)
	require.NoError(t, err)
	assert.NotZero(t, inserted.ID)
	assert.Equal(t, "water plants", inserted.Title)
	assert.False(t, inserted.Completed)

	got, found, err := space.Get(ctx, inserted.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, inserted, got)

	updated, found, err := space.Update(ctx, inserted.ID, SetTitle("water all plants"), SetCompleted(true))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, inserted.ID, updated.ID)
	assert.Equal(t, "water all plants", updated.Title)
	assert.True(t, updated.Completed)

	same, found, err := space.Update(ctx, inserted.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, updated, same)

	removed, found, err := space.Delete(ctx, inserted.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, updated, removed)

	_, found, err = space.Get(ctx, inserted.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSpace_MissingKeys(t *testing.T) {
	t.Parallel()

	space := openTestDB(t, testStorageConfig(t)).Space()
	ctx := context.Background()

	for _, id := range []uint64{0, 42, 1 << 63} {
		_, found, err := space.Get(ctx, id)
		require.NoError(t, err)
		assert.False(t, found, "Get(%d)", id)

		_, found, err = space.Update(ctx, id, SetCompleted(true))
		require.NoError(t, err)
		assert.False(t, found, "Update(%d)", id)

		_, found, err = space.Delete(ctx, id)
		require.NoError(t, err)
		assert.False(t, found, "Delete(%d)", id)
	}
}

func TestSpace_SelectOrderAndFilter(t *testing.T) {
	t.Parallel()

	space := openTestDB(t, testStorageConfig(t)).Space()
	ctx := context.Background()

	for i, done := range []bool{true, false, true, false, false} {
		_, err := space.Insert(ctx, fmt.Sprintf("todo %d", i), done)
		require.NoError(t, err)
	}

	all, err := space.Select(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID, "rows not in ascending id order")
	}

	completed := true
	done, err := space.Select(ctx, Filter{Completed: &completed})
	require.NoError(t, err)
	assert.Len(t, done, 2)

	completed = false
	open, err := space.Select(ctx, Filter{Completed: &completed})
	require.NoError(t, err)
	assert.Len(t, open, 3)
}

func TestSpace_SelectEmptyIsNotNil(t *testing.T) {
	t.Parallel()

	todos, err := openTestDB(t, testStorageConfig(t)).Space().Select(context.Background(), Filter{})
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestSpace_InsertRejectedByEngine(t *testing.T) {
	t.Parallel()

	space := openTestDB(t, testStorageConfig(t)).Space()

	// The schema CHECK constraint is the last line of defence for titles.
	_, err := space.Insert(context.Background(), "   ", false)
	require.ErrorIs(t, err, domain.ErrEngineFailure)
}

func TestTransaction_RollbackOnError(t *testing.T) {
	t.Parallel()

	db := openTestDB(t, testStorageConfig(t))
	ctx := context.Background()
	boom := errors.New("boom")

	err := db.Transaction(ctx, func(ctx context.Context, space *Space) error {
		if _, err := space.Insert(ctx, "never committed", false); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	n, err := db.Space().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTransaction_RollbackOnPanic(t *testing.T) {
	t.Parallel()

	db := openTestDB(t, testStorageConfig(t))
	ctx := context.Background()

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = db.Transaction(ctx, func(ctx context.Context, space *Space) error {
			if _, err := space.Insert(ctx, "never committed", false); err != nil {
				return err
			}
			panic("kaboom")
		})
	})

	n, err := db.Space().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTransaction_Commit(t *testing.T) {
	t.Parallel()

	db := openTestDB(t, testStorageConfig(t))
	ctx := context.Background()

	err := db.Transaction(ctx, func(ctx context.Context, space *Space) error {
		for _, title := range []string{"a", "b"} {
			if _, err := space.Insert(ctx, title, false); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	n, err := db.Space().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

// fakeRow feeds fixed column values to decodeRow.
type fakeRow struct {
	id        int64
	title     sql.NullString
	completed int64
	err       error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	*dest[0].(*int64) = f.id
	*dest[1].(*sql.NullString) = f.title
	*dest[2].(*int64) = f.completed
	return nil
}

func TestDecodeRow(t *testing.T) {
	t.Parallel()

	valid := sql.NullString{String: "ok", Valid: true}

	tests := []struct {
		name       string
		row        fakeRow
		wantDecode bool
		wantEngine bool
	}{
		{name: "valid row", row: fakeRow{id: 1, title: valid, completed: 1}},
		{name: "negative id", row: fakeRow{id: -3, title: valid}, wantDecode: true},
		{name: "zero id", row: fakeRow{id: 0, title: valid}, wantDecode: true},
		{name: "null title", row: fakeRow{id: 1}, wantDecode: true},
		{name: "blank title", row: fakeRow{id: 1, title: sql.NullString{String: "  ", Valid: true}}, wantDecode: true},
		{name: "completed out of range", row: fakeRow{id: 1, title: valid, completed: 2}, wantDecode: true},
		{
			name:       "column conversion failure",
			row:        fakeRow{err: errors.New(`sql: Scan error on column index 2, name "completed": converting`)},
			wantDecode: true,
		},
		{name: "driver failure", row: fakeRow{err: errors.New("disk I/O error")}, wantEngine: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := decodeRow(tt.row)
			if !tt.wantDecode && !tt.wantEngine {
				require.NoError(t, err)
				assert.Equal(t, uint64(1), got.ID)
				assert.True(t, got.Completed)
				return
			}

			require.Error(t, err)
			classified := classify("decode", err)
			assert.Equal(t, tt.wantDecode, errors.Is(classified, domain.ErrFieldDecode), "ErrFieldDecode")
			assert.Equal(t, tt.wantEngine, errors.Is(classified, domain.ErrEngineFailure), "ErrEngineFailure")
		})
	}
}
