package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"gympass/pkg/domain"
	"gympass/pkg/storage"
	"gympass/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func countGymsByTitle(t *testing.T, db *sql.DB, title string) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM gyms WHERE title = $1`, title)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success: begin from *sql.DB
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// Should be a *postgres.PgSQL with underlying *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// Error: begin when already in tx
	_, err = inner.Begin(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	// Cleanup the opened transaction
	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)

	ctx := context.Background()

	// Error path: calling Commit on non-tx
	err := pg.Commit()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	// Success path: commit inserts
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	inner := txStorage.(*postgres.PgSQL)

	_, err = inner.StoreGym(ctx, domain.Gym{Title: "Committed Gym"})
	require.NoError(t, err)

	require.NoError(t, inner.Commit())

	// Verify persistence outside tx
	require.Equal(t, 1, countGymsByTitle(t, db, "Committed Gym"))
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)

	ctx := context.Background()

	// Error path: calling Rollback on non-tx
	err := pg.Rollback()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	// Success path: rollback should discard inserts
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	inner := txStorage.(*postgres.PgSQL)

	_, err = inner.StoreGym(ctx, domain.Gym{Title: "Discarded Gym"})
	require.NoError(t, err)

	require.NoError(t, inner.Rollback())

	// Verify no persistence outside tx
	require.Equal(t, 0, countGymsByTitle(t, db, "Discarded Gym"))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)

	ctx := context.Background()

	// Success callback: should commit
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreGym(ctx, domain.Gym{Title: "WithTx Gym"})

		return e //nolint: wrapcheck
	})
	require.NoError(t, err)
	require.Equal(t, 1, countGymsByTitle(t, db, "WithTx Gym"))

	// Error in callback: should rollback and WithTx returns rollback result (likely nil)
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.StoreGym(ctx, domain.Gym{Title: "WithTx Rollback Gym"})

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countGymsByTitle(t, db, "WithTx Rollback Gym"))
}
