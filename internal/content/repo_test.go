package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewRepo(mock), mock
}

func storedJSON(t *testing.T, data PortfolioData) []byte {
	t.Helper()

	raw, err := json.Marshal(data)
	require.NoError(t, err)
	return raw
}

func TestRepo_Latest_ReadsNewestVersion(t *testing.T) {
	repo, mock := setupRepo(t)

	stored := DefaultData()
	stored.Tagline = "newest version wins"

	// The ordering clause is what makes the newest row authoritative.
	mock.ExpectQuery(`order by updated_at desc, id desc`).
		WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow(storedJSON(t, stored)))

	got, err := repo.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "newest version wins", got.Tagline)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Latest_EmptyLogIsErrNoContent(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`select data`).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Latest(context.Background())
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestRepo_Bootstrap_SeedsDefaultsOnEmptyLog(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`select data`).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectExec(`insert into portfolio_data`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	got, err := repo.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultData(), got)

	require.NoError(t, mock.ExpectationsWereMet(), "an empty log persists the seed as version 1")
}

func TestRepo_Bootstrap_BackendErrorSurfaces(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`select data`).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.Bootstrap(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoContent, "a query failure must not look like an empty log")
	// No insert was expected: failures never seed defaults.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Save_MergesAndAppends(t *testing.T) {
	repo, mock := setupRepo(t)

	prior := DefaultData()
	mock.ExpectQuery(`select data`).
		WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow(storedJSON(t, prior)))
	mock.ExpectExec(`insert into portfolio_data`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	saved, err := repo.Save(context.Background(), Partial{
		"tagline": json.RawMessage(`"Shipping side projects"`),
	})
	require.NoError(t, err)
	assert.Equal(t, "Shipping side projects", saved.Tagline)
	assert.Equal(t, prior.Name, saved.Name, "absent fields retained")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Save_ValidationFailureWritesNothing(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`select data`).
		WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow(storedJSON(t, DefaultData())))

	_, err := repo.Save(context.Background(), Partial{
		"name": json.RawMessage(`"   "`),
	})
	require.Error(t, err)
	assert.True(t, isValidation(err))
	// Only the read was expected; a rejected merge appends no version.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Prune(t *testing.T) {
	t.Run("deletes beyond keep and reports the count", func(t *testing.T) {
		repo, mock := setupRepo(t)

		mock.ExpectExec(`delete from portfolio_data`).
			WithArgs(50).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))

		removed, err := repo.Prune(context.Background(), 50)
		require.NoError(t, err)
		assert.Equal(t, int64(3), removed)
	})

	t.Run("keep is clamped to at least one", func(t *testing.T) {
		repo, mock := setupRepo(t)

		mock.ExpectExec(`delete from portfolio_data`).
			WithArgs(1).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		_, err := repo.Prune(context.Background(), 0)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
