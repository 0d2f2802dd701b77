package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB opens a gorm handle over a sqlmock connection so tests can pin
// the SQL the repositories generate.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Discard,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestSheepRepository_GetAll_NewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSheepRepository(db)

	newest := time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)
	oldest := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "name", "category", "price", "image_ids", "created_at"}).
		AddRow(int64(2), "Newest", "local", "85000.00", []byte(`["img-2"]`), newest).
		AddRow(int64(1), "Oldest", "romanian", "60000.00", []byte(`["img-1"]`), oldest)

	mock.ExpectQuery(`SELECT \* FROM "sheep" ORDER BY created_at DESC`).
		WillReturnRows(rows)

	sheep, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, sheep, 2)
	assert.Equal(t, "2", sheep[0].ID)
	assert.Equal(t, "Newest", sheep[0].Name)
	assert.InDelta(t, 85000, sheep[0].Price, 0.001)
	assert.Equal(t, []string{"img-2"}, sheep[0].ImageIDs)
	assert.Equal(t, "1", sheep[1].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSheepRepository_GetAll_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSheepRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "sheep" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	sheep, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sheep)

	require.NoError(t, mock.ExpectationsWereMet())
}
