package postgres

import (
	"context"
	"testing"
	"time"

	"souk/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_GetAll_NewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	newest := time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)
	oldest := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	items := []byte(`[{"sheepId":"1","sheepName":"Ram","price":85000,"quantity":1}]`)

	rows := sqlmock.NewRows([]string{"id", "user_name", "items", "total_amount", "status", "created_at"}).
		AddRow(int64(2), "Newest Buyer", items, "85000.00", "pending", newest).
		AddRow(int64(1), "Oldest Buyer", items, "85000.00", "completed", oldest)

	mock.ExpectQuery(`SELECT \* FROM "orders" ORDER BY created_at DESC`).
		WillReturnRows(rows)

	orders, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "2", orders[0].ID)
	assert.Equal(t, "Newest Buyer", orders[0].UserName)
	assert.Equal(t, entity.OrderStatusPending, orders[0].Status)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Ram", orders[0].Items[0].SheepName)
	assert.Equal(t, "1", orders[1].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepository_GetAll_NewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdminRepository(db)

	newest := time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)
	oldest := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "email", "role", "added_at"}).
		AddRow(int64(2), "second@example.com", "secondary", newest).
		AddRow(int64(1), "first@example.com", "secondary", oldest)

	mock.ExpectQuery(`SELECT \* FROM "admins" ORDER BY added_at DESC`).
		WillReturnRows(rows)

	admins, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, "second@example.com", admins[0].Email)
	assert.Equal(t, "first@example.com", admins[1].Email)

	require.NoError(t, mock.ExpectationsWereMet())
}
