package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-rating-api/internal/domain"
	"github.com/jhoicas/store-rating-api/internal/domain/entity"
	"github.com/jhoicas/store-rating-api/internal/infrastructure/postgres"
)

var accountCols = []string{"id", "name", "email", "password_hash", "address", "role", "created_at"}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)
	return mockPool
}

func TestAccountRepo_Create(t *testing.T) {
	acc := &entity.Account{
		ID:           "3b8f6a8e-4a4f-4c1e-9a57-0d3c1f1a2b3c",
		Name:         "Generic Name Of Twenty Plus",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$hash",
		Address:      "Main Street 1",
		Role:         entity.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	t.Run("inserta la cuenta", func(t *testing.T) {
		mockPool := newMockPool(t)
		mockPool.ExpectExec("INSERT INTO accounts").
			WithArgs(acc.ID, acc.Name, acc.Email, acc.PasswordHash, acc.Address, "user", acc.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := postgres.NewAccountRepository(mockPool).Create(context.Background(), acc)
		assert.NoError(t, err)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("email duplicado se traduce a conflicto", func(t *testing.T) {
		mockPool := newMockPool(t)
		mockPool.ExpectExec("INSERT INTO accounts").
			WithArgs(acc.ID, acc.Name, acc.Email, acc.PasswordHash, acc.Address, "user", acc.CreatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"})

		err := postgres.NewAccountRepository(mockPool).Create(context.Background(), acc)
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("otros errores se envuelven", func(t *testing.T) {
		mockPool := newMockPool(t)
		mockPool.ExpectExec("INSERT INTO accounts").
			WithArgs(acc.ID, acc.Name, acc.Email, acc.PasswordHash, acc.Address, "user", acc.CreatedAt).
			WillReturnError(errors.New("connection reset"))

		err := postgres.NewAccountRepository(mockPool).Create(context.Background(), acc)
		require.Error(t, err)
		_, isDomain := domain.Message(err)
		assert.False(t, isDomain)
	})
}

func TestAccountRepo_GetByEmail(t *testing.T) {
	t.Run("devuelve la cuenta con su rol", func(t *testing.T) {
		mockPool := newMockPool(t)
		now := time.Now()
		rows := mockPool.NewRows(accountCols).
			AddRow("id-1", "Store Number One Of The City", "s@x.com", "$2a$10$hash", "Addr", "store", now)
		mockPool.ExpectQuery("SELECT (.+) FROM accounts WHERE email = \\$1").
			WithArgs("s@x.com").
			WillReturnRows(rows)

		acc, err := postgres.NewAccountRepository(mockPool).GetByEmail(context.Background(), "s@x.com")
		require.NoError(t, err)
		require.NotNil(t, acc)
		assert.Equal(t, "id-1", acc.ID)
		assert.Equal(t, entity.RoleStore, acc.Role)
		assert.True(t, acc.IsStore())
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("no encontrada devuelve nil sin error", func(t *testing.T) {
		mockPool := newMockPool(t)
		mockPool.ExpectQuery("SELECT (.+) FROM accounts WHERE email = \\$1").
			WithArgs("missing@x.com").
			WillReturnError(pgx.ErrNoRows)

		acc, err := postgres.NewAccountRepository(mockPool).GetByEmail(context.Background(), "missing@x.com")
		assert.NoError(t, err)
		assert.Nil(t, acc)
	})

	t.Run("rol desconocido en la fila es error", func(t *testing.T) {
		mockPool := newMockPool(t)
		rows := mockPool.NewRows(accountCols).
			AddRow("id-1", "Some Name Long Enough Here", "s@x.com", "h", "Addr", "superuser", time.Now())
		mockPool.ExpectQuery("SELECT (.+) FROM accounts WHERE email = \\$1").
			WithArgs("s@x.com").
			WillReturnRows(rows)

		acc, err := postgres.NewAccountRepository(mockPool).GetByEmail(context.Background(), "s@x.com")
		assert.Error(t, err)
		assert.Nil(t, acc)
	})
}

func TestAccountRepo_List(t *testing.T) {
	mockPool := newMockPool(t)
	now := time.Now()
	rows := mockPool.NewRows(accountCols).
		AddRow("id-2", "Second Account Name Here", "b@x.com", "h", "Addr", "user", now).
		AddRow("id-1", "First Account Name Here!", "a@x.com", "h", "Addr", "admin", now.Add(-time.Hour))
	mockPool.ExpectQuery("SELECT (.+) FROM accounts ORDER BY created_at DESC").
		WillReturnRows(rows)

	list, err := postgres.NewAccountRepository(mockPool).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "id-2", list[0].ID)
	assert.Equal(t, entity.RoleAdmin, list[1].Role)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestAccountRepo_CountByRole(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectQuery("SELECT COUNT\\(\\*\\) FROM accounts WHERE role = \\$1").
		WithArgs("store").
		WillReturnRows(mockPool.NewRows([]string{"count"}).AddRow(int64(4)))

	n, err := postgres.NewAccountRepository(mockPool).CountByRole(context.Background(), entity.RoleStore)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestAccountRepo_UpdatePassword(t *testing.T) {
	t.Run("actualiza el hash", func(t *testing.T) {
		mockPool := newMockPool(t)
		mockPool.ExpectExec("UPDATE accounts SET password_hash").
			WithArgs("id-1", "newhash").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		found, err := postgres.NewAccountRepository(mockPool).UpdatePassword(context.Background(), "id-1", "newhash")
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("cuenta inexistente", func(t *testing.T) {
		mockPool := newMockPool(t)
		mockPool.ExpectExec("UPDATE accounts SET password_hash").
			WithArgs("gone", "newhash").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		found, err := postgres.NewAccountRepository(mockPool).UpdatePassword(context.Background(), "gone", "newhash")
		require.NoError(t, err)
		assert.False(t, found)
	})
}
