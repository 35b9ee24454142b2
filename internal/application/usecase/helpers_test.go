package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-rating-api/internal/application/auth"
	"github.com/jhoicas/store-rating-api/internal/application/usecase"
	"github.com/jhoicas/store-rating-api/internal/domain/entity"
	"github.com/jhoicas/store-rating-api/internal/testutil"
)

const testPassword = "Abcdef1!"

type fixture struct {
	db    *testutil.MemoryDB
	auth  *auth.AuthUseCase
	admin *usecase.AdminUseCase
	user  *usecase.UserUseCase
	store *usecase.StoreUseCase
}

func newFixture() *fixture {
	db := testutil.NewMemoryDB()
	accounts, ratings := db.Accounts(), db.Ratings()
	return &fixture{
		db:    db,
		auth:  auth.NewAuthUseCase(accounts, auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "test"}),
		admin: usecase.NewAdminUseCase(accounts, ratings),
		user:  usecase.NewUserUseCase(accounts, ratings),
		store: usecase.NewStoreUseCase(accounts, ratings),
	}
}

func (f *fixture) account(t *testing.T, name, email string, role entity.Role) *entity.Account {
	t.Helper()
	a, err := auth.CreateAccount(context.Background(), f.db.Accounts(), name, email, testPassword, "Some Street 1", role)
	require.NoError(t, err)
	return a
}

func intPtr(v int) *int { return &v }
