package repository

import (
	"context"

	"github.com/jhoicas/store-rating-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account (DIP).
// Los métodos Get* devuelven (nil, nil) si la cuenta no existe.
type AccountRepository interface {
	// Create devuelve domain.ErrEmailAlreadyExists si el email ya está registrado.
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
	// List devuelve todas las cuentas ordenadas por created_at descendente.
	List(ctx context.Context) ([]*entity.Account, error)
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
	// UpdatePassword devuelve found=false si la cuenta ya no existe.
	UpdatePassword(ctx context.Context, id, passwordHash string) (found bool, err error)
}
