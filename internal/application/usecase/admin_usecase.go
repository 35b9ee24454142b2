package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/store-rating-api/internal/application/auth"
	"github.com/jhoicas/store-rating-api/internal/application/dto"
	"github.com/jhoicas/store-rating-api/internal/application/validation"
	"github.com/jhoicas/store-rating-api/internal/domain"
	"github.com/jhoicas/store-rating-api/internal/domain/entity"
	"github.com/jhoicas/store-rating-api/internal/domain/repository"
)

// AdminUseCase casos de uso del administrador: estadísticas, alta de cuentas y listados.
type AdminUseCase struct {
	accountRepo repository.AccountRepository
	ratingRepo  repository.RatingRepository
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(accountRepo repository.AccountRepository, ratingRepo repository.RatingRepository) *AdminUseCase {
	return &AdminUseCase{accountRepo: accountRepo, ratingRepo: ratingRepo}
}

// GetDashboardStats cuenta usuarios (rol user), tiendas y calificaciones.
func (uc *AdminUseCase) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	users, err := uc.accountRepo.CountByRole(ctx, entity.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("stats: usuarios: %w", err)
	}
	stores, err := uc.accountRepo.CountByRole(ctx, entity.RoleStore)
	if err != nil {
		return nil, fmt.Errorf("stats: tiendas: %w", err)
	}
	ratings, err := uc.ratingRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: calificaciones: %w", err)
	}
	return &dto.DashboardStatsResponse{
		TotalUsers:   users,
		TotalStores:  stores,
		TotalRatings: ratings,
	}, nil
}

// AddUser crea una cuenta con cualquier rol (capacidad exclusiva del admin).
func (uc *AdminUseCase) AddUser(ctx context.Context, in dto.AddUserRequest) (*dto.AccountResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, domain.NewValidationError(validation.MsgRole)
	}
	account, err := auth.CreateAccount(ctx, uc.accountRepo, in.Name, in.Email, in.Password, in.Address, role)
	if err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// GetStores lista las tiendas con su promedio, por nombre ascendente.
func (uc *AdminUseCase) GetStores(ctx context.Context) ([]dto.AdminStoreResponse, error) {
	summaries, err := uc.ratingRepo.ListStoreSummaries(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminStoreResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, dto.AdminStoreResponse{
			ID:      s.ID,
			Name:    s.Name,
			Email:   s.Email,
			Address: s.Address,
			Rating:  averageToFloat(s.Average),
		})
	}
	return out, nil
}

// GetUsers lista todas las cuentas, más recientes primero.
func (uc *AdminUseCase) GetUsers(ctx context.Context) ([]dto.AccountResponse, error) {
	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, *toAccountResponse(a))
	}
	return out, nil
}

// GetUserDetails obtiene una cuenta por ID.
func (uc *AdminUseCase) GetUserDetails(ctx context.Context, id string) (*dto.AccountResponse, error) {
	if !validID(id) {
		return nil, domain.NewNotFoundError("User not found")
	}
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.NewNotFoundError("User not found")
	}
	return toAccountResponse(account), nil
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Address:   a.Address,
		Role:      a.Role.String(),
		CreatedAt: a.CreatedAt,
	}
}
