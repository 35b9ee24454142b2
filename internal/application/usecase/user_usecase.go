package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/store-rating-api/internal/application/dto"
	"github.com/jhoicas/store-rating-api/internal/application/validation"
	"github.com/jhoicas/store-rating-api/internal/domain"
	"github.com/jhoicas/store-rating-api/internal/domain/entity"
	"github.com/jhoicas/store-rating-api/internal/domain/repository"
)

// UserUseCase casos de uso del rol user: explorar tiendas y calificarlas.
type UserUseCase struct {
	accountRepo repository.AccountRepository
	ratingRepo  repository.RatingRepository
	*PasswordChanger
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(accountRepo repository.AccountRepository, ratingRepo repository.RatingRepository) *UserUseCase {
	return &UserUseCase{
		accountRepo:     accountRepo,
		ratingRepo:      ratingRepo,
		PasswordChanger: NewPasswordChanger(accountRepo, "User not found"),
	}
}

// GetStores lista las tiendas con el promedio general y la calificación propia del usuario.
func (uc *UserUseCase) GetStores(ctx context.Context, userID string) ([]dto.UserStoreResponse, error) {
	views, err := uc.ratingRepo.ListStoresForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserStoreResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.UserStoreResponse{
			ID:            v.ID,
			Name:          v.Name,
			Address:       v.Address,
			OverallRating: averageToFloat(v.Average),
			UserRating:    v.UserRating,
		})
	}
	return out, nil
}

// SubmitRating crea la calificación de userID para storeID.
// El chequeo de existencia previo sólo mejora el mensaje; la constraint UNIQUE(user_id, store_id)
// resuelve la carrera entre dos envíos simultáneos y el repositorio la traduce al mismo error.
func (uc *UserUseCase) SubmitRating(ctx context.Context, userID, storeID string, value *int) error {
	if err := validation.Rating(value); err != nil {
		return err
	}
	if err := uc.ensureStore(ctx, storeID); err != nil {
		return err
	}
	exists, err := uc.ratingRepo.Exists(ctx, userID, storeID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrRatingAlreadyExists
	}
	now := time.Now().UTC()
	return uc.ratingRepo.Create(ctx, &entity.Rating{
		ID:        uuid.New().String(),
		UserID:    userID,
		StoreID:   storeID,
		Value:     *value,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// UpdateRating modifica una calificación existente; nunca la crea.
func (uc *UserUseCase) UpdateRating(ctx context.Context, userID, storeID string, value *int) error {
	if err := validation.Rating(value); err != nil {
		return err
	}
	if !validID(storeID) {
		return domain.NewNotFoundError("Rating not found")
	}
	found, err := uc.ratingRepo.UpdateValue(ctx, userID, storeID, *value, time.Now().UTC())
	if err != nil {
		return err
	}
	if !found {
		return domain.NewNotFoundError("Rating not found")
	}
	return nil
}

func (uc *UserUseCase) ensureStore(ctx context.Context, storeID string) error {
	if !validID(storeID) {
		return domain.NewNotFoundError("Store not found")
	}
	store, err := uc.accountRepo.GetByID(ctx, storeID)
	if err != nil {
		return err
	}
	if !store.IsStore() {
		return domain.NewNotFoundError("Store not found")
	}
	return nil
}
