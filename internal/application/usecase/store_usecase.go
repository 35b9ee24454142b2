package usecase

import (
	"context"

	"github.com/jhoicas/store-rating-api/internal/application/dto"
	"github.com/jhoicas/store-rating-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// StoreUseCase casos de uso del rol store: panel y calificaciones recibidas.
type StoreUseCase struct {
	ratingRepo repository.RatingRepository
	*PasswordChanger
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(accountRepo repository.AccountRepository, ratingRepo repository.RatingRepository) *StoreUseCase {
	return &StoreUseCase{
		ratingRepo:      ratingRepo,
		PasswordChanger: NewPasswordChanger(accountRepo, "Store not found"),
	}
}

// GetDashboard devuelve promedio, total y calificaciones de la tienda.
// Los tres salen de la misma lectura, así totalRatings siempre coincide con len(ratings).
func (uc *StoreUseCase) GetDashboard(ctx context.Context, storeID string) (*dto.StoreDashboardResponse, error) {
	ratings, err := uc.GetRatings(ctx, storeID)
	if err != nil {
		return nil, err
	}
	sum := decimal.Zero
	for _, r := range ratings {
		sum = sum.Add(decimal.NewFromInt(int64(r.Rating)))
	}
	avg := decimal.Zero
	if len(ratings) > 0 {
		avg = sum.Div(decimal.NewFromInt(int64(len(ratings))))
	}
	return &dto.StoreDashboardResponse{
		AverageRating: averageToFloat(avg),
		TotalRatings:  int64(len(ratings)),
		Ratings:       ratings,
	}, nil
}

// GetRatings lista las calificaciones de la tienda, más recientes primero.
func (uc *StoreUseCase) GetRatings(ctx context.Context, storeID string) ([]dto.StoreRatingResponse, error) {
	rows, err := uc.ratingRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreRatingResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StoreRatingResponse{
			ID:        r.ID,
			Rating:    r.Value,
			CreatedAt: r.CreatedAt,
			UserName:  r.AuthorName,
			UserEmail: r.AuthorEmail,
		})
	}
	return out, nil
}
