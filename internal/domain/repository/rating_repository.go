package repository

import (
	"context"
	"time"

	"github.com/jhoicas/store-rating-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StoreRatingSummary tienda con su promedio (vista de administración).
type StoreRatingSummary struct {
	ID      string
	Name    string
	Email   string
	Address string
	Average decimal.Decimal // 0 si no hay calificaciones
}

// UserStoreView tienda vista por un usuario: promedio general y su propia calificación.
type UserStoreView struct {
	ID         string
	Name       string
	Address    string
	Average    decimal.Decimal
	UserRating *int // nil si el usuario no la ha calificado
}

// RatingWithAuthor calificación de una tienda junto con el autor.
type RatingWithAuthor struct {
	ID          string
	Value       int
	CreatedAt   time.Time
	AuthorName  string
	AuthorEmail string
}

// RatingRepository define el puerto de persistencia para Rating y sus consultas de lectura.
type RatingRepository interface {
	// Create devuelve domain.ErrRatingAlreadyExists si ya existe (user_id, store_id).
	Create(ctx context.Context, rating *entity.Rating) error
	Exists(ctx context.Context, userID, storeID string) (bool, error)
	// UpdateValue modifica value y updated_at; found=false si no hay fila para (userID, storeID).
	UpdateValue(ctx context.Context, userID, storeID string, value int, updatedAt time.Time) (found bool, err error)
	Count(ctx context.Context) (int64, error)

	// ListStoreSummaries todas las tiendas con su promedio, por nombre ascendente.
	ListStoreSummaries(ctx context.Context) ([]StoreRatingSummary, error)
	// ListStoresForUser todas las tiendas con promedio y la calificación de userID, por nombre ascendente.
	ListStoresForUser(ctx context.Context, userID string) ([]UserStoreView, error)
	// ListByStore calificaciones de la tienda con autor, más recientes primero.
	ListByStore(ctx context.Context, storeID string) ([]RatingWithAuthor, error)
}
