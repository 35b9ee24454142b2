package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/store-rating-api/internal/domain"
	"github.com/jhoicas/store-rating-api/internal/domain/entity"
	"github.com/jhoicas/store-rating-api/internal/domain/repository"
)

var _ repository.RatingRepository = (*RatingRepo)(nil)

// RatingRepo persistencia de calificaciones y consultas de promedio por tienda.
type RatingRepo struct {
	db DBTX
}

// NewRatingRepository construye el adaptador de calificaciones.
func NewRatingRepository(db DBTX) *RatingRepo {
	return &RatingRepo{db: db}
}

// Create inserta la calificación. UNIQUE(user_id, store_id) resuelve envíos concurrentes.
func (r *RatingRepo) Create(ctx context.Context, rt *entity.Rating) error {
	query := `
		INSERT INTO ratings (id, user_id, store_id, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, rt.ID, rt.UserID, rt.StoreID, rt.Value, rt.CreatedAt, rt.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRatingAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return domain.NewNotFoundError("Store not found")
		}
		return fmt.Errorf("insert rating: %w", err)
	}
	return nil
}

// Exists indica si userID ya calificó storeID.
func (r *RatingRepo) Exists(ctx context.Context, userID, storeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM ratings WHERE user_id = $1 AND store_id = $2)`,
		userID, storeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("rating exists: %w", err)
	}
	return exists, nil
}

// UpdateValue cambia rating y updated_at de la fila (userID, storeID).
func (r *RatingRepo) UpdateValue(ctx context.Context, userID, storeID string, value int, updatedAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE ratings SET rating = $3, updated_at = $4 WHERE user_id = $1 AND store_id = $2`,
		userID, storeID, value, updatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("update rating: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Count total de calificaciones de la plataforma.
func (r *RatingRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM ratings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count ratings: %w", err)
	}
	return n, nil
}

// ListStoreSummaries tiendas con promedio; COALESCE deja 0 para tiendas sin calificaciones.
func (r *RatingRepo) ListStoreSummaries(ctx context.Context) ([]repository.StoreRatingSummary, error) {
	const query = `
	SELECT
	    a.id,
	    a.name,
	    a.email,
	    a.address,
	    COALESCE(AVG(r.rating), 0) AS rating
	FROM accounts a
	LEFT JOIN ratings r ON r.store_id = a.id
	WHERE a.role = $1
	GROUP BY a.id, a.name, a.email, a.address
	ORDER BY a.name ASC`

	rows, err := r.db.Query(ctx, query, entity.RoleStore.String())
	if err != nil {
		return nil, fmt.Errorf("ratings.ListStoreSummaries: %w", err)
	}
	defer rows.Close()

	results := make([]repository.StoreRatingSummary, 0)
	for rows.Next() {
		var s repository.StoreRatingSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Address, &s.Average); err != nil {
			return nil, fmt.Errorf("ratings.ListStoreSummaries scan: %w", err)
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

// ListStoresForUser tiendas con promedio general y la calificación propia de userID (NULL si no hay).
func (r *RatingRepo) ListStoresForUser(ctx context.Context, userID string) ([]repository.UserStoreView, error) {
	const query = `
	SELECT
	    a.id,
	    a.name,
	    a.address,
	    COALESCE(AVG(r.rating), 0) AS overall_rating,
	    ur.rating                  AS user_rating
	FROM accounts a
	LEFT JOIN ratings r  ON r.store_id  = a.id
	LEFT JOIN ratings ur ON ur.store_id = a.id AND ur.user_id = $2
	WHERE a.role = $1
	GROUP BY a.id, a.name, a.address, ur.rating
	ORDER BY a.name ASC`

	rows, err := r.db.Query(ctx, query, entity.RoleStore.String(), userID)
	if err != nil {
		return nil, fmt.Errorf("ratings.ListStoresForUser: %w", err)
	}
	defer rows.Close()

	results := make([]repository.UserStoreView, 0)
	for rows.Next() {
		var v repository.UserStoreView
		if err := rows.Scan(&v.ID, &v.Name, &v.Address, &v.Average, &v.UserRating); err != nil {
			return nil, fmt.Errorf("ratings.ListStoresForUser scan: %w", err)
		}
		results = append(results, v)
	}
	return results, rows.Err()
}

// ListByStore calificaciones de storeID con nombre y email del autor, más recientes primero.
func (r *RatingRepo) ListByStore(ctx context.Context, storeID string) ([]repository.RatingWithAuthor, error) {
	const query = `
	SELECT
	    r.id,
	    r.rating,
	    r.created_at,
	    u.name  AS user_name,
	    u.email AS user_email
	FROM ratings r
	JOIN accounts u ON u.id = r.user_id
	WHERE r.store_id = $1
	ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("ratings.ListByStore: %w", err)
	}
	defer rows.Close()

	results := make([]repository.RatingWithAuthor, 0)
	for rows.Next() {
		var row repository.RatingWithAuthor
		if err := rows.Scan(&row.ID, &row.Value, &row.CreatedAt, &row.AuthorName, &row.AuthorEmail); err != nil {
			return nil, fmt.Errorf("ratings.ListByStore scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
