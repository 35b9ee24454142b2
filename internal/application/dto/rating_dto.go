package dto

import "time"

// RatingRequest cuerpo para crear o actualizar una calificación.
// Rating es puntero para distinguir "ausente" de cero.
type RatingRequest struct {
	Rating *int `json:"rating"`
}

// AdminStoreResponse tienda con su promedio (vista admin).
type AdminStoreResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating"`
}

// UserStoreResponse tienda vista por un usuario; UserRating es null si no la ha calificado.
type UserStoreResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	OverallRating float64 `json:"overallRating"`
	UserRating    *int    `json:"userRating"`
}

// StoreRatingResponse calificación recibida por una tienda, con datos del autor.
type StoreRatingResponse struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
}

// StoreDashboardResponse resumen de la tienda autenticada.
type StoreDashboardResponse struct {
	AverageRating float64               `json:"averageRating"`
	TotalRatings  int64                 `json:"totalRatings"`
	Ratings       []StoreRatingResponse `json:"ratings"`
}
