package entity

import "time"

// Valores permitidos para Rating.Value.
const (
	MinRating = 1
	MaxRating = 5
)

// Rating es la calificación 1..5 de un usuario a una tienda; única por (UserID, StoreID).
type Rating struct {
	ID        string
	UserID    string
	StoreID   string
	Value     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
