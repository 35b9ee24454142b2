package usecase

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ratingDecimals cifras decimales con las que se exponen los promedios.
const ratingDecimals = 2

func averageToFloat(avg decimal.Decimal) float64 {
	return avg.Round(ratingDecimals).InexactFloat64()
}

// validID evita enviar a la DB identificadores que no son UUID (la columna es uuid).
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
