package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo. Stock nunca baja de cero: el decremento por
// pedidos se hace con un UPDATE condicional y la tabla tiene un CHECK de respaldo.
type Product struct {
	ID        string
	Name      string
	Stock     int32
	Price     decimal.Decimal
	CreatedAt time.Time
}
