package dto

import "github.com/shopspring/decimal"

// ProductInput datos para crear o actualizar un producto.
// Se sobreescriben todos los campos (el esquema GraphQL los marca obligatorios).
type ProductInput struct {
	Name  string          `json:"name" validate:"required"`
	Stock int32           `json:"stock" validate:"gte=0"`
	Price decimal.Decimal `json:"price"`
}
