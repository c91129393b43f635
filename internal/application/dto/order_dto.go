package dto

import "github.com/shopspring/decimal"

// OrderItemInput renglón de un pedido: producto y cantidad.
type OrderItemInput struct {
	ProductID string `json:"id" validate:"required"`
	Quantity  int32  `json:"quantity" validate:"gt=0"`
}

// OrderInput datos para crear o actualizar un pedido.
// Status opcional: un pedido nuevo arranca en PENDING si no se envía.
type OrderInput struct {
	Items    []OrderItemInput `json:"order" validate:"required,min=1,dive"`
	Total    decimal.Decimal  `json:"total"`
	ClientID string           `json:"client" validate:"required"`
	Status   *string          `json:"status" validate:"omitempty,oneof=PENDING COMPLETED CANCELLED"`
}
