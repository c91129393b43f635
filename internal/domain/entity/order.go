package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados posibles de un pedido. La grafía canónica es CANCELLED
// (una revisión vieja del esquema usaba CANCELED; no se acepta como alias).
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// ValidOrderStatus indica si s es un estado de pedido conocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem renglón de un pedido: referencia a producto y cantidad solicitada.
type OrderItem struct {
	ProductID string
	Quantity  int32
}

// Order pedido de un cliente. SellerID se asigna al crear con el vendedor
// autenticado y es inmutable. Los renglones conservan el orden de entrada.
type Order struct {
	ID        string
	Items     []OrderItem
	Total     decimal.Decimal
	ClientID  string
	SellerID  string
	Status    string
	CreatedAt time.Time
}
