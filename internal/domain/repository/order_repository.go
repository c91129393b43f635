package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// OrderRepository puerto de persistencia para pedidos (incluye renglones).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListBySeller(sellerID string) ([]*entity.Order, error)
	ListBySellerAndStatus(sellerID, status string) ([]*entity.Order, error)

	// Update reemplaza el pedido completo: cabecera y renglones.
	Update(order *entity.Order) error
	Delete(id string) error
}
