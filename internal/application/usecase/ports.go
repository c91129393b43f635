package usecase

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// OrderTxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// El flujo de pedidos depende de esto: o se aplican todos los decrementos de
// stock y el pedido, o no se aplica ninguno.
type OrderTxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
