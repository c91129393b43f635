package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// ClientTotal total vendido a un cliente sumando sus pedidos COMPLETED.
type ClientTotal struct {
	Client entity.Client
	Total  decimal.Decimal
}

// SellerTotal total vendido por un vendedor sumando sus pedidos COMPLETED.
type SellerTotal struct {
	Seller entity.User
	Total  decimal.Decimal
}

// ReportRepository consultas de solo lectura para los reportes de ventas.
// Devuelve los grupos sin ordenar; el caso de uso ordena y trunca.
type ReportRepository interface {
	ClientTotals(ctx context.Context) ([]ClientTotal, error)
	SellerTotals(ctx context.Context) ([]SellerTotal, error)
}
