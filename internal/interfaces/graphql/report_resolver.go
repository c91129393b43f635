package graphql

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// BestClients clientes con mayor total comprado en pedidos COMPLETED, descendente.
func (r *Resolver) BestClients(ctx context.Context) ([]*topClientResolver, error) {
	if _, err := RequireCaller(ctx); err != nil {
		return nil, gqlError(err)
	}
	totals, err := r.reports.BestClients(ctx)
	if err != nil {
		return nil, gqlError(err)
	}
	out := make([]*topClientResolver, 0, len(totals))
	for _, t := range totals {
		out = append(out, &topClientResolver{row: t})
	}
	return out, nil
}

// BestSellers los 5 vendedores con mayor total vendido en pedidos COMPLETED,
// ordenados antes de truncar.
func (r *Resolver) BestSellers(ctx context.Context) ([]*topSellerResolver, error) {
	if _, err := RequireCaller(ctx); err != nil {
		return nil, gqlError(err)
	}
	totals, err := r.reports.BestSellers(ctx)
	if err != nil {
		return nil, gqlError(err)
	}
	out := make([]*topSellerResolver, 0, len(totals))
	for _, t := range totals {
		out = append(out, &topSellerResolver{row: t})
	}
	return out, nil
}

// client y seller viajan como listas de un elemento: los consumidores del API
// esperan esa forma y cambiarla los rompería.
type topClientResolver struct {
	row repository.ClientTotal
}

func (r *topClientResolver) Total() float64 { return r.row.Total.InexactFloat64() }

func (r *topClientResolver) Client() []*clientResolver {
	c := r.row.Client
	return []*clientResolver{{c: &c}}
}

type topSellerResolver struct {
	row repository.SellerTotal
}

func (r *topSellerResolver) Total() float64 { return r.row.Total.InexactFloat64() }

func (r *topSellerResolver) Seller() []*userResolver {
	u := r.row.Seller
	return []*userResolver{{u: &u}}
}
