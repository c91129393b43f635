package graphql

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/pkg/validation"
)

type orderProductInput struct {
	ID       gql.ID
	Quantity int32
}

type orderInput struct {
	Order  []orderProductInput
	Total  float64
	Client gql.ID
	Status *string
}

func (in orderInput) toDTO() dto.OrderInput {
	items := make([]dto.OrderItemInput, 0, len(in.Order))
	for _, it := range in.Order {
		items = append(items, dto.OrderItemInput{ProductID: string(it.ID), Quantity: it.Quantity})
	}
	return dto.OrderInput{
		Items:    items,
		Total:    decimal.NewFromFloat(in.Total),
		ClientID: string(in.Client),
		Status:   in.Status,
	}
}

// GetOrders lista los pedidos del vendedor autenticado.
func (r *Resolver) GetOrders(ctx context.Context) ([]*orderResolver, error) {
	return r.sellerOrders(ctx)
}

// GetSellerOrders lista los pedidos del vendedor autenticado.
func (r *Resolver) GetSellerOrders(ctx context.Context) ([]*orderResolver, error) {
	return r.sellerOrders(ctx)
}

func (r *Resolver) sellerOrders(ctx context.Context) ([]*orderResolver, error) {
	caller, err := RequireCaller(ctx)
	if err != nil {
		return nil, gqlError(err)
	}
	orders, err := r.orders.ListBySeller(caller.ID)
	if err != nil {
		return nil, gqlError(err)
	}
	return r.toOrderResolvers(orders), nil
}

// GetOrder obtiene un pedido; solo su vendedor puede verlo.
func (r *Resolver) GetOrder(ctx context.Context, args struct{ ID gql.ID }) (*orderResolver, error) {
	caller, err := RequireCaller(ctx)
	if err != nil {
		return nil, gqlError(err)
	}
	order, err := r.orders.GetByID(string(args.ID), caller.ID)
	if err != nil {
		return nil, gqlError(err)
	}
	return &orderResolver{o: order, clients: r.clients}, nil
}

// GetOrdersForStatus lista los pedidos del vendedor con el estado exacto.
func (r *Resolver) GetOrdersForStatus(ctx context.Context, args struct{ Status string }) ([]*orderResolver, error) {
	caller, err := RequireCaller(ctx)
	if err != nil {
		return nil, gqlError(err)
	}
	orders, err := r.orders.ListByStatus(caller.ID, args.Status)
	if err != nil {
		return nil, gqlError(err)
	}
	return r.toOrderResolvers(orders), nil
}

// NewOrder crea un pedido: valida el cliente, descuenta stock y persiste,
// todo dentro de una transacción.
func (r *Resolver) NewOrder(ctx context.Context, args struct{ Input orderInput }) (*orderResolver, error) {
	caller, err := RequireCaller(ctx)
	if err != nil {
		return nil, gqlError(err)
	}
	in := args.Input.toDTO()
	if fields := validation.Struct(in); fields != nil {
		return nil, validationError(fields)
	}
	order, err := r.orders.Create(ctx, caller.ID, in)
	if err != nil {
		return nil, gqlError(err)
	}
	return &orderResolver{o: order, clients: r.clients}, nil
}

// UpdateOrder reemplaza un pedido restaurando el stock de los renglones anteriores.
func (r *Resolver) UpdateOrder(ctx context.Context, args struct {
	ID    gql.ID
	Input orderInput
}) (*orderResolver, error) {
	caller, err := RequireCaller(ctx)
	if err != nil {
		return nil, gqlError(err)
	}
	in := args.Input.toDTO()
	if fields := validation.Struct(in); fields != nil {
		return nil, validationError(fields)
	}
	order, err := r.orders.Update(ctx, string(args.ID), caller.ID, in)
	if err != nil {
		return nil, gqlError(err)
	}
	return &orderResolver{o: order, clients: r.clients}, nil
}

// DeleteOrder elimina un pedido del vendedor. El stock descontado no se restaura.
func (r *Resolver) DeleteOrder(ctx context.Context, args struct{ ID gql.ID }) (string, error) {
	caller, err := RequireCaller(ctx)
	if err != nil {
		return "", gqlError(err)
	}
	if err := r.orders.Delete(string(args.ID), caller.ID); err != nil {
		return "", gqlError(err)
	}
	return "Pedido eliminado", nil
}

type orderResolver struct {
	o       *entity.Order
	clients *usecase.ClientUseCase
}

func (r *orderResolver) ID() gql.ID     { return gql.ID(r.o.ID) }
func (r *orderResolver) Total() float64 { return r.o.Total.InexactFloat64() }
func (r *orderResolver) Seller() gql.ID { return gql.ID(r.o.SellerID) }
func (r *orderResolver) Status() string { return r.o.Status }

func (r *orderResolver) Order() []*orderGroupResolver {
	out := make([]*orderGroupResolver, 0, len(r.o.Items))
	for _, it := range r.o.Items {
		out = append(out, &orderGroupResolver{item: it})
	}
	return out
}

// Client resuelve el cliente del pedido bajo la identidad del vendedor dueño:
// quien llegó hasta aquí ya pasó el chequeo de propiedad del pedido.
func (r *orderResolver) Client() (*clientResolver, error) {
	client, err := r.clients.GetByID(r.o.ClientID, r.o.SellerID)
	if err != nil {
		return nil, gqlError(err)
	}
	return &clientResolver{c: client}, nil
}

func (r *orderResolver) CreatedAt() string { return formatTime(r.o.CreatedAt) }

type orderGroupResolver struct {
	item entity.OrderItem
}

func (r *orderGroupResolver) ID() gql.ID     { return gql.ID(r.item.ProductID) }
func (r *orderGroupResolver) Quantity() int32 { return r.item.Quantity }

func (r *Resolver) toOrderResolvers(orders []*entity.Order) []*orderResolver {
	out := make([]*orderResolver, 0, len(orders))
	for _, o := range orders {
		out = append(out, &orderResolver{o: o, clients: r.clients})
	}
	return out
}
