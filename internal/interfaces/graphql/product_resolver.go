package graphql

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/pkg/validation"
)

type productInput struct {
	Name  string
	Stock int32
	Price float64
}

func (in productInput) toDTO() dto.ProductInput {
	return dto.ProductInput{
		Name:  in.Name,
		Stock: in.Stock,
		Price: decimal.NewFromFloat(in.Price),
	}
}

// GetProducts lista el catálogo completo.
func (r *Resolver) GetProducts(ctx context.Context) ([]*productResolver, error) {
	if _, err := RequireCaller(ctx); err != nil {
		return nil, gqlError(err)
	}
	products, err := r.products.List()
	if err != nil {
		return nil, gqlError(err)
	}
	return toProductResolvers(products), nil
}

// GetProduct obtiene un producto por ID.
func (r *Resolver) GetProduct(ctx context.Context, args struct{ ID gql.ID }) (*productResolver, error) {
	if _, err := RequireCaller(ctx); err != nil {
		return nil, gqlError(err)
	}
	product, err := r.products.GetByID(string(args.ID))
	if err != nil {
		return nil, gqlError(err)
	}
	return &productResolver{p: product}, nil
}

// SearchProduct busca productos por texto en el nombre.
func (r *Resolver) SearchProduct(ctx context.Context, args struct{ Text string }) ([]*productResolver, error) {
	if _, err := RequireCaller(ctx); err != nil {
		return nil, gqlError(err)
	}
	products, err := r.products.Search(args.Text)
	if err != nil {
		return nil, gqlError(err)
	}
	return toProductResolvers(products), nil
}

// NewProduct crea un producto.
func (r *Resolver) NewProduct(ctx context.Context, args struct{ Input productInput }) (*productResolver, error) {
	if _, err := RequireCaller(ctx); err != nil {
		return nil, gqlError(err)
	}
	in := args.Input.toDTO()
	if fields := validation.Struct(in); fields != nil {
		return nil, validationError(fields)
	}
	product, err := r.products.Create(in)
	if err != nil {
		return nil, gqlError(err)
	}
	return &productResolver{p: product}, nil
}

// UpdateProduct sobreescribe todos los campos de un producto.
func (r *Resolver) UpdateProduct(ctx context.Context, args struct {
	ID    gql.ID
	Input productInput
}) (*productResolver, error) {
	if _, err := RequireCaller(ctx); err != nil {
		return nil, gqlError(err)
	}
	in := args.Input.toDTO()
	if fields := validation.Struct(in); fields != nil {
		return nil, validationError(fields)
	}
	product, err := r.products.Update(string(args.ID), in)
	if err != nil {
		return nil, gqlError(err)
	}
	return &productResolver{p: product}, nil
}

// DeleteProduct elimina un producto y devuelve una confirmación.
func (r *Resolver) DeleteProduct(ctx context.Context, args struct{ ID gql.ID }) (string, error) {
	if _, err := RequireCaller(ctx); err != nil {
		return "", gqlError(err)
	}
	if err := r.products.Delete(string(args.ID)); err != nil {
		return "", gqlError(err)
	}
	return "Producto eliminado", nil
}

type productResolver struct {
	p *entity.Product
}

func (r *productResolver) ID() gql.ID        { return gql.ID(r.p.ID) }
func (r *productResolver) Name() string      { return r.p.Name }
func (r *productResolver) Stock() int32      { return r.p.Stock }
func (r *productResolver) Price() float64    { return r.p.Price.InexactFloat64() }
func (r *productResolver) CreatedAt() string { return formatTime(r.p.CreatedAt) }

func toProductResolvers(products []*entity.Product) []*productResolver {
	out := make([]*productResolver, 0, len(products))
	for _, p := range products {
		out = append(out, &productResolver{p: p})
	}
	return out
}
