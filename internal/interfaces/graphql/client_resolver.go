package graphql

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/pkg/validation"
)

type clientInput struct {
	Name     string
	Lastname string
	Company  string
	Email    string
	Phone    *string
}

func (in clientInput) toDTO() dto.ClientInput {
	return dto.ClientInput{
		Name:     in.Name,
		Lastname: in.Lastname,
		Company:  in.Company,
		Email:    in.Email,
		Phone:    in.Phone,
	}
}

// GetClients lista los clientes del vendedor autenticado.
// Igual que getSellerClients: la variante sin filtro de una revisión vieja
// exponía clientes ajenos y no se conserva.
func (r *Resolver) GetClients(ctx context.Context) ([]*clientResolver, error) {
	return r.sellerClients(ctx)
}

// GetSellerClients lista los clientes del vendedor autenticado.
func (r *Resolver) GetSellerClients(ctx context.Context) ([]*clientResolver, error) {
	return r.sellerClients(ctx)
}

func (r *Resolver) sellerClients(ctx context.Context) ([]*clientResolver, error) {
	caller, err := RequireCaller(ctx)
	if err != nil {
		return nil, gqlError(err)
	}
	clients, err := r.clients.ListBySeller(caller.ID)
	if err != nil {
		return nil, gqlError(err)
	}
	return toClientResolvers(clients), nil
}

// GetClient obtiene un cliente; solo su vendedor puede verlo.
func (r *Resolver) GetClient(ctx context.Context, args struct{ ID gql.ID }) (*clientResolver, error) {
	caller, err := RequireCaller(ctx)
	if err != nil {
		return nil, gqlError(err)
	}
	client, err := r.clients.GetByID(string(args.ID), caller.ID)
	if err != nil {
		return nil, gqlError(err)
	}
	return &clientResolver{c: client}, nil
}

// NewClient crea un cliente del vendedor autenticado.
func (r *Resolver) NewClient(ctx context.Context, args struct{ Input clientInput }) (*clientResolver, error) {
	caller, err := RequireCaller(ctx)
	if err != nil {
		return nil, gqlError(err)
	}
	in := args.Input.toDTO()
	if fields := validation.Struct(in); fields != nil {
		return nil, validationError(fields)
	}
	client, err := r.clients.Create(caller.ID, in)
	if err != nil {
		return nil, gqlError(err)
	}
	return &clientResolver{c: client}, nil
}

// UpdateClient sobreescribe los datos de un cliente del vendedor.
func (r *Resolver) UpdateClient(ctx context.Context, args struct {
	ID    gql.ID
	Input clientInput
}) (*clientResolver, error) {
	caller, err := RequireCaller(ctx)
	if err != nil {
		return nil, gqlError(err)
	}
	in := args.Input.toDTO()
	if fields := validation.Struct(in); fields != nil {
		return nil, validationError(fields)
	}
	client, err := r.clients.Update(string(args.ID), caller.ID, in)
	if err != nil {
		return nil, gqlError(err)
	}
	return &clientResolver{c: client}, nil
}

// DeleteClient elimina un cliente del vendedor y devuelve una confirmación.
func (r *Resolver) DeleteClient(ctx context.Context, args struct{ ID gql.ID }) (string, error) {
	caller, err := RequireCaller(ctx)
	if err != nil {
		return "", gqlError(err)
	}
	if err := r.clients.Delete(string(args.ID), caller.ID); err != nil {
		return "", gqlError(err)
	}
	return "Cliente eliminado", nil
}

type clientResolver struct {
	c *entity.Client
}

func (r *clientResolver) ID() gql.ID        { return gql.ID(r.c.ID) }
func (r *clientResolver) Name() string      { return r.c.Name }
func (r *clientResolver) Lastname() string  { return r.c.Lastname }
func (r *clientResolver) Company() string   { return r.c.Company }
func (r *clientResolver) Email() string     { return r.c.Email }
func (r *clientResolver) Phone() *string    { return r.c.Phone }
func (r *clientResolver) Seller() gql.ID    { return gql.ID(r.c.SellerID) }
func (r *clientResolver) CreatedAt() string { return formatTime(r.c.CreatedAt) }

func toClientResolvers(clients []*entity.Client) []*clientResolver {
	out := make([]*clientResolver, 0, len(clients))
	for _, c := range clients {
		out = append(out, &clientResolver{c: c})
	}
	return out
}
