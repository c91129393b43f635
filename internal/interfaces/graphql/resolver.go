package graphql

import (
	"context"
	"time"

	gql "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/pkg/validation"
)

// Resolver raíz del esquema: despacha cada query/mutation a su caso de uso.
// Es una capa delgada: autorización, validación de entrada y mapeo de errores;
// las reglas de negocio viven en internal/application.
type Resolver struct {
	auth     *auth.AuthUseCase
	products *usecase.ProductUseCase
	clients  *usecase.ClientUseCase
	orders   *usecase.OrderUseCase
	reports  *usecase.ReportUseCase
}

// NewResolver construye el resolver raíz con sus casos de uso.
func NewResolver(
	authUC *auth.AuthUseCase,
	productUC *usecase.ProductUseCase,
	clientUC *usecase.ClientUseCase,
	orderUC *usecase.OrderUseCase,
	reportUC *usecase.ReportUseCase,
) *Resolver {
	return &Resolver{
		auth:     authUC,
		products: productUC,
		clients:  clientUC,
		orders:   orderUC,
		reports:  reportUC,
	}
}

// NewSchema parsea el SDL contra el resolver. Panic si el esquema y los
// métodos del resolver no coinciden (error de programación, no de runtime).
func NewSchema(r *Resolver) *gql.Schema {
	return gql.MustParseSchema(Schema, r)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

type userInput struct {
	Name     string
	Lastname string
	Email    string
	Password string
}

type authenticateInput struct {
	Email    string
	Password string
}

// GetUser devuelve la identidad del vendedor autenticado, directamente de los
// claims del token: sin viaje a la base de datos.
func (r *Resolver) GetUser(ctx context.Context) (*userResolver, error) {
	caller, err := RequireCaller(ctx)
	if err != nil {
		return nil, gqlError(err)
	}
	return &userResolver{u: &entity.User{
		ID:       caller.ID,
		Name:     caller.Name,
		Lastname: caller.Lastname,
		Email:    caller.Email,
	}}, nil
}

// NewUser registra un vendedor. Es la única mutación sin autenticación junto
// con authenticateUser.
func (r *Resolver) NewUser(args struct{ Input userInput }) (*userResolver, error) {
	in := dto.NewUserInput{
		Name:     args.Input.Name,
		Lastname: args.Input.Lastname,
		Email:    args.Input.Email,
		Password: args.Input.Password,
	}
	if fields := validation.Struct(in); fields != nil {
		return nil, validationError(fields)
	}
	user, err := r.auth.Register(in)
	if err != nil {
		return nil, gqlError(err)
	}
	return &userResolver{u: user}, nil
}

// AuthenticateUser verifica credenciales y devuelve el token firmado.
func (r *Resolver) AuthenticateUser(args struct{ Input authenticateInput }) (*tokenResolver, error) {
	in := dto.AuthInput{Email: args.Input.Email, Password: args.Input.Password}
	if fields := validation.Struct(in); fields != nil {
		return nil, validationError(fields)
	}
	token, err := r.auth.Authenticate(in)
	if err != nil {
		return nil, gqlError(err)
	}
	return &tokenResolver{token: token}, nil
}

type userResolver struct {
	u *entity.User
}

func (r *userResolver) ID() gql.ID       { return gql.ID(r.u.ID) }
func (r *userResolver) Name() string     { return r.u.Name }
func (r *userResolver) Lastname() string { return r.u.Lastname }
func (r *userResolver) Email() string    { return r.u.Email }

// CreatedAt es nulo cuando el usuario se reconstruyó desde los claims del token.
func (r *userResolver) CreatedAt() *string {
	if r.u.CreatedAt.IsZero() {
		return nil
	}
	s := formatTime(r.u.CreatedAt)
	return &s
}

type tokenResolver struct {
	token string
}

func (r *tokenResolver) Token() string { return r.token }

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
