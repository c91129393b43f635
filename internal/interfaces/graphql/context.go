package graphql

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/pkg/jwt"
)

type ctxKey int

const callerKey ctxKey = iota

// WithCaller adjunta la identidad verificada del vendedor al contexto.
// Lo hace el middleware HTTP una vez por request.
func WithCaller(ctx context.Context, id jwt.Identity) context.Context {
	return context.WithValue(ctx, callerKey, id)
}

// CallerFrom devuelve la identidad del contexto, si la hay.
func CallerFrom(ctx context.Context) (jwt.Identity, bool) {
	id, ok := ctx.Value(callerKey).(jwt.Identity)
	return id, ok
}

// RequireCaller devuelve la identidad del vendedor o ErrUnauthenticated.
// Toda operación protegida lo llama primero; el resultado alimenta los filtros
// por vendedor y el sellado de registros nuevos.
func RequireCaller(ctx context.Context) (jwt.Identity, error) {
	id, ok := CallerFrom(ctx)
	if !ok {
		return jwt.Identity{}, domain.ErrUnauthenticated
	}
	return id, nil
}
