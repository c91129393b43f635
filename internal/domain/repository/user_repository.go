package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// UserRepository puerto de persistencia para vendedores.
// Los métodos de lectura devuelven (nil, nil) cuando no existe el registro.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
