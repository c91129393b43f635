package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// ClientRepository puerto de persistencia para clientes de los vendedores.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByEmail(email string) (*entity.Client, error)
	ListBySeller(sellerID string) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
