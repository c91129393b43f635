package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos del catálogo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error

	// Search busca por nombre; text llega ya normalizado (sin acentos, minúsculas).
	Search(text string) ([]*entity.Product, error)

	// DecrementStock descuenta qty del stock solo si hay existencias suficientes
	// (UPDATE condicional, atómico). Devuelve false si no se aplicó.
	DecrementStock(productID string, qty int32) (bool, error)

	// IncrementStock devuelve qty unidades al stock (restauración al reemplazar un pedido).
	IncrementStock(productID string, qty int32) error
}
