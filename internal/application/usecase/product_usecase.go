package usecase

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo de productos.
// El stock también lo muta el flujo de pedidos, siempre vía decremento condicional.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. No hay chequeo de duplicados: el nombre no es único.
func (uc *ProductUseCase) Create(in dto.ProductInput) (*entity.Product, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Stock:     in.Stock,
		Price:     in.Price,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List() ([]*entity.Product, error) {
	return uc.repo.List()
}

// Search busca productos por nombre, sin distinguir mayúsculas ni acentos.
func (uc *ProductUseCase) Search(text string) ([]*entity.Product, error) {
	return uc.repo.Search(normalizeSearch(text))
}

// Update sobreescribe todos los campos del producto.
func (uc *ProductUseCase) Update(id string, in dto.ProductInput) (*entity.Product, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.Stock = in.Stock
	product.Price = in.Price
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete elimina un producto existente.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// normalizeSearch pasa el texto a minúsculas y elimina marcas diacríticas
// (café -> cafe) para que la búsqueda case con unaccent() del lado de la DB.
func normalizeSearch(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, text)
	if err != nil {
		normalized = text
	}
	return strings.ToLower(strings.TrimSpace(normalized))
}
