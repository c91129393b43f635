package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes.
// Todas las operaciones por ID verifican que el cliente pertenezca al vendedor.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente para el vendedor autenticado.
// Devuelve ErrAlreadyExists si el email ya está registrado.
func (uc *ClientUseCase) Create(sellerID string, in dto.ClientInput) (*entity.Client, error) {
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyExists
	}
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Lastname:  in.Lastname,
		Company:   in.Company,
		Email:     in.Email,
		Phone:     in.Phone,
		SellerID:  sellerID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetByID obtiene un cliente. Solo el vendedor que lo creó puede verlo.
func (uc *ClientUseCase) GetByID(id, sellerID string) (*entity.Client, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if client.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}
	return client, nil
}

// ListBySeller lista los clientes del vendedor autenticado.
func (uc *ClientUseCase) ListBySeller(sellerID string) ([]*entity.Client, error) {
	return uc.repo.ListBySeller(sellerID)
}

// Update sobreescribe los datos del cliente, con los mismos chequeos de GetByID.
func (uc *ClientUseCase) Update(id, sellerID string, in dto.ClientInput) (*entity.Client, error) {
	client, err := uc.GetByID(id, sellerID)
	if err != nil {
		return nil, err
	}
	client.Name = in.Name
	client.Lastname = in.Lastname
	client.Company = in.Company
	client.Email = in.Email
	client.Phone = in.Phone
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete elimina un cliente, con los mismos chequeos de GetByID.
func (uc *ClientUseCase) Delete(id, sellerID string) error {
	if _, err := uc.GetByID(id, sellerID); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}
