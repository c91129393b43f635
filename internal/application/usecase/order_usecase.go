package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// OrderUseCase flujo de pedidos: validación de cliente, decremento de stock y
// persistencia, todo dentro de una transacción. Un fallo en cualquier renglón
// revierte los decrementos anteriores.
type OrderUseCase struct {
	clientRepo repository.ClientRepository
	orderRepo  repository.OrderRepository
	tx         OrderTxRunner
}

// NewOrderUseCase construye el caso de uso de pedidos.
func NewOrderUseCase(clientRepo repository.ClientRepository, orderRepo repository.OrderRepository, tx OrderTxRunner) *OrderUseCase {
	return &OrderUseCase{clientRepo: clientRepo, orderRepo: orderRepo, tx: tx}
}

// Create crea un pedido para el vendedor autenticado.
// Valida que el cliente exista y le pertenezca, descuenta stock renglón por
// renglón con decremento condicional y persiste el pedido. Atómico.
func (uc *OrderUseCase) Create(ctx context.Context, sellerID string, in dto.OrderInput) (*entity.Order, error) {
	if err := uc.checkClient(in.ClientID, sellerID); err != nil {
		return nil, err
	}

	status := entity.OrderStatusPending
	if in.Status != nil {
		if !entity.ValidOrderStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		status = *in.Status
	}

	order := &entity.Order{
		ID:        uuid.New().String(),
		Items:     toItems(in.Items),
		Total:     in.Total,
		ClientID:  in.ClientID,
		SellerID:  sellerID,
		Status:    status,
		CreatedAt: time.Now(),
	}

	err := uc.tx.Run(ctx, func(products repository.ProductRepository, orders repository.OrderRepository) error {
		if err := applyItems(products, order.Items); err != nil {
			return err
		}
		return orders.Create(order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Update reemplaza un pedido. Dentro de la misma transacción restaura el stock
// de los renglones anteriores y aplica los nuevos: sin doble decremento.
func (uc *OrderUseCase) Update(ctx context.Context, id, sellerID string, in dto.OrderInput) (*entity.Order, error) {
	existing, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if existing.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}
	if err := uc.checkClient(in.ClientID, sellerID); err != nil {
		return nil, err
	}

	status := existing.Status
	if in.Status != nil {
		if !entity.ValidOrderStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		status = *in.Status
	}

	updated := &entity.Order{
		ID:        existing.ID,
		Items:     toItems(in.Items),
		Total:     in.Total,
		ClientID:  in.ClientID,
		SellerID:  existing.SellerID,
		Status:    status,
		CreatedAt: existing.CreatedAt,
	}

	err = uc.tx.Run(ctx, func(products repository.ProductRepository, orders repository.OrderRepository) error {
		for _, it := range existing.Items {
			if err := products.IncrementStock(it.ProductID, it.Quantity); err != nil {
				return err
			}
		}
		if err := applyItems(products, updated.Items); err != nil {
			return err
		}
		return orders.Update(updated)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete elimina un pedido del vendedor. El stock descontado no se restaura.
func (uc *OrderUseCase) Delete(id, sellerID string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.SellerID != sellerID {
		return domain.ErrForbidden
	}
	return uc.orderRepo.Delete(id)
}

// GetByID obtiene un pedido. Solo el vendedor que lo creó puede verlo.
func (uc *OrderUseCase) GetByID(id, sellerID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// ListBySeller lista los pedidos del vendedor autenticado.
func (uc *OrderUseCase) ListBySeller(sellerID string) ([]*entity.Order, error) {
	return uc.orderRepo.ListBySeller(sellerID)
}

// ListByStatus lista los pedidos del vendedor con el estado exacto.
func (uc *OrderUseCase) ListByStatus(sellerID, status string) ([]*entity.Order, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	return uc.orderRepo.ListBySellerAndStatus(sellerID, status)
}

// checkClient valida que el cliente exista y pertenezca al vendedor.
func (uc *OrderUseCase) checkClient(clientID, sellerID string) error {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	if client.SellerID != sellerID {
		return domain.ErrForbidden
	}
	return nil
}

// applyItems descuenta stock renglón por renglón, en el orden de entrada.
// Corre dentro de la transacción: cualquier error revierte todo lo anterior.
func applyItems(products repository.ProductRepository, items []entity.OrderItem) error {
	for _, it := range items {
		product, err := products.GetByID(it.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("producto %s: %w", it.ProductID, domain.ErrNotFound)
		}
		ok, err := products.DecrementStock(it.ProductID, it.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no hay cantidad disponible de %s: %w", product.Name, domain.ErrInsufficientStock)
		}
	}
	return nil
}

func toItems(in []dto.OrderItemInput) []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(in))
	for _, it := range in {
		items = append(items, entity.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return items
}
