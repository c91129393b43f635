package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
// Los renglones viven en order_items con una columna position que conserva el orden de entrada.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera del pedido y sus renglones.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, client_id, seller_id, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ClientID, order.SellerID, order.Total, order.Status, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return r.insertItems(order.ID, order.Items)
}

// GetByID obtiene un pedido con sus renglones.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, client_id, seller_id, total, status, created_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.ClientID, &o.SellerID, &o.Total, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if o.Items, err = r.loadItems(o.ID); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListBySeller lista los pedidos del vendedor.
func (r *OrderRepo) ListBySeller(sellerID string) ([]*entity.Order, error) {
	query := `
		SELECT id, client_id, seller_id, total, status, created_at
		FROM orders WHERE seller_id = $1 ORDER BY created_at DESC`
	return r.list(query, sellerID)
}

// ListBySellerAndStatus lista los pedidos del vendedor filtrados por estado exacto.
func (r *OrderRepo) ListBySellerAndStatus(sellerID, status string) ([]*entity.Order, error) {
	query := `
		SELECT id, client_id, seller_id, total, status, created_at
		FROM orders WHERE seller_id = $1 AND status = $2 ORDER BY created_at DESC`
	return r.list(query, sellerID, status)
}

// Update reemplaza la cabecera y los renglones del pedido. SellerID no se toca: es inmutable.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET client_id = $2, total = $3, status = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ClientID, order.Total, order.Status,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return r.insertItems(order.ID, order.Items)
}

// Delete elimina un pedido; los renglones caen por ON DELETE CASCADE.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (r *OrderRepo) insertItems(orderID string, items []entity.OrderItem) error {
	for i, it := range items {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO order_items (order_id, product_id, quantity, position) VALUES ($1, $2, $3, $4)`,
			orderID, it.ProductID, it.Quantity, i,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

func (r *OrderRepo) loadItems(orderID string) ([]entity.OrderItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT product_id, quantity FROM order_items WHERE order_id = $1 ORDER BY position`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ProductID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.ClientID, &o.SellerID, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		if o.Items, err = r.loadItems(o.ID); err != nil {
			return nil, err
		}
	}
	return list, nil
}
