package usecase_test

import (
	"context"
	"strings"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// Repositorios en memoria para los tests de casos de uso. Guardan copias para
// que los tests no muten el almacén por accidente a través de los punteros.

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
	searched string // último texto recibido por Search
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	r := &memProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		copia := *p
		r.products[p.ID] = &copia
	}
	return r
}

func (r *memProductRepo) Create(product *entity.Product) error {
	copia := *product
	r.products[product.ID] = &copia
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		copia := *p
		out = append(out, &copia)
	}
	return out, nil
}

func (r *memProductRepo) Update(product *entity.Product) error {
	copia := *product
	r.products[product.ID] = &copia
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) Search(text string) ([]*entity.Product, error) {
	r.searched = text
	var out []*entity.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), text) {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *memProductRepo) DecrementStock(productID string, qty int32) (bool, error) {
	p, ok := r.products[productID]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

func (r *memProductRepo) IncrementStock(productID string, qty int32) error {
	if p, ok := r.products[productID]; ok {
		p.Stock += qty
	}
	return nil
}

func (r *memProductRepo) snapshot() map[string]entity.Product {
	snap := make(map[string]entity.Product, len(r.products))
	for id, p := range r.products {
		snap[id] = *p
	}
	return snap
}

func (r *memProductRepo) restore(snap map[string]entity.Product) {
	r.products = make(map[string]*entity.Product, len(snap))
	for id, p := range snap {
		copia := p
		r.products[id] = &copia
	}
}

func (r *memProductRepo) stockOf(id string) int32 {
	if p, ok := r.products[id]; ok {
		return p.Stock
	}
	return -1
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

type memClientRepo struct {
	clients map[string]*entity.Client
}

func newMemClientRepo(clients ...*entity.Client) *memClientRepo {
	r := &memClientRepo{clients: make(map[string]*entity.Client)}
	for _, c := range clients {
		copia := *c
		r.clients[c.ID] = &copia
	}
	return r
}

func (r *memClientRepo) Create(client *entity.Client) error {
	copia := *client
	r.clients[client.ID] = &copia
	return nil
}

func (r *memClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (r *memClientRepo) GetByEmail(email string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			copia := *c
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memClientRepo) ListBySeller(sellerID string) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		if c.SellerID == sellerID {
			copia := *c
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *memClientRepo) Update(client *entity.Client) error {
	copia := *client
	r.clients[client.ID] = &copia
	return nil
}

func (r *memClientRepo) Delete(id string) error {
	delete(r.clients, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

type memOrderRepo struct {
	orders map[string]*entity.Order
}

func newMemOrderRepo(orders ...*entity.Order) *memOrderRepo {
	r := &memOrderRepo{orders: make(map[string]*entity.Order)}
	for _, o := range orders {
		r.orders[o.ID] = copyOrder(o)
	}
	return r
}

func copyOrder(o *entity.Order) *entity.Order {
	copia := *o
	copia.Items = append([]entity.OrderItem(nil), o.Items...)
	return &copia
}

func (r *memOrderRepo) Create(order *entity.Order) error {
	r.orders[order.ID] = copyOrder(order)
	return nil
}

func (r *memOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return copyOrder(o), nil
}

func (r *memOrderRepo) ListBySeller(sellerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.SellerID == sellerID {
			out = append(out, copyOrder(o))
		}
	}
	return out, nil
}

func (r *memOrderRepo) ListBySellerAndStatus(sellerID, status string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.SellerID == sellerID && o.Status == status {
			out = append(out, copyOrder(o))
		}
	}
	return out, nil
}

func (r *memOrderRepo) Update(order *entity.Order) error {
	r.orders[order.ID] = copyOrder(order)
	return nil
}

func (r *memOrderRepo) Delete(id string) error {
	delete(r.orders, id)
	return nil
}

func (r *memOrderRepo) snapshot() map[string]entity.Order {
	snap := make(map[string]entity.Order, len(r.orders))
	for id, o := range r.orders {
		snap[id] = *copyOrder(o)
	}
	return snap
}

func (r *memOrderRepo) restore(snap map[string]entity.Order) {
	r.orders = make(map[string]*entity.Order, len(snap))
	for id, o := range snap {
		copia := o
		r.orders[id] = copyOrder(&copia)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner
// ──────────────────────────────────────────────────────────────────────────────

// memTxRunner emula la semántica transaccional: toma un snapshot de los
// almacenes antes de fn y lo restaura si fn falla. Así los tests verifican
// que un fallo a mitad de camino no deja decrementos parciales.
type memTxRunner struct {
	products *memProductRepo
	orders   *memOrderRepo
}

func (tx *memTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.OrderRepository) error) error {
	productSnap := tx.products.snapshot()
	orderSnap := tx.orders.snapshot()
	if err := fn(tx.products, tx.orders); err != nil {
		tx.products.restore(productSnap)
		tx.orders.restore(orderSnap)
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

type memReportRepo struct {
	clientTotals []repository.ClientTotal
	sellerTotals []repository.SellerTotal
}

func (r *memReportRepo) ClientTotals(ctx context.Context) ([]repository.ClientTotal, error) {
	return append([]repository.ClientTotal(nil), r.clientTotals...), nil
}

func (r *memReportRepo) SellerTotals(ctx context.Context) ([]repository.SellerTotal, error) {
	return append([]repository.SellerTotal(nil), r.sellerTotals...), nil
}
