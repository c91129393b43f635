package http_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// Almacén en memoria compartido por los repos fake del test end-to-end.
// Los métodos devuelven copias; la semántica (nil, nil) para "no existe"
// es la misma que la de los repos de postgres.
type memStore struct {
	users    map[string]*entity.User
	products map[string]*entity.Product
	clients  map[string]*entity.Client
	orders   map[string]*entity.Order
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]*entity.User),
		products: make(map[string]*entity.Product),
		clients:  make(map[string]*entity.Client),
		orders:   make(map[string]*entity.Order),
	}
}

// ── usuarios ──

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(u *entity.User) error {
	copia := *u
	r.s.users[u.ID] = &copia
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

// ── productos ──

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	copia := *p
	r.s.products[p.ID] = &copia
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		copia := *p
		out = append(out, &copia)
	}
	return out, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	copia := *p
	r.s.products[p.ID] = &copia
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}

func (r *memProductRepo) Search(text string) ([]*entity.Product, error) {
	return r.List()
}

func (r *memProductRepo) DecrementStock(productID string, qty int32) (bool, error) {
	p, ok := r.s.products[productID]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

func (r *memProductRepo) IncrementStock(productID string, qty int32) error {
	if p, ok := r.s.products[productID]; ok {
		p.Stock += qty
	}
	return nil
}

// ── clientes ──

type memClientRepo struct{ s *memStore }

func (r *memClientRepo) Create(c *entity.Client) error {
	copia := *c
	r.s.clients[c.ID] = &copia
	return nil
}

func (r *memClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (r *memClientRepo) GetByEmail(email string) (*entity.Client, error) {
	for _, c := range r.s.clients {
		if c.Email == email {
			copia := *c
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memClientRepo) ListBySeller(sellerID string) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.s.clients {
		if c.SellerID == sellerID {
			copia := *c
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *memClientRepo) Update(c *entity.Client) error {
	copia := *c
	r.s.clients[c.ID] = &copia
	return nil
}

func (r *memClientRepo) Delete(id string) error {
	delete(r.s.clients, id)
	return nil
}

// ── pedidos ──

type memOrderRepo struct{ s *memStore }

func copyOrder(o *entity.Order) *entity.Order {
	copia := *o
	copia.Items = append([]entity.OrderItem(nil), o.Items...)
	return &copia
}

func (r *memOrderRepo) Create(o *entity.Order) error {
	r.s.orders[o.ID] = copyOrder(o)
	return nil
}

func (r *memOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return copyOrder(o), nil
}

func (r *memOrderRepo) ListBySeller(sellerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.s.orders {
		if o.SellerID == sellerID {
			out = append(out, copyOrder(o))
		}
	}
	return out, nil
}

func (r *memOrderRepo) ListBySellerAndStatus(sellerID, status string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.s.orders {
		if o.SellerID == sellerID && o.Status == status {
			out = append(out, copyOrder(o))
		}
	}
	return out, nil
}

func (r *memOrderRepo) Update(o *entity.Order) error {
	r.s.orders[o.ID] = copyOrder(o)
	return nil
}

func (r *memOrderRepo) Delete(id string) error {
	delete(r.s.orders, id)
	return nil
}

// ── reportes ──

// memReportRepo agrupa sobre los pedidos COMPLETED del almacén, igual que la
// consulta SQL real: devuelve los grupos SIN ordenar.
type memReportRepo struct{ s *memStore }

func (r *memReportRepo) ClientTotals(ctx context.Context) ([]repository.ClientTotal, error) {
	totals := make(map[string]decimal.Decimal)
	for _, o := range r.s.orders {
		if o.Status == entity.OrderStatusCompleted {
			totals[o.ClientID] = totals[o.ClientID].Add(o.Total)
		}
	}
	var out []repository.ClientTotal
	for clientID, total := range totals {
		if c, ok := r.s.clients[clientID]; ok {
			out = append(out, repository.ClientTotal{Client: *c, Total: total})
		}
	}
	return out, nil
}

func (r *memReportRepo) SellerTotals(ctx context.Context) ([]repository.SellerTotal, error) {
	totals := make(map[string]decimal.Decimal)
	for _, o := range r.s.orders {
		if o.Status == entity.OrderStatusCompleted {
			totals[o.SellerID] = totals[o.SellerID].Add(o.Total)
		}
	}
	var out []repository.SellerTotal
	for sellerID, total := range totals {
		if u, ok := r.s.users[sellerID]; ok {
			out = append(out, repository.SellerTotal{Seller: *u, Total: total})
		}
	}
	return out, nil
}

// ── transacciones ──

// memTxRunner emula el rollback: snapshot antes de fn, restauración si falla.
type memTxRunner struct{ s *memStore }

func (tx *memTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.OrderRepository) error) error {
	productSnap := make(map[string]entity.Product, len(tx.s.products))
	for id, p := range tx.s.products {
		productSnap[id] = *p
	}
	orderSnap := make(map[string]*entity.Order, len(tx.s.orders))
	for id, o := range tx.s.orders {
		orderSnap[id] = copyOrder(o)
	}

	if err := fn(&memProductRepo{s: tx.s}, &memOrderRepo{s: tx.s}); err != nil {
		tx.s.products = make(map[string]*entity.Product, len(productSnap))
		for id, p := range productSnap {
			copia := p
			tx.s.products[id] = &copia
		}
		tx.s.orders = orderSnap
		return err
	}
	return nil
}
