package http_test

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/orders-pro/internal/domain"
	"github.com/tu-usuario/orders-pro/internal/domain/entity"
	"github.com/tu-usuario/orders-pro/internal/domain/repository"
)

// Fakes en memoria para probar el gateway HTTP completo sin PostgreSQL.

type fakeUserRepo struct {
	mu      sync.Mutex
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

// seed inserta un usuario directo al store (para roles que el registro público
// no puede crear) y lo devuelve.
func (r *fakeUserRepo) seed(name, email, role string) *entity.User {
	u := &entity.User{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
		Role:  role,
	}
	_ = r.Create(u)
	return u
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, u := range r.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateRole(id, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

// memStore productos y órdenes en memoria; el mutex emula la exclusión de los
// bloqueos de fila dentro del txRunner fake.
type memStore struct {
	mu       sync.Mutex
	products map[int64]*entity.Product
	orders   map[string]*entity.Order
	nextID   int64
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[int64]*entity.Product),
		orders:   make(map[string]*entity.Order),
	}
}

func (s *memStore) addProduct(id int64, name, price string, qty int64) *entity.Product {
	p := &entity.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Quantity: qty,
	}
	s.products[id] = p
	return p
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	r.s.nextID++
	p.ID = r.s.nextID
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByIDForUpdate(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) UpdateQuantity(id, quantity int64) error {
	r.s.products[id].Quantity = quantity
	return nil
}

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) Create(o *entity.Order) error {
	r.s.nextID++
	o.ID = r.s.nextID
	cp := *o
	r.s.orders[o.OrderNo] = &cp
	return nil
}

func (r *memOrderRepo) GetByOrderNo(orderNo string) (*entity.Order, error) {
	o, ok := r.s.orders[orderNo]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) GetByOrderNoForUpdate(orderNo string) (*entity.Order, error) {
	return r.GetByOrderNo(orderNo)
}

func (r *memOrderRepo) UpdateStatus(id int64, status string) error {
	for _, o := range r.s.orders {
		if o.ID == id {
			o.Status = status
			return nil
		}
	}
	return domain.ErrOrderNotFound
}

func (r *memOrderRepo) ListAll() ([]*entity.OrderSummary, error) {
	var out []*entity.OrderSummary
	for _, o := range r.s.orders {
		out = append(out, r.summary(o))
	}
	return out, nil
}

func (r *memOrderRepo) ListByCustomer(customerID string) ([]*entity.OrderSummary, error) {
	var out []*entity.OrderSummary
	for _, o := range r.s.orders {
		if o.CustomerID == customerID {
			out = append(out, r.summary(o))
		}
	}
	return out, nil
}

func (r *memOrderRepo) summary(o *entity.Order) *entity.OrderSummary {
	p := r.s.products[o.ProductID]
	return &entity.OrderSummary{
		OrderNo:         o.OrderNo,
		ProductName:     p.Name,
		ProductQuantity: o.ProductQuantity,
		ProductPrice:    p.Price,
		Status:          o.Status,
	}
}

type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return fn(&memOrderRepo{s: t.s}, &memProductRepo{s: t.s})
}
