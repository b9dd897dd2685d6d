package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/orders-pro/internal/domain/entity"
	"github.com/tu-usuario/orders-pro/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador del ledger de órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una orden nueva y asigna el ID generado.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (order_no, customer_id, product_id, product_quantity, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		order.OrderNo, order.CustomerID, order.ProductID,
		order.ProductQuantity, order.Status,
		order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByOrderNo obtiene una orden por su referencia externa. (nil, nil) si no existe.
func (r *OrderRepo) GetByOrderNo(orderNo string) (*entity.Order, error) {
	query := `
		SELECT id, order_no, customer_id, product_id, product_quantity, status, created_at, updated_at
		FROM orders WHERE order_no = $1`
	return r.scanOne(query, orderNo)
}

// GetByOrderNoForUpdate obtiene la orden y bloquea la fila (SELECT FOR UPDATE)
// para que las transiciones de estado sean check-then-write atómicas.
func (r *OrderRepo) GetByOrderNoForUpdate(orderNo string) (*entity.Order, error) {
	query := `
		SELECT id, order_no, customer_id, product_id, product_quantity, status, created_at, updated_at
		FROM orders WHERE order_no = $1
		FOR UPDATE`
	return r.scanOne(query, orderNo)
}

func (r *OrderRepo) scanOne(query, orderNo string) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, orderNo).Scan(
		&o.ID, &o.OrderNo, &o.CustomerID, &o.ProductID,
		&o.ProductQuantity, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// UpdateStatus fija el estado de una orden por su id interno.
func (r *OrderRepo) UpdateStatus(id int64, status string) error {
	query := `UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// ListAll devuelve todas las órdenes unidas con su producto (admin y sales_rep).
func (r *OrderRepo) ListAll() ([]*entity.OrderSummary, error) {
	query := `
		SELECT o.order_no, p.name, o.product_quantity, p.price, o.status
		FROM orders o
		JOIN products p ON p.id = o.product_id
		ORDER BY o.id DESC`
	return r.list(query)
}

// ListByCustomer devuelve las órdenes del customer indicado, unidas con su producto.
func (r *OrderRepo) ListByCustomer(customerID string) ([]*entity.OrderSummary, error) {
	query := `
		SELECT o.order_no, p.name, o.product_quantity, p.price, o.status
		FROM orders o
		JOIN products p ON p.id = o.product_id
		WHERE o.customer_id = $1
		ORDER BY o.id DESC`
	return r.list(query, customerID)
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.OrderSummary, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderSummary
	for rows.Next() {
		var s entity.OrderSummary
		if err := rows.Scan(&s.OrderNo, &s.ProductName, &s.ProductQuantity, &s.ProductPrice, &s.Status); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
