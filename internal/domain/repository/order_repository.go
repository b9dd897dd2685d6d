package repository

import "github.com/tu-usuario/orders-pro/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
// El lookup externo siempre es por order_no, nunca por el id interno.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByOrderNo(orderNo string) (*entity.Order, error)
	GetByOrderNoForUpdate(orderNo string) (*entity.Order, error)
	UpdateStatus(id int64, status string) error
	ListAll() ([]*entity.OrderSummary, error)
	ListByCustomer(customerID string) ([]*entity.OrderSummary, error)
}
