package repository

import "github.com/tu-usuario/orders-pro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByIDForUpdate bloquea la fila (SELECT FOR UPDATE) y solo tiene sentido
// dentro de una transacción del TxRunner.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetByIDForUpdate(id int64) (*entity.Product, error)
	List() ([]*entity.Product, error)
	UpdateQuantity(id, quantity int64) error
}
