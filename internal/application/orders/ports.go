package orders

import (
	"context"

	"github.com/tu-usuario/orders-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger de órdenes:
// el chequeo de stock, el decremento y el insert de la orden viven en la misma
// transacción, igual que la re-lectura de status en cancel/complete.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}
