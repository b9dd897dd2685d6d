package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/orders-pro/internal/application/dto"
	"github.com/tu-usuario/orders-pro/internal/domain"
	"github.com/tu-usuario/orders-pro/internal/domain/entity"
	"github.com/tu-usuario/orders-pro/internal/domain/repository"
)

// Policy políticas configurables del ledger.
// RestockOnCancel devuelve la cantidad al producto al cancelar; apagado por
// defecto.
type Policy struct {
	RestockOnCancel bool
}

// OrderUseCase implementa el ciclo de vida de órdenes:
// pending -> completed | cancelled, con decremento de inventario al colocar.
// Toda mutación corre dentro de una transacción con bloqueo de fila
// (SELECT FOR UPDATE) para evitar sobreventa y dobles transiciones.
type OrderUseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository
	policy    Policy
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner TxRunner, orderRepo repository.OrderRepository, policy Policy) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orderRepo: orderRepo, policy: policy}
}

// Place coloca una orden para un customer: verifica que el producto exista y
// tenga stock suficiente, decrementa la cantidad y crea la orden pending, todo
// en una transacción. El bloqueo de la fila del producto impide que dos
// requests concurrentes pasen ambos el chequeo de stock.
// Devuelve el order_no asignado (UUID, referencia externa estable).
func (uc *OrderUseCase) Place(ctx context.Context, customerID string, in dto.CreateOrderRequest) (string, error) {
	if in.ProductID == 0 || in.Quantity == 0 {
		return "", domain.ErrMissingFields
	}
	if in.Quantity < 1 {
		return "", domain.ErrInvalidQuantity
	}

	now := time.Now()
	orderNo := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByIDForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if product.Quantity < in.Quantity {
			return domain.ErrInsufficientStock
		}
		if err := productRepo.UpdateQuantity(product.ID, product.Quantity-in.Quantity); err != nil {
			return err
		}
		order := &entity.Order{
			OrderNo:         orderNo,
			CustomerID:      customerID,
			ProductID:       product.ID,
			ProductQuantity: in.Quantity,
			Status:          entity.OrderPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		return orderRepo.Create(order)
	})
	if err != nil {
		return "", err
	}
	return orderNo, nil
}

// Cancel transiciona una orden pending a cancelled. Las órdenes en estado
// terminal se rechazan con errores distintos (ErrOrderCompleted /
// ErrOrderCancelled) para que el cliente vea mensajes distintos.
func (uc *OrderUseCase) Cancel(ctx context.Context, orderNo string) error {
	return uc.transition(ctx, orderNo, entity.OrderCancelled)
}

// Complete transiciona una orden pending a completed (solo sales_rep llega
// aquí, lo decide el router).
func (uc *OrderUseCase) Complete(ctx context.Context, orderNo string) error {
	return uc.transition(ctx, orderNo, entity.OrderCompleted)
}

// transition re-lee la orden bajo FOR UPDATE y aplica la transición si sigue
// pending. Dos requests concurrentes no pueden ver pending las dos: la segunda
// espera el lock y encuentra el estado terminal.
func (uc *OrderUseCase) transition(ctx context.Context, orderNo, target string) error {
	return uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error {
		order, err := orderRepo.GetByOrderNoForUpdate(orderNo)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrOrderNotFound
		}
		switch order.Status {
		case entity.OrderCompleted:
			return domain.ErrOrderCompleted
		case entity.OrderCancelled:
			return domain.ErrOrderCancelled
		}
		if err := orderRepo.UpdateStatus(order.ID, target); err != nil {
			return err
		}
		if target == entity.OrderCancelled && uc.policy.RestockOnCancel {
			product, err := productRepo.GetByIDForUpdate(order.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrProductNotFound
			}
			return productRepo.UpdateQuantity(product.ID, product.Quantity+order.ProductQuantity)
		}
		return nil
	})
}

// List devuelve las órdenes visibles para el caller según su rol:
// admin y sales_rep ven todas; customer solo las propias.
func (uc *OrderUseCase) List(callerID, role string) ([]*dto.OrderResponse, error) {
	var (
		rows []*entity.OrderSummary
		err  error
	)
	if role == entity.RoleAdmin || role == entity.RoleSalesRep {
		rows, err = uc.orderRepo.ListAll()
	} else {
		rows, err = uc.orderRepo.ListByCustomer(callerID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, &dto.OrderResponse{
			OrderNo:         r.OrderNo,
			ProductName:     r.ProductName,
			ProductQuantity: r.ProductQuantity,
			ProductPrice:    r.ProductPrice,
			Status:          r.Status,
		})
	}
	return out, nil
}
