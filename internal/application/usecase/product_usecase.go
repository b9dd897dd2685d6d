package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/orders-pro/internal/application/dto"
	"github.com/tu-usuario/orders-pro/internal/domain"
	"github.com/tu-usuario/orders-pro/internal/domain/entity"
	"github.com/tu-usuario/orders-pro/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo. Quantity solo se decrementa vía
// el ledger de órdenes; no hay operación de restock en el alcance.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo. name, price y quantity son obligatorios y
// deben ser positivos; ErrMissingFields en caso contrario.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || !in.Price.GreaterThan(decimal.Zero) || in.Quantity < 1 {
		return nil, domain.ErrMissingFields
	}
	now := time.Now()
	product := &entity.Product{
		Name:      in.Name,
		Price:     in.Price,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo completo (endpoint público).
func (uc *ProductUseCase) List() ([]*dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
	}
}
