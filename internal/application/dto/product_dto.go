package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. El campo del nombre
// viaja como "product" en el JSON.
type CreateProductRequest struct {
	Name     string          `json:"product"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}
