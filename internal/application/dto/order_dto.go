package dto

import "github.com/shopspring/decimal"

// CreateOrderRequest entrada para colocar una orden (solo customers).
type CreateOrderRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// OrderResponse fila de listado de órdenes, con los campos del producto
// unidos desde el catálogo.
type OrderResponse struct {
	OrderNo         string          `json:"order_no"`
	ProductName     string          `json:"product_name"`
	ProductQuantity int64           `json:"product_quantity"`
	ProductPrice    decimal.Decimal `json:"product_price"`
	Status          string          `json:"status"`
}
