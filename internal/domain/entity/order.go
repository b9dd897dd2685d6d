package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una orden. pending es el estado inicial;
// completed y cancelled son terminales: no hay más transiciones después.
const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Order representa una orden de compra. OrderNo es la referencia externa
// (UUID único y estable); ID es el surrogate numérico interno.
type Order struct {
	ID              int64
	OrderNo         string
	CustomerID      string
	ProductID       int64
	ProductQuantity int64 // snapshot de la cantidad ordenada
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderSummary es la fila de listado: la orden con los campos del producto
// referenciado ya unidos desde el catálogo.
type OrderSummary struct {
	OrderNo         string
	ProductName     string
	ProductQuantity int64
	ProductPrice    decimal.Decimal
	Status          string
}
