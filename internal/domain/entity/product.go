package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Quantity solo la muta el
// ledger de órdenes al colocar una orden (decremento bajo bloqueo de fila).
type Product struct {
	ID        int64
	Name      string
	Price     decimal.Decimal // precio de venta
	Quantity  int64           // unidades disponibles
	CreatedAt time.Time
	UpdatedAt time.Time
}
