package postgres

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplySchema lee el archivo de esquema y lo ejecuta contra la base.
// El esquema es idempotente (CREATE TABLE IF NOT EXISTS), así que se aplica
// en cada arranque.
func ApplySchema(ctx context.Context, pool *pgxpool.Pool, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("leer esquema: %w", err)
	}
	if _, err := pool.Exec(ctx, string(data)); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}
