package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS empresas (
		id           BIGSERIAL PRIMARY KEY,
		nombre       TEXT    NOT NULL,
		razon_social TEXT    NOT NULL,
		cuil         BIGINT  NOT NULL UNIQUE,
		eliminado    BOOLEAN NOT NULL DEFAULT false
	)`,
	`CREATE TABLE IF NOT EXISTS sucursales (
		id               BIGSERIAL PRIMARY KEY,
		empresa_id       BIGINT  NOT NULL REFERENCES empresas(id),
		nombre           TEXT    NOT NULL,
		domicilio        TEXT    NOT NULL DEFAULT '',
		horario_apertura TEXT    NOT NULL DEFAULT '',
		horario_cierre   TEXT    NOT NULL DEFAULT '',
		eliminado        BOOLEAN NOT NULL DEFAULT false
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sucursales_empresa ON sucursales (empresa_id)`,
	`CREATE TABLE IF NOT EXISTS imagenes (
		id        BIGSERIAL PRIMARY KEY,
		public_id TEXT    NOT NULL UNIQUE,
		name      TEXT    NOT NULL,
		url       TEXT    NOT NULL,
		eliminado BOOLEAN NOT NULL DEFAULT false
	)`,
}

// EnsureSchema crea las tablas si no existen, todo dentro de una transacción.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar esquema: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
