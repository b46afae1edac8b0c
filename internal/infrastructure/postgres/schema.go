package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Esquema de las tres colecciones. Los ids son BIGSERIAL: la identidad la
// asigna el almacén en el insert. Los montos de dinero se guardan como BIGINT
// (unidad mínima de moneda); el total de una venta no se persiste nunca.
const (
	createUsersTable = `
		CREATE TABLE IF NOT EXISTS users (
			id          BIGSERIAL PRIMARY KEY,
			name        VARCHAR(50)  NOT NULL,
			email       VARCHAR(100) NOT NULL,
			phone       VARCHAR(20)  NOT NULL DEFAULT '',
			age         INT,
			gender      VARCHAR(10)  NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ  NOT NULL,
			updated_at  TIMESTAMPTZ  NOT NULL
		);
		CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email);`

	createSalesTable = `
		CREATE TABLE IF NOT EXISTS sales_records (
			id           BIGSERIAL PRIMARY KEY,
			product_name VARCHAR(100) NOT NULL,
			category     VARCHAR(50)  NOT NULL,
			price        BIGINT       NOT NULL,
			quantity     BIGINT       NOT NULL,
			sales_date   DATE         NOT NULL,
			salesperson  VARCHAR(50)  NOT NULL,
			region       VARCHAR(50)  NOT NULL,
			status       VARCHAR(20)  NOT NULL,
			created_at   TIMESTAMPTZ  NOT NULL,
			updated_at   TIMESTAMPTZ  NOT NULL
		);
		CREATE INDEX IF NOT EXISTS sales_records_sales_date_idx ON sales_records (sales_date);`

	createEmployeesTable = `
		CREATE TABLE IF NOT EXISTS employees (
			id                 BIGSERIAL PRIMARY KEY,
			employee_number    VARCHAR(20)  NOT NULL,
			name               VARCHAR(50)  NOT NULL,
			ssn                VARCHAR(20)  NOT NULL,
			department         VARCHAR(50)  NOT NULL,
			position           VARCHAR(50)  NOT NULL,
			hire_date          DATE         NOT NULL,
			resignation_date   DATE,
			salary             BIGINT       NOT NULL,
			email              VARCHAR(100) NOT NULL DEFAULT '',
			phone              VARCHAR(20)  NOT NULL DEFAULT '',
			address            VARCHAR(200) NOT NULL DEFAULT '',
			emergency_contact  VARCHAR(20)  NOT NULL DEFAULT '',
			emergency_relation VARCHAR(20)  NOT NULL DEFAULT '',
			status             VARCHAR(20)  NOT NULL,
			created_at         TIMESTAMPTZ  NOT NULL,
			updated_at         TIMESTAMPTZ  NOT NULL
		);
		CREATE UNIQUE INDEX IF NOT EXISTS employees_number_key ON employees (employee_number);
		CREATE UNIQUE INDEX IF NOT EXISTS employees_email_key ON employees (email) WHERE email <> '';`
)

// EnsureSchema crea las tablas e índices si no existen. Es idempotente: se
// ejecuta en cada arranque antes de aceptar tráfico.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range []string{createUsersTable, createSalesTable, createEmployeesTable} {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}
