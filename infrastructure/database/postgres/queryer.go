package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de Conn que os repositórios usam nas consultas.
// Recebe sempre um contexto para respeitar o timeout por clínica da
// sincronização.
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}
