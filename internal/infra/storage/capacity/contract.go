package capacity

import (
	"context"
	"database/sql"
)

// DBExecutor соединение с БД, через которое репозиторий выполняет запросы
// Ему удовлетворяют *sql.DB и активная транзакция, подхваченная из контекста
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
