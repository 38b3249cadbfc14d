package output

import (
	"context"
	"fmt"

	"github.com/chrisdamba/foodataseed/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSink loads the dataset straight into a database, bypassing the
// file-and-import round trip. All tables go in a single transaction, in
// import order, so a constraint failure leaves the database untouched.
type PostgresSink struct {
	pool *pgxpool.Pool
}

func NewPostgresSink(config *models.DatabaseConfig) (*PostgresSink, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode,
	)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return &PostgresSink{pool: pool}, nil
}

func (p *PostgresSink) WriteDataset(ds *models.Dataset) error {
	ctx := context.Background()

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, table := range TablesInImportOrder(ds) {
		if len(table.Rows) == 0 {
			continue
		}
		if _, err := tx.Exec(ctx, BuildInsert(table)); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table.Name, err)
		}
	}

	return tx.Commit(ctx)
}

func (p *PostgresSink) Close() error {
	p.pool.Close()
	return nil
}
