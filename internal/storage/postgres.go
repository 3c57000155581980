package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/blocklinks/configs"
	"github.com/thirdweb-dev/blocklinks/internal/common"
)

const createBlockCacheTable = `CREATE TABLE IF NOT EXISTS block_cache (
	block_number NUMERIC(20, 0) PRIMARY KEY,
	payload      BYTEA NOT NULL,
	inserted_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type PostgresConnector struct {
	db  *sql.DB
	cfg *config.PostgresConfig
}

func NewPostgresConnector(cfg *config.PostgresConfig) (*PostgresConnector, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database)

	// Default to "require" for security if SSL mode not specified
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "require"
		log.Info().Msg("No SSL mode specified, defaulting to 'require' for secure connection")
	}
	connStr += fmt.Sprintf(" sslmode=%s", sslMode)

	if cfg.ConnectTimeout > 0 {
		connStr += fmt.Sprintf(" connect_timeout=%d", cfg.ConnectTimeout)
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	if cfg.MaxConnLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.MaxConnLifetime) * time.Second)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	if _, err := db.Exec(createBlockCacheTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create block_cache table: %w", err)
	}

	return &PostgresConnector{
		db:  db,
		cfg: cfg,
	}, nil
}

func (p *PostgresConnector) Has(ctx context.Context, blockNumber uint64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM block_cache WHERE block_number = $1)`

	var exists bool
	err := p.db.QueryRowContext(ctx, query, common.BlockKey(blockNumber)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check block in postgres: %w", err)
	}
	return exists, nil
}

func (p *PostgresConnector) Read(ctx context.Context, blockNumber uint64) (common.RawBlock, error) {
	query := `SELECT payload FROM block_cache WHERE block_number = $1`

	var payload []byte
	err := p.db.QueryRowContext(ctx, query, common.BlockKey(blockNumber)).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{BlockNumber: blockNumber}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read block from postgres: %w", err)
	}
	return common.RawBlock(payload), nil
}

// Write keeps the first payload stored for a block number.
func (p *PostgresConnector) Write(ctx context.Context, blockNumber uint64, payload common.RawBlock) error {
	query := `INSERT INTO block_cache (block_number, payload)
	          VALUES ($1, $2)
	          ON CONFLICT (block_number) DO NOTHING`

	_, err := p.db.ExecContext(ctx, query, common.BlockKey(blockNumber), []byte(payload))
	return err
}

func (p *PostgresConnector) Close() error {
	return p.db.Close()
}
