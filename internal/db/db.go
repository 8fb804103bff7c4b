package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Database wraps the MariaDB connection pool shared by the video and
// settings repositories.
type Database struct {
	*sql.DB
}

// New opens a MariaDB pool, applies the configured pooling limits and
// verifies connectivity with a ping before handing the pool out.
func New(dsn string, maxOpen, maxIdle int, connMaxLifetime time.Duration) (*Database, error) {
	pool, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open mariadb pool: %w", err)
	}

	pool.SetMaxOpenConns(maxOpen)
	pool.SetMaxIdleConns(maxIdle)
	pool.SetConnMaxLifetime(connMaxLifetime)

	if err := pool.Ping(); err != nil {
		if cErr := pool.Close(); cErr != nil {
			return nil, cErr
		}
		return nil, fmt.Errorf("mariadb unreachable: %w", err)
	}
	return &Database{pool}, nil
}
