package database

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"estoque/internal/config"
)

// productsTable matches the shape the handlers and repository expect:
// validation is enforced at the boundary, the engine only backstops the
// primary key and the non-null name.
const productsTable = `
CREATE TABLE IF NOT EXISTS products (
    id INT AUTO_INCREMENT PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    price DECIMAL(10,2),
    quantity INT
)`

// EnsureDatabase connects without selecting a schema and creates the
// configured database if it does not exist yet. Idempotent.
func EnsureDatabase(cfg *config.Config) error {
	db, err := sqlx.Connect("mysql", adminDSN(cfg))
	if err != nil {
		return fmt.Errorf("failed to connect to database server: %w", err)
	}
	defer db.Close()

	// Identifiers cannot be bound as parameters; the name comes from
	// configuration, not from request input.
	if _, err := db.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", cfg.DBName)); err != nil {
		return fmt.Errorf("failed to create database %s: %w", cfg.DBName, err)
	}
	return nil
}

// Connect opens the pooled handle against the configured database and
// verifies it with a ping. Connections are opened lazily and reused;
// callers waiting for a free connection queue without a depth limit.
func Connect(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("mysql", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.DBName, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// EnsureSchema creates the products table if it does not exist yet. Idempotent.
func EnsureSchema(db *sqlx.DB) error {
	if _, err := db.Exec(productsTable); err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}
	return nil
}

func adminDSN(cfg *config.Config) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/", cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
}

// clientFoundRows makes UPDATE report matched rows instead of changed rows,
// so updating a row with identical values is not mistaken for not-found.
func dsn(cfg *config.Config) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&clientFoundRows=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
}
