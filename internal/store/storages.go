package store

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection.
type Storages struct {
	UserRepository UserRepository
	BlogRepository BlogRepository

	// DB is exposed so the migration runner can operate on the same
	// connection pool the repositories use.
	DB *DB
}

// NewStorages connects to the configured database and wires all
// repositories on top of the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		BlogRepository: NewBlogRepository(db, log),
		DB:             db,
	}, nil
}
