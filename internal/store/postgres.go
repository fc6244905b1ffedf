package store

import (
	"context"

	"github.com/jonathan/jobfit/internal/db"
)

// Postgres adapts the kv_records table to KV.
type Postgres struct {
	db *db.DB
}

// OpenPostgres connects to databaseURL and ensures the records table exists.
func OpenPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	conn, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return &Postgres{db: conn}, nil
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	rec, err := p.db.GetRecord(ctx, key)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec.Value, nil
}

func (p *Postgres) Put(ctx context.Context, key string, value []byte) error {
	return p.db.PutRecord(ctx, key, value)
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	return p.db.DeleteRecord(ctx, key)
}

func (p *Postgres) Keys(ctx context.Context, prefix string) ([]string, error) {
	return p.db.ListKeys(ctx, prefix)
}

func (p *Postgres) Close() error {
	p.db.Close()
	return nil
}
