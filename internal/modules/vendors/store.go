package vendors

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is a vendor directory backed by PostgreSQL.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Lookup(ctx context.Context, sellerID string) (Vendor, error) {
	const q = `
		SELECT name, COALESCE(address, ''), latitude, longitude
		FROM vendors
		WHERE id = $1`

	v := Vendor{ID: sellerID}
	err := s.db.QueryRow(ctx, q, sellerID).
		Scan(&v.Name, &v.Address, &v.Location.Lat, &v.Location.Lng)
	if errors.Is(err, pgx.ErrNoRows) {
		return Vendor{}, ErrNotFound
	}
	if err != nil {
		return Vendor{}, fmt.Errorf("lookup vendor %s: %w", sellerID, err)
	}
	return v, nil
}
