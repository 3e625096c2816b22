package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/solriso/reservation-service/models"
)

// Store is the Postgres-backed reservation store. gorm's connection pool is
// safe for concurrent handlers; no extra locking is layered on top.
type Store struct {
	db *gorm.DB
}

func Open(dsn string) (*Store, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := gdb.AutoMigrate(&models.Reservation{}); err != nil {
		return nil, fmt.Errorf("migrate reservations: %w", err)
	}
	return &Store{db: gdb}, nil
}

func (s *Store) CreateReservation(ctx context.Context, r *models.Reservation) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}
	return nil
}

// ListReservations returns records in insertion order, filtered by the pure
// predicate. The predicate, not a translated WHERE clause, is the single
// source of filter semantics.
func (s *Store) ListReservations(ctx context.Context, f models.Filter) ([]models.Reservation, error) {
	var all []models.Reservation
	if err := s.db.WithContext(ctx).Order("created_at, id").Find(&all).Error; err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	matched := make([]models.Reservation, 0, len(all))
	for _, r := range all {
		if f.Matches(r) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (s *Store) GetReservation(ctx context.Context, id string) (*models.Reservation, error) {
	var r models.Reservation
	err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get reservation %s: %w", id, err)
	}
	return &r, nil
}

// DeleteReservation removes the record for good; there is no soft delete
// and no undo.
func (s *Store) DeleteReservation(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Reservation{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete reservation %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
