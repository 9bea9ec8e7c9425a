package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/withme-travel/withme/internal/models"
)

const (
	DefaultDestinationLimit = 50
	MaxDestinationLimit     = 200
)

const destinationColumns = `id, name, slug, country, description, created_at`

type DestinationService struct {
	db DBConn
}

func NewDestinationService(db DBConn) *DestinationService {
	return &DestinationService{db: db}
}

// List returns destinations ordered by name. A non-positive limit uses
// DefaultDestinationLimit; larger values are capped at MaxDestinationLimit.
func (s *DestinationService) List(ctx context.Context, limit int) ([]*models.Destination, error) {
	if limit <= 0 {
		limit = DefaultDestinationLimit
	}
	if limit > MaxDestinationLimit {
		limit = MaxDestinationLimit
	}

	rows, err := s.db.Query(ctx,
		`SELECT `+destinationColumns+`
		 FROM destinations
		 ORDER BY name
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing destinations: %w", err)
	}
	defer rows.Close()

	destinations := []*models.Destination{}
	for rows.Next() {
		d := &models.Destination{}
		if err := rows.Scan(&d.ID, &d.Name, &d.Slug, &d.Country, &d.Description, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning destination: %w", err)
		}
		destinations = append(destinations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating destinations: %w", err)
	}

	return destinations, nil
}

func (s *DestinationService) GetByID(ctx context.Context, id uuid.UUID) (*models.Destination, error) {
	return s.getOne(ctx, `WHERE id = $1`, id)
}

func (s *DestinationService) GetBySlug(ctx context.Context, slug string) (*models.Destination, error) {
	return s.getOne(ctx, `WHERE slug = $1`, slug)
}

// Lookup accepts either a destination id or its slug.
func (s *DestinationService) Lookup(ctx context.Context, ref string) (*models.Destination, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return s.GetByID(ctx, id)
	}
	return s.GetBySlug(ctx, ref)
}

func (s *DestinationService) getOne(ctx context.Context, where string, arg any) (*models.Destination, error) {
	d := &models.Destination{}
	err := s.db.QueryRow(ctx,
		`SELECT `+destinationColumns+` FROM destinations `+where,
		arg,
	).Scan(&d.ID, &d.Name, &d.Slug, &d.Country, &d.Description, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDestinationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting destination: %w", err)
	}
	return d, nil
}
