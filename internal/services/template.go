package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/withme-travel/withme/internal/models"
)

type TemplateService struct {
	db DBConn
}

func NewTemplateService(db DBConn) *TemplateService {
	return &TemplateService{db: db}
}

// ItemsForDestination returns the items of every itinerary template for the
// destination, grouped by template and ordered by position.
func (s *TemplateService) ItemsForDestination(ctx context.Context, destinationID uuid.UUID) ([]models.ItineraryItem, error) {
	rows, err := s.db.Query(ctx,
		`SELECT i.id, i.template_id, i.position, i.title, i.description
		 FROM itinerary_template_items i
		 JOIN itinerary_templates t ON t.id = i.template_id
		 WHERE t.destination_id = $1
		 ORDER BY t.created_at, t.id, i.position`,
		destinationID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting destination template items: %w", err)
	}
	return scanItems(rows)
}

// ItemsForTemplate returns one template's items. ErrTemplateNotFound is
// returned when the template does not belong to the destination.
func (s *TemplateService) ItemsForTemplate(ctx context.Context, destinationID, templateID uuid.UUID) ([]models.ItineraryItem, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM itinerary_templates WHERE id = $1 AND destination_id = $2)`,
		templateID, destinationID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking template: %w", err)
	}
	if !exists {
		return nil, ErrTemplateNotFound
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, template_id, position, title, description
		 FROM itinerary_template_items
		 WHERE template_id = $1
		 ORDER BY position`,
		templateID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting template items: %w", err)
	}
	return scanItems(rows)
}

func scanItems(rows Rows) ([]models.ItineraryItem, error) {
	defer rows.Close()

	items := []models.ItineraryItem{}
	for rows.Next() {
		var item models.ItineraryItem
		if err := rows.Scan(&item.ID, &item.TemplateID, &item.Position, &item.Title, &item.Description); err != nil {
			return nil, fmt.Errorf("scanning template item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating template items: %w", err)
	}
	return items, nil
}
