package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/withme-travel/withme/internal/models"
)

// DestinationServiceInterface defines the contract for destination lookups.
type DestinationServiceInterface interface {
	List(ctx context.Context, limit int) ([]*models.Destination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Destination, error)
	GetBySlug(ctx context.Context, slug string) (*models.Destination, error)
	Lookup(ctx context.Context, ref string) (*models.Destination, error)
}

// TemplateServiceInterface defines the contract for itinerary template reads.
type TemplateServiceInterface interface {
	ItemsForDestination(ctx context.Context, destinationID uuid.UUID) ([]models.ItineraryItem, error)
	ItemsForTemplate(ctx context.Context, destinationID, templateID uuid.UUID) ([]models.ItineraryItem, error)
}

// IdeaServiceInterface defines the contract for activity idea operations used by handlers.
type IdeaServiceInterface interface {
	Generate(ctx context.Context, params GenerateParams) (*IdeaBatch, error)
	Preview(ctx context.Context, params PreviewParams) (*IdeaBatch, error)
	Keywords(ctx context.Context, destinationID uuid.UUID) ([]string, error)
	KeywordsFor(ctx context.Context, dest *models.Destination) []string
	ListSaved(ctx context.Context, destinationID uuid.UUID) ([]*models.ActivityIdea, error)
	DeleteSaved(ctx context.Context, id uuid.UUID) error
}

var (
	_ DestinationServiceInterface = (*DestinationService)(nil)
	_ TemplateServiceInterface    = (*TemplateService)(nil)
	_ IdeaServiceInterface        = (*IdeaService)(nil)
	_ DBConn                      = (*PoolAdapter)(nil)
	_ KeywordStore                = (*redis.Client)(nil)
)
