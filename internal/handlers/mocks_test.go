package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/withme-travel/withme/internal/models"
	"github.com/withme-travel/withme/internal/services"
)

type mockDestinationService struct {
	ListFunc      func(ctx context.Context, limit int) ([]*models.Destination, error)
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*models.Destination, error)
	GetBySlugFunc func(ctx context.Context, slug string) (*models.Destination, error)
	LookupFunc    func(ctx context.Context, ref string) (*models.Destination, error)
}

func (m *mockDestinationService) List(ctx context.Context, limit int) ([]*models.Destination, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit)
	}
	return []*models.Destination{}, nil
}

func (m *mockDestinationService) GetByID(ctx context.Context, id uuid.UUID) (*models.Destination, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, services.ErrDestinationNotFound
}

func (m *mockDestinationService) GetBySlug(ctx context.Context, slug string) (*models.Destination, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, services.ErrDestinationNotFound
}

func (m *mockDestinationService) Lookup(ctx context.Context, ref string) (*models.Destination, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, ref)
	}
	return nil, services.ErrDestinationNotFound
}

type mockIdeaService struct {
	GenerateFunc    func(ctx context.Context, params services.GenerateParams) (*services.IdeaBatch, error)
	PreviewFunc     func(ctx context.Context, params services.PreviewParams) (*services.IdeaBatch, error)
	KeywordsFunc    func(ctx context.Context, destinationID uuid.UUID) ([]string, error)
	KeywordsForFunc func(ctx context.Context, dest *models.Destination) []string
	ListSavedFunc   func(ctx context.Context, destinationID uuid.UUID) ([]*models.ActivityIdea, error)
	DeleteSavedFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *mockIdeaService) Generate(ctx context.Context, params services.GenerateParams) (*services.IdeaBatch, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, params)
	}
	return &services.IdeaBatch{}, nil
}

func (m *mockIdeaService) Preview(ctx context.Context, params services.PreviewParams) (*services.IdeaBatch, error) {
	if m.PreviewFunc != nil {
		return m.PreviewFunc(ctx, params)
	}
	return &services.IdeaBatch{}, nil
}

func (m *mockIdeaService) Keywords(ctx context.Context, destinationID uuid.UUID) ([]string, error) {
	if m.KeywordsFunc != nil {
		return m.KeywordsFunc(ctx, destinationID)
	}
	return []string{}, nil
}

func (m *mockIdeaService) KeywordsFor(ctx context.Context, dest *models.Destination) []string {
	if m.KeywordsForFunc != nil {
		return m.KeywordsForFunc(ctx, dest)
	}
	return []string{}
}

func (m *mockIdeaService) ListSaved(ctx context.Context, destinationID uuid.UUID) ([]*models.ActivityIdea, error) {
	if m.ListSavedFunc != nil {
		return m.ListSavedFunc(ctx, destinationID)
	}
	return []*models.ActivityIdea{}, nil
}

func (m *mockIdeaService) DeleteSaved(ctx context.Context, id uuid.UUID) error {
	if m.DeleteSavedFunc != nil {
		return m.DeleteSavedFunc(ctx, id)
	}
	return nil
}

func parisDestination() *models.Destination {
	return &models.Destination{
		ID:          uuid.MustParse("6f1c2a1e-3d1b-4a63-9a53-0a3c5e1d7b21"),
		Name:        "Paris",
		Slug:        "paris",
		Country:     "France",
		Description: "Museums, historic architecture and cafe culture.",
	}
}

func lookupParis(ctx context.Context, ref string) (*models.Destination, error) {
	d := parisDestination()
	if ref == d.Slug || ref == d.ID.String() {
		return d, nil
	}
	return nil, services.ErrDestinationNotFound
}
