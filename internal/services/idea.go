package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/withme-travel/withme/internal/ideas"
	"github.com/withme-travel/withme/internal/logging"
	"github.com/withme-travel/withme/internal/metrics"
	"github.com/withme-travel/withme/internal/models"
)

// IdeaConfig bounds generation requests.
type IdeaConfig struct {
	DefaultCount int
	MaxCount     int
	MaxKeywords  int
}

var DefaultIdeaConfig = IdeaConfig{
	DefaultCount: ideas.DefaultIdeaCount,
	MaxCount:     20,
	MaxKeywords:  ideas.DefaultMaxKeywords,
}

// GenerateParams selects the destination by DestinationID, or by Destination
// when the caller has already loaded it.
type GenerateParams struct {
	DestinationID uuid.UUID
	Destination   *models.Destination
	TemplateID    *uuid.UUID
	Count         int
	Save          bool
}

type PreviewParams struct {
	DestinationName string
	Description     string
	Items           []ideas.TemplateItem
	Count           int
}

// IdeaBatch is the outcome of one generation request. Saved is only set when
// the ideas were persisted.
type IdeaBatch struct {
	Destination *models.Destination    `json:"destination,omitempty"`
	Keywords    []string               `json:"keywords"`
	Ideas       []ideas.Idea           `json:"ideas"`
	Saved       []*models.ActivityIdea `json:"saved,omitempty"`
}

type IdeaService struct {
	db           DBConn
	destinations DestinationServiceInterface
	templates    TemplateServiceInterface
	cache        *KeywordCache
	generator    *ideas.Generator
	cfg          IdeaConfig
	logger       *logging.Logger
}

func NewIdeaService(db DBConn, destinations DestinationServiceInterface, templates TemplateServiceInterface, cache *KeywordCache, cfg IdeaConfig, logger *logging.Logger) *IdeaService {
	if cfg.MaxCount <= 0 {
		cfg.MaxCount = DefaultIdeaConfig.MaxCount
	}
	if cfg.DefaultCount <= 0 {
		cfg.DefaultCount = min(DefaultIdeaConfig.DefaultCount, cfg.MaxCount)
	}
	if cfg.MaxKeywords <= 0 {
		cfg.MaxKeywords = DefaultIdeaConfig.MaxKeywords
	}
	if logger == nil {
		logger = logging.Default
	}
	return &IdeaService{
		db:           db,
		destinations: destinations,
		templates:    templates,
		cache:        cache,
		generator:    ideas.NewGenerator(nil),
		cfg:          cfg,
		logger:       logger,
	}
}

// WithGenerator replaces the generator, e.g. with a seeded one.
func (s *IdeaService) WithGenerator(g *ideas.Generator) *IdeaService {
	s.generator = g
	return s
}

func (s *IdeaService) resolveCount(count int) (int, error) {
	if count == 0 {
		return s.cfg.DefaultCount, nil
	}
	if count < 1 || count > s.cfg.MaxCount {
		return 0, fmt.Errorf("%w: must be between 1 and %d", ErrInvalidCount, s.cfg.MaxCount)
	}
	return count, nil
}

// extractKeywords memoizes extraction for stored destination descriptions.
// Caller-supplied text goes straight to ideas.ExtractKeywords.
func (s *IdeaService) extractKeywords(ctx context.Context, text string) []string {
	if keywords, ok := s.cache.Get(ctx, text, s.cfg.MaxKeywords); ok {
		return keywords
	}
	keywords := ideas.ExtractKeywords(text, s.cfg.MaxKeywords)
	s.cache.Set(ctx, text, s.cfg.MaxKeywords, keywords)
	return keywords
}

// Generate builds ideas for a stored destination, scored against its
// itinerary templates, and optionally saves them.
func (s *IdeaService) Generate(ctx context.Context, params GenerateParams) (*IdeaBatch, error) {
	count, err := s.resolveCount(params.Count)
	if err != nil {
		return nil, err
	}
	start := time.Now()

	dest := params.Destination
	if dest == nil {
		dest, err = s.destinations.GetByID(ctx, params.DestinationID)
		if err != nil {
			return nil, err
		}
	}

	var items []models.ItineraryItem
	if params.TemplateID != nil {
		items, err = s.templates.ItemsForTemplate(ctx, dest.ID, *params.TemplateID)
	} else {
		items, err = s.templates.ItemsForDestination(ctx, dest.ID)
	}
	if err != nil {
		return nil, err
	}

	keywords := s.extractKeywords(ctx, dest.Description)
	batch := &IdeaBatch{
		Destination: dest,
		Keywords:    keywords,
		Ideas:       s.generator.GenerateIdeas(dest.Name, keywords, models.TemplateItems(items), count),
	}

	if params.Save {
		saved, err := s.save(ctx, dest.ID, batch.Ideas)
		if err != nil {
			return nil, err
		}
		batch.Saved = saved
	}

	s.record(batch.Ideas, start)
	s.logger.Info("Generated activity ideas", map[string]interface{}{
		"destination_id": dest.ID.String(),
		"count":          len(batch.Ideas),
		"template_items": len(items),
		"saved":          params.Save,
	})
	return batch, nil
}

// Preview runs the generator on caller-supplied text without touching the
// database or the keyword cache.
func (s *IdeaService) Preview(ctx context.Context, params PreviewParams) (*IdeaBatch, error) {
	if strings.TrimSpace(params.DestinationName) == "" && strings.TrimSpace(params.Description) == "" {
		return nil, ErrEmptyDescription
	}
	count, err := s.resolveCount(params.Count)
	if err != nil {
		return nil, err
	}
	start := time.Now()

	keywords := ideas.ExtractKeywords(params.Description, s.cfg.MaxKeywords)
	batch := &IdeaBatch{
		Keywords: keywords,
		Ideas:    s.generator.GenerateIdeas(params.DestinationName, keywords, params.Items, count),
	}
	s.record(batch.Ideas, start)
	return batch, nil
}

func (s *IdeaService) Keywords(ctx context.Context, destinationID uuid.UUID) ([]string, error) {
	dest, err := s.destinations.GetByID(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	return s.KeywordsFor(ctx, dest), nil
}

// KeywordsFor is Keywords for a destination the caller has already loaded.
func (s *IdeaService) KeywordsFor(ctx context.Context, dest *models.Destination) []string {
	return s.extractKeywords(ctx, dest.Description)
}

func (s *IdeaService) record(generated []ideas.Idea, start time.Time) {
	metrics.ObserveGeneration(time.Since(start))
	for _, idea := range generated {
		metrics.RecordIdeasGenerated(string(idea.Category), 1)
	}
}

func (s *IdeaService) save(ctx context.Context, destinationID uuid.UUID, generated []ideas.Idea) ([]*models.ActivityIdea, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	saved := make([]*models.ActivityIdea, 0, len(generated))
	for _, idea := range generated {
		a := models.NewActivityIdea(destinationID, idea)
		err := tx.QueryRow(ctx,
			`INSERT INTO activity_ideas (id, destination_id, title, description, category, activity_type, duration_hours, budget_category, relevance_score)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 RETURNING created_at`,
			a.ID, a.DestinationID, a.Title, a.Description, string(a.Category), string(a.ActivityType),
			a.DurationHours, string(a.BudgetCategory), a.RelevanceScore,
		).Scan(&a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("saving activity idea: %w", err)
		}
		saved = append(saved, a)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}
	return saved, nil
}

// ListSaved returns a destination's saved ideas, most relevant first.
func (s *IdeaService) ListSaved(ctx context.Context, destinationID uuid.UUID) ([]*models.ActivityIdea, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, destination_id, title, description, category, activity_type,
		        duration_hours, budget_category, relevance_score, created_at
		 FROM activity_ideas
		 WHERE destination_id = $1
		 ORDER BY relevance_score DESC, created_at DESC`,
		destinationID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing activity ideas: %w", err)
	}
	defer rows.Close()

	saved := []*models.ActivityIdea{}
	for rows.Next() {
		a := &models.ActivityIdea{}
		var category, activityType, budget string
		if err := rows.Scan(&a.ID, &a.DestinationID, &a.Title, &a.Description, &category, &activityType,
			&a.DurationHours, &budget, &a.RelevanceScore, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning activity idea: %w", err)
		}
		a.Category = ideas.Category(category)
		a.ActivityType = ideas.ActivityType(activityType)
		a.BudgetCategory = ideas.BudgetCategory(budget)
		saved = append(saved, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity ideas: %w", err)
	}
	return saved, nil
}

func (s *IdeaService) DeleteSaved(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.Exec(ctx, `DELETE FROM activity_ideas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting activity idea: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrIdeaNotFound
	}
	return nil
}
