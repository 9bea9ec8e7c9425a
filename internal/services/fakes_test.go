package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/withme-travel/withme/internal/models"
)

type fakeDB struct {
	QueryFunc    func(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRowFunc func(ctx context.Context, sql string, args ...any) Row
	ExecFunc     func(ctx context.Context, sql string, args ...any) (CommandTag, error)
	BeginFunc    func(ctx context.Context) (Tx, error)
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	if f.QueryFunc == nil {
		return nil, errors.New("unexpected Query")
	}
	return f.QueryFunc(ctx, sql, args...)
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) Row {
	if f.QueryRowFunc == nil {
		return fakeRow{err: errors.New("unexpected QueryRow")}
	}
	return f.QueryRowFunc(ctx, sql, args...)
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	if f.ExecFunc == nil {
		return nil, errors.New("unexpected Exec")
	}
	return f.ExecFunc(ctx, sql, args...)
}

func (f *fakeDB) Begin(ctx context.Context) (Tx, error) {
	if f.BeginFunc == nil {
		return nil, errors.New("unexpected Begin")
	}
	return f.BeginFunc(ctx)
}

type fakeRows struct {
	rows [][]any
	idx  int
	err  error
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return assignRow(r.rows[r.idx-1], dest)
}

func (r *fakeRows) Close() {}

func (r *fakeRows) Err() error { return r.err }

type fakeRow struct {
	values   []any
	err      error
	scanFunc func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.scanFunc != nil {
		return r.scanFunc(dest...)
	}
	if r.err != nil {
		return r.err
	}
	return assignRow(r.values, dest)
}

func assignRow(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: have %d values, %d destinations", len(values), len(dest))
	}
	for i, v := range values {
		target := reflect.ValueOf(dest[i]).Elem()
		target.Set(reflect.ValueOf(v).Convert(target.Type()))
	}
	return nil
}

type fakeCommandTag struct {
	rowsAffected int64
}

func (t fakeCommandTag) RowsAffected() int64 { return t.rowsAffected }

type fakeTx struct {
	QueryRowFunc func(ctx context.Context, sql string, args ...any) Row
	ExecFunc     func(ctx context.Context, sql string, args ...any) (CommandTag, error)
	CommitErr    error

	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	if t.ExecFunc == nil {
		return fakeCommandTag{}, nil
	}
	return t.ExecFunc(ctx, sql, args...)
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) Row {
	if t.QueryRowFunc == nil {
		return fakeRow{values: []any{time.Now()}}
	}
	return t.QueryRowFunc(ctx, sql, args...)
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.CommitErr != nil {
		return t.CommitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

// fakeStore is an in-memory KeywordStore.
type fakeStore struct {
	mu     sync.Mutex
	data   map[string]string
	ttls   map[string]time.Duration
	sets   int
	getErr error
	setErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (s *fakeStore) Get(ctx context.Context, key string) *redis.StringCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return redis.NewStringResult("", s.getErr)
	}
	v, ok := s.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (s *fakeStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets++
	if s.setErr != nil {
		return redis.NewStatusResult("", s.setErr)
	}
	switch v := value.(type) {
	case []byte:
		s.data[key] = string(v)
	case string:
		s.data[key] = v
	default:
		s.data[key] = fmt.Sprint(v)
	}
	s.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

type mockDestinationService struct {
	ListFunc      func(ctx context.Context, limit int) ([]*models.Destination, error)
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*models.Destination, error)
	GetBySlugFunc func(ctx context.Context, slug string) (*models.Destination, error)
	LookupFunc    func(ctx context.Context, ref string) (*models.Destination, error)
}

func (m *mockDestinationService) List(ctx context.Context, limit int) ([]*models.Destination, error) {
	return m.ListFunc(ctx, limit)
}

func (m *mockDestinationService) GetByID(ctx context.Context, id uuid.UUID) (*models.Destination, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockDestinationService) GetBySlug(ctx context.Context, slug string) (*models.Destination, error) {
	return m.GetBySlugFunc(ctx, slug)
}

func (m *mockDestinationService) Lookup(ctx context.Context, ref string) (*models.Destination, error) {
	return m.LookupFunc(ctx, ref)
}

type mockTemplateService struct {
	ItemsForDestinationFunc func(ctx context.Context, destinationID uuid.UUID) ([]models.ItineraryItem, error)
	ItemsForTemplateFunc    func(ctx context.Context, destinationID, templateID uuid.UUID) ([]models.ItineraryItem, error)
}

func (m *mockTemplateService) ItemsForDestination(ctx context.Context, destinationID uuid.UUID) ([]models.ItineraryItem, error) {
	if m.ItemsForDestinationFunc == nil {
		return nil, nil
	}
	return m.ItemsForDestinationFunc(ctx, destinationID)
}

func (m *mockTemplateService) ItemsForTemplate(ctx context.Context, destinationID, templateID uuid.UUID) ([]models.ItineraryItem, error) {
	if m.ItemsForTemplateFunc == nil {
		return nil, nil
	}
	return m.ItemsForTemplateFunc(ctx, destinationID, templateID)
}
