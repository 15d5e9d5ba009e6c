package promotion

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/SillyFizy/grow/internal/domain"
)

// memStore is an in-memory submission and plant store. A transaction holds
// the store lock for its whole duration, which gives the same
// one-winner-per-submission behaviour as a row lock, and restores a
// snapshot when the callback fails.
type memStore struct {
	mu sync.Mutex

	families    map[int64]bool
	submissions map[int64]domain.PlantSubmission
	plants      map[int64]domain.Plant
	parts       map[int64][]domain.FlowerPart
	nextID      int64

	// Injected failures.
	createErr     error
	partErr       error
	transitionErr error
}

type memTxKey struct{}

func newMemStore(familyIDs ...int64) *memStore {
	m := &memStore{
		families:    make(map[int64]bool),
		submissions: make(map[int64]domain.PlantSubmission),
		plants:      make(map[int64]domain.Plant),
		parts:       make(map[int64][]domain.FlowerPart),
		nextID:      100,
	}
	for _, id := range familyIDs {
		m.families[id] = true
	}
	return m
}

func (m *memStore) addSubmission(s domain.PlantSubmission) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	s.ID = m.nextID
	if s.Status == "" {
		s.Status = domain.SubmissionPending
	}
	m.submissions[s.ID] = s
	return s.ID
}

func (m *memStore) submission(id int64) domain.PlantSubmission {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submissions[id]
}

func (m *memStore) plantCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.plants)
}

func (m *memStore) plant(id int64) (domain.Plant, []domain.FlowerPart) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.plants[id], m.parts[id]
}

// ---------------------------------------------------------------------------
// txManager
// ---------------------------------------------------------------------------

func (m *memStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	subs := maps.Clone(m.submissions)
	plants := maps.Clone(m.plants)
	parts := make(map[int64][]domain.FlowerPart, len(m.parts))
	for k, v := range m.parts {
		parts[k] = slices.Clone(v)
	}
	next := m.nextID

	if err := fn(context.WithValue(ctx, memTxKey{}, true)); err != nil {
		m.submissions, m.plants, m.parts, m.nextID = subs, plants, parts, next
		return err
	}
	return nil
}

func requireTx(ctx context.Context) {
	if ctx.Value(memTxKey{}) == nil {
		panic("memStore: write outside transaction")
	}
}

// ---------------------------------------------------------------------------
// submissionRepo
// ---------------------------------------------------------------------------

func (m *memStore) GetForUpdate(ctx context.Context, id int64) (*domain.PlantSubmission, error) {
	requireTx(ctx)
	s, ok := m.submissions[id]
	if !ok {
		return nil, fmt.Errorf("plant_submission %d: %w", id, domain.ErrNotFound)
	}
	return &s, nil
}

func (m *memStore) Transition(ctx context.Context, id int64, status domain.SubmissionStatus, note string) error {
	requireTx(ctx)
	if m.transitionErr != nil {
		return m.transitionErr
	}
	s, ok := m.submissions[id]
	if !ok {
		return domain.ErrNotFound
	}
	if !s.Status.CanTransitionTo(status) {
		return domain.ErrInvalidState
	}
	s.Status = status
	s.AdminNotes += note
	m.submissions[id] = s
	return nil
}

func (m *memStore) RejectPending(ctx context.Context, ids []int64, note string) ([]int64, error) {
	requireTx(ctx)
	var rejected []int64
	for _, id := range ids {
		s, ok := m.submissions[id]
		if !ok || !s.IsPending() {
			continue
		}
		s.Status = domain.SubmissionRejected
		s.AdminNotes += note
		m.submissions[id] = s
		rejected = append(rejected, id)
	}
	return rejected, nil
}

// ---------------------------------------------------------------------------
// plantRepo
// ---------------------------------------------------------------------------

func (m *memStore) Create(ctx context.Context, p *domain.Plant) (*domain.Plant, error) {
	requireTx(ctx)
	if m.createErr != nil {
		return nil, m.createErr
	}
	if !m.families[p.FamilyID] {
		return nil, fmt.Errorf("plant_family %d: %w", p.FamilyID, domain.ErrNotFound)
	}
	m.nextID++
	created := *p
	created.ID = m.nextID
	m.plants[created.ID] = created
	return &created, nil
}

func (m *memStore) CreateFlowerPart(ctx context.Context, plantID int64, part domain.FlowerPart) (int64, error) {
	requireTx(ctx)
	if m.partErr != nil {
		return 0, m.partErr
	}
	for _, existing := range m.parts[plantID] {
		if existing.Kind() == part.Kind() {
			return 0, fmt.Errorf("%s: %w", part.Kind(), domain.ErrAlreadyExists)
		}
	}
	m.nextID++
	m.parts[plantID] = append(m.parts[plantID], part)
	return m.nextID, nil
}

func (m *memStore) SetImage(ctx context.Context, id int64, path string) error {
	requireTx(ctx)
	p, ok := m.plants[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.ImagePath = path
	m.plants[id] = p
	return nil
}
