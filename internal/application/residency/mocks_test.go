package residency

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Manzp111/smartville/internal/application/notification"
	"github.com/Manzp111/smartville/internal/domain/directory"
	"github.com/Manzp111/smartville/internal/domain/policy"
	"github.com/Manzp111/smartville/internal/domain/residency"
	"github.com/Manzp111/smartville/internal/domain/shared"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockVillageRepository is a mock implementation of directory.VillageRepository
type MockVillageRepository struct {
	mock.Mock
}

func (m *MockVillageRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Village, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Village), args.Error(1)
}

func (m *MockVillageRepository) FindByAttrs(ctx context.Context, attrs directory.VillageAttrs) (*directory.Village, error) {
	args := m.Called(ctx, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Village), args.Error(1)
}

func (m *MockVillageRepository) FindByLeader(ctx context.Context, leaderID uuid.UUID) (*directory.Village, error) {
	args := m.Called(ctx, leaderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Village), args.Error(1)
}

func (m *MockVillageRepository) ListProvinces(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockVillageRepository) ListDistricts(ctx context.Context, province string) ([]string, error) {
	args := m.Called(ctx, province)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockVillageRepository) ListSectors(ctx context.Context, province, district string) ([]string, error) {
	args := m.Called(ctx, province, district)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockVillageRepository) ListCells(ctx context.Context, province, district, sector string) ([]string, error) {
	args := m.Called(ctx, province, district, sector)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockVillageRepository) ListVillages(ctx context.Context, province, district, sector, cell string) ([]directory.Village, error) {
	args := m.Called(ctx, province, district, sector, cell)
	return args.Get(0).([]directory.Village), args.Error(1)
}

func (m *MockVillageRepository) Save(ctx context.Context, village *directory.Village) error {
	args := m.Called(ctx, village)
	return args.Error(0)
}

// MockPersonRepository is a mock implementation of directory.PersonRepository
type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Person), args.Error(1)
}

func (m *MockPersonRepository) FindByNationalID(ctx context.Context, nationalID int64) (*directory.Person, error) {
	args := m.Called(ctx, nationalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Person), args.Error(1)
}

func (m *MockPersonRepository) Save(ctx context.Context, person *directory.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of directory.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*directory.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.User), args.Error(1)
}

func (m *MockUserRepository) FindByPerson(ctx context.Context, personID uuid.UUID) (*directory.User, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.User), args.Error(1)
}

func (m *MockUserRepository) FindLeaders(ctx context.Context) ([]directory.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]directory.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *directory.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// =============================================================================
// In-memory residency store
// =============================================================================

// memResidencyRepo is an in-memory residency.Repository that enforces
// the single-active-residency index the way the database does, with an
// optional failure hook for transaction tests.
type memResidencyRepo struct {
	mu     sync.Mutex
	rows   map[uuid.UUID]residency.Residency
	failOn func(r *residency.Residency) error
}

func newMemResidencyRepo() *memResidencyRepo {
	return &memResidencyRepo{rows: make(map[uuid.UUID]residency.Residency)}
}

func (m *memResidencyRepo) FindByID(ctx context.Context, id uuid.UUID) (*residency.Residency, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := row
	return &copied, nil
}

func (m *memResidencyRepo) FindActiveByPerson(ctx context.Context, personID uuid.UUID) (*residency.Residency, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.PersonID == personID && !row.IsDeleted {
			copied := row
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *memResidencyRepo) List(ctx context.Context, scope policy.Predicate, filter shared.Filter) ([]residency.Residency, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []residency.Residency
	for _, row := range m.rows {
		if row.IsDeleted {
			continue
		}
		switch scope.Kind {
		case policy.ScopeAll:
		case policy.ScopeVillage:
			if row.VillageID != scope.VillageID {
				continue
			}
		case policy.ScopeOwner:
			if row.PersonID != scope.PersonID && row.AddedBy != scope.UserID {
				continue
			}
		default:
			continue
		}
		out = append(out, row)
	}
	return out, int64(len(out)), nil
}

func (m *memResidencyRepo) CountActiveByVillage(ctx context.Context, villageID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, row := range m.rows {
		if row.VillageID == villageID && !row.IsDeleted && row.Status == residency.StatusApproved {
			n++
		}
	}
	return n, nil
}

func (m *memResidencyRepo) Save(ctx context.Context, r *residency.Residency) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn != nil {
		if err := m.failOn(r); err != nil {
			return err
		}
	}
	if !r.IsDeleted {
		for id, row := range m.rows {
			if id != r.ID && row.PersonID == r.PersonID && !row.IsDeleted {
				return shared.ErrDuplicateResidency
			}
		}
	}
	m.rows[r.ID] = *r
	return nil
}

// memTxRunner snapshots the store before fn and restores it when fn
// fails, mirroring a database rollback
type memTxRunner struct {
	repo *memResidencyRepo
}

func (t *memTxRunner) InTx(ctx context.Context, fn func(repo residency.Repository) error) error {
	t.repo.mu.Lock()
	snapshot := make(map[uuid.UUID]residency.Residency, len(t.repo.rows))
	for id, row := range t.repo.rows {
		snapshot[id] = row
	}
	t.repo.mu.Unlock()

	if err := fn(t.repo); err != nil {
		t.repo.mu.Lock()
		t.repo.rows = snapshot
		t.repo.mu.Unlock()
		return err
	}
	return nil
}

// =============================================================================
// Capturing dispatcher
// =============================================================================

// capturingDispatcher records dispatched jobs for assertions
type capturingDispatcher struct {
	mu   sync.Mutex
	jobs []notification.Job
}

func (d *capturingDispatcher) Dispatch(ctx context.Context, job notification.Job) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.jobs = append(d.jobs, job)
}

func (d *capturingDispatcher) Jobs() []notification.Job {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]notification.Job, len(d.jobs))
	copy(out, d.jobs)
	return out
}
