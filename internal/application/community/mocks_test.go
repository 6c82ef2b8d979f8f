package community

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Manzp111/smartville/internal/application/notification"
	"github.com/Manzp111/smartville/internal/domain/community"
	"github.com/Manzp111/smartville/internal/domain/directory"
	"github.com/Manzp111/smartville/internal/domain/policy"
	"github.com/Manzp111/smartville/internal/domain/residency"
	"github.com/Manzp111/smartville/internal/domain/shared"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockEventRepository is a mock implementation of community.EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*community.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context, scope policy.Predicate, filter shared.Filter) ([]community.Event, int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]community.Event), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventRepository) CountByVillage(ctx context.Context, villageID uuid.UUID) (int64, error) {
	args := m.Called(ctx, villageID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventRepository) Save(ctx context.Context, event *community.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventRepository) AddAttendance(ctx context.Context, attendance *community.Attendance) error {
	args := m.Called(ctx, attendance)
	return args.Error(0)
}

func (m *MockEventRepository) CountAttendance(ctx context.Context, eventID uuid.UUID) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

// MockVisitorRepository is a mock implementation of community.VisitorRepository
type MockVisitorRepository struct {
	mock.Mock
}

func (m *MockVisitorRepository) FindByID(ctx context.Context, id uuid.UUID) (*community.Visitor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.Visitor), args.Error(1)
}

func (m *MockVisitorRepository) List(ctx context.Context, scope policy.Predicate, filter shared.Filter) ([]community.Visitor, int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]community.Visitor), args.Get(1).(int64), args.Error(2)
}

func (m *MockVisitorRepository) Save(ctx context.Context, visitor *community.Visitor) error {
	args := m.Called(ctx, visitor)
	return args.Error(0)
}

// MockComplaintRepository is a mock implementation of community.ComplaintRepository
type MockComplaintRepository struct {
	mock.Mock
}

func (m *MockComplaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*community.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) List(ctx context.Context, scope policy.Predicate, filter shared.Filter) ([]community.Complaint, int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]community.Complaint), args.Get(1).(int64), args.Error(2)
}

func (m *MockComplaintRepository) Save(ctx context.Context, complaint *community.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *MockComplaintRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockResidencyRepository is a mock implementation of residency.Repository
type MockResidencyRepository struct {
	mock.Mock
}

func (m *MockResidencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*residency.Residency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*residency.Residency), args.Error(1)
}

func (m *MockResidencyRepository) FindActiveByPerson(ctx context.Context, personID uuid.UUID) (*residency.Residency, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*residency.Residency), args.Error(1)
}

func (m *MockResidencyRepository) List(ctx context.Context, scope policy.Predicate, filter shared.Filter) ([]residency.Residency, int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]residency.Residency), args.Get(1).(int64), args.Error(2)
}

func (m *MockResidencyRepository) CountActiveByVillage(ctx context.Context, villageID uuid.UUID) (int64, error) {
	args := m.Called(ctx, villageID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResidencyRepository) Save(ctx context.Context, r *residency.Residency) error {
	args := m.Called(ctx, r)
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
