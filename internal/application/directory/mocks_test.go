package directory

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

// MockOTPRepository is a mock implementation of directory.OTPRepository
type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) FindActive(ctx context.Context, userID uuid.UUID, purpose directory.OTPPurpose, code string) (*directory.OTP, error) {
	args := m.Called(ctx, userID, purpose, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.OTP), args.Error(1)
}

func (m *MockOTPRepository) LatestForUser(ctx context.Context, userID uuid.UUID, purpose directory.OTPPurpose) (*directory.OTP, error) {
	args := m.Called(ctx, userID, purpose)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.OTP), args.Error(1)
}

func (m *MockOTPRepository) Save(ctx context.Context, otp *directory.OTP) error {
	args := m.Called(ctx, otp)
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

// staticLocator returns a fixed tuple for any coordinates
type staticLocator struct {
	attrs directory.VillageAttrs
	err   error
}

func (l *staticLocator) Locate(ctx context.Context, lat, lon float64) (directory.VillageAttrs, error) {
	if l.err != nil {
		return directory.VillageAttrs{}, l.err
	}
	return l.attrs, nil
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
