package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"growcore.backend/internal/domain/entities"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockProfileRepo struct{ mock.Mock }

func (m *mockProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserProfile), args.Error(1)
}

func (m *mockProfileRepo) Save(ctx context.Context, profile *entities.UserProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type mockProjectRepo struct{ mock.Mock }

func (m *mockProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *mockProjectRepo) ListByStatus(ctx context.Context, status entities.ProjectStatus, category string, limit, offset int) ([]*entities.Project, int64, error) {
	args := m.Called(ctx, status, category, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Project), args.Get(1).(int64), args.Error(2)
}

type mockAssessmentRepo struct{ mock.Mock }

func (m *mockAssessmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Assessment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Assessment), args.Error(1)
}

func (m *mockAssessmentRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entities.Assessment, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Assessment), args.Error(1)
}

type mockApplicationRepo struct{ mock.Mock }

func (m *mockApplicationRepo) Create(ctx context.Context, app *entities.ProjectApplication) error {
	return m.Called(ctx, app).Error(0)
}

func (m *mockApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.ProjectApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ProjectApplication), args.Error(1)
}

func (m *mockApplicationRepo) GetByUserAndProject(ctx context.Context, userID, projectID uuid.UUID) (*entities.ProjectApplication, error) {
	args := m.Called(ctx, userID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ProjectApplication), args.Error(1)
}

func (m *mockApplicationRepo) ExistsByUserAndProject(ctx context.Context, userID, projectID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, projectID)
	return args.Bool(0), args.Error(1)
}

func (m *mockApplicationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.ProjectApplication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ProjectApplication), args.Error(1)
}

func (m *mockApplicationRepo) ListByUserAndStatus(ctx context.Context, userID uuid.UUID, status entities.ApplicationStatus) ([]*entities.ProjectApplication, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ProjectApplication), args.Error(1)
}

func (m *mockApplicationRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entities.ProjectApplication, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ProjectApplication), args.Error(1)
}

func (m *mockApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entities.ApplicationStatus) error {
	return m.Called(ctx, id, from, to).Error(0)
}

type mockUserAssessmentRepo struct{ mock.Mock }

func (m *mockUserAssessmentRepo) Create(ctx context.Context, ua *entities.UserAssessment) error {
	return m.Called(ctx, ua).Error(0)
}

func (m *mockUserAssessmentRepo) GetByUserAndAssessment(ctx context.Context, userID, assessmentID uuid.UUID) (*entities.UserAssessment, error) {
	args := m.Called(ctx, userID, assessmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserAssessment), args.Error(1)
}

func (m *mockUserAssessmentRepo) ExistsByUserAndAssessment(ctx context.Context, userID, assessmentID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, assessmentID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserAssessmentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.UserAssessment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UserAssessment), args.Error(1)
}

type mockCertificationRepo struct{ mock.Mock }

func (m *mockCertificationRepo) Create(ctx context.Context, cert *entities.Certification) error {
	return m.Called(ctx, cert).Error(0)
}

func (m *mockCertificationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Certification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Certification), args.Error(1)
}

type mockNotificationRepo struct{ mock.Mock }

func (m *mockNotificationRepo) Create(ctx context.Context, n *entities.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *mockNotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Notification), args.Error(1)
}

func (m *mockNotificationRepo) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

type mockWorkSessionRepo struct{ mock.Mock }

func (m *mockWorkSessionRepo) Create(ctx context.Context, ws *entities.WorkSession) error {
	return m.Called(ctx, ws).Error(0)
}

func (m *mockWorkSessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.WorkSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WorkSession), args.Error(1)
}

func (m *mockWorkSessionRepo) Update(ctx context.Context, ws *entities.WorkSession) error {
	return m.Called(ctx, ws).Error(0)
}

func (m *mockWorkSessionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.WorkSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.WorkSession), args.Error(1)
}

func (m *mockWorkSessionRepo) TotalHoursBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// fakeUOW runs the function directly without a transaction
type fakeUOW struct{}

func (f *fakeUOW) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
