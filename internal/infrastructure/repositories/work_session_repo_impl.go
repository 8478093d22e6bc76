package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"growcore.backend/internal/domain/entities"
	domainerrors "growcore.backend/internal/domain/errors"
	"growcore.backend/internal/infrastructure/models"
)

// WorkSessionRepository implements work session data operations
type WorkSessionRepository struct {
	db *gorm.DB
}

// NewWorkSessionRepository creates a new work session repository
func NewWorkSessionRepository(db *gorm.DB) *WorkSessionRepository {
	return &WorkSessionRepository{db: db}
}

// Create stores a new work session
func (r *WorkSessionRepository) Create(ctx context.Context, ws *entities.WorkSession) error {
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(workSessionToModel(ws)).Error
}

// GetByID gets a work session by ID
func (r *WorkSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.WorkSession, error) {
	var m models.WorkSession
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return workSessionToEntity(&m), nil
}

// Update persists end time and hours worked
func (r *WorkSessionRepository) Update(ctx context.Context, ws *entities.WorkSession) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.WorkSession{}).
		Where("id = ?", ws.ID).
		Updates(map[string]interface{}{
			"end_time":     ws.EndTime,
			"hours_worked": ws.HoursWorked,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByUser lists a user's work sessions, newest first
func (r *WorkSessionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.WorkSession, error) {
	var ms []models.WorkSession
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	sessions := make([]*entities.WorkSession, 0, len(ms))
	for i := range ms {
		sessions = append(sessions, workSessionToEntity(&ms[i]))
	}
	return sessions, nil
}

// TotalHoursBetween sums hours worked by the user over closed sessions that
// started in the window
func (r *WorkSessionRepository) TotalHoursBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	var ms []models.WorkSession
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("user_id = ? AND hours_worked IS NOT NULL AND start_time >= ? AND start_time <= ?", userID, from, to).
		Find(&ms).Error; err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i := range ms {
		if ms[i].HoursWorked != nil {
			total = total.Add(*ms[i].HoursWorked)
		}
	}
	return total, nil
}

func workSessionToModel(ws *entities.WorkSession) *models.WorkSession {
	return &models.WorkSession{
		ID:          ws.ID,
		UserID:      ws.UserID,
		ProjectID:   ws.ProjectID,
		StartTime:   ws.StartTime,
		EndTime:     ws.EndTime,
		HoursWorked: ws.HoursWorked,
		Description: ws.Description,
		CreatedAt:   ws.CreatedAt,
	}
}

func workSessionToEntity(m *models.WorkSession) *entities.WorkSession {
	return &entities.WorkSession{
		ID:          m.ID,
		UserID:      m.UserID,
		ProjectID:   m.ProjectID,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		HoursWorked: m.HoursWorked,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}
