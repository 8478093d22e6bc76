package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"growcore.backend/internal/domain/entities"
	"growcore.backend/internal/domain/repositories"
)

const recentItemLimit = 5

// DashboardUsecase aggregates a user's activity for the dashboard view
type DashboardUsecase struct {
	appRepo        repositories.ApplicationRepository
	userAssessRepo repositories.UserAssessmentRepository
	certRepo       repositories.CertificationRepository
	notifRepo      repositories.NotificationRepository
	sessionRepo    repositories.WorkSessionRepository
}

// NewDashboardUsecase creates a new dashboard usecase
func NewDashboardUsecase(
	appRepo repositories.ApplicationRepository,
	userAssessRepo repositories.UserAssessmentRepository,
	certRepo repositories.CertificationRepository,
	notifRepo repositories.NotificationRepository,
	sessionRepo repositories.WorkSessionRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		appRepo:        appRepo,
		userAssessRepo: userAssessRepo,
		certRepo:       certRepo,
		notifRepo:      notifRepo,
		sessionRepo:    sessionRepo,
	}
}

// Summary builds the dashboard aggregates for a user
func (u *DashboardUsecase) Summary(ctx context.Context, userID uuid.UUID) (*entities.DashboardSummary, error) {
	summary := &entities.DashboardSummary{
		TotalHoursWorked: decimal.Zero,
		AverageScore:     decimal.Zero,
	}

	apps, err := u.appRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary.TotalApplications = int64(len(apps))
	for _, app := range apps {
		switch app.Status {
		case entities.ApplicationStatusAccepted:
			summary.AcceptedApplications++
		case entities.ApplicationStatusCompleted:
			summary.CompletedProjects++
		}
	}

	now := time.Now()
	hours, err := u.sessionRepo.TotalHoursBetween(ctx, userID, now.AddDate(0, 0, -30), now)
	if err != nil {
		return nil, err
	}
	summary.TotalHoursWorked = hours

	assessments, err := u.userAssessRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(assessments) > 0 {
		sum := decimal.Zero
		for _, a := range assessments {
			sum = sum.Add(a.Score)
		}
		summary.AverageScore = sum.Div(decimal.NewFromInt(int64(len(assessments)))).Round(2)
	}

	certs, err := u.certRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(certs) > recentItemLimit {
		certs = certs[:recentItemLimit]
	}
	summary.RecentCertifications = certs

	notifs, err := u.notifRepo.ListByUser(ctx, userID, recentItemLimit, 0)
	if err != nil {
		return nil, err
	}
	summary.RecentNotifications = notifs

	return summary, nil
}
