package entities

import "github.com/shopspring/decimal"

// DashboardSummary aggregates a user's activity for the dashboard view
type DashboardSummary struct {
	TotalApplications    int64           `json:"totalApplications"`
	AcceptedApplications int64           `json:"acceptedApplications"`
	CompletedProjects    int64           `json:"completedProjects"`
	TotalHoursWorked     decimal.Decimal `json:"totalHoursWorked"`
	AverageScore         decimal.Decimal `json:"averageScore"`
	RecentCertifications []*Certification `json:"recentCertifications"`
	RecentNotifications  []*Notification  `json:"recentNotifications"`
}
