package ports

import "context"

// ReportCounts is the per-collection document tally produced by a rebuild.
type ReportCounts struct {
	Users        int64 `json:"users"`
	Hospitals    int64 `json:"hospitals"`
	Appointments int64 `json:"appointments"`
	Requests     int64 `json:"requests"`
	BloodUnits   int64 `json:"blood_units"`
}

// ReportsRepository counts the documents backing each report.
type ReportsRepository interface {
	Counts(ctx context.Context) (*ReportCounts, error)
}

// AdminService defines administrative maintenance operations.
type AdminService interface {
	RebuildReports(ctx context.Context) (*ReportCounts, error)
}
