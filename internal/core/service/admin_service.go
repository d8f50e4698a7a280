package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lifesource/lifesource-api/internal/core/ports"
)

// AdminService implements administrative maintenance operations.
type AdminService struct {
	reports ports.ReportsRepository
	logger  zerolog.Logger
}

func NewAdminService(reports ports.ReportsRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{reports: reports, logger: logger}
}

// RebuildReports recomputes the per-collection counts.
func (s *AdminService) RebuildReports(ctx context.Context) (*ports.ReportCounts, error) {
	counts, err := s.reports.Counts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to rebuild reports")
		return nil, err
	}

	s.logger.Info().
		Int64("users", counts.Users).
		Int64("hospitals", counts.Hospitals).
		Int64("appointments", counts.Appointments).
		Int64("requests", counts.Requests).
		Int64("blood_units", counts.BloodUnits).
		Msg("reports rebuilt")
	return counts, nil
}
