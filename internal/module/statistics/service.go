package statistics

import (
	"context"
	"strings"
	"time"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/charts"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

// Report window defaults and bounds, in months.
const (
	defaultReportMonths = 6
	maxReportMonths     = 24
)

// statisticsService implements domain.StatisticsService.
type statisticsService struct {
	repo     *statisticsRepository
	userRepo domain.UserRepository
	renderer charts.Renderer
}

// NewService creates a StatisticsService.
func NewService(repo *statisticsRepository, userRepo domain.UserRepository, renderer charts.Renderer) domain.StatisticsService {
	return &statisticsService{repo: repo, userRepo: userRepo, renderer: renderer}
}

// UpdateAppDownloads records download totals for a companion app. Totals are
// upserted by app name.
func (s *statisticsService) UpdateAppDownloads(ctx context.Context, model domain.AppDownloadDomainModel) (*domain.AppDownload, error) {
	if strings.TrimSpace(model.AppName) == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "app name is required", nil)
	}
	for _, count := range []*int64{model.TotalDownloads, model.IOSDownloads, model.AndroidDownloads} {
		if count != nil && *count < 0 {
			return nil, domain.NewAppError(domain.CodeValidation, "download counts cannot be negative", nil)
		}
	}
	return s.repo.UpsertAppDownloads(ctx, model)
}

// GetAppDownloads returns download totals for all apps.
func (s *statisticsService) GetAppDownloads(ctx context.Context) ([]domain.AppDownload, error) {
	return s.repo.ListAppDownloads(ctx)
}

// GetUserCounts reports registered user totals broken down by role.
func (s *statisticsService) GetUserCounts(ctx context.Context) (*domain.UserCountStats, error) {
	stats := &domain.UserCountStats{}

	counts := []struct {
		role string
		dst  *int64
	}{
		{domain.RolePatient, &stats.PatientCount},
		{domain.RoleDoctor, &stats.DoctorCount},
		{domain.RoleAdmin, &stats.AdminCount},
	}
	for _, c := range counts {
		n, err := s.userRepo.CountByRole(ctx, c.role)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	stats.TotalUsers = stats.PatientCount + stats.DoctorCount + stats.AdminCount
	return stats, nil
}

// GetBiometricsReport builds the patient's vital trends over the past months,
// with a rendered chart per vital. Months outside [1, 24] fall back to the
// default window.
func (s *statisticsService) GetBiometricsReport(ctx context.Context, patientUserID string, months int) (*domain.BiometricsReport, error) {
	if patientUserID == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "patient user id is required", nil)
	}
	if months <= 0 || months > maxReportMonths {
		months = defaultReportMonths
	}

	now := time.Now().UTC()
	since := now.AddDate(0, -months, 0)

	heights, err := s.repo.BodyHeightSamples(ctx, patientUserID, since)
	if err != nil {
		return nil, err
	}
	systolics, err := s.repo.SystolicSamples(ctx, patientUserID, since)
	if err != nil {
		return nil, err
	}

	report := &domain.BiometricsReport{
		PatientUserID: patientUserID,
		Months:        months,
		GeneratedAt:   now,
		Trends: []domain.VitalTrend{
			s.buildTrend("Body Height", "cm", heights),
			s.buildTrend("Systolic Blood Pressure", "mmHg", systolics),
		},
	}
	return report, nil
}

// buildTrend aggregates samples into a monthly series and summary values.
func (s *statisticsService) buildTrend(name, unit string, samples []vitalSample) domain.VitalTrend {
	trend := domain.VitalTrend{
		Name:   name,
		Unit:   unit,
		Series: monthlySeries(samples),
	}

	if len(samples) > 0 {
		var sum float64
		for _, sample := range samples {
			sum += sample.Value
		}
		trend.Average = sum / float64(len(samples))

		last := samples[len(samples)-1]
		trend.Current = last.Value
		at := last.At
		trend.LastMeasuredDate = &at
	}

	trend.ChartSVG = s.renderer.Render(name, unit, trend.Series)
	return trend
}

// monthlySeries averages samples per calendar month, in chronological order.
// Samples arrive oldest first.
func monthlySeries(samples []vitalSample) []domain.SeriesPoint {
	type bucket struct {
		sum   float64
		count int
		at    time.Time
	}

	var order []string
	buckets := map[string]*bucket{}
	for _, sample := range samples {
		key := sample.At.UTC().Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			monthStart := time.Date(sample.At.UTC().Year(), sample.At.UTC().Month(), 1, 0, 0, 0, 0, time.UTC)
			b = &bucket{at: monthStart}
			buckets[key] = b
			order = append(order, key)
		}
		b.sum += sample.Value
		b.count++
	}

	series := make([]domain.SeriesPoint, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		series = append(series, domain.SeriesPoint{
			Label: b.at.Format("Jan 2006"),
			At:    b.at,
			Value: b.sum / float64(b.count),
		})
	}
	return series
}
