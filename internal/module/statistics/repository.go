package statistics

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

// vitalSample is one raw measurement pulled for trend aggregation.
type vitalSample struct {
	At    time.Time
	Value float64
}

// statisticsRepository reads aggregate counts and vital samples for reports.
type statisticsRepository struct {
	db *gorm.DB
}

// NewRepository creates the statistics repository.
func NewRepository(db *gorm.DB) *statisticsRepository {
	return &statisticsRepository{db: db}
}

// UpsertAppDownloads creates or updates the download totals for an app. Only
// the provided counters change.
func (r *statisticsRepository) UpsertAppDownloads(ctx context.Context, model domain.AppDownloadDomainModel) (*domain.AppDownload, error) {
	var row domain.AppDownload
	err := r.db.WithContext(ctx).First(&row, "app_name = ?", model.AppName).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = domain.AppDownload{AppName: model.AppName}
		applyCounts(&row, model)
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, mapError(err)
		}
		return &row, nil
	}
	if err != nil {
		return nil, mapError(err)
	}

	updates := map[string]any{}
	if model.TotalDownloads != nil {
		updates["total_downloads"] = *model.TotalDownloads
	}
	if model.IOSDownloads != nil {
		updates["ios_downloads"] = *model.IOSDownloads
	}
	if model.AndroidDownloads != nil {
		updates["android_downloads"] = *model.AndroidDownloads
	}
	if len(updates) == 0 {
		return &row, nil
	}

	if err := r.db.WithContext(ctx).Model(&row).Updates(updates).Error; err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

// ListAppDownloads returns download totals for all apps.
func (r *statisticsRepository) ListAppDownloads(ctx context.Context) ([]domain.AppDownload, error) {
	var rows []domain.AppDownload
	if err := r.db.WithContext(ctx).Order("app_name ASC").Find(&rows).Error; err != nil {
		return nil, mapError(err)
	}
	return rows, nil
}

// BodyHeightSamples returns the patient's height measurements since the
// cutoff, oldest first. The record date is used when present, falling back to
// the row creation time.
func (r *statisticsRepository) BodyHeightSamples(ctx context.Context, patientUserID string, since time.Time) ([]vitalSample, error) {
	var rows []domain.BodyHeight
	if err := r.db.WithContext(ctx).
		Where("patient_user_id = ? AND created_at >= ?", patientUserID, since).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, mapError(err)
	}

	samples := make([]vitalSample, 0, len(rows))
	for _, row := range rows {
		at := row.CreatedAt
		if row.RecordDate != nil {
			at = *row.RecordDate
		}
		samples = append(samples, vitalSample{At: at, Value: row.BodyHeight})
	}
	return samples, nil
}

// SystolicSamples returns the patient's systolic readings since the cutoff,
// oldest first.
func (r *statisticsRepository) SystolicSamples(ctx context.Context, patientUserID string, since time.Time) ([]vitalSample, error) {
	var rows []domain.BloodPressure
	if err := r.db.WithContext(ctx).
		Where("patient_user_id = ? AND created_at >= ?", patientUserID, since).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, mapError(err)
	}

	samples := make([]vitalSample, 0, len(rows))
	for _, row := range rows {
		at := row.CreatedAt
		if row.RecordDate != nil {
			at = *row.RecordDate
		}
		samples = append(samples, vitalSample{At: at, Value: float64(row.Systolic)})
	}
	return samples, nil
}

func applyCounts(row *domain.AppDownload, model domain.AppDownloadDomainModel) {
	if model.TotalDownloads != nil {
		row.TotalDownloads = *model.TotalDownloads
	}
	if model.IOSDownloads != nil {
		row.IOSDownloads = *model.IOSDownloads
	}
	if model.AndroidDownloads != nil {
		row.AndroidDownloads = *model.AndroidDownloads
	}
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}
