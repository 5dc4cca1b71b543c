package bloodpressure

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/pkg"
)

// Allowed fields for ordering search results.
var allowedOrderFields = []string{"id", "systolic", "diastolic", "record_date", "created_at", "updated_at"}

// bloodPressureRepository implements domain.BloodPressureRepository using GORM.
type bloodPressureRepository struct {
	db *gorm.DB
}

// NewRepository creates a BloodPressureRepository backed by the given database.
func NewRepository(db *gorm.DB) domain.BloodPressureRepository {
	return &bloodPressureRepository{db: db}
}

// Create inserts a new reading.
func (r *bloodPressureRepository) Create(ctx context.Context, model domain.BloodPressureDomainModel) (*domain.BloodPressure, error) {
	record := domain.BloodPressure{
		PatientUserID:    model.PatientUserID,
		RecordDate:       model.RecordDate,
		RecordedByUserID: model.RecordedByUserID,
	}
	if model.Systolic != nil {
		record.Systolic = *model.Systolic
	}
	if model.Diastolic != nil {
		record.Diastolic = *model.Diastolic
	}
	if model.Unit != nil {
		record.Unit = *model.Unit
	}

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, mapError(err)
	}
	return &record, nil
}

// GetByID retrieves a reading by its primary key.
func (r *bloodPressureRepository) GetByID(ctx context.Context, id string) (*domain.BloodPressure, error) {
	var record domain.BloodPressure
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &record, nil
}

// Search returns readings matching the filters, paginated.
func (r *bloodPressureRepository) Search(ctx context.Context, filters domain.BloodPressureSearchFilters) (*domain.SearchResults[domain.BloodPressure], error) {
	base := r.db.WithContext(ctx).Model(&domain.BloodPressure{}).Scopes(
		pkg.Exact("patient_user_id", filters.PatientUserID),
		pkg.Range("systolic", filters.MinSystolic, filters.MaxSystolic),
		pkg.Range("diastolic", filters.MinDiastolic, filters.MaxDiastolic),
		pkg.Range("created_at", filters.CreatedDateFrom, filters.CreatedDateTo),
	)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	column, direction := pkg.ResolveOrder(filters.BaseSearchFilters, allowedOrderFields, "created_at")

	var records []domain.BloodPressure
	if err := base.Scopes(
		pkg.Order(column, direction),
		pkg.Paginate(filters.BaseSearchFilters),
	).Find(&records).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewSearchResults(records, total, filters.BaseSearchFilters, column), nil
}

// Update loads the reading, applies only the provided fields, and writes the
// changed columns in a single UPDATE.
func (r *bloodPressureRepository) Update(ctx context.Context, id string, model domain.BloodPressureDomainModel) (*domain.BloodPressure, error) {
	record, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if model.Systolic != nil {
		updates["systolic"] = *model.Systolic
	}
	if model.Diastolic != nil {
		updates["diastolic"] = *model.Diastolic
	}
	if model.Unit != nil {
		updates["unit"] = *model.Unit
	}
	if model.RecordDate != nil {
		updates["record_date"] = *model.RecordDate
	}
	if model.RecordedByUserID != nil {
		updates["recorded_by_user_id"] = *model.RecordedByUserID
	}
	if len(updates) == 0 {
		return record, nil
	}

	if err := r.db.WithContext(ctx).Model(record).Updates(updates).Error; err != nil {
		return nil, mapError(err)
	}
	return record, nil
}

// Delete removes a reading by id.
func (r *bloodPressureRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.BloodPressure{}, "id = ?", id)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
