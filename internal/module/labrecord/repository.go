package labrecord

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/pkg"
)

// Allowed fields for ordering search results.
var allowedOrderFields = []string{"id", "type_name", "display_name", "primary_value", "report_date", "created_at", "updated_at"}

// labRecordRepository implements domain.LabRecordRepository using GORM.
type labRecordRepository struct {
	db *gorm.DB
}

// NewRepository creates a LabRecordRepository backed by the given database.
func NewRepository(db *gorm.DB) domain.LabRecordRepository {
	return &labRecordRepository{db: db}
}

// Create inserts a new lab record.
func (r *labRecordRepository) Create(ctx context.Context, model domain.LabRecordDomainModel) (*domain.LabRecord, error) {
	record := domain.LabRecord{
		PatientUserID:  model.PatientUserID,
		SecondaryValue: model.SecondaryValue,
		ReportDate:     model.ReportDate,
		RecordedAt:     model.RecordedAt,
	}
	if model.TypeName != nil {
		record.TypeName = *model.TypeName
	}
	if model.DisplayName != nil {
		record.DisplayName = *model.DisplayName
	}
	if model.PrimaryValue != nil {
		record.PrimaryValue = *model.PrimaryValue
	}
	if model.Unit != nil {
		record.Unit = *model.Unit
	}

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, mapError(err)
	}
	return &record, nil
}

// GetByID retrieves a lab record by its primary key.
func (r *labRecordRepository) GetByID(ctx context.Context, id string) (*domain.LabRecord, error) {
	var record domain.LabRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &record, nil
}

// Search returns lab records matching the filters, paginated. DisplayName
// matches by substring.
func (r *labRecordRepository) Search(ctx context.Context, filters domain.LabRecordSearchFilters) (*domain.SearchResults[domain.LabRecord], error) {
	base := r.db.WithContext(ctx).Model(&domain.LabRecord{}).Scopes(
		pkg.Exact("patient_user_id", filters.PatientUserID),
		pkg.Exact("type_name", filters.TypeName),
		pkg.Contains("display_name", filters.DisplayName),
		pkg.Range("primary_value", filters.MinPrimaryValue, filters.MaxPrimaryValue),
		pkg.Range("created_at", filters.CreatedDateFrom, filters.CreatedDateTo),
	)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	column, direction := pkg.ResolveOrder(filters.BaseSearchFilters, allowedOrderFields, "created_at")

	var records []domain.LabRecord
	if err := base.Scopes(
		pkg.Order(column, direction),
		pkg.Paginate(filters.BaseSearchFilters),
	).Find(&records).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewSearchResults(records, total, filters.BaseSearchFilters, column), nil
}

// Update loads the record, applies only the provided fields, and writes the
// changed columns in a single UPDATE.
func (r *labRecordRepository) Update(ctx context.Context, id string, model domain.LabRecordDomainModel) (*domain.LabRecord, error) {
	record, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if model.TypeName != nil {
		updates["type_name"] = *model.TypeName
	}
	if model.DisplayName != nil {
		updates["display_name"] = *model.DisplayName
	}
	if model.PrimaryValue != nil {
		updates["primary_value"] = *model.PrimaryValue
	}
	if model.SecondaryValue != nil {
		updates["secondary_value"] = *model.SecondaryValue
	}
	if model.Unit != nil {
		updates["unit"] = *model.Unit
	}
	if model.ReportDate != nil {
		updates["report_date"] = *model.ReportDate
	}
	if model.RecordedAt != nil {
		updates["recorded_at"] = *model.RecordedAt
	}
	if len(updates) == 0 {
		return record, nil
	}

	if err := r.db.WithContext(ctx).Model(record).Updates(updates).Error; err != nil {
		return nil, mapError(err)
	}
	return record, nil
}

// Delete removes a lab record by id.
func (r *labRecordRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.LabRecord{}, "id = ?", id)
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
