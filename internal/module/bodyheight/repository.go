package bodyheight

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/pkg"
)

// Allowed fields for ordering search results.
var allowedOrderFields = []string{"id", "body_height", "record_date", "created_at", "updated_at"}

// bodyHeightRepository implements domain.BodyHeightRepository using GORM.
type bodyHeightRepository struct {
	db *gorm.DB
}

// NewRepository creates a BodyHeightRepository backed by the given database.
func NewRepository(db *gorm.DB) domain.BodyHeightRepository {
	return &bodyHeightRepository{db: db}
}

// Create inserts a new height measurement.
func (r *bodyHeightRepository) Create(ctx context.Context, model domain.BodyHeightDomainModel) (*domain.BodyHeight, error) {
	record := domain.BodyHeight{
		PatientUserID: model.PatientUserID,
		RecordDate:    model.RecordDate,
	}
	if model.BodyHeight != nil {
		record.BodyHeight = *model.BodyHeight
	}
	if model.Unit != nil {
		record.Unit = *model.Unit
	}

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, mapError(err)
	}
	return &record, nil
}

// GetByID retrieves a height measurement by its primary key.
func (r *bodyHeightRepository) GetByID(ctx context.Context, id string) (*domain.BodyHeight, error) {
	var record domain.BodyHeight
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &record, nil
}

// Search returns height measurements matching the filters, paginated.
func (r *bodyHeightRepository) Search(ctx context.Context, filters domain.BodyHeightSearchFilters) (*domain.SearchResults[domain.BodyHeight], error) {
	base := r.db.WithContext(ctx).Model(&domain.BodyHeight{}).Scopes(
		pkg.Exact("patient_user_id", filters.PatientUserID),
		pkg.Range("body_height", filters.MinValue, filters.MaxValue),
		pkg.Range("created_at", filters.CreatedDateFrom, filters.CreatedDateTo),
	)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	column, direction := pkg.ResolveOrder(filters.BaseSearchFilters, allowedOrderFields, "created_at")

	var records []domain.BodyHeight
	if err := base.Scopes(
		pkg.Order(column, direction),
		pkg.Paginate(filters.BaseSearchFilters),
	).Find(&records).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewSearchResults(records, total, filters.BaseSearchFilters, column), nil
}

// Update loads the measurement, applies only the provided fields, and writes
// the changed columns in a single UPDATE.
func (r *bodyHeightRepository) Update(ctx context.Context, id string, model domain.BodyHeightDomainModel) (*domain.BodyHeight, error) {
	record, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if model.BodyHeight != nil {
		updates["body_height"] = *model.BodyHeight
	}
	if model.Unit != nil {
		updates["unit"] = *model.Unit
	}
	if model.RecordDate != nil {
		updates["record_date"] = *model.RecordDate
	}
	if len(updates) == 0 {
		return record, nil
	}

	if err := r.db.WithContext(ctx).Model(record).Updates(updates).Error; err != nil {
		return nil, mapError(err)
	}
	return record, nil
}

// Delete removes a measurement by id.
func (r *bodyHeightRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.BodyHeight{}, "id = ?", id)
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

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. Not all GORM dialectors translate driver-level errors to
// gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
