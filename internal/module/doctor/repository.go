package doctor

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/pkg"
)

// Allowed fields for ordering search results.
var allowedOrderFields = []string{"id", "user_id", "specialty", "created_at", "updated_at"}

// doctorRepository implements domain.DoctorRepository using GORM.
type doctorRepository struct {
	db *gorm.DB
}

// NewRepository creates a DoctorRepository backed by the given database.
func NewRepository(db *gorm.DB) domain.DoctorRepository {
	return &doctorRepository{db: db}
}

// Create inserts a new doctor profile. A second profile for the same user is
// rejected by the unique index on user_id.
func (r *doctorRepository) Create(ctx context.Context, model domain.DoctorDomainModel) (*domain.Doctor, error) {
	doctor := domain.Doctor{UserID: model.UserID}
	applyModel(&doctor, model)

	if err := r.db.WithContext(ctx).Create(&doctor).Error; err != nil {
		return nil, mapError(err)
	}
	return &doctor, nil
}

// GetByUserID retrieves a doctor profile by the owning user's id.
func (r *doctorRepository) GetByUserID(ctx context.Context, userID string) (*domain.Doctor, error) {
	var doctor domain.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, "user_id = ?", userID).Error; err != nil {
		return nil, mapError(err)
	}
	return &doctor, nil
}

// Search returns doctor profiles matching the filters, paginated. Specialty
// matches by substring.
func (r *doctorRepository) Search(ctx context.Context, filters domain.DoctorSearchFilters) (*domain.SearchResults[domain.Doctor], error) {
	base := r.db.WithContext(ctx).Model(&domain.Doctor{}).Scopes(
		pkg.Exact("user_id", filters.UserID),
		pkg.Contains("specialty", filters.Specialty),
		pkg.Range("created_at", filters.CreatedDateFrom, filters.CreatedDateTo),
	)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	column, direction := pkg.ResolveOrder(filters.BaseSearchFilters, allowedOrderFields, "created_at")

	var doctors []domain.Doctor
	if err := base.Scopes(
		pkg.Order(column, direction),
		pkg.Paginate(filters.BaseSearchFilters),
	).Find(&doctors).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewSearchResults(doctors, total, filters.BaseSearchFilters, column), nil
}

// Update loads the profile, applies only the provided fields, and writes the
// changed columns in a single UPDATE.
func (r *doctorRepository) Update(ctx context.Context, userID string, model domain.DoctorDomainModel) (*domain.Doctor, error) {
	doctor, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if model.EhrID != nil {
		updates["ehr_id"] = *model.EhrID
	}
	if model.Specialty != nil {
		updates["specialty"] = *model.Specialty
	}
	if model.Qualification != nil {
		updates["qualification"] = *model.Qualification
	}
	if model.RegistrationNumber != nil {
		updates["registration_number"] = *model.RegistrationNumber
	}
	if model.About != nil {
		updates["about"] = *model.About
	}
	if len(updates) == 0 {
		return doctor, nil
	}

	if err := r.db.WithContext(ctx).Model(doctor).Updates(updates).Error; err != nil {
		return nil, mapError(err)
	}
	return doctor, nil
}

// Delete removes a doctor profile.
func (r *doctorRepository) Delete(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).Delete(&domain.Doctor{}, "user_id = ?", userID)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func applyModel(doctor *domain.Doctor, model domain.DoctorDomainModel) {
	if model.EhrID != nil {
		doctor.EhrID = *model.EhrID
	}
	if model.Specialty != nil {
		doctor.Specialty = *model.Specialty
	}
	if model.Qualification != nil {
		doctor.Qualification = *model.Qualification
	}
	if model.RegistrationNumber != nil {
		doctor.RegistrationNumber = *model.RegistrationNumber
	}
	if model.About != nil {
		doctor.About = *model.About
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
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "doctor profile already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
