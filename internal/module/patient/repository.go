package patient

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/pkg"
)

// Allowed fields for ordering search results.
var allowedOrderFields = []string{"id", "user_id", "city", "country", "created_at", "updated_at"}

// patientRepository implements domain.PatientRepository using GORM.
type patientRepository struct {
	db *gorm.DB
}

// NewRepository creates a PatientRepository backed by the given database.
func NewRepository(db *gorm.DB) domain.PatientRepository {
	return &patientRepository{db: db}
}

// Create inserts a new patient profile. A second profile for the same user is
// rejected by the unique index on user_id.
func (r *patientRepository) Create(ctx context.Context, model domain.PatientDomainModel) (*domain.Patient, error) {
	patient := domain.Patient{UserID: model.UserID}
	applyModel(&patient, model)

	if err := r.db.WithContext(ctx).Create(&patient).Error; err != nil {
		return nil, mapError(err)
	}
	return &patient, nil
}

// GetByUserID retrieves a patient profile by the owning user's id.
func (r *patientRepository) GetByUserID(ctx context.Context, userID string) (*domain.Patient, error) {
	var patient domain.Patient
	if err := r.db.WithContext(ctx).First(&patient, "user_id = ?", userID).Error; err != nil {
		return nil, mapError(err)
	}
	return &patient, nil
}

// Search returns patient profiles matching the filters, paginated. City
// matches by substring.
func (r *patientRepository) Search(ctx context.Context, filters domain.PatientSearchFilters) (*domain.SearchResults[domain.Patient], error) {
	base := r.db.WithContext(ctx).Model(&domain.Patient{}).Scopes(
		pkg.Exact("user_id", filters.UserID),
		pkg.Contains("city", filters.City),
		pkg.Range("created_at", filters.CreatedDateFrom, filters.CreatedDateTo),
	)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	column, direction := pkg.ResolveOrder(filters.BaseSearchFilters, allowedOrderFields, "created_at")

	var patients []domain.Patient
	if err := base.Scopes(
		pkg.Order(column, direction),
		pkg.Paginate(filters.BaseSearchFilters),
	).Find(&patients).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewSearchResults(patients, total, filters.BaseSearchFilters, column), nil
}

// Update loads the profile, applies only the provided fields, and writes the
// changed columns in a single UPDATE.
func (r *patientRepository) Update(ctx context.Context, userID string, model domain.PatientDomainModel) (*domain.Patient, error) {
	patient, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if model.EhrID != nil {
		updates["ehr_id"] = *model.EhrID
	}
	if model.NationalHealthID != nil {
		updates["national_health_id"] = *model.NationalHealthID
	}
	if model.InsuranceProvider != nil {
		updates["insurance_provider"] = *model.InsuranceProvider
	}
	if model.AddressLine != nil {
		updates["address_line"] = *model.AddressLine
	}
	if model.City != nil {
		updates["city"] = *model.City
	}
	if model.Country != nil {
		updates["country"] = *model.Country
	}
	if model.PostalCode != nil {
		updates["postal_code"] = *model.PostalCode
	}
	if len(updates) == 0 {
		return patient, nil
	}

	if err := r.db.WithContext(ctx).Model(patient).Updates(updates).Error; err != nil {
		return nil, mapError(err)
	}
	return patient, nil
}

// Delete removes a patient profile and its app registrations.
func (r *patientRepository) Delete(ctx context.Context, userID string) error {
	return pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		result := tx.Delete(&domain.Patient{}, "user_id = ?", userID)
		if result.Error != nil {
			return mapError(result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		if err := tx.Delete(&domain.PatientAppRegistration{}, "patient_user_id = ?", userID).Error; err != nil {
			return mapError(err)
		}
		return nil
	})
}

// AddAppRegistration records a companion app registration. Registering the
// same app twice is idempotent.
func (r *patientRepository) AddAppRegistration(ctx context.Context, patientUserID, appName string) (*domain.PatientAppRegistration, error) {
	var existing domain.PatientAppRegistration
	err := r.db.WithContext(ctx).
		First(&existing, "patient_user_id = ? AND app_name = ?", patientUserID, appName).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, mapError(err)
	}

	reg := domain.PatientAppRegistration{
		PatientUserID: patientUserID,
		AppName:       appName,
	}
	if err := r.db.WithContext(ctx).Create(&reg).Error; err != nil {
		return nil, mapError(err)
	}
	return &reg, nil
}

// GetAppRegistrations returns the patient's app registrations.
func (r *patientRepository) GetAppRegistrations(ctx context.Context, patientUserID string) ([]domain.PatientAppRegistration, error) {
	var regs []domain.PatientAppRegistration
	if err := r.db.WithContext(ctx).
		Where("patient_user_id = ?", patientUserID).
		Order("created_at ASC").
		Find(&regs).Error; err != nil {
		return nil, mapError(err)
	}
	return regs, nil
}

func applyModel(patient *domain.Patient, model domain.PatientDomainModel) {
	if model.EhrID != nil {
		patient.EhrID = *model.EhrID
	}
	if model.NationalHealthID != nil {
		patient.NationalHealthID = *model.NationalHealthID
	}
	if model.InsuranceProvider != nil {
		patient.InsuranceProvider = *model.InsuranceProvider
	}
	if model.AddressLine != nil {
		patient.AddressLine = *model.AddressLine
	}
	if model.City != nil {
		patient.City = *model.City
	}
	if model.Country != nil {
		patient.Country = *model.Country
	}
	if model.PostalCode != nil {
		patient.PostalCode = *model.PostalCode
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
		return domain.NewAppError(domain.CodeAlreadyExists, "patient profile already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
