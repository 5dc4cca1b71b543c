package bloodpressure

import (
	"context"
	"log/slog"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

// bloodPressureService implements domain.BloodPressureService.
type bloodPressureService struct {
	repo        domain.BloodPressureRepository
	eligibility domain.EHREligibility
	forwarder   domain.EHRForwarder
}

// NewService creates a BloodPressureService. eligibility and forwarder may be
// nil when EHR forwarding is disabled.
func NewService(repo domain.BloodPressureRepository, eligibility domain.EHREligibility, forwarder domain.EHRForwarder) domain.BloodPressureService {
	return &bloodPressureService{repo: repo, eligibility: eligibility, forwarder: forwarder}
}

// Create validates and stores a reading, then queues EHR forwarding for
// eligible app registrations.
func (s *bloodPressureService) Create(ctx context.Context, model domain.BloodPressureDomainModel) (*domain.BloodPressure, error) {
	if err := validateReading(model.Systolic, model.Diastolic, true); err != nil {
		return nil, err
	}

	record, err := s.repo.Create(ctx, model)
	if err != nil {
		return nil, err
	}

	s.forward(ctx, record)
	return record, nil
}

// GetByID retrieves a reading by id.
func (s *bloodPressureService) GetByID(ctx context.Context, id string) (*domain.BloodPressure, error) {
	return s.repo.GetByID(ctx, id)
}

// Search returns readings matching the filters.
func (s *bloodPressureService) Search(ctx context.Context, filters domain.BloodPressureSearchFilters) (*domain.SearchResults[domain.BloodPressure], error) {
	return s.repo.Search(ctx, filters)
}

// Update applies the provided fields and re-forwards the updated reading.
func (s *bloodPressureService) Update(ctx context.Context, id string, model domain.BloodPressureDomainModel) (*domain.BloodPressure, error) {
	if err := validateReading(model.Systolic, model.Diastolic, false); err != nil {
		return nil, err
	}

	record, err := s.repo.Update(ctx, id, model)
	if err != nil {
		return nil, err
	}

	s.forward(ctx, record)
	return record, nil
}

// Delete removes a reading by id.
func (s *bloodPressureService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// validateReading checks systolic and diastolic values. On create both are
// required; on update either may be absent.
func validateReading(systolic, diastolic *int, required bool) error {
	if required {
		if systolic == nil || diastolic == nil {
			return domain.NewAppError(domain.CodeValidation, "systolic and diastolic values are required", nil)
		}
	}
	if systolic != nil && *systolic <= 0 {
		return domain.NewAppError(domain.CodeValidation, "systolic must be greater than zero", nil)
	}
	if diastolic != nil && *diastolic <= 0 {
		return domain.NewAppError(domain.CodeValidation, "diastolic must be greater than zero", nil)
	}
	if systolic != nil && diastolic != nil && *diastolic >= *systolic {
		return domain.NewAppError(domain.CodeValidation, "diastolic must be lower than systolic", nil)
	}
	return nil
}

// forward enqueues one EHR record per eligible app registration.
func (s *bloodPressureService) forward(ctx context.Context, record *domain.BloodPressure) {
	if s.eligibility == nil || s.forwarder == nil {
		return
	}

	apps, err := s.eligibility.EligibleAppNames(ctx, record.PatientUserID)
	if err != nil {
		slog.WarnContext(ctx, "EHR eligibility check failed",
			slog.String("patient_user_id", record.PatientUserID),
			slog.Any("error", err),
		)
		return
	}

	diastolic := float64(record.Diastolic)
	for _, app := range apps {
		s.forwarder.Enqueue(domain.EHRRecord{
			PatientUserID:  record.PatientUserID,
			RecordID:       record.ID,
			Type:           domain.EHRRecordBloodPressure,
			PrimaryValue:   float64(record.Systolic),
			SecondaryValue: &diastolic,
			Unit:           record.Unit,
			Name:           "Blood pressure",
			AppName:        app,
		})
	}
}
