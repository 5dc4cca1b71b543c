package labrecord

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

// labRecordService implements domain.LabRecordService.
type labRecordService struct {
	repo        domain.LabRecordRepository
	eligibility domain.EHREligibility
	forwarder   domain.EHRForwarder
}

// NewService creates a LabRecordService. eligibility and forwarder may be nil
// when EHR forwarding is disabled.
func NewService(repo domain.LabRecordRepository, eligibility domain.EHREligibility, forwarder domain.EHRForwarder) domain.LabRecordService {
	return &labRecordService{repo: repo, eligibility: eligibility, forwarder: forwarder}
}

// Create validates and stores a lab record, then queues EHR forwarding for
// eligible app registrations.
func (s *labRecordService) Create(ctx context.Context, model domain.LabRecordDomainModel) (*domain.LabRecord, error) {
	if model.DisplayName == nil || strings.TrimSpace(*model.DisplayName) == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "display name is required", nil)
	}
	if model.PrimaryValue == nil {
		return nil, domain.NewAppError(domain.CodeValidation, "primary value is required", nil)
	}

	record, err := s.repo.Create(ctx, model)
	if err != nil {
		return nil, err
	}

	s.forward(ctx, record)
	return record, nil
}

// GetByID retrieves a lab record by id.
func (s *labRecordService) GetByID(ctx context.Context, id string) (*domain.LabRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// Search returns lab records matching the filters.
func (s *labRecordService) Search(ctx context.Context, filters domain.LabRecordSearchFilters) (*domain.SearchResults[domain.LabRecord], error) {
	return s.repo.Search(ctx, filters)
}

// Update applies the provided fields and re-forwards the updated record.
func (s *labRecordService) Update(ctx context.Context, id string, model domain.LabRecordDomainModel) (*domain.LabRecord, error) {
	if model.DisplayName != nil && strings.TrimSpace(*model.DisplayName) == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "display name cannot be empty", nil)
	}

	record, err := s.repo.Update(ctx, id, model)
	if err != nil {
		return nil, err
	}

	s.forward(ctx, record)
	return record, nil
}

// Delete removes a lab record by id.
func (s *labRecordService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// forward enqueues one EHR record per eligible app registration.
func (s *labRecordService) forward(ctx context.Context, record *domain.LabRecord) {
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

	for _, app := range apps {
		s.forwarder.Enqueue(domain.EHRRecord{
			PatientUserID:  record.PatientUserID,
			RecordID:       record.ID,
			Type:           domain.EHRRecordLabRecord,
			PrimaryValue:   record.PrimaryValue,
			SecondaryValue: record.SecondaryValue,
			Unit:           record.Unit,
			Name:           record.DisplayName,
			AppName:        app,
		})
	}
}
