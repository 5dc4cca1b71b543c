package bodyheight

import (
	"context"
	"log/slog"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

// bodyHeightService implements domain.BodyHeightService.
type bodyHeightService struct {
	repo        domain.BodyHeightRepository
	eligibility domain.EHREligibility
	forwarder   domain.EHRForwarder
}

// NewService creates a BodyHeightService. eligibility and forwarder may be nil
// when EHR forwarding is disabled.
func NewService(repo domain.BodyHeightRepository, eligibility domain.EHREligibility, forwarder domain.EHRForwarder) domain.BodyHeightService {
	return &bodyHeightService{repo: repo, eligibility: eligibility, forwarder: forwarder}
}

// Create validates and stores a measurement, then queues EHR forwarding for
// eligible app registrations.
func (s *bodyHeightService) Create(ctx context.Context, model domain.BodyHeightDomainModel) (*domain.BodyHeight, error) {
	if model.BodyHeight == nil || *model.BodyHeight <= 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "body height must be greater than zero", nil)
	}

	record, err := s.repo.Create(ctx, model)
	if err != nil {
		return nil, err
	}

	s.forward(ctx, record)
	return record, nil
}

// GetByID retrieves a measurement by id.
func (s *bodyHeightService) GetByID(ctx context.Context, id string) (*domain.BodyHeight, error) {
	return s.repo.GetByID(ctx, id)
}

// Search returns measurements matching the filters.
func (s *bodyHeightService) Search(ctx context.Context, filters domain.BodyHeightSearchFilters) (*domain.SearchResults[domain.BodyHeight], error) {
	return s.repo.Search(ctx, filters)
}

// Update applies the provided fields and re-forwards the updated record.
func (s *bodyHeightService) Update(ctx context.Context, id string, model domain.BodyHeightDomainModel) (*domain.BodyHeight, error) {
	if model.BodyHeight != nil && *model.BodyHeight <= 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "body height must be greater than zero", nil)
	}

	record, err := s.repo.Update(ctx, id, model)
	if err != nil {
		return nil, err
	}

	s.forward(ctx, record)
	return record, nil
}

// Delete removes a measurement by id.
func (s *bodyHeightService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// forward enqueues one EHR record per eligible app registration. Failures are
// logged and never surfaced to the caller.
func (s *bodyHeightService) forward(ctx context.Context, record *domain.BodyHeight) {
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
			PatientUserID: record.PatientUserID,
			RecordID:      record.ID,
			Type:          domain.EHRRecordBodyHeight,
			PrimaryValue:  record.BodyHeight,
			Unit:          record.Unit,
			Name:          "Body height",
			AppName:       app,
		})
	}
}
