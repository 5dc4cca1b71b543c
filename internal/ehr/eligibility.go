package ehr

import (
	"context"
	"log/slog"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

// DefaultEligibleApps lists the companion applications whose patients have
// clinical data forwarded to the EHR store.
var DefaultEligibleApps = []string{
	"Heart & Stroke Helper™",
	"REAN HealthGuru",
	"HF Helper",
}

// registrationLookup is the subset of the patient repository the eligibility
// check needs.
type registrationLookup interface {
	GetAppRegistrations(ctx context.Context, patientUserID string) ([]domain.PatientAppRegistration, error)
}

// Eligibility decides which companion apps may receive forwarded data for a
// patient by intersecting the configured allow-list with the patient's app
// registrations.
type Eligibility struct {
	registrations registrationLookup
	allowed       map[string]struct{}
}

// NewEligibility creates an eligibility checker. An empty allow-list falls
// back to DefaultEligibleApps.
func NewEligibility(registrations registrationLookup, allowedApps []string) *Eligibility {
	if len(allowedApps) == 0 {
		allowedApps = DefaultEligibleApps
	}
	allowed := make(map[string]struct{}, len(allowedApps))
	for _, app := range allowedApps {
		allowed[app] = struct{}{}
	}
	return &Eligibility{registrations: registrations, allowed: allowed}
}

// EligibleAppNames returns the patient's registered apps that are on the
// allow-list. An empty result means the patient's data is not forwarded.
func (e *Eligibility) EligibleAppNames(ctx context.Context, patientUserID string) ([]string, error) {
	regs, err := e.registrations.GetAppRegistrations(ctx, patientUserID)
	if err != nil {
		return nil, err
	}

	var eligible []string
	for _, reg := range regs {
		if _, ok := e.allowed[reg.AppName]; ok {
			eligible = append(eligible, reg.AppName)
		}
	}

	if len(eligible) == 0 {
		slog.DebugContext(ctx, "patient has no eligible app registrations, skipping EHR forward",
			slog.String("patient_user_id", patientUserID),
		)
	}
	return eligible, nil
}
