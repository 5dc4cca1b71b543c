package domain

import "context"

// EHRRecordType tags the kind of clinical data point forwarded to an external
// EHR store.
type EHRRecordType string

const (
	EHRRecordLabRecord     EHRRecordType = "LabRecord"
	EHRRecordBloodPressure EHRRecordType = "BloodPressure"
	EHRRecordBodyHeight    EHRRecordType = "BodyHeight"
)

// EHRRecord is the normalized clinical data point sent to an external EHR
// store on behalf of a registered companion application.
type EHRRecord struct {
	PatientUserID  string        `json:"PatientUserId"`
	RecordID       string        `json:"RecordId"`
	Provider       string        `json:"Provider,omitempty"`
	Type           EHRRecordType `json:"Type"`
	PrimaryValue   float64       `json:"PrimaryValue"`
	SecondaryValue *float64      `json:"SecondaryValue,omitempty"`
	Unit           string        `json:"Unit"`
	Name           string        `json:"Name"`
	AppName        string        `json:"AppName"`
}

// EHRStore accepts normalized records for persistence in an external
// FHIR-based clinical data store.
type EHRStore interface {
	AddRecord(ctx context.Context, record EHRRecord) error
}

// EHRForwarder queues records for background delivery to the EHR store.
// Enqueue never blocks the request path and delivery failures are not
// surfaced to API callers.
type EHRForwarder interface {
	Enqueue(record EHRRecord) bool
}

// EHREligibility decides which companion applications may receive forwarded
// clinical data for a patient.
type EHREligibility interface {
	EligibleAppNames(ctx context.Context, patientUserID string) ([]string, error)
}
