package ehr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

// FHIRStore posts clinical records as FHIR R4 Observation resources to an
// external EHR endpoint.
type FHIRStore struct {
	baseURL string
	client  *http.Client
}

// NewFHIRStore creates a store client for the given base URL. A zero timeout
// defaults to 15 seconds.
func NewFHIRStore(baseURL string, timeout time.Duration) *FHIRStore {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &FHIRStore{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// observation is the subset of the FHIR R4 Observation resource the EHR
// endpoint accepts.
type observation struct {
	ResourceType string                 `json:"resourceType"`
	Identifier   []identifier           `json:"identifier,omitempty"`
	Status       string                 `json:"status"`
	Code         codeableConcept        `json:"code"`
	Subject      reference              `json:"subject"`
	Effective    string                 `json:"effectiveDateTime"`
	Value        *quantity              `json:"valueQuantity,omitempty"`
	Component    []observationComponent `json:"component,omitempty"`
}

type identifier struct {
	System string `json:"system,omitempty"`
	Value  string `json:"value"`
}

type codeableConcept struct {
	Text string `json:"text"`
}

type reference struct {
	Reference string `json:"reference"`
}

type quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

type observationComponent struct {
	Code  codeableConcept `json:"code"`
	Value quantity        `json:"valueQuantity"`
}

// AddRecord converts the record to an Observation and posts it. Non-2xx
// responses are returned as errors so the forwarder can retry.
func (s *FHIRStore) AddRecord(ctx context.Context, record domain.EHRRecord) error {
	obs := toObservation(record)

	body, err := json.Marshal(obs)
	if err != nil {
		return fmt.Errorf("failed to marshal observation: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/Observation", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build EHR request: %w", err)
	}
	req.Header.Set("Content-Type", "application/fhir+json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("EHR request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Read a little of the body for diagnostics without trusting its size.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("EHR endpoint returned status %d: %s", resp.StatusCode, snippet)
	}
	return nil
}

// toObservation maps a normalized record to a FHIR Observation. Records with
// a secondary value (blood pressure) become component observations.
func toObservation(record domain.EHRRecord) observation {
	obs := observation{
		ResourceType: "Observation",
		Identifier: []identifier{
			{System: "urn:source-record-id", Value: record.RecordID},
		},
		Status:    "final",
		Code:      codeableConcept{Text: record.Name},
		Subject:   reference{Reference: "Patient/" + record.PatientUserID},
		Effective: time.Now().UTC().Format(time.RFC3339),
	}

	if record.SecondaryValue != nil {
		obs.Component = []observationComponent{
			{
				Code:  codeableConcept{Text: "Systolic blood pressure"},
				Value: quantity{Value: record.PrimaryValue, Unit: record.Unit},
			},
			{
				Code:  codeableConcept{Text: "Diastolic blood pressure"},
				Value: quantity{Value: *record.SecondaryValue, Unit: record.Unit},
			},
		}
	} else {
		obs.Value = &quantity{Value: record.PrimaryValue, Unit: record.Unit}
	}
	return obs
}
