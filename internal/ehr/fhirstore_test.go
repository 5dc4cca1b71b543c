package ehr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

func TestFHIRStore_AddRecord(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Observation" {
			t.Errorf("path = %q, want /Observation", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/fhir+json" {
			t.Errorf("Content-Type = %q, want application/fhir+json", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	store := NewFHIRStore(srv.URL, 5*time.Second)
	err := store.AddRecord(context.Background(), domain.EHRRecord{
		PatientUserID: "patient-1",
		RecordID:      "record-1",
		Type:          domain.EHRRecordBodyHeight,
		PrimaryValue:  178,
		Unit:          "cm",
		Name:          "Body height",
	})
	if err != nil {
		t.Fatalf("AddRecord() error: %v", err)
	}

	if received["resourceType"] != "Observation" {
		t.Errorf("resourceType = %v, want Observation", received["resourceType"])
	}
	subject, _ := received["subject"].(map[string]any)
	if subject["reference"] != "Patient/patient-1" {
		t.Errorf("subject.reference = %v, want Patient/patient-1", subject["reference"])
	}
	value, _ := received["valueQuantity"].(map[string]any)
	if value["value"] != float64(178) {
		t.Errorf("valueQuantity.value = %v, want 178", value["value"])
	}
}

func TestFHIRStore_BloodPressureComponents(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	diastolic := 80.0
	store := NewFHIRStore(srv.URL, 5*time.Second)
	err := store.AddRecord(context.Background(), domain.EHRRecord{
		PatientUserID:  "patient-1",
		RecordID:       "record-2",
		Type:           domain.EHRRecordBloodPressure,
		PrimaryValue:   120,
		SecondaryValue: &diastolic,
		Unit:           "mmHg",
		Name:           "Blood pressure",
	})
	if err != nil {
		t.Fatalf("AddRecord() error: %v", err)
	}

	components, _ := received["component"].([]any)
	if len(components) != 2 {
		t.Fatalf("len(component) = %d, want 2", len(components))
	}
	if _, hasValue := received["valueQuantity"]; hasValue {
		t.Error("blood pressure observation should not carry a top-level valueQuantity")
	}
}

func TestFHIRStore_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	store := NewFHIRStore(srv.URL, 5*time.Second)
	err := store.AddRecord(context.Background(), domain.EHRRecord{RecordID: "record-3"})
	if err == nil {
		t.Fatal("AddRecord() should fail on non-2xx status")
	}
}

func TestFHIRStore_ConnectionError(t *testing.T) {
	store := NewFHIRStore("http://127.0.0.1:1", time.Second)
	if err := store.AddRecord(context.Background(), domain.EHRRecord{}); err == nil {
		t.Fatal("AddRecord() should fail when the endpoint is unreachable")
	}
}
