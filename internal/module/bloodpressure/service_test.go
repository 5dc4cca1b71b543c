package bloodpressure

import (
	"context"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

type fakeEligibility struct {
	apps []string
	err  error
}

func (f *fakeEligibility) EligibleAppNames(context.Context, string) ([]string, error) {
	return f.apps, f.err
}

type fakeForwarder struct {
	mu      sync.Mutex
	records []domain.EHRRecord
}

func (f *fakeForwarder) Enqueue(record domain.EHRRecord) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, record)
	return true
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.BloodPressure{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func iptr(v int) *int { return &v }

func TestService_CreateValidation(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)), nil, nil)
	ctx := context.Background()
	patientID := uuid.NewString()

	tests := []struct {
		name      string
		systolic  *int
		diastolic *int
	}{
		{"missing both", nil, nil},
		{"missing diastolic", iptr(120), nil},
		{"negative systolic", iptr(-10), iptr(80)},
		{"diastolic above systolic", iptr(80), iptr(120)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, domain.BloodPressureDomainModel{
				PatientUserID: patientID,
				Systolic:      tt.systolic,
				Diastolic:     tt.diastolic,
			})
			if !domain.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestService_CreateForwardsWithBothValues(t *testing.T) {
	forwarder := &fakeForwarder{}
	svc := NewService(NewRepository(setupTestDB(t)),
		&fakeEligibility{apps: []string{"HF Helper"}}, forwarder)

	record, err := svc.Create(context.Background(), domain.BloodPressureDomainModel{
		PatientUserID: uuid.NewString(),
		Systolic:      iptr(120),
		Diastolic:     iptr(80),
		Unit:          str("mmHg"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if len(forwarder.records) != 1 {
		t.Fatalf("enqueued %d records, want 1", len(forwarder.records))
	}
	fwd := forwarder.records[0]
	if fwd.Type != domain.EHRRecordBloodPressure {
		t.Errorf("Type = %q, want BloodPressure", fwd.Type)
	}
	if fwd.PrimaryValue != 120 {
		t.Errorf("PrimaryValue = %v, want systolic 120", fwd.PrimaryValue)
	}
	if fwd.SecondaryValue == nil || *fwd.SecondaryValue != 80 {
		t.Errorf("SecondaryValue = %v, want diastolic 80", fwd.SecondaryValue)
	}
	if fwd.RecordID != record.ID {
		t.Errorf("RecordID = %q, want %q", fwd.RecordID, record.ID)
	}
}

func TestService_UpdatePartial(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)), nil, nil)
	ctx := context.Background()

	record, err := svc.Create(ctx, domain.BloodPressureDomainModel{
		PatientUserID: uuid.NewString(),
		Systolic:      iptr(120),
		Diastolic:     iptr(80),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, record.ID, domain.BloodPressureDomainModel{
		Systolic: iptr(130),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Systolic != 130 {
		t.Errorf("Systolic = %d, want 130", updated.Systolic)
	}
	if updated.Diastolic != 80 {
		t.Errorf("Diastolic = %d, want untouched 80", updated.Diastolic)
	}
}

func TestService_UpdateNotFound(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)), nil, nil)

	_, err := svc.Update(context.Background(), uuid.NewString(), domain.BloodPressureDomainModel{
		Systolic: iptr(130),
	})
	if !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_SearchBySystolicRange(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)), nil, nil)
	ctx := context.Background()
	p := uuid.NewString()

	for _, sys := range []int{110, 125, 140} {
		if _, err := svc.Create(ctx, domain.BloodPressureDomainModel{
			PatientUserID: p,
			Systolic:      iptr(sys),
			Diastolic:     iptr(70),
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	results, err := svc.Search(ctx, domain.BloodPressureSearchFilters{
		PatientUserID: &p,
		MinSystolic:   iptr(120),
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if results.TotalCount != 2 {
		t.Errorf("TotalCount = %d, want 2", results.TotalCount)
	}
}

func str(v string) *string { return &v }
