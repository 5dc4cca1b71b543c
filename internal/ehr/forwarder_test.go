package ehr

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

// fakeStore records delivered EHR records and can fail a configurable number
// of times before succeeding.
type fakeStore struct {
	mu        sync.Mutex
	records   []domain.EHRRecord
	failTimes int
	calls     int
}

func (f *fakeStore) AddRecord(_ context.Context, record domain.EHRRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.failTimes {
		return errors.New("ehr unavailable")
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeStore) delivered() []domain.EHRRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.EHRRecord, len(f.records))
	copy(out, f.records)
	return out
}

func TestForwarder_DeliversEnqueuedRecord(t *testing.T) {
	store := &fakeStore{}
	f := NewForwarder(store, 8, 1)
	f.Start()

	ok := f.Enqueue(domain.EHRRecord{
		PatientUserID: "patient-1",
		RecordID:      "record-1",
		Type:          domain.EHRRecordBodyHeight,
		PrimaryValue:  178,
		Unit:          "cm",
	})
	if !ok {
		t.Fatal("Enqueue() = false, want true")
	}

	f.Stop()

	got := store.delivered()
	if len(got) != 1 {
		t.Fatalf("delivered %d records, want 1", len(got))
	}
	if got[0].RecordID != "record-1" {
		t.Errorf("RecordID = %q, want %q", got[0].RecordID, "record-1")
	}
}

func TestForwarder_RetriesUntilSuccess(t *testing.T) {
	store := &fakeStore{failTimes: 2}
	f := NewForwarder(store, 8, 3)
	f.Start()

	f.Enqueue(domain.EHRRecord{RecordID: "record-2", Type: domain.EHRRecordLabRecord})
	f.Stop()

	if got := store.delivered(); len(got) != 1 {
		t.Fatalf("delivered %d records, want 1 after retries", len(got))
	}
	if store.calls != 3 {
		t.Errorf("AddRecord called %d times, want 3", store.calls)
	}
}

func TestForwarder_GivesUpAfterMaxRetries(t *testing.T) {
	store := &fakeStore{failTimes: 100}
	f := NewForwarder(store, 8, 2)
	f.Start()

	f.Enqueue(domain.EHRRecord{RecordID: "record-3"})
	f.Stop()

	if got := store.delivered(); len(got) != 0 {
		t.Fatalf("delivered %d records, want 0", len(got))
	}
	if store.calls != 2 {
		t.Errorf("AddRecord called %d times, want 2", store.calls)
	}
}

func TestForwarder_EnqueueAfterStop(t *testing.T) {
	f := NewForwarder(&fakeStore{}, 8, 1)
	f.Start()
	f.Stop()

	if f.Enqueue(domain.EHRRecord{RecordID: "record-4"}) {
		t.Error("Enqueue() after Stop should return false")
	}
}

func TestForwarder_FullQueueDropsRecord(t *testing.T) {
	// Worker not started, so the queue never drains.
	f := NewForwarder(&fakeStore{}, 1, 1)

	if !f.Enqueue(domain.EHRRecord{RecordID: "first"}) {
		t.Fatal("first Enqueue() should succeed")
	}
	if f.Enqueue(domain.EHRRecord{RecordID: "second"}) {
		t.Error("Enqueue() on a full queue should return false")
	}
}

func TestForwarder_EnqueueConcurrentWithStop(t *testing.T) {
	for i := 0; i < 50; i++ {
		f := NewForwarder(&fakeStore{}, 4, 1)
		f.Start()

		var wg sync.WaitGroup
		for g := 0; g < 4; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 20; j++ {
					f.Enqueue(domain.EHRRecord{RecordID: "race"})
				}
			}()
		}

		f.Stop()
		wg.Wait()
	}
}

// fakeRegistrations implements the registration lookup for eligibility tests.
type fakeRegistrations struct {
	regs []domain.PatientAppRegistration
	err  error
}

func (f *fakeRegistrations) GetAppRegistrations(context.Context, string) ([]domain.PatientAppRegistration, error) {
	return f.regs, f.err
}

func TestEligibility_IntersectsAllowList(t *testing.T) {
	regs := &fakeRegistrations{regs: []domain.PatientAppRegistration{
		{PatientUserID: "p1", AppName: "REAN HealthGuru"},
		{PatientUserID: "p1", AppName: "Some Other App"},
		{PatientUserID: "p1", AppName: "HF Helper"},
	}}
	e := NewEligibility(regs, nil)

	apps, err := e.EligibleAppNames(context.Background(), "p1")
	if err != nil {
		t.Fatalf("EligibleAppNames() error: %v", err)
	}
	if len(apps) != 2 {
		t.Fatalf("len(apps) = %d, want 2", len(apps))
	}
	if apps[0] != "REAN HealthGuru" || apps[1] != "HF Helper" {
		t.Errorf("apps = %v, want allow-listed registrations in order", apps)
	}
}

func TestEligibility_NoRegistrations(t *testing.T) {
	e := NewEligibility(&fakeRegistrations{}, nil)

	apps, err := e.EligibleAppNames(context.Background(), "p1")
	if err != nil {
		t.Fatalf("EligibleAppNames() error: %v", err)
	}
	if len(apps) != 0 {
		t.Errorf("len(apps) = %d, want 0", len(apps))
	}
}

func TestEligibility_CustomAllowList(t *testing.T) {
	regs := &fakeRegistrations{regs: []domain.PatientAppRegistration{
		{PatientUserID: "p1", AppName: "REAN HealthGuru"},
		{PatientUserID: "p1", AppName: "Custom App"},
	}}
	e := NewEligibility(regs, []string{"Custom App"})

	apps, err := e.EligibleAppNames(context.Background(), "p1")
	if err != nil {
		t.Fatalf("EligibleAppNames() error: %v", err)
	}
	if len(apps) != 1 || apps[0] != "Custom App" {
		t.Errorf("apps = %v, want only the custom allow-listed app", apps)
	}
}

func TestEligibility_LookupError(t *testing.T) {
	e := NewEligibility(&fakeRegistrations{err: errors.New("db down")}, nil)

	if _, err := e.EligibleAppNames(context.Background(), "p1"); err == nil {
		t.Error("EligibleAppNames() should propagate lookup errors")
	}
}

func TestForwarder_StopDrainsQueue(t *testing.T) {
	store := &fakeStore{}
	f := NewForwarder(store, 16, 1)
	f.Start()

	for i := 0; i < 10; i++ {
		f.Enqueue(domain.EHRRecord{RecordID: "r", PrimaryValue: float64(i)})
	}
	f.Stop()

	if got := store.delivered(); len(got) != 10 {
		t.Errorf("delivered %d records, want all 10 after Stop", len(got))
	}
}
