package statistics

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/charts"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

// setupTestDB creates an in-memory SQLite database with the tables the
// statistics queries read.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.AppDownload{},
		&domain.BodyHeight{},
		&domain.BloodPressure{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fakeUserRepo struct {
	counts map[string]int64
}

func (f *fakeUserRepo) Create(context.Context, *domain.User) error { return nil }
func (f *fakeUserRepo) GetByID(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeUserRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	return f.counts[role], nil
}
func (f *fakeUserRepo) Update(context.Context, *domain.User) error { return nil }
func (f *fakeUserRepo) Delete(context.Context, string) error       { return nil }

func i64(v int64) *int64 { return &v }

func newTestService(t *testing.T, db *gorm.DB, counts map[string]int64) domain.StatisticsService {
	t.Helper()
	return NewService(NewRepository(db), &fakeUserRepo{counts: counts}, charts.NewSVGLineRenderer())
}

func TestUpdateAppDownloads_UpsertsByName(t *testing.T) {
	svc := newTestService(t, setupTestDB(t), nil)

	first, err := svc.UpdateAppDownloads(context.Background(), domain.AppDownloadDomainModel{
		AppName:        "REAN HealthGuru",
		TotalDownloads: i64(1000),
		IOSDownloads:   i64(400),
	})
	if err != nil {
		t.Fatalf("UpdateAppDownloads: %v", err)
	}

	second, err := svc.UpdateAppDownloads(context.Background(), domain.AppDownloadDomainModel{
		AppName:          "REAN HealthGuru",
		TotalDownloads:   i64(1500),
		AndroidDownloads: i64(900),
	})
	if err != nil {
		t.Fatalf("UpdateAppDownloads (repeat): %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("repeat update created a new row: %s vs %s", first.ID, second.ID)
	}
	if second.TotalDownloads != 1500 || second.IOSDownloads != 400 || second.AndroidDownloads != 900 {
		t.Errorf("got %+v; want updated totals with iOS count preserved", second)
	}

	all, err := svc.GetAppDownloads(context.Background())
	if err != nil {
		t.Fatalf("GetAppDownloads: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("got %d rows, want 1", len(all))
	}
}

func TestUpdateAppDownloads_Validation(t *testing.T) {
	svc := newTestService(t, setupTestDB(t), nil)

	if _, err := svc.UpdateAppDownloads(context.Background(), domain.AppDownloadDomainModel{
		AppName: "  ",
	}); !domain.IsValidation(err) {
		t.Errorf("expected validation error for blank name, got %v", err)
	}

	if _, err := svc.UpdateAppDownloads(context.Background(), domain.AppDownloadDomainModel{
		AppName:        "REAN HealthGuru",
		TotalDownloads: i64(-1),
	}); !domain.IsValidation(err) {
		t.Errorf("expected validation error for negative count, got %v", err)
	}
}

func TestGetUserCounts(t *testing.T) {
	svc := newTestService(t, setupTestDB(t), map[string]int64{
		domain.RolePatient: 120,
		domain.RoleDoctor:  15,
		domain.RoleAdmin:   2,
	})

	stats, err := svc.GetUserCounts(context.Background())
	if err != nil {
		t.Fatalf("GetUserCounts: %v", err)
	}
	if stats.TotalUsers != 137 || stats.PatientCount != 120 || stats.DoctorCount != 15 || stats.AdminCount != 2 {
		t.Errorf("got %+v", stats)
	}
}

func TestGetBiometricsReport(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(t, db, nil)
	patientID := uuid.NewString()

	lastMonth := time.Now().UTC().AddDate(0, -1, 0)
	thisMonth := time.Now().UTC().AddDate(0, 0, -1)
	rows := []domain.BodyHeight{
		{PatientUserID: patientID, BodyHeight: 170, RecordDate: &lastMonth},
		{PatientUserID: patientID, BodyHeight: 172, RecordDate: &thisMonth},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed height: %v", err)
		}
	}
	if err := db.Create(&domain.BloodPressure{
		PatientUserID: patientID, Systolic: 120, Diastolic: 80, RecordDate: &thisMonth,
	}).Error; err != nil {
		t.Fatalf("seed blood pressure: %v", err)
	}

	report, err := svc.GetBiometricsReport(context.Background(), patientID, 0)
	if err != nil {
		t.Fatalf("GetBiometricsReport: %v", err)
	}
	if report.Months != defaultReportMonths {
		t.Errorf("Months = %d, want default %d", report.Months, defaultReportMonths)
	}
	if len(report.Trends) != 2 {
		t.Fatalf("got %d trends, want 2", len(report.Trends))
	}

	height := report.Trends[0]
	if height.Current != 172 {
		t.Errorf("height Current = %v, want 172", height.Current)
	}
	if height.Average != 171 {
		t.Errorf("height Average = %v, want 171", height.Average)
	}
	if height.LastMeasuredDate == nil {
		t.Error("height LastMeasuredDate not set")
	}
	if len(height.Series) != 2 {
		t.Errorf("height series has %d points, want one per month", len(height.Series))
	}
	if !strings.Contains(height.ChartSVG, "<svg") {
		t.Error("height chart not rendered")
	}

	systolic := report.Trends[1]
	if systolic.Current != 120 {
		t.Errorf("systolic Current = %v, want 120", systolic.Current)
	}
}

func TestGetBiometricsReport_NoData(t *testing.T) {
	svc := newTestService(t, setupTestDB(t), nil)

	report, err := svc.GetBiometricsReport(context.Background(), uuid.NewString(), 3)
	if err != nil {
		t.Fatalf("GetBiometricsReport: %v", err)
	}
	if report.Months != 3 {
		t.Errorf("Months = %d, want 3", report.Months)
	}
	for _, trend := range report.Trends {
		if len(trend.Series) != 0 {
			t.Errorf("%s series not empty", trend.Name)
		}
		if trend.LastMeasuredDate != nil {
			t.Errorf("%s LastMeasuredDate set without samples", trend.Name)
		}
		if !strings.Contains(trend.ChartSVG, "No data available") {
			t.Errorf("%s chart missing placeholder", trend.Name)
		}
	}
}

func TestMonthlySeries_AveragesPerMonth(t *testing.T) {
	march := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)

	series := monthlySeries([]vitalSample{
		{At: march, Value: 100},
		{At: march.AddDate(0, 0, 5), Value: 110},
		{At: april, Value: 130},
	})

	if len(series) != 2 {
		t.Fatalf("got %d points, want 2", len(series))
	}
	if series[0].Value != 105 {
		t.Errorf("March average = %v, want 105", series[0].Value)
	}
	if series[0].Label != "Mar 2026" || series[1].Label != "Apr 2026" {
		t.Errorf("labels = %q, %q", series[0].Label, series[1].Label)
	}
}
