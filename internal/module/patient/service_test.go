package patient

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

// fakeUserRepo serves users by id from an in-memory map.
type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) Create(context.Context, *domain.User) error { return nil }
func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}
func (f *fakeUserRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeUserRepo) CountByRole(context.Context, string) (int64, error) { return 0, nil }
func (f *fakeUserRepo) Update(context.Context, *domain.User) error         { return nil }
func (f *fakeUserRepo) Delete(context.Context, string) error               { return nil }

func newTestService(t *testing.T, users map[string]*domain.User) domain.PatientService {
	t.Helper()
	return NewService(NewRepository(setupTestDB(t)), &fakeUserRepo{users: users})
}

func patientUser(id string) *domain.User {
	u := &domain.User{Role: domain.RolePatient}
	u.ID = id
	return u
}

func TestService_CreateVerifiesUserExists(t *testing.T) {
	svc := newTestService(t, map[string]*domain.User{})

	_, err := svc.Create(context.Background(), domain.PatientDomainModel{
		UserID: uuid.NewString(),
	})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for unknown user, got %v", err)
	}
}

func TestService_CreateRejectsNonPatientRole(t *testing.T) {
	userID := uuid.NewString()
	doctor := &domain.User{Role: domain.RoleDoctor}
	doctor.ID = userID
	svc := newTestService(t, map[string]*domain.User{userID: doctor})

	_, err := svc.Create(context.Background(), domain.PatientDomainModel{UserID: userID})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for doctor account, got %v", err)
	}
}

func TestService_CreateSucceedsForPatientUser(t *testing.T) {
	userID := uuid.NewString()
	svc := newTestService(t, map[string]*domain.User{userID: patientUser(userID)})

	patient, err := svc.Create(context.Background(), domain.PatientDomainModel{
		UserID: userID,
		City:   str("Pune"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if patient.UserID != userID {
		t.Errorf("UserID = %q, want %q", patient.UserID, userID)
	}
}

func TestService_RegisterAppRequiresProfile(t *testing.T) {
	svc := newTestService(t, map[string]*domain.User{})

	_, err := svc.RegisterApp(context.Background(), uuid.NewString(), "REAN HealthGuru")
	if !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound without a profile, got %v", err)
	}
}

func TestService_RegisterAppRejectsBlankName(t *testing.T) {
	userID := uuid.NewString()
	svc := newTestService(t, map[string]*domain.User{userID: patientUser(userID)})
	if _, err := svc.Create(context.Background(), domain.PatientDomainModel{UserID: userID}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := svc.RegisterApp(context.Background(), userID, "   ")
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestService_RegisterAndListApps(t *testing.T) {
	userID := uuid.NewString()
	svc := newTestService(t, map[string]*domain.User{userID: patientUser(userID)})
	if _, err := svc.Create(context.Background(), domain.PatientDomainModel{UserID: userID}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	reg, err := svc.RegisterApp(context.Background(), userID, "  HF Helper  ")
	if err != nil {
		t.Fatalf("RegisterApp: %v", err)
	}
	if reg.AppName != "HF Helper" {
		t.Errorf("AppName = %q, want trimmed name", reg.AppName)
	}

	regs, err := svc.AppRegistrations(context.Background(), userID)
	if err != nil {
		t.Fatalf("AppRegistrations: %v", err)
	}
	if len(regs) != 1 {
		t.Errorf("got %d registrations, want 1", len(regs))
	}
}
