package doctor

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

func TestService_CreateVerifiesUserExists(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)), &fakeUserRepo{users: map[string]*domain.User{}})

	_, err := svc.Create(context.Background(), domain.DoctorDomainModel{
		UserID: uuid.NewString(),
	})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for unknown user, got %v", err)
	}
}

func TestService_CreateRejectsNonDoctorRole(t *testing.T) {
	userID := uuid.NewString()
	patient := &domain.User{Role: domain.RolePatient}
	patient.ID = userID
	svc := NewService(NewRepository(setupTestDB(t)),
		&fakeUserRepo{users: map[string]*domain.User{userID: patient}})

	_, err := svc.Create(context.Background(), domain.DoctorDomainModel{UserID: userID})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for patient account, got %v", err)
	}
}

func TestService_CreateSucceedsForDoctorUser(t *testing.T) {
	userID := uuid.NewString()
	user := &domain.User{Role: domain.RoleDoctor}
	user.ID = userID
	svc := NewService(NewRepository(setupTestDB(t)),
		&fakeUserRepo{users: map[string]*domain.User{userID: user}})

	doctor, err := svc.Create(context.Background(), domain.DoctorDomainModel{
		UserID:    userID,
		Specialty: str("Cardiology"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if doctor.UserID != userID || doctor.Specialty != "Cardiology" {
		t.Errorf("got %+v; want cardiologist for %s", doctor, userID)
	}
}
