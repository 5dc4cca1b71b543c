package assessment

import (
	"context"
	"testing"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

func TestService_CreateRequiresTitle(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)))

	_, err := svc.Create(context.Background(), domain.AssessmentTemplateDomainModel{
		Type: str("survey"),
	})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for missing title, got %v", err)
	}

	_, err = svc.Create(context.Background(), domain.AssessmentTemplateDomainModel{
		Title: str("   "),
	})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for blank title, got %v", err)
	}
}

func TestService_UpdateRejectsBlankTitle(t *testing.T) {
	svc := NewService(NewRepository(setupTestDB(t)))

	template, err := svc.Create(context.Background(), domain.AssessmentTemplateDomainModel{
		Title: str("Sleep Survey"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Update(context.Background(), template.ID, domain.AssessmentTemplateDomainModel{
		Title: str(""),
	})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}

	// Absent title is a valid partial update.
	updated, err := svc.Update(context.Background(), template.ID, domain.AssessmentTemplateDomainModel{
		Description: str("Nightly sleep check."),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Sleep Survey" {
		t.Errorf("Title = %q, want unchanged", updated.Title)
	}
}
