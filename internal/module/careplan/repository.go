package careplan

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/pkg"
)

// careplanRepository implements domain.CareplanRepository using GORM.
type careplanRepository struct {
	db *gorm.DB
}

// NewRepository creates a CareplanRepository backed by the given database.
func NewRepository(db *gorm.DB) domain.CareplanRepository {
	return &careplanRepository{db: db}
}

// CreateEnrollment inserts a new careplan enrollment.
func (r *careplanRepository) CreateEnrollment(ctx context.Context, model domain.EnrollmentDomainModel) (*domain.CareplanEnrollment, error) {
	enrollment := domain.CareplanEnrollment{
		PatientUserID: model.PatientUserID,
	}
	if model.Provider != nil {
		enrollment.Provider = *model.Provider
	}
	if model.PlanCode != nil {
		enrollment.PlanCode = *model.PlanCode
	}
	if model.PlanName != nil {
		enrollment.PlanName = *model.PlanName
	}
	if model.StartDate != nil {
		enrollment.StartDate = *model.StartDate
	}
	enrollment.EndDate = model.EndDate

	if err := r.db.WithContext(ctx).Create(&enrollment).Error; err != nil {
		return nil, mapError(err)
	}
	return &enrollment, nil
}

// GetEnrollmentByID retrieves an enrollment by id.
func (r *careplanRepository) GetEnrollmentByID(ctx context.Context, id string) (*domain.CareplanEnrollment, error) {
	var enrollment domain.CareplanEnrollment
	if err := r.db.WithContext(ctx).First(&enrollment, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &enrollment, nil
}

// GetPatientEnrollments returns a patient's enrollments, newest first.
func (r *careplanRepository) GetPatientEnrollments(ctx context.Context, patientUserID string) ([]domain.CareplanEnrollment, error) {
	var enrollments []domain.CareplanEnrollment
	if err := r.db.WithContext(ctx).
		Where("patient_user_id = ?", patientUserID).
		Order("created_at DESC").
		Find(&enrollments).Error; err != nil {
		return nil, mapError(err)
	}
	return enrollments, nil
}

// DeleteEnrollment removes an enrollment and its generated tasks.
func (r *careplanRepository) DeleteEnrollment(ctx context.Context, id string) error {
	return pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		result := tx.Delete(&domain.CareplanEnrollment{}, "id = ?", id)
		if result.Error != nil {
			return mapError(result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		if err := tx.Delete(&domain.CareplanTask{}, "enrollment_id = ?", id).Error; err != nil {
			return mapError(err)
		}
		return nil
	})
}

// CreateTasks inserts the generated schedule in one batch.
func (r *careplanRepository) CreateTasks(ctx context.Context, tasks []domain.CareplanTask) error {
	if len(tasks) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(tasks, 100).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// GetEnrollmentTasks returns an enrollment's tasks in schedule order.
func (r *careplanRepository) GetEnrollmentTasks(ctx context.Context, enrollmentID string) ([]domain.CareplanTask, error) {
	var tasks []domain.CareplanTask
	if err := r.db.WithContext(ctx).
		Where("enrollment_id = ?", enrollmentID).
		Order("scheduled_at ASC, sequence ASC").
		Find(&tasks).Error; err != nil {
		return nil, mapError(err)
	}
	return tasks, nil
}

// GetTasksBetween returns the enrollment's tasks scheduled in [from, to).
func (r *careplanRepository) GetTasksBetween(ctx context.Context, enrollmentID string, from, to time.Time) ([]domain.CareplanTask, error) {
	var tasks []domain.CareplanTask
	if err := r.db.WithContext(ctx).
		Where("enrollment_id = ? AND scheduled_at >= ? AND scheduled_at < ?", enrollmentID, from, to).
		Order("scheduled_at ASC, sequence ASC").
		Find(&tasks).Error; err != nil {
		return nil, mapError(err)
	}
	return tasks, nil
}

// UpdateTaskStatus sets a task's status and returns the updated task.
func (r *careplanRepository) UpdateTaskStatus(ctx context.Context, taskID, status string) (*domain.CareplanTask, error) {
	var task domain.CareplanTask
	if err := r.db.WithContext(ctx).First(&task, "id = ?", taskID).Error; err != nil {
		return nil, mapError(err)
	}

	if err := r.db.WithContext(ctx).Model(&task).Update("status", status).Error; err != nil {
		return nil, mapError(err)
	}
	return &task, nil
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}
