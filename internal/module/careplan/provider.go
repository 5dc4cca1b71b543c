package careplan

import (
	"context"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/domain"
)

// ProviderName is the built-in careplan provider.
const ProviderName = "REAN"

// reanProvider is the built-in careplan provider. Plans and their task
// schedules are defined statically.
type reanProvider struct {
	plans []planDefinition
}

type planDefinition struct {
	domain.CareplanDefinition
	tasks []taskTemplate
}

// taskTemplate generates one task per occurrence, spaced every IntervalDays
// starting at DayOffset from the enrollment start.
type taskTemplate struct {
	Title        string
	Category     string
	DayOffset    int
	IntervalDays int
	Occurrences  int
}

// NewProvider creates the built-in careplan provider.
func NewProvider() domain.CareplanProvider {
	return &reanProvider{
		plans: []planDefinition{
			{
				CareplanDefinition: domain.CareplanDefinition{
					Provider:     ProviderName,
					PlanCode:     "HF-BASIC",
					PlanName:     "Heart Failure Basics",
					Description:  "Daily self-care guidance for newly diagnosed heart failure patients.",
					DurationDays: 28,
				},
				tasks: []taskTemplate{
					{Title: "Record your weight", Category: "vitals", DayOffset: 0, IntervalDays: 1, Occurrences: 28},
					{Title: "Record your blood pressure", Category: "vitals", DayOffset: 0, IntervalDays: 1, Occurrences: 28},
					{Title: "Watch: living with heart failure", Category: "education", DayOffset: 1, IntervalDays: 7, Occurrences: 4},
					{Title: "Weekly symptom check-in", Category: "assessment", DayOffset: 6, IntervalDays: 7, Occurrences: 4},
				},
			},
			{
				CareplanDefinition: domain.CareplanDefinition{
					Provider:     ProviderName,
					PlanCode:     "CHOL-CONTROL",
					PlanName:     "Cholesterol Control",
					Description:  "Diet and activity plan for managing high cholesterol.",
					DurationDays: 84,
				},
				tasks: []taskTemplate{
					{Title: "Log your meals", Category: "nutrition", DayOffset: 0, IntervalDays: 1, Occurrences: 84},
					{Title: "30 minute walk", Category: "exercise", DayOffset: 0, IntervalDays: 2, Occurrences: 42},
					{Title: "Schedule a lipid panel", Category: "lab", DayOffset: 70, IntervalDays: 1, Occurrences: 1},
				},
			},
		},
	}
}

func (p *reanProvider) Name() string { return ProviderName }

// AvailablePlans returns the plan catalogue.
func (p *reanProvider) AvailablePlans(_ context.Context) ([]domain.CareplanDefinition, error) {
	plans := make([]domain.CareplanDefinition, 0, len(p.plans))
	for _, plan := range p.plans {
		plans = append(plans, plan.CareplanDefinition)
	}
	return plans, nil
}

// PlanTasks expands the enrolled plan's templates into dated tasks. Tasks past
// the enrollment end date are not generated.
func (p *reanProvider) PlanTasks(_ context.Context, enrollment *domain.CareplanEnrollment) ([]domain.CareplanTask, error) {
	plan, ok := p.findPlan(enrollment.PlanCode)
	if !ok {
		return nil, domain.NewAppError(domain.CodeValidation, "unknown plan code", nil)
	}

	var tasks []domain.CareplanTask
	sequence := 0
	for _, tpl := range plan.tasks {
		for i := 0; i < tpl.Occurrences; i++ {
			scheduledAt := enrollment.StartDate.AddDate(0, 0, tpl.DayOffset+i*tpl.IntervalDays)
			if enrollment.EndDate != nil && scheduledAt.After(*enrollment.EndDate) {
				break
			}
			sequence++
			tasks = append(tasks, domain.CareplanTask{
				EnrollmentID: enrollment.ID,
				Title:        tpl.Title,
				Category:     tpl.Category,
				Sequence:     sequence,
				ScheduledAt:  scheduledAt,
				Status:       domain.TaskStatusPending,
			})
		}
	}
	return tasks, nil
}

func (p *reanProvider) findPlan(code string) (planDefinition, bool) {
	for _, plan := range p.plans {
		if plan.PlanCode == code {
			return plan, true
		}
	}
	return planDefinition{}, false
}

// FindDefinition returns the catalogue entry for a plan code.
func FindDefinition(ctx context.Context, provider domain.CareplanProvider, code string) (*domain.CareplanDefinition, error) {
	plans, err := provider.AvailablePlans(ctx)
	if err != nil {
		return nil, err
	}
	for i := range plans {
		if plans[i].PlanCode == code {
			return &plans[i], nil
		}
	}
	return nil, domain.NewAppError(domain.CodeValidation, "unknown plan code", nil)
}
