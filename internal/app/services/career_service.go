package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/studentlife/copilot/internal/ai"
	"github.com/studentlife/copilot/internal/app/models"
	"github.com/studentlife/copilot/internal/pkg/apperrors"
	"github.com/studentlife/copilot/internal/store"
)

// CareerService handles career milestones, roadmap generation, and
// skill tips.
type CareerService struct {
	store  *store.Store
	client ai.Client
	logger zerolog.Logger
}

// NewCareerService creates a new career service instance
func NewCareerService(st *store.Store, client ai.Client, lgr zerolog.Logger) *CareerService {
	return &CareerService{store: st, client: client, logger: lgr}
}

// Milestones returns a student's roadmap milestones.
func (s *CareerService) Milestones(ctx context.Context, studentID string) ([]models.CareerMilestone, error) {
	if _, err := s.store.StudentByID(studentID); err != nil {
		return nil, err
	}
	return s.store.Milestones(studentID), nil
}

// allowedTransition encodes the milestone lifecycle: todo may start,
// in_progress may complete, completed is terminal.
func allowedTransition(from, to models.MilestoneStatus) bool {
	switch from {
	case models.MilestoneTodo:
		return to == models.MilestoneInProgress || to == models.MilestoneCompleted
	case models.MilestoneInProgress:
		return to == models.MilestoneCompleted || to == models.MilestoneTodo
	case models.MilestoneCompleted:
		return false
	}
	return false
}

// UpdateMilestoneStatus moves a milestone through its lifecycle.
// Completed milestones never regress.
func (s *CareerService) UpdateMilestoneStatus(ctx context.Context, milestoneID string, status models.MilestoneStatus) (models.CareerMilestone, error) {
	switch status {
	case models.MilestoneTodo, models.MilestoneInProgress, models.MilestoneCompleted:
	default:
		return models.CareerMilestone{}, apperrors.NewValidationError("unknown milestone status")
	}

	current, err := s.store.MilestoneByID(milestoneID)
	if err != nil {
		return models.CareerMilestone{}, err
	}
	if current.Status == status {
		return current, nil
	}
	if !allowedTransition(current.Status, status) {
		return models.CareerMilestone{}, apperrors.NewValidationError(
			fmt.Sprintf("cannot move milestone from %s to %s", current.Status, status))
	}

	return s.store.SetMilestoneStatus(milestoneID, status)
}

type roadmapStep struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// Roadmap generates a 4-step career roadmap for a student and persists
// the steps as milestones. The gateway reply must be a strict JSON
// array; anything else falls back to the fixed template.
func (s *CareerService) Roadmap(ctx context.Context, studentID, interest string) ([]models.CareerMilestone, error) {
	student, err := s.store.StudentByID(studentID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(interest) == "" {
		return nil, apperrors.NewValidationError("interest cannot be empty")
	}

	steps := s.generateSteps(ctx, student.Major, interest)

	milestones := make([]models.CareerMilestone, 0, len(steps))
	for _, step := range steps {
		status := models.MilestoneStatus(step.Status)
		switch status {
		case models.MilestoneTodo, models.MilestoneInProgress, models.MilestoneCompleted:
		default:
			status = models.MilestoneTodo
		}
		milestones = append(milestones, models.CareerMilestone{
			StudentID: studentID,
			Title:     step.Title,
			Category:  models.MilestoneSkill,
			Status:    status,
		})
	}

	return s.store.AddMilestones(milestones), nil
}

func (s *CareerService) generateSteps(ctx context.Context, major, interest string) []roadmapStep {
	prompt := fmt.Sprintf(`Create a 4-step career roadmap for a %s student interested in %s.
Return strictly JSON array: [{ "id": "string", "title": "string", "status": "todo" }]`, major, interest)

	raw, err := s.client.Generate(ctx, prompt, ai.FormatJSON)
	if err == nil {
		var steps []roadmapStep
		if jsonErr := json.Unmarshal([]byte(ai.CleanJSON(raw)), &steps); jsonErr == nil && len(steps) > 0 {
			return steps
		}
		s.logger.Warn().Msg("unparseable roadmap reply, using fixed template")
	}

	return []roadmapStep{
		{ID: "1", Title: fmt.Sprintf("Master Fundamentals of %s", major), Status: "completed"},
		{ID: "2", Title: fmt.Sprintf("Build a %q Project", interest), Status: "in_progress"},
		{ID: "3", Title: "Contribute to Open Source", Status: "todo"},
		{ID: "4", Title: "Apply for Internships", Status: "todo"},
	}
}

// SkillTip returns a one-sentence career tip for a skill.
func (s *CareerService) SkillTip(ctx context.Context, skill string) (string, error) {
	if strings.TrimSpace(skill) == "" {
		return "", apperrors.NewValidationError("skill cannot be empty")
	}

	prompt := fmt.Sprintf("Give a 1-sentence tip for a student learning %q to improve their career prospects.", skill)
	text, err := s.client.Generate(ctx, prompt, ai.FormatText)
	if err != nil || strings.TrimSpace(text) == "" {
		return fmt.Sprintf("Build a small project using %s to showcase your ability.", skill), nil
	}
	return strings.TrimSpace(text), nil
}
