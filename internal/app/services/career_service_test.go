package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentlife/copilot/internal/ai"
	"github.com/studentlife/copilot/internal/app/models"
	"github.com/studentlife/copilot/internal/pkg/apperrors"
	"github.com/studentlife/copilot/internal/store"
)

func careerFixture() *store.Store {
	return newTestStore(store.Data{
		Students: []models.Student{testStudent("st-1", "Alex", 3.4)},
		Milestones: []models.CareerMilestone{
			{ID: "cm-1", StudentID: "st-1", Title: "Learn Go", Category: models.MilestoneSkill, Status: models.MilestoneTodo},
			{ID: "cm-2", StudentID: "st-1", Title: "Summer Internship", Category: models.MilestoneInternship, Status: models.MilestoneCompleted},
		},
	})
}

func TestUpdateMilestoneStatus_ValidTransition(t *testing.T) {
	svc := NewCareerService(careerFixture(), ai.Disabled(), nopLogger)

	m, err := svc.UpdateMilestoneStatus(context.Background(), "cm-1", models.MilestoneInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.MilestoneInProgress, m.Status)
}

func TestUpdateMilestoneStatus_CompletedIsTerminal(t *testing.T) {
	svc := NewCareerService(careerFixture(), ai.Disabled(), nopLogger)

	_, err := svc.UpdateMilestoneStatus(context.Background(), "cm-2", models.MilestoneTodo)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.UpdateMilestoneStatus(context.Background(), "cm-2", models.MilestoneInProgress)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateMilestoneStatus_SameStatusIsNoOp(t *testing.T) {
	svc := NewCareerService(careerFixture(), ai.Disabled(), nopLogger)

	m, err := svc.UpdateMilestoneStatus(context.Background(), "cm-2", models.MilestoneCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.MilestoneCompleted, m.Status)
}

func TestUpdateMilestoneStatus_UnknownStatusOrID(t *testing.T) {
	svc := NewCareerService(careerFixture(), ai.Disabled(), nopLogger)

	_, err := svc.UpdateMilestoneStatus(context.Background(), "cm-1", "paused")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.UpdateMilestoneStatus(context.Background(), "missing", models.MilestoneCompleted)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestRoadmap_FallbackTemplatePersisted(t *testing.T) {
	st := careerFixture()
	svc := NewCareerService(st, ai.Disabled(), nopLogger)

	milestones, err := svc.Roadmap(context.Background(), "st-1", "AI Research")
	require.NoError(t, err)
	require.Len(t, milestones, 4)

	assert.Equal(t, "Master Fundamentals of Computer Science", milestones[0].Title)
	assert.Equal(t, models.MilestoneCompleted, milestones[0].Status)
	assert.Equal(t, `Build a "AI Research" Project`, milestones[1].Title)
	assert.Equal(t, models.MilestoneInProgress, milestones[1].Status)
	assert.Equal(t, "Contribute to Open Source", milestones[2].Title)
	assert.Equal(t, "Apply for Internships", milestones[3].Title)

	for _, m := range milestones {
		assert.Equal(t, "st-1", m.StudentID)
		assert.Equal(t, models.MilestoneSkill, m.Category)
		assert.NotEmpty(t, m.ID)
	}

	// Steps were persisted next to the existing milestones.
	all, err := svc.Milestones(context.Background(), "st-1")
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestRoadmap_GatewayStepsUsed(t *testing.T) {
	st := careerFixture()
	client := &stubClient{reply: `[{"id":"1","title":"Read research papers","status":"todo"},{"id":"2","title":"Join a lab","status":"bogus"}]`}
	svc := NewCareerService(st, client, nopLogger)

	milestones, err := svc.Roadmap(context.Background(), "st-1", "AI Research")
	require.NoError(t, err)
	require.Len(t, milestones, 2)
	assert.Equal(t, "Read research papers", milestones[0].Title)
	// Unknown status from the model normalizes to todo.
	assert.Equal(t, models.MilestoneTodo, milestones[1].Status)
}

func TestRoadmap_Validation(t *testing.T) {
	svc := NewCareerService(careerFixture(), ai.Disabled(), nopLogger)

	_, err := svc.Roadmap(context.Background(), "st-1", "  ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Roadmap(context.Background(), "missing", "AI")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestSkillTip_Fallback(t *testing.T) {
	svc := NewCareerService(careerFixture(), ai.Disabled(), nopLogger)

	tip, err := svc.SkillTip(context.Background(), "Rust")
	require.NoError(t, err)
	assert.Equal(t, "Build a small project using Rust to showcase your ability.", tip)

	_, err = svc.SkillTip(context.Background(), " ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
