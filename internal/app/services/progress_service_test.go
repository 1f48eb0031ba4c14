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

func progressFixture() *store.Store {
	return newTestStore(store.Data{
		Students: []models.Student{
			{User: models.User{ID: "st-1", Name: "Alex Rivera", Role: models.RoleStudent}, XP: 1000},
		},
		Problems: []models.CodingProblem{
			{ID: "cp-1", Title: "Two Sum", Difficulty: models.DifficultyEasy},
			{ID: "cp-2", Title: "LRU Cache", Difficulty: models.DifficultyMedium, Solved: true},
			{ID: "cp-3", Title: "Merge K Sorted Lists", Difficulty: models.DifficultyHard},
		},
		Badges: []models.Badge{
			{ID: "algo_expert", Name: "Algo Expert"},
		},
		Leaderboard: []models.LeaderboardEntry{
			{Name: "Alex Rivera", XP: 1000},
			{Name: "Priya Patel", XP: 1400},
		},
		Finance: []models.FinanceEntry{
			{ID: "f-1", Category: "Rent", Amount: 400},
			{ID: "f-2", Category: "Food", Amount: 100},
		},
	})
}

func TestMarkSolved_AwardsXPByDifficulty(t *testing.T) {
	st := progressFixture()
	svc := NewProgressService(st, ai.Disabled(), nopLogger)

	problem, err := svc.MarkSolved(context.Background(), "cp-1", "st-1")
	require.NoError(t, err)
	assert.True(t, problem.Solved)

	student, err := st.StudentByID("st-1")
	require.NoError(t, err)
	assert.Equal(t, 1050, student.XP)
}

func TestMarkSolved_RepeatIsNoOpForXP(t *testing.T) {
	st := progressFixture()
	svc := NewProgressService(st, ai.Disabled(), nopLogger)

	_, err := svc.MarkSolved(context.Background(), "cp-2", "st-1")
	require.NoError(t, err)

	student, err := st.StudentByID("st-1")
	require.NoError(t, err)
	assert.Equal(t, 1000, student.XP)
}

func TestMarkSolved_HardProblemUnlocksBadge(t *testing.T) {
	st := progressFixture()
	svc := NewProgressService(st, ai.Disabled(), nopLogger)

	_, err := svc.MarkSolved(context.Background(), "cp-3", "st-1")
	require.NoError(t, err)

	student, err := st.StudentByID("st-1")
	require.NoError(t, err)
	assert.Equal(t, 1200, student.XP)

	badges := svc.Badges(context.Background())
	require.Len(t, badges, 1)
	assert.True(t, badges[0].Unlocked)
}

func TestMarkSolved_UnknownIDs(t *testing.T) {
	svc := NewProgressService(progressFixture(), ai.Disabled(), nopLogger)

	_, err := svc.MarkSolved(context.Background(), "missing", "st-1")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = svc.MarkSolved(context.Background(), "cp-1", "missing")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestLeaderboard_SortedByXPDescending(t *testing.T) {
	svc := NewProgressService(progressFixture(), ai.Disabled(), nopLogger)

	rows := svc.Leaderboard(context.Background())
	require.Len(t, rows, 2)
	assert.Equal(t, "Priya Patel", rows[0].Name)
	assert.Equal(t, "Alex Rivera", rows[1].Name)
}

func TestFinanceLedger(t *testing.T) {
	svc := NewProgressService(progressFixture(), ai.Disabled(), nopLogger)

	entry, err := svc.AddFinanceEntry(context.Background(), models.FinanceEntry{Category: "Books", Amount: 50})
	require.NoError(t, err)
	assert.Equal(t, "id-1", entry.ID)
	assert.Equal(t, "2025-03-10", entry.Date)

	assert.InDelta(t, 550, svc.TotalSpent(context.Background()), 0.001)
	assert.Len(t, svc.FinanceEntries(context.Background()), 3)
}

func TestAddFinanceEntry_Validation(t *testing.T) {
	svc := NewProgressService(progressFixture(), ai.Disabled(), nopLogger)

	_, err := svc.AddFinanceEntry(context.Background(), models.FinanceEntry{Category: " ", Amount: 10})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.AddFinanceEntry(context.Background(), models.FinanceEntry{Category: "Food", Amount: 0})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestQuickInsight_FallsBackToRotation(t *testing.T) {
	svc := NewProgressService(progressFixture(), ai.Disabled(), nopLogger)

	tip := svc.QuickInsight(context.Background())
	assert.Contains(t, insightFallbacks, tip)
}

func TestQuickInsight_UsesGatewayReply(t *testing.T) {
	svc := NewProgressService(progressFixture(), &stubClient{reply: " Study in short bursts. "}, nopLogger)

	assert.Equal(t, "Study in short bursts.", svc.QuickInsight(context.Background()))
}
