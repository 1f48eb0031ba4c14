package services

import (
	"context"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"

	"github.com/studentlife/copilot/internal/ai"
	"github.com/studentlife/copilot/internal/app/models"
	"github.com/studentlife/copilot/internal/pkg/apperrors"
	"github.com/studentlife/copilot/internal/store"
)

// xpByDifficulty is the XP awarded for solving a coding problem.
var xpByDifficulty = map[models.ProblemDifficulty]int{
	models.DifficultyEasy:   50,
	models.DifficultyMedium: 100,
	models.DifficultyHard:   200,
}

// ProgressService handles the coding screen (problems, badges,
// leaderboard), the finance ledger, and the dashboard's quick insight.
type ProgressService struct {
	store  *store.Store
	client ai.Client
	logger zerolog.Logger
}

// NewProgressService creates a new progress service instance
func NewProgressService(st *store.Store, client ai.Client, lgr zerolog.Logger) *ProgressService {
	return &ProgressService{store: st, client: client, logger: lgr}
}

// Problems returns the practice problem set.
func (s *ProgressService) Problems(ctx context.Context) []models.CodingProblem {
	return s.store.Problems()
}

// MarkSolved flags a problem solved and credits the student with XP.
// Solving the same problem again is a no-op for XP.
func (s *ProgressService) MarkSolved(ctx context.Context, problemID, studentID string) (models.CodingProblem, error) {
	if _, err := s.store.StudentByID(studentID); err != nil {
		return models.CodingProblem{}, err
	}

	already := false
	for _, p := range s.store.Problems() {
		if p.ID == problemID {
			already = p.Solved
		}
	}

	problem, err := s.store.SetProblemSolved(problemID, true)
	if err != nil {
		return models.CodingProblem{}, err
	}

	if !already {
		xp := xpByDifficulty[problem.Difficulty]
		if _, err := s.store.AddStudentXP(studentID, xp); err != nil {
			return models.CodingProblem{}, err
		}
		s.logger.Info().
			Str("studentId", studentID).
			Str("problemId", problemID).
			Int("xp", xp).
			Msg("problem solved")
		s.maybeUnlockBadges()
	}
	return problem, nil
}

// maybeUnlockBadges marks algo_expert once every hard problem is solved.
func (s *ProgressService) maybeUnlockBadges() {
	for _, p := range s.store.Problems() {
		if p.Difficulty == models.DifficultyHard && !p.Solved {
			return
		}
	}
	if _, err := s.store.UnlockBadge("algo_expert"); err != nil {
		s.logger.Warn().Err(err).Msg("failed to unlock badge")
	}
}

// Badges returns the badge catalog.
func (s *ProgressService) Badges(ctx context.Context) []models.Badge {
	return s.store.Badges()
}

// Leaderboard returns the XP leaderboard, highest first.
func (s *ProgressService) Leaderboard(ctx context.Context) []models.LeaderboardEntry {
	rows := s.store.Leaderboard()
	for i := 1; i < len(rows); i++ {
		for j := i; j > 0 && rows[j].XP > rows[j-1].XP; j-- {
			rows[j], rows[j-1] = rows[j-1], rows[j]
		}
	}
	return rows
}

// FinanceEntries returns the session spending ledger.
func (s *ProgressService) FinanceEntries(ctx context.Context) []models.FinanceEntry {
	return s.store.FinanceEntries()
}

// AddFinanceEntry appends a spending record to the ledger.
func (s *ProgressService) AddFinanceEntry(ctx context.Context, entry models.FinanceEntry) (models.FinanceEntry, error) {
	if strings.TrimSpace(entry.Category) == "" {
		return models.FinanceEntry{}, apperrors.NewValidationError("category cannot be empty")
	}
	if entry.Amount <= 0 {
		return models.FinanceEntry{}, apperrors.NewValidationError("amount must be positive")
	}
	if entry.Date == "" {
		entry.Date = s.store.Now().Format("2006-01-02")
	}
	return s.store.AddFinanceEntry(entry), nil
}

// TotalSpent sums the ledger.
func (s *ProgressService) TotalSpent(ctx context.Context) float64 {
	var total float64
	for _, e := range s.store.FinanceEntries() {
		total += e.Amount
	}
	return total
}

// insightFallbacks rotate when the gateway is unreachable.
var insightFallbacks = []string{
	"Review your lecture notes within 24 hours to boost retention.",
	"Take a 5-minute break every hour to stay fresh.",
	"Hydration improves cognitive function by 15%. Drink water!",
	"Sleep is when your brain consolidates memory. Aim for 7+ hours.",
}

// QuickInsight returns a short productivity tip for the dashboard.
func (s *ProgressService) QuickInsight(ctx context.Context) string {
	prompt := "Give me a single short, motivating, and unique productivity tip for a university student. Max 20 words."

	text, err := s.client.Generate(ctx, prompt, ai.FormatText)
	if err != nil || strings.TrimSpace(text) == "" {
		return insightFallbacks[rand.Intn(len(insightFallbacks))]
	}
	return strings.TrimSpace(text)
}
