package models

// ProblemDifficulty rates coding practice problems.
type ProblemDifficulty string

const (
	DifficultyEasy   ProblemDifficulty = "Easy"
	DifficultyMedium ProblemDifficulty = "Medium"
	DifficultyHard   ProblemDifficulty = "Hard"
)

// CodingProblem is a practice problem on the coding screen. The demo set
// is global, not scoped per student.
type CodingProblem struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Difficulty ProblemDifficulty `json:"difficulty"`
	Topic      string            `json:"topic"`
	Solved     bool              `json:"solved"`
}

// Badge is a gamification achievement.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// LeaderboardEntry is one row of the XP leaderboard.
type LeaderboardEntry struct {
	Name   string `json:"name"`
	XP     int    `json:"xp"`
	Avatar string `json:"avatar"`
}

// FinanceEntry is one spending record in the session ledger.
type FinanceEntry struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}
