package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/studentlife/copilot/internal/ai"
	"github.com/studentlife/copilot/internal/app/models"
)

// Classification is the unified output of both classification paths.
// The API layer re-maps these fields onto the response shapes the two
// call sites expect (riskLevel/reason/intervention for academic risk,
// status/advice/color for wellbeing).
type Classification struct {
	Label           string
	Rationale       string
	SuggestedAction string
	Severity        models.RiskLevel
	Color           string
}

// AcademicInput is the narrow input for dropout-risk classification.
type AcademicInput struct {
	GPA        float64
	Attendance float64
}

// Classifier maps quantitative inputs to qualitative labels with a
// human-readable rationale.
type Classifier interface {
	ClassifyAcademicRisk(ctx context.Context, in AcademicInput) (Classification, error)
	ClassifyWellbeing(ctx context.Context, snap models.HolisticSnapshot) (Classification, error)
}

// Threshold table for the deterministic heuristics. Both classification
// paths must agree on these boundaries.
const (
	gpaHighRiskBelow      = 2.5
	attendanceMediumBelow = 80.0
	moodAtRiskBelow       = 2.5
	sleepAtRiskBelowHours = 5.0
	moodCopingBelow       = 3.5
)

// --- Local heuristic path ---

// LocalHeuristicClassifier is the always-available deterministic
// classifier. It is both a standalone strategy and the fallback for the
// remote path.
type LocalHeuristicClassifier struct{}

// NewLocalHeuristicClassifier creates a new local classifier instance
func NewLocalHeuristicClassifier() *LocalHeuristicClassifier {
	return &LocalHeuristicClassifier{}
}

// ClassifyAcademicRisk applies the fixed dropout-risk thresholds.
// GPA below 2.5 dominates regardless of attendance.
func (c *LocalHeuristicClassifier) ClassifyAcademicRisk(_ context.Context, in AcademicInput) (Classification, error) {
	switch {
	case in.GPA < gpaHighRiskBelow:
		return Classification{
			Label:           string(models.RiskHigh),
			Rationale:       fmt.Sprintf("GPA has dropped below 2.5 (currently %.1f) and attendance is irregular.", in.GPA),
			SuggestedAction: "Schedule an academic counseling session immediately.",
			Severity:        models.RiskHigh,
		}, nil
	case in.Attendance < attendanceMediumBelow:
		return Classification{
			Label:           string(models.RiskMedium),
			Rationale:       fmt.Sprintf("Attendance has fallen below 80%% (currently %.0f%%) in major courses.", in.Attendance),
			SuggestedAction: "Send a check-in email to understand potential barriers.",
			Severity:        models.RiskMedium,
		}, nil
	default:
		return Classification{
			Label:           string(models.RiskLow),
			Rationale:       "Student is performing well across all metrics.",
			SuggestedAction: "Encourage to join the honors program.",
			Severity:        models.RiskLow,
		}, nil
	}
}

// ClassifyWellbeing applies the fixed holistic-wellbeing thresholds.
// Low mood and short sleep are independent "At Risk" triggers.
func (c *LocalHeuristicClassifier) ClassifyWellbeing(_ context.Context, snap models.HolisticSnapshot) (Classification, error) {
	mood := snap.Wellness.AvgMood
	sleep := snap.Wellness.AvgSleep

	switch {
	case mood < moodAtRiskBelow || sleep < sleepAtRiskBelowHours:
		return Classification{
			Label:           "At Risk",
			Rationale:       "Your recent sleep and mood logs indicate high stress.",
			SuggestedAction: "Your recent sleep and mood logs indicate high stress. Consider a counseling session.",
			Severity:        models.RiskHigh,
			Color:           "orange",
		}, nil
	case mood < moodCopingBelow:
		return Classification{
			Label:           "Coping",
			Rationale:       "Mood has been trending below average this week.",
			SuggestedAction: "You're doing okay, but try to prioritize sleep this week.",
			Severity:        models.RiskMedium,
			Color:           "yellow",
		}, nil
	default:
		return Classification{
			Label:           "Thriving",
			Rationale:       "Mood and sleep are both in a healthy range.",
			SuggestedAction: "Great balance! Keep maintaining your current routine.",
			Severity:        models.RiskLow,
			Color:           "green",
		}, nil
	}
}

// --- Remote (AI-delegated) path ---

// RemoteClassifier forwards the structured metrics to the AI gateway
// with a fixed prompt template and parses its strict-JSON reply.
type RemoteClassifier struct {
	client ai.Client
}

// NewRemoteClassifier creates a new remote classifier instance
func NewRemoteClassifier(client ai.Client) *RemoteClassifier {
	return &RemoteClassifier{client: client}
}

type remoteRiskReply struct {
	RiskLevel    string `json:"riskLevel"`
	Reason       string `json:"reason"`
	Intervention string `json:"intervention"`
}

// ClassifyAcademicRisk delegates to the gateway. Any transport failure
// or malformed reply is returned as an error for the fallback layer.
func (c *RemoteClassifier) ClassifyAcademicRisk(ctx context.Context, in AcademicInput) (Classification, error) {
	prompt := fmt.Sprintf(`Analyze this student data for dropout risk:
GPA: %.2f
Attendance: %.0f%%

Return strictly JSON: { "riskLevel": "Low"|"Medium"|"High", "reason": "string", "intervention": "string" }`,
		in.GPA, in.Attendance)

	raw, err := c.client.Generate(ctx, prompt, ai.FormatJSON)
	if err != nil {
		return Classification{}, err
	}

	var reply remoteRiskReply
	if err := json.Unmarshal([]byte(ai.CleanJSON(raw)), &reply); err != nil {
		return Classification{}, fmt.Errorf("unparseable risk reply: %w", err)
	}

	level := models.RiskLevel(reply.RiskLevel)
	if level != models.RiskLow && level != models.RiskMedium && level != models.RiskHigh {
		return Classification{}, fmt.Errorf("unexpected risk level %q", reply.RiskLevel)
	}

	return Classification{
		Label:           reply.RiskLevel,
		Rationale:       reply.Reason,
		SuggestedAction: reply.Intervention,
		Severity:        level,
	}, nil
}

type remoteWellbeingReply struct {
	Status string `json:"status"`
	Advice string `json:"advice"`
	Color  string `json:"color"`
}

// ClassifyWellbeing delegates to the gateway with the full snapshot.
func (c *RemoteClassifier) ClassifyWellbeing(ctx context.Context, snap models.HolisticSnapshot) (Classification, error) {
	prompt := fmt.Sprintf(`Analyze this student's holistic data:
Academics: Attendance %.0f%%, Lowest Grade %d%%
Sleep (Avg): %.1f hours
Mood (Avg 1-5): %.1f

Determine their wellbeing status (Thriving, Coping, At Risk, Burned Out).
Provide 1 short sentence of personalized advice connecting the data points.

Respond with strictly JSON: { "status": "string", "advice": "string", "color": "green|yellow|orange|red" }`,
		snap.Academic.AvgAttendance, snap.Academic.LowestGrade,
		snap.Wellness.AvgSleep, snap.Wellness.AvgMood)

	raw, err := c.client.Generate(ctx, prompt, ai.FormatJSON)
	if err != nil {
		return Classification{}, err
	}

	var reply remoteWellbeingReply
	if err := json.Unmarshal([]byte(ai.CleanJSON(raw)), &reply); err != nil {
		return Classification{}, fmt.Errorf("unparseable wellbeing reply: %w", err)
	}
	if reply.Status == "" {
		return Classification{}, fmt.Errorf("wellbeing reply missing status")
	}

	return Classification{
		Label:           reply.Status,
		Rationale:       reply.Advice,
		SuggestedAction: reply.Advice,
		Severity:        severityForColor(reply.Color),
		Color:           reply.Color,
	}, nil
}

func severityForColor(color string) models.RiskLevel {
	switch color {
	case "orange", "red":
		return models.RiskHigh
	case "yellow":
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// --- Fallback composition ---

// FallbackClassifier tries the remote path first, bounded by a timeout,
// and recovers through the local heuristic on any failure. An upstream
// outage is therefore never visible to callers.
type FallbackClassifier struct {
	remote  Classifier
	local   Classifier
	timeout time.Duration
	logger  zerolog.Logger
}

// NewFallbackClassifier composes the two strategies.
func NewFallbackClassifier(remote, local Classifier, timeout time.Duration, lgr zerolog.Logger) *FallbackClassifier {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &FallbackClassifier{remote: remote, local: local, timeout: timeout, logger: lgr}
}

// ClassifyAcademicRisk delegates remote-then-local.
func (c *FallbackClassifier) ClassifyAcademicRisk(ctx context.Context, in AcademicInput) (Classification, error) {
	rctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.remote.ClassifyAcademicRisk(rctx, in)
	if err == nil {
		return result, nil
	}
	c.logger.Warn().Err(err).Msg("remote risk classification failed, using local heuristic")
	return c.local.ClassifyAcademicRisk(ctx, in)
}

// ClassifyWellbeing delegates remote-then-local.
func (c *FallbackClassifier) ClassifyWellbeing(ctx context.Context, snap models.HolisticSnapshot) (Classification, error) {
	rctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.remote.ClassifyWellbeing(rctx, snap)
	if err == nil {
		return result, nil
	}
	c.logger.Warn().Err(err).Msg("remote wellbeing classification failed, using local heuristic")
	return c.local.ClassifyWellbeing(ctx, snap)
}
