package models

// MilestoneCategory groups career milestones.
type MilestoneCategory string

const (
	MilestoneInternship MilestoneCategory = "internship"
	MilestoneSkill      MilestoneCategory = "skill"
	MilestoneProject    MilestoneCategory = "project"
)

// MilestoneStatus is the lifecycle state of a career milestone.
// Valid transitions: todo -> in_progress -> completed. Completed is
// terminal; there are no regression transitions.
type MilestoneStatus string

const (
	MilestoneTodo       MilestoneStatus = "todo"
	MilestoneInProgress MilestoneStatus = "in_progress"
	MilestoneCompleted  MilestoneStatus = "completed"
)

// CareerMilestone is one step on a student's career roadmap.
type CareerMilestone struct {
	ID           string            `json:"id"`
	StudentID    string            `json:"studentId"`
	Title        string            `json:"title"`
	Category     MilestoneCategory `json:"category"`
	Status       MilestoneStatus   `json:"status"`
	AISuggestion string            `json:"aiSuggestion,omitempty"`
}
