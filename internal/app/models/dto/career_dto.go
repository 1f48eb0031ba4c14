package dto

// --- Request DTOs ---

// UpdateMilestoneRequest changes a milestone's status
type UpdateMilestoneRequest struct {
	Status string `json:"status" binding:"required,oneof=todo in_progress completed"`
}

// RoadmapRequest asks for a personalized career roadmap
type RoadmapRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	Interest  string `json:"interest" binding:"required"`
}

// SkillTipRequest asks for a practice suggestion for a skill
type SkillTipRequest struct {
	Skill string `json:"skill" binding:"required"`
}

// --- Response DTOs ---

// SkillTipResponse carries the practice suggestion
type SkillTipResponse struct {
	Tip string `json:"tip"`
}
