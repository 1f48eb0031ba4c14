package dto

// --- Request DTOs ---

// UpdateInterventionRequest moves an assessment through the follow-up flow
type UpdateInterventionRequest struct {
	Status string `json:"status" binding:"required,oneof=pending active resolved"`
}

// --- Response DTOs ---

// AcademicRiskResponse mirrors the dropout-risk classifier output shape.
type AcademicRiskResponse struct {
	RiskLevel    string `json:"riskLevel"`
	Reason       string `json:"reason"`
	Intervention string `json:"intervention"`
}
