package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleFaculty RoleType = "FACULTY"
)

// RiskLevel is the qualitative risk scale shared by academic risk
// classification and per-factor risk assessments.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// InterventionStatus tracks where a risk assessment sits in the
// faculty follow-up flow.
type InterventionStatus string

const (
	InterventionPending  InterventionStatus = "pending"
	InterventionActive   InterventionStatus = "active"
	InterventionResolved InterventionStatus = "resolved"
)
