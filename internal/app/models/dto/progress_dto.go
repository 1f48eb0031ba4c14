package dto

import "github.com/studentlife/copilot/internal/app/models"

// --- Request DTOs ---

// MarkSolvedRequest credits a student with solving a problem
type MarkSolvedRequest struct {
	StudentID string `json:"studentId" binding:"required"`
}

// CreateFinanceEntryRequest represents a new spending record
type CreateFinanceEntryRequest struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Date     string  `json:"date"`
}

// --- Response DTOs ---

// FinanceSummaryResponse returns the ledger with its running total
type FinanceSummaryResponse struct {
	Entries    []models.FinanceEntry `json:"entries"`
	TotalSpent float64               `json:"totalSpent"`
}

// QuickInsightResponse carries the dashboard productivity tip
type QuickInsightResponse struct {
	Tip string `json:"tip"`
}
