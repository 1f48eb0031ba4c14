package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studentlife/copilot/internal/app/models"
	"github.com/studentlife/copilot/internal/app/models/dto"
	"github.com/studentlife/copilot/internal/app/services"
	"github.com/studentlife/copilot/internal/middleware"
)

// WellnessController handles wellbeing logs, counseling and the
// AI-assisted support endpoints
type WellnessController struct {
	wellnessService *services.WellnessService
}

// NewWellnessController creates a new WellnessController
func NewWellnessController(wellnessService *services.WellnessService) *WellnessController {
	return &WellnessController{wellnessService: wellnessService}
}

// GetLogs handles retrieving a student's wellbeing history
// @Summary Get wellbeing logs
// @Tags wellness
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /wellness/logs/{studentId} [get]
func (c *WellnessController) GetLogs(ctx *gin.Context) {
	logs, err := c.wellnessService.RecentLogs(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(logs, "Logs retrieved successfully"))
}

// CreateLog handles recording a new wellbeing check-in
// @Summary Record a wellbeing check-in
// @Tags wellness
// @Accept json
// @Produce json
// @Param request body dto.CreateWellbeingLogRequest true "Check-in data"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /wellness/logs [post]
func (c *WellnessController) CreateLog(ctx *gin.Context) {
	var req dto.CreateWellbeingLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	log, err := c.wellnessService.AddLog(ctx, models.WellbeingLog{
		StudentID:   req.StudentID,
		MoodScore:   req.MoodScore,
		StressLevel: req.StressLevel,
		SleepHours:  req.SleepHours,
		Notes:       req.Notes,
		Tags:        req.Tags,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(log, "Log recorded successfully"))
}

// GetCounselors handles retrieving the counselor directory
// @Summary Get counselors
// @Tags wellness
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /wellness/counselors [get]
func (c *WellnessController) GetCounselors(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.wellnessService.Counselors(ctx), "Counselors retrieved successfully"))
}

// BookAppointment handles booking a counseling slot
// @Summary Book a counseling appointment
// @Description Books the slot atomically; a taken slot returns 409
// @Tags wellness
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Booking data"
// @Success 201 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /wellness/appointments [post]
func (c *WellnessController) BookAppointment(ctx *gin.Context) {
	var req dto.BookAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	appointment, err := c.wellnessService.BookAppointment(ctx, req.CounselorID, req.StudentID, req.Slot)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(appointment, "Appointment booked successfully"))
}

// GetAppointments handles listing booked appointments
// @Summary Get appointments
// @Tags wellness
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /wellness/appointments [get]
func (c *WellnessController) GetAppointments(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.wellnessService.Appointments(ctx), "Appointments retrieved successfully"))
}

// GetWellbeingStatus handles the wellbeing status check
// @Summary Get a student's wellbeing status
// @Description Classifies recent mood and sleep into a status with advice
// @Tags wellness
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.WellbeingStatusData}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /wellness/status/{studentId} [get]
func (c *WellnessController) GetWellbeingStatus(ctx *gin.Context) {
	snapshot, classification, err := c.wellnessService.WellbeingStatus(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.WellbeingStatusData{
		Status: dto.WellbeingClassification{
			Status: classification.Label,
			Advice: classification.SuggestedAction,
			Color:  classification.Color,
		},
		Snapshot: snapshot,
	}, "Status retrieved successfully"))
}

// MoodSupport handles the mood check-in support message
// @Summary Get a supportive message for a mood
// @Tags wellness
// @Accept json
// @Produce json
// @Param request body dto.MoodSupportRequest true "Mood"
// @Success 200 {object} dto.APIResponse{data=dto.MoodSupportResponse}
// @Router /wellness/mood-support [post]
func (c *WellnessController) MoodSupport(ctx *gin.Context) {
	var req dto.MoodSupportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	message := c.wellnessService.MoodSupport(ctx, req.Mood)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MoodSupportResponse{Message: message}, "Support message generated"))
}

// JournalReflection handles generating a reflection on a journal entry
// @Summary Reflect on a journal entry
// @Tags wellness
// @Accept json
// @Produce json
// @Param request body dto.JournalReflectionRequest true "Journal entry"
// @Success 200 {object} dto.APIResponse{data=dto.JournalReflectionResponse}
// @Router /wellness/journal [post]
func (c *WellnessController) JournalReflection(ctx *gin.Context) {
	var req dto.JournalReflectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	reflection, err := c.wellnessService.JournalReflection(ctx, req.Entry)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.JournalReflectionResponse{Reflection: reflection}, "Reflection generated"))
}
