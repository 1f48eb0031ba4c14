package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studentlife/copilot/internal/app/models/dto"
	"github.com/studentlife/copilot/internal/app/services"
	"github.com/studentlife/copilot/internal/middleware"
	"github.com/studentlife/copilot/internal/store"
)

// StudentController handles student profile and snapshot endpoints
type StudentController struct {
	store       *store.Store
	aggregation *services.AggregationService
}

// NewStudentController creates a new StudentController
func NewStudentController(st *store.Store, aggregation *services.AggregationService) *StudentController {
	return &StudentController{store: st, aggregation: aggregation}
}

// GetStudents handles retrieving all students
// @Summary Get all students
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Students(), "Students retrieved successfully"))
}

// GetStudent handles retrieving a single student by ID
// @Summary Get a student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.store.StudentByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, "Student retrieved successfully"))
}

// GetCourseCatalog handles retrieving the course catalog
// @Summary Get the course catalog
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /courses [get]
func (c *StudentController) GetCourseCatalog(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Courses(), "Courses retrieved successfully"))
}

// GetSnapshot handles retrieving a student's cross-domain snapshot
// @Summary Get a student's holistic snapshot
// @Description Aggregates academics, coding, finance and wellness into one view
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.HolisticSnapshot}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /students/{id}/snapshot [get]
func (c *StudentController) GetSnapshot(ctx *gin.Context) {
	snapshot, err := c.aggregation.Snapshot(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(snapshot, "Snapshot retrieved successfully"))
}
