package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentlife/copilot/internal/app/models/dto"
	"github.com/studentlife/copilot/internal/pkg/apperrors"
)

func handleOnRecorder(t *testing.T, err error) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleAPIError(c, err)

	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHandleAPIError_NotFound(t *testing.T) {
	rec, body := handleOnRecorder(t, apperrors.ErrStudentNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, body.Error.Code)
	assert.Equal(t, "student not found", body.Error.Message)
}

func TestHandleAPIError_Validation(t *testing.T) {
	rec, body := handleOnRecorder(t, apperrors.NewValidationError("mood score must be between 1 and 5"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
	assert.Equal(t, "mood score must be between 1 and 5", body.Error.Message)
}

func TestHandleAPIError_ModerationReasonVerbatim(t *testing.T) {
	rec, body := handleOnRecorder(t, apperrors.NewModerationError("Targets another student."))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, dto.ErrorCodeContentRejected, body.Error.Code)
	assert.Equal(t, "Targets another student.", body.Error.Message)
}

func TestHandleAPIError_SlotTaken(t *testing.T) {
	rec, body := handleOnRecorder(t, apperrors.ErrSlotTaken)
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, dto.ErrorCodeSlotUnavailable, body.Error.Code)
}

func TestHandleAPIError_UnknownErrorIsInternal(t *testing.T) {
	rec, body := handleOnRecorder(t, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, dto.ErrorCodeInternalServer, body.Error.Code)
	// Internal details never leak to the client.
	assert.Equal(t, "Internal server error", body.Error.Message)
}
