package student

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/classroomquiz/backend/internal/auth"
	"github.com/classroomquiz/backend/internal/dto"
	"github.com/classroomquiz/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type StudentController struct {
	activityService   service.ActivityService
	submissionService service.SubmissionService
	statsService      service.StatsService
}

func NewStudentController(
	activityService service.ActivityService,
	submissionService service.SubmissionService,
	statsService service.StatsService,
) *StudentController {
	return &StudentController{
		activityService:   activityService,
		submissionService: submissionService,
		statsService:      statsService,
	}
}

// PublicList godoc
// @Summary List published activities
// @Description Lists all published activities with correct answers stripped.
// @Tags Student - Activities
// @Produce json
// @Success 200 {array} dto.ActivityDTO
// @Router /activities/public [get]
func (c *StudentController) PublicList(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.activityService.ListPublic())
}

// Submit godoc
// @Summary (Student) Submit answers for an activity
// @Description Scores the submitted answers and records a new attempt. Missing or non-numeric answers count as unanswered, never as errors.
// @Tags Student - Activities
// @Accept json
// @Produce json
// @Param id path int true "Activity ID"
// @Param answers body dto.AttemptSubmitRequest true "Question id to selected option index"
// @Success 200 {object} dto.SubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid activity id or activity has no questions"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a student"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Router /activities/{id}/submit [post]
// @Security BearerAuth
func (c *StudentController) Submit(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid activity id"})
		return
	}

	var req dto.AttemptSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	claims := auth.GetUserFromContext(ctx)
	student := service.StudentIdentity{ID: claims.UserID, Name: claims.Name, Email: claims.Email}

	result, err := c.submissionService.Submit(uint(id), student, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Activity not found"})
		case service.IsValidation(err):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Uint64("activityID", id).Msg("Submit: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit answers"})
		}
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// History godoc
// @Summary (Student) Attempt history
// @Description Lists every attempt of the calling student, newest first, with per-question detail. Attempts on deleted activities are omitted.
// @Tags Student - Activities
// @Produce json
// @Success 200 {object} dto.StudentHistoryDTO
// @Failure 403 {object} dto.ErrorResponse "Caller is not a student"
// @Router /activities/student/history [get]
// @Security BearerAuth
func (c *StudentController) History(ctx *gin.Context) {
	claims := auth.GetUserFromContext(ctx)
	ctx.JSON(http.StatusOK, c.statsService.StudentHistory(claims.UserID))
}
