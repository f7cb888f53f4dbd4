package teacher

import (
	"net/http"
	"strconv"

	"github.com/classroomquiz/backend/internal/auth"
	"github.com/classroomquiz/backend/internal/dto"
	"github.com/classroomquiz/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type TeacherController struct {
	activityService service.ActivityService
	statsService    service.StatsService
}

func NewTeacherController(activityService service.ActivityService, statsService service.StatsService) *TeacherController {
	return &TeacherController{activityService: activityService, statsService: statsService}
}

// Preview godoc
// @Summary (Teacher) Preview a generated question pack
// @Description Generates a 3-question multiple-choice pack for a topic without publishing it.
// @Tags Teacher - Activities
// @Accept json
// @Produce json
// @Param preview_data body dto.QuizPreviewRequest true "Topic, difficulty and grade level"
// @Success 200 {object} dto.QuizPreviewDTO
// @Failure 400 {object} dto.ErrorResponse "Missing topic or invalid difficulty/grade"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a teacher"
// @Router /activities/preview [post]
// @Security BearerAuth
func (c *TeacherController) Preview(ctx *gin.Context) {
	var req dto.QuizPreviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	preview, err := c.activityService.Preview(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, preview)
}

// Publish godoc
// @Summary (Teacher) Publish an activity
// @Description Publishes a quiz with exactly 3 questions, owned by the calling teacher.
// @Tags Teacher - Activities
// @Accept json
// @Produce json
// @Param activity_data body dto.ActivityPublishRequest true "Topic, difficulty, grade level and questions"
// @Success 201 {object} dto.ActivityDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid questions or quiz parameters"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a teacher"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities [post]
// @Security BearerAuth
func (c *TeacherController) Publish(ctx *gin.Context) {
	var req dto.ActivityPublishRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	claims := auth.GetUserFromContext(ctx)
	activity, err := c.activityService.Publish(req, claims.UserID)
	if err != nil {
		if service.IsValidation(err) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("Publish: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to publish activity"})
		return
	}
	ctx.JSON(http.StatusCreated, activity)
}

// ListOwned godoc
// @Summary (Teacher) List own activities
// @Description Lists the calling teacher's activities, newest first.
// @Tags Teacher - Activities
// @Produce json
// @Success 200 {array} dto.ActivityDTO
// @Failure 403 {object} dto.ErrorResponse "Caller is not a teacher"
// @Router /activities [get]
// @Security BearerAuth
func (c *TeacherController) ListOwned(ctx *gin.Context) {
	claims := auth.GetUserFromContext(ctx)
	ctx.JSON(http.StatusOK, c.activityService.ListOwned(claims.UserID))
}

// Delete godoc
// @Summary (Teacher) Delete an activity
// @Description Deletes an activity owned by the calling teacher; all attempts recorded against it are removed as well.
// @Tags Teacher - Activities
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid activity id"
// @Failure 404 {object} dto.ErrorResponse "Activity not found or not owned by caller"
// @Router /activities/{id} [delete]
// @Security BearerAuth
func (c *TeacherController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid activity id"})
		return
	}

	claims := auth.GetUserFromContext(ctx)
	if !c.activityService.Delete(uint(id), claims.UserID) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Activity not found"})
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteResponse{Success: true})
}

// Stats godoc
// @Summary (Teacher) Per-student accuracy dashboard
// @Description Aggregates accuracy per student across the teacher's activities, broken down by difficulty tier. Only each student's most recent attempt per activity counts.
// @Tags Teacher - Statistics
// @Produce json
// @Success 200 {object} dto.TeacherStatsDTO
// @Failure 403 {object} dto.ErrorResponse "Caller is not a teacher"
// @Router /activities/teacher/stats [get]
// @Security BearerAuth
func (c *TeacherController) Stats(ctx *gin.Context) {
	claims := auth.GetUserFromContext(ctx)
	ctx.JSON(http.StatusOK, c.statsService.TeacherStats(claims.UserID))
}
