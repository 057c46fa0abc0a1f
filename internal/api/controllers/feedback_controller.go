package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume/internal/forms"
	"resume/internal/models/db_models"
	"resume/internal/services"
	"resume/pkg/utils"
)

// FeedbackController is the staff moderation surface. Both endpoints answer
// JSON when the client asks for it and HTML otherwise.
type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

// ModerationView godoc
// @Summary List feedback for moderation
// @Description All feedback of every status, grouped by target, newest first within a group
// @Tags Feedback
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/feedback [get]
func (f *FeedbackController) ModerationView(c *gin.Context) {
	groups, err := f.feedbackService.ModerationView(c.Request.Context())
	if wantsJSON(c) {
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, groups, "Feedback fetched successfully")
		return
	}

	if err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "moderation.html", page(c, gin.H{
		"Title":    "Feedback moderation",
		"Groups":   groups,
		"Statuses": db_models.FeedbackStatuses(),
	}))
}

// SetStatus godoc
// @Summary Change a feedback's moderation status
// @Tags Feedback
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "Feedback ID"
// @Param status formData string true "published, pending or hidden"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/feedback/{id}/status [post]
func (f *FeedbackController) SetStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		f.fail(c, utils.ErrFeedbackNotFound)
		return
	}

	form := forms.NewStatusForm()
	if err := c.Request.ParseForm(); err != nil {
		f.fail(c, utils.NewValidationError("status", "The submitted form could not be read."))
		return
	}
	req, ok := form.Bind(c.Request.PostForm)
	if !ok {
		f.fail(c, &utils.ValidationError{Fields: form.Errors})
		return
	}

	view, err := f.feedbackService.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		f.fail(c, err)
		return
	}

	if wantsJSON(c) {
		utils.RespondSuccess(c, view, "Feedback status updated")
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/feedback")
}

func (f *FeedbackController) fail(c *gin.Context, err error) {
	if wantsJSON(c) {
		utils.HandleServiceError(c, err)
		return
	}
	renderError(c, err)
}
