package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume/internal/forms"
	"resume/internal/models/db_models"
	"resume/internal/models/response_models"
	"resume/internal/services"
	"resume/pkg/middleware"
	"resume/pkg/utils"
)

// FeedbackHost is held by a page controller to attach a feedback block to
// the page. Implementations differ only in how they resolve the target.
type FeedbackHost interface {
	ResolveTarget(c *gin.Context) (db_models.TargetRef, error)
	// RenderContext returns the feedback keys for the page template. A nil
	// form is replaced by an empty one for the current actor.
	RenderContext(c *gin.Context, form *forms.FeedbackForm) (gin.H, error)
	// HandleSubmission redirects back to the page on success and calls
	// rerender with the bound form when the input is invalid.
	HandleSubmission(c *gin.Context, rerender func(form *forms.FeedbackForm))
}

type feedbackBlock struct {
	feedbackService services.FeedbackServiceInterface
	log             *zap.Logger
}

func (b *feedbackBlock) FeedbackQueryset(c *gin.Context, target db_models.TargetRef) ([]response_models.FeedbackView, error) {
	return b.feedbackService.ListPublished(c.Request.Context(), target)
}

// FeedbackForm builds the form schema for the current actor.
func (b *feedbackBlock) FeedbackForm(c *gin.Context) *forms.FeedbackForm {
	return forms.NewFeedbackForm(middleware.CurrentActor(c).IsAuthenticated())
}

func (b *feedbackBlock) contextData(c *gin.Context, target db_models.TargetRef, form *forms.FeedbackForm) (gin.H, error) {
	feedbacks, err := b.FeedbackQueryset(c, target)
	if err != nil {
		return nil, err
	}
	if form == nil {
		form = b.FeedbackForm(c)
	}
	return gin.H{
		"Feedbacks":      feedbacks,
		"FeedbackForm":   form,
		"FeedbackAction": c.Request.URL.Path,
	}, nil
}

func (b *feedbackBlock) handle(c *gin.Context, target db_models.TargetRef, rerender func(*forms.FeedbackForm)) {
	if err := c.Request.ParseForm(); err != nil {
		renderError(c, utils.NewValidationError(formErrorsKey, "The submitted form could not be read."))
		return
	}

	actor := middleware.CurrentActor(c)
	form := b.FeedbackForm(c)
	sub, ok := form.Bind(c.Request.PostForm)
	if ok {
		_, err := b.feedbackService.Submit(c.Request.Context(), target, actor, sub)
		if err == nil {
			c.Redirect(http.StatusSeeOther, c.Request.URL.Path)
			return
		}

		var verr *utils.ValidationError
		if !errors.As(err, &verr) || errors.Is(err, utils.ErrUnresolvedTarget) {
			b.log.Error("submit feedback", zap.Stringer("target", target), zap.Error(err))
			renderError(c, err)
			return
		}
		for field, msgs := range verr.Fields {
			if field != "content" && field != "author_name" {
				field = formErrorsKey
			}
			for _, msg := range msgs {
				form.AddError(field, msg)
			}
		}
	}
	rerender(form)
}

const formErrorsKey = "__all__"

// SingleTargetFeedbackHost attaches feedback to the one entity named by the
// :id route parameter.
type SingleTargetFeedbackHost struct {
	*feedbackBlock
	EntityType string
}

func NewSingleTargetFeedbackHost(feedbackService services.FeedbackServiceInterface, entityType string, log *zap.Logger) *SingleTargetFeedbackHost {
	return &SingleTargetFeedbackHost{
		feedbackBlock: &feedbackBlock{feedbackService: feedbackService, log: log},
		EntityType:    entityType,
	}
}

func (h *SingleTargetFeedbackHost) ResolveTarget(c *gin.Context) (db_models.TargetRef, error) {
	id, err := parseID(c)
	if err != nil {
		return db_models.TargetRef{}, err
	}
	return db_models.ObjectTarget(h.EntityType, id), nil
}

func (h *SingleTargetFeedbackHost) RenderContext(c *gin.Context, form *forms.FeedbackForm) (gin.H, error) {
	target, err := h.ResolveTarget(c)
	if err != nil {
		return nil, err
	}
	return h.contextData(c, target, form)
}

func (h *SingleTargetFeedbackHost) HandleSubmission(c *gin.Context, rerender func(form *forms.FeedbackForm)) {
	target, err := h.ResolveTarget(c)
	if err != nil {
		renderError(c, err)
		return
	}
	h.handle(c, target, rerender)
}

// CollectionTargetFeedbackHost attaches feedback to a whole section.
type CollectionTargetFeedbackHost struct {
	*feedbackBlock
	EntityType string
}

func NewCollectionTargetFeedbackHost(feedbackService services.FeedbackServiceInterface, entityType string, log *zap.Logger) *CollectionTargetFeedbackHost {
	return &CollectionTargetFeedbackHost{
		feedbackBlock: &feedbackBlock{feedbackService: feedbackService, log: log},
		EntityType:    entityType,
	}
}

func (h *CollectionTargetFeedbackHost) ResolveTarget(*gin.Context) (db_models.TargetRef, error) {
	return db_models.CollectionTarget(h.EntityType), nil
}

func (h *CollectionTargetFeedbackHost) RenderContext(c *gin.Context, form *forms.FeedbackForm) (gin.H, error) {
	target, _ := h.ResolveTarget(c)
	return h.contextData(c, target, form)
}

func (h *CollectionTargetFeedbackHost) HandleSubmission(c *gin.Context, rerender func(form *forms.FeedbackForm)) {
	target, _ := h.ResolveTarget(c)
	h.handle(c, target, rerender)
}

// parseID reads the :id route parameter. Malformed ids are treated as
// missing entities.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, utils.ErrEntityNotFound
	}
	return uint(id), nil
}

var (
	_ FeedbackHost = (*SingleTargetFeedbackHost)(nil)
	_ FeedbackHost = (*CollectionTargetFeedbackHost)(nil)
)
