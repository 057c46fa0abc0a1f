package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume/internal/forms"
	"resume/internal/models/response_models"
	"resume/internal/services"
)

// SectionsController serves the resume sections under /data. Each section
// page carries a feedback block: the list page collects feedback about the
// section, the detail page about one entry.
type SectionsController struct {
	resumeService   services.ResumeServiceInterface
	feedbackService services.FeedbackServiceInterface
	log             *zap.Logger
}

func NewSectionsController(
	resumeService services.ResumeServiceInterface,
	feedbackService services.FeedbackServiceInterface,
	log *zap.Logger,
) *SectionsController {
	return &SectionsController{
		resumeService:   resumeService,
		feedbackService: feedbackService,
		log:             log,
	}
}

// List handles GET and POST on /data/<section>.
func (s *SectionsController) List(sec services.Section) gin.HandlerFunc {
	host := NewCollectionTargetFeedbackHost(s.feedbackService, sec.EntityType, s.log)

	render := func(c *gin.Context, form *forms.FeedbackForm) {
		entries, err := s.resumeService.List(c.Request.Context(), sec.EntityType)
		if err != nil {
			renderError(c, err)
			return
		}
		data, err := host.RenderContext(c, form)
		if err != nil {
			renderError(c, err)
			return
		}
		data["Title"] = sec.Title
		data["Slug"] = sec.Slug
		data["Entries"] = entries
		c.HTML(http.StatusOK, "section_list.html", page(c, data))
	}

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodPost {
			host.HandleSubmission(c, func(form *forms.FeedbackForm) { render(c, form) })
			return
		}
		render(c, nil)
	}
}

// Detail handles GET and POST on /data/<section>/:id. A missing entry is a
// 404 for both methods.
func (s *SectionsController) Detail(sec services.Section) gin.HandlerFunc {
	host := NewSingleTargetFeedbackHost(s.feedbackService, sec.EntityType, s.log)

	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			renderError(c, err)
			return
		}
		entry, err := s.resumeService.Get(c.Request.Context(), sec.EntityType, id)
		if err != nil {
			renderError(c, err)
			return
		}

		render := func(form *forms.FeedbackForm) {
			siblings, err := s.siblings(c, sec, entry.ID)
			if err != nil {
				renderError(c, err)
				return
			}
			data, err := host.RenderContext(c, form)
			if err != nil {
				renderError(c, err)
				return
			}
			data["Title"] = entry.Name
			data["Slug"] = sec.Slug
			data["SectionTitle"] = sec.Title
			data["Entry"] = entry
			data["Siblings"] = siblings
			c.HTML(http.StatusOK, "section_detail.html", page(c, data))
		}

		if c.Request.Method == http.MethodPost {
			host.HandleSubmission(c, render)
			return
		}
		render(nil)
	}
}

func (s *SectionsController) siblings(c *gin.Context, sec services.Section, currentID uint) ([]response_models.ResumeEntry, error) {
	all, err := s.resumeService.List(c.Request.Context(), sec.EntityType)
	if err != nil {
		return nil, err
	}
	out := make([]response_models.ResumeEntry, 0, len(all))
	for _, e := range all {
		if e.ID != currentID {
			out = append(out, e)
		}
	}
	return out, nil
}
