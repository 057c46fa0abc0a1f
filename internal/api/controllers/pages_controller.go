package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume/internal/forms"
	"resume/internal/services"
	"resume/pkg/config"
	"resume/pkg/middleware"
	"resume/pkg/utils"
)

type PagesController struct {
	resumeService services.ResumeServiceInterface
	site          config.SiteConfig
	log           *zap.Logger
}

func NewPagesController(resumeService services.ResumeServiceInterface, cfg *config.Config, log *zap.Logger) *PagesController {
	return &PagesController{
		resumeService: resumeService,
		site:          cfg.Site,
		log:           log,
	}
}

// Index renders the landing page. A site without an owner profile still
// renders, just without the owner block.
func (p *PagesController) Index(c *gin.Context) {
	owner, err := p.resumeService.Profile(c.Request.Context(), p.site.OwnerID)
	if err != nil {
		if !errors.Is(err, utils.ErrAccountNotFound) {
			renderError(c, err)
			return
		}
		p.log.Debug("site owner profile not found", zap.Uint("owner_id", p.site.OwnerID))
		owner = nil
	}
	c.HTML(http.StatusOK, "index.html", page(c, gin.H{
		"Owner":    owner,
		"Sections": services.Sections,
	}))
}

func (p *PagesController) Profile(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		renderError(c, err)
		return
	}
	profile, err := p.resumeService.Profile(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "profile.html", page(c, gin.H{
		"Title":   profile.FullName(),
		"Profile": profile,
	}))
}

// EditProfile shows the signed-in user's own profile in an editable form.
func (p *PagesController) EditProfile(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	profile, err := p.resumeService.Profile(c.Request.Context(), actor.ID)
	if err != nil {
		renderError(c, err)
		return
	}
	p.renderProfileForm(c, http.StatusOK, forms.ProfileFormFor(profile))
}

func (p *PagesController) UpdateProfile(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	form := forms.NewProfileForm()
	if err := c.Request.ParseForm(); err != nil {
		form.AddError(formErrorsKey, "The submitted form could not be read.")
		p.renderProfileForm(c, http.StatusOK, form)
		return
	}
	in, ok := form.Bind(c.Request.PostForm)
	if !ok {
		p.renderProfileForm(c, http.StatusOK, form)
		return
	}

	if err := p.resumeService.UpdateProfile(c.Request.Context(), actor.ID, in); err != nil {
		p.log.Error("update profile",
			zap.String("trace_id", c.GetString("trace_id")),
			zap.Uint("user_id", actor.ID),
			zap.Error(err))
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/profile/%d", actor.ID))
}

func (p *PagesController) renderProfileForm(c *gin.Context, code int, form *forms.ProfileForm) {
	c.HTML(code, "profile_edit.html", page(c, gin.H{
		"Title": "Edit profile",
		"Form":  form,
	}))
}

func (p *PagesController) All(c *gin.Context) {
	sections, err := p.resumeService.All(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "all.html", page(c, gin.H{
		"Title":    "Everything",
		"Sections": sections,
	}))
}

func (p *PagesController) WhatsApp(c *gin.Context) {
	c.Redirect(http.StatusFound, p.site.WhatsAppURL)
}

func (p *PagesController) Teams(c *gin.Context) {
	c.Redirect(http.StatusFound, p.site.TeamsURL)
}
