package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume/internal/forms"
	"resume/internal/services"
)

const contactSendFailed = "Your message could not be sent right now. Please try again later."

// ContactController relays the contact form to the operators by mail.
// Unlike feedback notices, a failed relay is shown to the visitor.
type ContactController struct {
	mailService services.IMailService
	log         *zap.Logger
}

func NewContactController(mailService services.IMailService, log *zap.Logger) *ContactController {
	return &ContactController{
		mailService: mailService,
		log:         log,
	}
}

func (cc *ContactController) Show(c *gin.Context) {
	cc.render(c, http.StatusOK, forms.NewContactForm(), "")
}

func (cc *ContactController) Send(c *gin.Context) {
	form := forms.NewContactForm()
	if err := c.Request.ParseForm(); err != nil {
		form.AddError(formErrorsKey, "The submitted form could not be read.")
		cc.render(c, http.StatusOK, form, "")
		return
	}
	req, ok := form.Bind(c.Request.PostForm)
	if !ok {
		cc.render(c, http.StatusOK, form, "")
		return
	}

	if err := cc.mailService.SendContactMessage(req); err != nil {
		cc.log.Error("relay contact message",
			zap.String("trace_id", c.GetString("trace_id")),
			zap.Error(err))
		cc.render(c, http.StatusServiceUnavailable, form, contactSendFailed)
		return
	}
	c.Redirect(http.StatusSeeOther, "/contact?sent=1")
}

func (cc *ContactController) render(c *gin.Context, code int, form *forms.ContactForm, sendError string) {
	c.HTML(code, "contact.html", page(c, gin.H{
		"Title":     "Contact",
		"Form":      form,
		"Sent":      c.Query("sent") == "1",
		"SendError": sendError,
	}))
}
