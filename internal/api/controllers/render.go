package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume/pkg/middleware"
	"resume/pkg/utils"
)

// page adds the keys every template reads from its layout.
func page(c *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Actor"] = middleware.CurrentActor(c)
	return data
}

// renderError renders the HTML error page for a service error. Internal
// errors are attached to the context for the access log.
func renderError(c *gin.Context, err error) {
	code, message := utils.StatusFor(err)
	if code == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.HTML(code, "error.html", page(c, gin.H{
		"Title":   http.StatusText(code),
		"Code":    code,
		"Message": message,
	}))
}

// wantsJSON reports whether the client asked for JSON over HTML.
func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}
