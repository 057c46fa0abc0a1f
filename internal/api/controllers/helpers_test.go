package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"resume/internal/models/db_models"
	"resume/internal/web"
	"resume/pkg/middleware"
)

var (
	visitor = &db_models.User{BaseModel: db_models.BaseModel{ID: 2}, Username: "guest", FirstName: "Gail", LastName: "Guest"}
	staff   = &db_models.User{BaseModel: db_models.BaseModel{ID: 1}, Username: "owner", IsStaff: true}
)

// newTestRouter builds an engine with the real templates. A non-nil actor
// is attached to every request.
func newTestRouter(t *testing.T, actor *db_models.User) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tpl, err := web.Load()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tpl)
	r.Use(func(c *gin.Context) {
		if actor != nil {
			c.Set(middleware.ActorKey, actor)
		}
		c.Next()
	})
	return r
}

func get(r http.Handler, path string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, path string, values url.Values, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
