package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"resume/internal/models/db_models"
	"resume/internal/models/request_models"
	"resume/internal/models/response_models"
	"resume/internal/services"
	"resume/pkg/utils"
)

var (
	projectsSection = services.Section{Slug: "projects", EntityType: db_models.EntityProject, Title: "Projects"}
	skillsSection   = services.Section{Slug: "skills", EntityType: db_models.EntitySkill, Title: "Skills"}
)

func sectionsRouter(t *testing.T, actor *db_models.User, resume *mockResumeService, feedback *mockFeedbackService) *gin.Engine {
	r := newTestRouter(t, actor)
	ctrl := NewSectionsController(resume, feedback, zap.NewNop())
	for _, sec := range []services.Section{projectsSection, skillsSection} {
		list, detail := ctrl.List(sec), ctrl.Detail(sec)
		r.GET("/data/"+sec.Slug, list)
		r.POST("/data/"+sec.Slug, list)
		r.GET("/data/"+sec.Slug+"/:id", detail)
		r.POST("/data/"+sec.Slug+"/:id", detail)
	}
	return r
}

func TestCollectionPageShowsFeedbackAndAnonymousForm(t *testing.T) {
	resume := &mockResumeService{}
	feedback := &mockFeedbackService{}
	resume.On("List", mock.Anything, db_models.EntityProject).
		Return([]response_models.ResumeEntry{{ID: 1, Name: "Billing engine"}}, nil)
	feedback.On("ListPublished", mock.Anything, db_models.CollectionTarget(db_models.EntityProject)).
		Return([]response_models.FeedbackView{{ID: 9, Author: db_models.AnonymousAuthor, Content: "Solid portfolio", CreatedAt: time.Now()}}, nil)

	w := get(sectionsRouter(t, nil, resume, feedback), "/data/projects")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Billing engine")
	assert.Contains(t, w.Body.String(), "Solid portfolio")
	assert.Contains(t, w.Body.String(), `name="author_name"`)
	feedback.AssertExpectations(t)
}

func TestAuthenticatedActorIsNotAskedForName(t *testing.T) {
	resume := &mockResumeService{}
	feedback := &mockFeedbackService{}
	resume.On("List", mock.Anything, db_models.EntityProject).Return([]response_models.ResumeEntry{}, nil)
	feedback.On("ListPublished", mock.Anything, mock.Anything).Return([]response_models.FeedbackView{}, nil)

	w := get(sectionsRouter(t, visitor, resume, feedback), "/data/projects")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `name="author_name"`)
	assert.Contains(t, w.Body.String(), `name="content"`)
}

func TestCollectionSubmissionRedirectsBack(t *testing.T) {
	resume := &mockResumeService{}
	feedback := &mockFeedbackService{}
	feedback.On("Submit", mock.Anything,
		db_models.CollectionTarget(db_models.EntityProject),
		(*db_models.User)(nil),
		request_models.FeedbackSubmission{Content: "Nice work"},
	).Return(&db_models.Feedback{}, nil).Once()

	w := postForm(sectionsRouter(t, nil, resume, feedback), "/data/projects",
		url.Values{"content": {"  Nice work "}, "author_name": {"  "}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/data/projects", w.Header().Get("Location"))
	feedback.AssertExpectations(t)
}

func TestAuthenticatedSubmissionIgnoresAuthorName(t *testing.T) {
	resume := &mockResumeService{}
	feedback := &mockFeedbackService{}
	resume.On("Get", mock.Anything, db_models.EntitySkill, uint(7)).
		Return(&response_models.ResumeEntry{ID: 7, Name: "Go"}, nil)
	feedback.On("Submit", mock.Anything,
		db_models.ObjectTarget(db_models.EntitySkill, 7),
		visitor,
		request_models.FeedbackSubmission{Content: "Great skill!"},
	).Return(&db_models.Feedback{}, nil).Once()

	w := postForm(sectionsRouter(t, visitor, resume, feedback), "/data/skills/7",
		url.Values{"content": {"Great skill!"}, "author_name": {"Someone Else"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/data/skills/7", w.Header().Get("Location"))
	feedback.AssertExpectations(t)
}

func TestInvalidSubmissionRerendersWithErrors(t *testing.T) {
	resume := &mockResumeService{}
	feedback := &mockFeedbackService{}
	resume.On("List", mock.Anything, db_models.EntityProject).Return([]response_models.ResumeEntry{}, nil)
	feedback.On("ListPublished", mock.Anything, mock.Anything).Return([]response_models.FeedbackView{}, nil)

	w := postForm(sectionsRouter(t, nil, resume, feedback), "/data/projects",
		url.Values{"content": {"   "}, "author_name": {"Kim"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "This field is required.")
	assert.Contains(t, w.Body.String(), `value="Kim"`)
	feedback.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceValidationErrorIsShownOnForm(t *testing.T) {
	resume := &mockResumeService{}
	feedback := &mockFeedbackService{}
	resume.On("Get", mock.Anything, db_models.EntitySkill, uint(7)).
		Return(&response_models.ResumeEntry{ID: 7, Name: "Go"}, nil)
	resume.On("List", mock.Anything, db_models.EntitySkill).
		Return([]response_models.ResumeEntry{{ID: 7, Name: "Go"}, {ID: 8, Name: "SQL"}}, nil)
	feedback.On("ListPublished", mock.Anything, mock.Anything).Return([]response_models.FeedbackView{}, nil)
	feedback.On("Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, utils.NewValidationError("entity_id", "The item you are commenting on does not exist."))

	w := postForm(sectionsRouter(t, nil, resume, feedback), "/data/skills/7", url.Values{"content": {"hi"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "The item you are commenting on does not exist.")
	assert.Contains(t, w.Body.String(), "SQL")
}

func TestUnresolvedTargetIsInternalError(t *testing.T) {
	resume := &mockResumeService{}
	feedback := &mockFeedbackService{}
	feedback.On("Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &utils.ValidationError{
			Fields: map[string][]string{"entity_type": {"Unknown entity type."}},
			Cause:  utils.ErrUnresolvedTarget,
		})

	w := postForm(sectionsRouter(t, nil, resume, feedback), "/data/projects", url.Values{"content": {"hi"}})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDetailOfMissingEntryIsNotFound(t *testing.T) {
	resume := &mockResumeService{}
	feedback := &mockFeedbackService{}
	resume.On("Get", mock.Anything, db_models.EntitySkill, uint(404)).
		Return(nil, fmt.Errorf("skill 404: %w", utils.ErrEntityNotFound))
	r := sectionsRouter(t, nil, resume, feedback)

	assert.Equal(t, http.StatusNotFound, get(r, "/data/skills/404").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/data/skills/abc").Code)
	assert.Equal(t, http.StatusNotFound, postForm(r, "/data/skills/404", url.Values{"content": {"x"}}).Code)
	feedback.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDetailListsSiblings(t *testing.T) {
	resume := &mockResumeService{}
	feedback := &mockFeedbackService{}
	resume.On("Get", mock.Anything, db_models.EntitySkill, uint(7)).
		Return(&response_models.ResumeEntry{ID: 7, Name: "Go", Description: "Daily driver"}, nil)
	resume.On("List", mock.Anything, db_models.EntitySkill).
		Return([]response_models.ResumeEntry{{ID: 7, Name: "Go"}, {ID: 8, Name: "PostgreSQL"}}, nil)
	feedback.On("ListPublished", mock.Anything, db_models.ObjectTarget(db_models.EntitySkill, 7)).
		Return([]response_models.FeedbackView{{Author: "Gail Guest", Content: "Agreed"}}, nil)

	w := get(sectionsRouter(t, nil, resume, feedback), "/data/skills/7")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Daily driver")
	assert.Contains(t, body, `href="/data/skills/8"`)
	assert.NotContains(t, body, `href="/data/skills/7"`)
	assert.Contains(t, body, "Agreed")
}
