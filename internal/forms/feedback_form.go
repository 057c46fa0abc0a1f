package forms

import (
	"net/url"

	"resume/internal/models/request_models"
)

// FeedbackForm renders and validates the feedback block. The schema is fixed
// when the form is built: signed-in actors never get an author name field.
type FeedbackForm struct {
	Form
	Authenticated bool
}

func NewFeedbackForm(authenticated bool) *FeedbackForm {
	return &FeedbackForm{Form: newForm(), Authenticated: authenticated}
}

// ShowsAuthorName reports whether the template should offer the name input.
func (f *FeedbackForm) ShowsAuthorName() bool {
	return !f.Authenticated
}

// Bind validates values with the actor's schema. A submitted author_name is
// not part of the authenticated schema and is never read for that actor.
func (f *FeedbackForm) Bind(values url.Values) (request_models.FeedbackSubmission, bool) {
	if f.Authenticated {
		var in request_models.AuthenticatedFeedbackInput
		if !f.bind(values, &in) {
			return request_models.FeedbackSubmission{}, false
		}
		return request_models.FeedbackSubmission{Content: in.Content}, true
	}

	var in request_models.AnonymousFeedbackInput
	if !f.bind(values, &in) {
		return request_models.FeedbackSubmission{}, false
	}
	sub := request_models.FeedbackSubmission{Content: in.Content}
	if in.AuthorName != "" {
		name := in.AuthorName
		sub.AuthorName = &name
	}
	return sub, true
}
