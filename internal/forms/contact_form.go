package forms

import (
	"net/url"

	"resume/internal/models/request_models"
)

type ContactForm struct {
	Form
}

func NewContactForm() *ContactForm {
	return &ContactForm{Form: newForm()}
}

func (f *ContactForm) Bind(values url.Values) (request_models.ContactRequest, bool) {
	var in request_models.ContactRequest
	ok := f.bind(values, &in)
	return in, ok
}

type LoginForm struct {
	Form
}

func NewLoginForm() *LoginForm {
	return &LoginForm{Form: newForm()}
}

func (f *LoginForm) Bind(values url.Values) (request_models.LoginRequest, bool) {
	var in request_models.LoginRequest
	ok := f.bind(values, &in)
	return in, ok
}

type SignUpForm struct {
	Form
}

func NewSignUpForm() *SignUpForm {
	return &SignUpForm{Form: newForm()}
}

// Bind validates a sign-up post. Passwords are never echoed back.
func (f *SignUpForm) Bind(values url.Values) (request_models.SignUpRequest, bool) {
	var in request_models.SignUpRequest
	ok := f.bind(values, &in)
	delete(f.Values, "password")
	delete(f.Values, "password_confirm")
	return in, ok
}

type StatusForm struct {
	Form
}

func NewStatusForm() *StatusForm {
	return &StatusForm{Form: newForm()}
}

func (f *StatusForm) Bind(values url.Values) (request_models.FeedbackStatusRequest, bool) {
	var in request_models.FeedbackStatusRequest
	ok := f.bind(values, &in)
	return in, ok
}
