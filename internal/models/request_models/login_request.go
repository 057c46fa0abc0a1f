package request_models

// LoginRequest accepts a username or an email in Login.
type LoginRequest struct {
	Login    string `form:"login" json:"login" validate:"required,max=254"`
	Password string `form:"password" json:"password" validate:"required"`
	Next     string `form:"next" json:"next"`
}

// SignUpRequest opens a visitor account. Visitor accounts are never staff.
type SignUpRequest struct {
	Username        string `form:"username" validate:"required,max=150,excludes=@"`
	Email           string `form:"email" validate:"required,email,max=254"`
	Password        string `form:"password" validate:"required,min=8,max=128"`
	PasswordConfirm string `form:"password_confirm" validate:"required,eqfield=Password"`
	FirstName       string `form:"first_name" validate:"max=150"`
	LastName        string `form:"last_name" validate:"max=150"`
	Next            string `form:"next"`
}

type ContactRequest struct {
	Name    string `form:"name" validate:"required,max=100"`
	Email   string `form:"email" validate:"required,email,max=254"`
	Message string `form:"message" validate:"required,max=5000"`
}
