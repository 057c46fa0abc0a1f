package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume/internal/forms"
	"resume/internal/models/request_models"
	"resume/internal/services"
	"resume/pkg/config"
	"resume/pkg/utils"
)

const badCredentials = "Please enter a correct username and password."

type AccountController struct {
	accountService services.AccountServiceInterface
	cookieName     string
	secureCookie   bool
	log            *zap.Logger
}

func NewAccountController(accountService services.AccountServiceInterface, cfg *config.Config, log *zap.Logger) *AccountController {
	return &AccountController{
		accountService: accountService,
		cookieName:     cfg.Auth.CookieName,
		secureCookie:   !cfg.IsLocal(),
		log:            log,
	}
}

func (a *AccountController) LoginPage(c *gin.Context) {
	form := forms.NewLoginForm()
	form.Values["next"] = safeNext(c.Query("next"))
	a.renderLogin(c, form)
}

// Login checks the posted credentials, stores the session token in an
// HttpOnly cookie and redirects to the requested page.
func (a *AccountController) Login(c *gin.Context) {
	form := forms.NewLoginForm()
	if err := c.Request.ParseForm(); err != nil {
		form.AddError(formErrorsKey, "The submitted form could not be read.")
		a.renderLogin(c, form)
		return
	}
	req, ok := form.Bind(c.Request.PostForm)
	if !ok {
		a.renderLogin(c, form)
		return
	}

	token, user, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			form.AddError(formErrorsKey, badCredentials)
			a.renderLogin(c, form)
			return
		}
		renderError(c, err)
		return
	}

	a.log.Info("user signed in", zap.Uint("user_id", user.ID))
	a.startSession(c, token)
	c.Redirect(http.StatusSeeOther, safeNext(req.Next))
}

func (a *AccountController) RegisterPage(c *gin.Context) {
	form := forms.NewSignUpForm()
	form.Values["next"] = safeNext(c.Query("next"))
	a.renderRegister(c, form)
}

// Register opens a visitor account so feedback can be left under it, then
// signs the new user in.
func (a *AccountController) Register(c *gin.Context) {
	form := forms.NewSignUpForm()
	if err := c.Request.ParseForm(); err != nil {
		form.AddError(formErrorsKey, "The submitted form could not be read.")
		a.renderRegister(c, form)
		return
	}
	req, ok := form.Bind(c.Request.PostForm)
	if !ok {
		a.renderRegister(c, form)
		return
	}

	token, _, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		var verr *utils.ValidationError
		if errors.As(err, &verr) {
			for field, msgs := range verr.Fields {
				for _, msg := range msgs {
					form.AddError(field, msg)
				}
			}
			a.renderRegister(c, form)
			return
		}
		renderError(c, err)
		return
	}

	a.startSession(c, token)
	c.Redirect(http.StatusSeeOther, safeNext(req.Next))
}

func (a *AccountController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(a.cookieName, "", -1, "/", "", a.secureCookie, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// Token godoc
// @Summary Issue a session token
// @Description Authenticate with a username or email and return a bearer token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/token [post]
func (a *AccountController) Token(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, user, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		gin.H{"token": token, "user_id": user.ID, "staff": user.IsStaff},
		"Login successful")
}

func (a *AccountController) startSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(a.cookieName, token, int(a.accountService.SessionTTL().Seconds()), "/", "", a.secureCookie, true)
}

func (a *AccountController) renderRegister(c *gin.Context, form *forms.SignUpForm) {
	c.HTML(http.StatusOK, "register.html", page(c, gin.H{
		"Title": "Sign up",
		"Form":  form,
	}))
}

func (a *AccountController) renderLogin(c *gin.Context, form *forms.LoginForm) {
	c.HTML(http.StatusOK, "login.html", page(c, gin.H{
		"Title": "Log in",
		"Form":  form,
	}))
}

// safeNext keeps redirects on this site.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
