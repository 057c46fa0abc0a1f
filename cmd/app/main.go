package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"resume/cmd/fx/account_fx"
	"resume/cmd/fx/config_fx"
	"resume/cmd/fx/controllers_fx"
	"resume/cmd/fx/db_fx"
	"resume/cmd/fx/feedback_fx"
	"resume/cmd/fx/mail_fx"
	"resume/cmd/fx/menu_fx"
	"resume/cmd/fx/metrics_fx"
	"resume/cmd/fx/moderation_fx"
	"resume/cmd/fx/registry_fx"
	"resume/cmd/fx/resume_fx"
	"resume/internal/api/controllers"
	"resume/internal/services"
	"resume/internal/web"
	"resume/pkg/config"
	"resume/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		db_fx.Module,
		metrics_fx.Module,
		resume_fx.Module,
		registry_fx.Module,
		mail_fx.Module,
		moderation_fx.Module,
		feedback_fx.Module,
		account_fx.Module,
		menu_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type routerParams struct {
	fx.In

	Config   *config.Config
	Log      *zap.Logger
	Metrics  *prometheus.Registry
	Accounts services.AccountServiceInterface
	Pages    *controllers.PagesController
	Sections *controllers.SectionsController
	Contact  *controllers.ContactController
	Account  *controllers.AccountController
	Feedback *controllers.FeedbackController
	Menu     *controllers.MenuController
}

func ProvideRouter(p routerParams) (*gin.Engine, error) {
	if !p.Config.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	tpl, err := web.Load()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tpl)
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.ActorMiddleware(p.Accounts, p.Config.Auth.CookieName, p.Log))
	r.Use(middleware.RequestLogger(p.Log))
	r.Use(gin.Recovery())

	RegisterRoutes(r, p)

	return r, nil
}

func RegisterRoutes(r *gin.Engine, p routerParams) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Metrics, promhttp.HandlerOpts{})))

	r.GET("/", p.Pages.Index)
	r.GET("/profile/:id", p.Pages.Profile)
	r.GET("/profile/edit", middleware.RequireActor(), p.Pages.EditProfile)
	r.POST("/profile/edit", middleware.RequireActor(), p.Pages.UpdateProfile)
	r.GET("/whatsapp", p.Pages.WhatsApp)
	r.GET("/teams", p.Pages.Teams)

	data := r.Group("/data")
	data.GET("/all", p.Pages.All)
	for _, sec := range services.Sections {
		list, detail := p.Sections.List(sec), p.Sections.Detail(sec)
		data.GET("/"+sec.Slug, list)
		data.POST("/"+sec.Slug, list)
		data.GET("/"+sec.Slug+"/:id", detail)
		data.POST("/"+sec.Slug+"/:id", detail)
	}

	r.GET("/contact", p.Contact.Show)
	r.POST("/contact", p.Contact.Send)
	r.GET("/menu/:name", p.Menu.Show)

	auth := r.Group("/auth")
	auth.GET("/login", p.Account.LoginPage)
	auth.POST("/login", p.Account.Login)
	auth.POST("/logout", p.Account.Logout)
	auth.GET("/register", p.Account.RegisterPage)
	auth.POST("/register", p.Account.Register)
	r.POST("/api/auth/token", p.Account.Token)

	admin := r.Group("/admin", middleware.RequireStaff())
	admin.GET("/feedback", p.Feedback.ModerationView)
	admin.POST("/feedback/:id/status", p.Feedback.SetStatus)
}
