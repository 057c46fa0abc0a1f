package controllers_fx

import (
	"go.uber.org/fx"

	"resume/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPagesController),
	fx.Provide(controllers.NewSectionsController),
	fx.Provide(controllers.NewContactController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewFeedbackController),
	fx.Provide(controllers.NewMenuController))
