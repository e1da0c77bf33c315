package auth

import (
	"github.com/gofiber/fiber/v2"

	"academic-records-backend/controllers"
	authprovider "academic-records-backend/lib/auth"
	authutils "academic-records-backend/lib/utils/auth-utils"
	"academic-records-backend/middleware"
	apimodels "academic-records-backend/models/api"
	usersapimodels "academic-records-backend/models/api/users"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Use(middleware.AuthorizationRequired()).Get("me", controller.me)
	})
}

// @Summary Log in
// @Tags Authentication
// @Description Only active staff users may log in
// @Param	body				body		usersapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=usersapimodels.LoginResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload usersapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	resp, err := authprovider.Instance.Login(payload)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(authprovider.ErrInvalidCredentials.Error()))
	}
	return c.SendOK(ctx, resp)
}

// @Summary Current user
// @Tags Authentication
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserView}
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := authprovider.Instance.Me(authutils.GetUserID(ctx))
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return c.SendOK(ctx, resp)
}
