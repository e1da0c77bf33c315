package users

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"academic-records-backend/controllers"
	usersprovider "academic-records-backend/lib/users"
	usersload "academic-records-backend/lib/users-load"
	authutils "academic-records-backend/lib/utils/auth-utils"
	"academic-records-backend/middleware"
	usersapimodels "academic-records-backend/models/api/users"
)

type usersApiController struct {
	controllers.BaseAPIController
}

func InitUsersApiRouters(app *fiber.App) {
	controller := usersApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Post("", middleware.SuperuserRequired(), controller.create)
		router.Put(":id", middleware.SuperuserRequired(), controller.update)
		router.Delete(":id", middleware.SuperuserRequired(), controller.delete)
		router.Post("actions/activate", middleware.SuperuserRequired(), controller.activate)
		router.Post("actions/deactivate", middleware.SuperuserRequired(), controller.deactivate)
		router.Post("load", middleware.SuperuserRequired(), controller.load)
	})
}

// @Summary User list
// @Tags Users
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search			query	string	false	"username, name or email"
// @Param   missing_data	query	string	false	"true - first name, last name or email is empty"
// @Param   is_active		query	string	false	"true/false"
// @Param   is_staff		query	string	false	"true/false"
// @Param   page			query	int		false	"page"
// @Param   limit			query	int		false	"rows per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]usersapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [get]
func (c *usersApiController) list(ctx *fiber.Ctx) error {
	var filter usersapimodels.UserFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, rowCount, err := usersprovider.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendScroller(ctx, list, rowCount)
}

// @Summary Get user
// @Tags Users
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [get]
func (c *usersApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	item, err := usersprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, item)
}

// @Summary Create user
// @Tags Users
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 usersapimodels.UserData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [post]
func (c *usersApiController) create(ctx *fiber.Ctx) error {
	var payload usersapimodels.UserData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := usersprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, id)
}

// @Summary Update user
// @Tags Users
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Param	body body	 usersapimodels.UserData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [put]
func (c *usersApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload usersapimodels.UserData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err = usersprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Delete user
// @Tags Users
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [delete]
func (c *usersApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = usersprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Activate the selected users
// @Tags Users
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 usersapimodels.SelectionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=apimodels.ActionResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/actions/activate [post]
func (c *usersApiController) activate(ctx *fiber.Ctx) error {
	var payload usersapimodels.SelectionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	result, err := usersprovider.Instance.Activate(payload.IDs)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, result)
}

// @Summary Deactivate the selected users
// @Tags Users
// @Description Superusers are never deactivated
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 usersapimodels.SelectionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=apimodels.ActionResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/actions/deactivate [post]
func (c *usersApiController) deactivate(ctx *fiber.Ctx) error {
	var payload usersapimodels.SelectionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	result, err := usersprovider.Instance.Deactivate(payload.IDs)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, result)
}

// @Summary Load users from a workbook
// @Tags Users
// @Description xlsx sheet with the columns id, username, password, first_name, last_name, sex, email, is_staff, is_superuser
// @Accept	multipart/form-data
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file	formData	file	true	"xlsx workbook"
// @Param   sheet	formData	string	false	"sheet name"
// @Success 200 {object} apimodels.Response{data=usersapimodels.LoadResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/load [post]
func (c *usersApiController) load(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return c.SendBadRequest(ctx, errors.New("workbook file is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	defer file.Close()
	result, err := usersload.Instance.Load(ctx.UserContext(), file, fileHeader.Filename, ctx.FormValue("sheet"), authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, result)
}
