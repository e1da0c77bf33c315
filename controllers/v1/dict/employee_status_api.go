package dict

import (
	"github.com/gofiber/fiber/v2"

	"academic-records-backend/controllers"
	employeestatusprovider "academic-records-backend/lib/dicts/employee-status"
	"academic-records-backend/middleware"
	dictapimodels "academic-records-backend/models/api/dict"
)

type employeeStatusDictApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeStatusDictApiRouters(app *fiber.App) {
	controller := employeeStatusDictApiController{}
	app.Route("employee-status", func(router fiber.Router) {
		router.Get("", controller.employeeStatusList)
		router.Get(":id", controller.employeeStatusGet)
		router.Post("", middleware.SuperuserRequired(), controller.employeeStatusCreate)
		router.Put(":id", middleware.SuperuserRequired(), controller.employeeStatusUpdate)
		router.Delete(":id", middleware.SuperuserRequired(), controller.employeeStatusDelete)
	})
}

// @Summary List
// @Tags Dictionary. Employee status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search	query	string	false	"search phrase"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.EmployeeStatusView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/employee-status [get]
func (c *employeeStatusDictApiController) employeeStatusList(ctx *fiber.Ctx) error {
	var filter dictapimodels.DictFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, err := employeestatusprovider.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, list)
}

// @Summary Get by ID
// @Tags Dictionary. Employee status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.EmployeeStatusView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/employee-status/{id} [get]
func (c *employeeStatusDictApiController) employeeStatusGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	item, err := employeestatusprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, item)
}

// @Summary Create
// @Tags Dictionary. Employee status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.EmployeeStatusData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/employee-status [post]
func (c *employeeStatusDictApiController) employeeStatusCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.EmployeeStatusData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := employeestatusprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, id)
}

// @Summary Update
// @Tags Dictionary. Employee status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Param	body body	 dictapimodels.EmployeeStatusData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/employee-status/{id} [put]
func (c *employeeStatusDictApiController) employeeStatusUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload dictapimodels.EmployeeStatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err = employeestatusprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Delete
// @Tags Dictionary. Employee status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/employee-status/{id} [delete]
func (c *employeeStatusDictApiController) employeeStatusDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = employeestatusprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}
