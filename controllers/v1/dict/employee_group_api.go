package dict

import (
	"github.com/gofiber/fiber/v2"

	"academic-records-backend/controllers"
	employeegroupprovider "academic-records-backend/lib/dicts/employee-group"
	"academic-records-backend/middleware"
	dictapimodels "academic-records-backend/models/api/dict"
)

type employeeGroupDictApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeGroupDictApiRouters(app *fiber.App) {
	controller := employeeGroupDictApiController{}
	app.Route("employee-group", func(router fiber.Router) {
		router.Get("", controller.employeeGroupList)
		router.Get(":id", controller.employeeGroupGet)
		router.Post("", middleware.SuperuserRequired(), controller.employeeGroupCreate)
		router.Put(":id", middleware.SuperuserRequired(), controller.employeeGroupUpdate)
		router.Delete(":id", middleware.SuperuserRequired(), controller.employeeGroupDelete)
	})
}

// @Summary List
// @Tags Dictionary. Employee group
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search	query	string	false	"search phrase"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.EmployeeGroupView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/employee-group [get]
func (c *employeeGroupDictApiController) employeeGroupList(ctx *fiber.Ctx) error {
	var filter dictapimodels.DictFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, err := employeegroupprovider.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, list)
}

// @Summary Get by ID
// @Tags Dictionary. Employee group
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.EmployeeGroupView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/employee-group/{id} [get]
func (c *employeeGroupDictApiController) employeeGroupGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	item, err := employeegroupprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, item)
}

// @Summary Create
// @Tags Dictionary. Employee group
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.EmployeeGroupData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/employee-group [post]
func (c *employeeGroupDictApiController) employeeGroupCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.EmployeeGroupData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := employeegroupprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, id)
}

// @Summary Update
// @Tags Dictionary. Employee group
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Param	body body	 dictapimodels.EmployeeGroupData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/employee-group/{id} [put]
func (c *employeeGroupDictApiController) employeeGroupUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload dictapimodels.EmployeeGroupData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err = employeegroupprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Delete
// @Tags Dictionary. Employee group
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/employee-group/{id} [delete]
func (c *employeeGroupDictApiController) employeeGroupDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = employeegroupprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}
