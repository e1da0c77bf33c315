package dict

import (
	"github.com/gofiber/fiber/v2"

	"academic-records-backend/controllers"
	academicdegreeprovider "academic-records-backend/lib/dicts/academic-degree"
	"academic-records-backend/middleware"
	dictapimodels "academic-records-backend/models/api/dict"
)

type academicDegreeDictApiController struct {
	controllers.BaseAPIController
}

func InitAcademicDegreeDictApiRouters(app *fiber.App) {
	controller := academicDegreeDictApiController{}
	app.Route("academic-degree", func(router fiber.Router) {
		router.Get("", controller.academicDegreeList)
		router.Get(":id", controller.academicDegreeGet)
		router.Post("", middleware.SuperuserRequired(), controller.academicDegreeCreate)
		router.Put(":id", middleware.SuperuserRequired(), controller.academicDegreeUpdate)
		router.Delete(":id", middleware.SuperuserRequired(), controller.academicDegreeDelete)
	})
}

// @Summary List
// @Tags Dictionary. Academic degree
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search	query	string	false	"search phrase"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.AcademicDegreeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/academic-degree [get]
func (c *academicDegreeDictApiController) academicDegreeList(ctx *fiber.Ctx) error {
	var filter dictapimodels.DictFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, err := academicdegreeprovider.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, list)
}

// @Summary Get by ID
// @Tags Dictionary. Academic degree
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.AcademicDegreeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/academic-degree/{id} [get]
func (c *academicDegreeDictApiController) academicDegreeGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	item, err := academicdegreeprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, item)
}

// @Summary Create
// @Tags Dictionary. Academic degree
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.AcademicDegreeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/academic-degree [post]
func (c *academicDegreeDictApiController) academicDegreeCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.AcademicDegreeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := academicdegreeprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, id)
}

// @Summary Update
// @Tags Dictionary. Academic degree
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Param	body body	 dictapimodels.AcademicDegreeData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/academic-degree/{id} [put]
func (c *academicDegreeDictApiController) academicDegreeUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload dictapimodels.AcademicDegreeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err = academicdegreeprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Delete
// @Tags Dictionary. Academic degree
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/academic-degree/{id} [delete]
func (c *academicDegreeDictApiController) academicDegreeDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = academicdegreeprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}
