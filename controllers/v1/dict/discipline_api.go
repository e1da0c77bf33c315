package dict

import (
	"github.com/gofiber/fiber/v2"

	"academic-records-backend/controllers"
	disciplineprovider "academic-records-backend/lib/dicts/discipline"
	"academic-records-backend/middleware"
	dictapimodels "academic-records-backend/models/api/dict"
)

type disciplineDictApiController struct {
	controllers.BaseAPIController
}

func InitDisciplineDictApiRouters(app *fiber.App) {
	controller := disciplineDictApiController{}
	app.Route("discipline", func(router fiber.Router) {
		router.Get("", controller.disciplineList)
		router.Get(":id", controller.disciplineGet)
		router.Post("", middleware.SuperuserRequired(), controller.disciplineCreate)
		router.Put(":id", middleware.SuperuserRequired(), controller.disciplineUpdate)
		router.Delete(":id", middleware.SuperuserRequired(), controller.disciplineDelete)
	})
}

// @Summary List
// @Tags Dictionary. Discipline
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search	query	string	false	"search phrase"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.DisciplineView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/discipline [get]
func (c *disciplineDictApiController) disciplineList(ctx *fiber.Ctx) error {
	var filter dictapimodels.DictFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, err := disciplineprovider.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, list)
}

// @Summary Get by ID
// @Tags Dictionary. Discipline
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.DisciplineView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/discipline/{id} [get]
func (c *disciplineDictApiController) disciplineGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	item, err := disciplineprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, item)
}

// @Summary Create
// @Tags Dictionary. Discipline
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.DisciplineData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/discipline [post]
func (c *disciplineDictApiController) disciplineCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.DisciplineData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := disciplineprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, id)
}

// @Summary Update
// @Tags Dictionary. Discipline
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Param	body body	 dictapimodels.DisciplineData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/discipline/{id} [put]
func (c *disciplineDictApiController) disciplineUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload dictapimodels.DisciplineData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err = disciplineprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Delete
// @Tags Dictionary. Discipline
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/discipline/{id} [delete]
func (c *disciplineDictApiController) disciplineDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = disciplineprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}
