package dict

import (
	"github.com/gofiber/fiber/v2"

	"academic-records-backend/controllers"
	journalprovider "academic-records-backend/lib/dicts/journal"
	"academic-records-backend/middleware"
	dictapimodels "academic-records-backend/models/api/dict"
)

type journalDictApiController struct {
	controllers.BaseAPIController
}

func InitJournalDictApiRouters(app *fiber.App) {
	controller := journalDictApiController{}
	app.Route("journal", func(router fiber.Router) {
		router.Get("", controller.journalList)
		router.Get(":id", controller.journalGet)
		router.Post("", middleware.SuperuserRequired(), controller.journalCreate)
		router.Put(":id", middleware.SuperuserRequired(), controller.journalUpdate)
		router.Delete(":id", middleware.SuperuserRequired(), controller.journalDelete)
	})
}

// @Summary List
// @Tags Dictionary. Journal
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search	query	string	false	"search phrase"
// @Param   publisher_id	query	string	false	"publisher ID"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.JournalView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/journal [get]
func (c *journalDictApiController) journalList(ctx *fiber.Ctx) error {
	var filter dictapimodels.JournalFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, err := journalprovider.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, list)
}

// @Summary Get by ID
// @Tags Dictionary. Journal
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.JournalView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/journal/{id} [get]
func (c *journalDictApiController) journalGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	item, err := journalprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, item)
}

// @Summary Create
// @Tags Dictionary. Journal
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.JournalData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/journal [post]
func (c *journalDictApiController) journalCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.JournalData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := journalprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, id)
}

// @Summary Update
// @Tags Dictionary. Journal
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Param	body body	 dictapimodels.JournalData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/journal/{id} [put]
func (c *journalDictApiController) journalUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload dictapimodels.JournalData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err = journalprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Delete
// @Tags Dictionary. Journal
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/journal/{id} [delete]
func (c *journalDictApiController) journalDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = journalprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}
