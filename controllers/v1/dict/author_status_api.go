package dict

import (
	"github.com/gofiber/fiber/v2"

	"academic-records-backend/controllers"
	authorstatusprovider "academic-records-backend/lib/dicts/author-status"
	"academic-records-backend/middleware"
	dictapimodels "academic-records-backend/models/api/dict"
)

type authorStatusDictApiController struct {
	controllers.BaseAPIController
}

func InitAuthorStatusDictApiRouters(app *fiber.App) {
	controller := authorStatusDictApiController{}
	app.Route("author-status", func(router fiber.Router) {
		router.Get("", controller.authorStatusList)
		router.Get(":id", controller.authorStatusGet)
		router.Post("", middleware.SuperuserRequired(), controller.authorStatusCreate)
		router.Put(":id", middleware.SuperuserRequired(), controller.authorStatusUpdate)
		router.Delete(":id", middleware.SuperuserRequired(), controller.authorStatusDelete)
	})
}

// @Summary List
// @Tags Dictionary. Author status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search	query	string	false	"search phrase"
// @Param   group	query	string	false	"E - employee authors, A - non-employee authors"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.AuthorStatusView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/author-status [get]
func (c *authorStatusDictApiController) authorStatusList(ctx *fiber.Ctx) error {
	var filter dictapimodels.AuthorStatusFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, err := authorstatusprovider.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, list)
}

// @Summary Get by ID
// @Tags Dictionary. Author status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.AuthorStatusView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/author-status/{id} [get]
func (c *authorStatusDictApiController) authorStatusGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	item, err := authorstatusprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, item)
}

// @Summary Create
// @Tags Dictionary. Author status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.AuthorStatusData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/author-status [post]
func (c *authorStatusDictApiController) authorStatusCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.AuthorStatusData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := authorstatusprovider.Instance.Create(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, id)
}

// @Summary Update
// @Tags Dictionary. Author status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Param	body body	 dictapimodels.AuthorStatusData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/author-status/{id} [put]
func (c *authorStatusDictApiController) authorStatusUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload dictapimodels.AuthorStatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err = authorstatusprovider.Instance.Update(ctx.UserContext(), id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Delete
// @Tags Dictionary. Author status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/author-status/{id} [delete]
func (c *authorStatusDictApiController) authorStatusDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = authorstatusprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}
