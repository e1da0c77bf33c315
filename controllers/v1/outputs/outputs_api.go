package outputs

import (
	"github.com/gofiber/fiber/v2"

	"academic-records-backend/controllers"
	articleprovider "academic-records-backend/lib/article"
	patentprovider "academic-records-backend/lib/patent"
	projectprovider "academic-records-backend/lib/project"
	outputsapimodels "academic-records-backend/models/api/outputs"
)

type outputsApiController struct {
	controllers.BaseAPIController
}

func InitOutputsApiRouters(app *fiber.App) {
	controller := outputsApiController{}
	app.Route("articles", func(router fiber.Router) {
		router.Get("", controller.articleList)
		router.Post("", controller.articleCreate)
		router.Get(":id", controller.articleGet)
		router.Put(":id", controller.articleUpdate)
		router.Delete(":id", controller.articleDelete)
	})
	app.Route("patents", func(router fiber.Router) {
		router.Get("", controller.patentList)
		router.Post("", controller.patentCreate)
		router.Get(":id", controller.patentGet)
		router.Put(":id", controller.patentUpdate)
		router.Delete(":id", controller.patentDelete)
	})
	app.Route("projects", func(router fiber.Router) {
		router.Get("", controller.projectList)
		router.Post("", controller.projectCreate)
		router.Get(":id", controller.projectGet)
		router.Put(":id", controller.projectUpdate)
		router.Delete(":id", controller.projectDelete)
	})
}

// @Summary Article list
// @Tags Outputs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search		query	string	false	"title"
// @Param   year		query	int		false	"publication year"
// @Param   employee_id	query	string	false	"employee among the authors"
// @Param   approved	query	string	false	"true/false"
// @Param   page		query	int		false	"page"
// @Param   limit		query	int		false	"rows per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]outputsapimodels.ArticleView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/articles [get]
func (c *outputsApiController) articleList(ctx *fiber.Ctx) error {
	var filter outputsapimodels.OutputFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, rowCount, err := articleprovider.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendScroller(ctx, list, rowCount)
}

// @Summary Create article
// @Tags Outputs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 outputsapimodels.ArticleData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/articles [post]
func (c *outputsApiController) articleCreate(ctx *fiber.Ctx) error {
	var payload outputsapimodels.ArticleData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := articleprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, id)
}

// @Summary Get article
// @Tags Outputs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=outputsapimodels.ArticleView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/articles/{id} [get]
func (c *outputsApiController) articleGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	item, err := articleprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, item)
}

// @Summary Update article
// @Tags Outputs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Param	body body	 outputsapimodels.ArticleData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/articles/{id} [put]
func (c *outputsApiController) articleUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload outputsapimodels.ArticleData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err = articleprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Delete article
// @Description The contributions to the article are deleted as well.
// @Tags Outputs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/articles/{id} [delete]
func (c *outputsApiController) articleDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = articleprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Patent list
// @Tags Outputs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search		query	string	false	"title"
// @Param   year		query	int		false	"publication year"
// @Param   employee_id	query	string	false	"employee among the authors"
// @Param   approved	query	string	false	"true/false"
// @Param   page		query	int		false	"page"
// @Param   limit		query	int		false	"rows per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]outputsapimodels.PatentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/patents [get]
func (c *outputsApiController) patentList(ctx *fiber.Ctx) error {
	var filter outputsapimodels.OutputFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, rowCount, err := patentprovider.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendScroller(ctx, list, rowCount)
}

// @Summary Create patent
// @Tags Outputs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 outputsapimodels.PatentData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/patents [post]
func (c *outputsApiController) patentCreate(ctx *fiber.Ctx) error {
	var payload outputsapimodels.PatentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := patentprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, id)
}

// @Summary Get patent
// @Tags Outputs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=outputsapimodels.PatentView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/patents/{id} [get]
func (c *outputsApiController) patentGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	item, err := patentprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, item)
}

// @Summary Update patent
// @Tags Outputs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Param	body body	 outputsapimodels.PatentData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/patents/{id} [put]
func (c *outputsApiController) patentUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload outputsapimodels.PatentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err = patentprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Delete patent
// @Description The contributions to the patent are deleted as well.
// @Tags Outputs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/patents/{id} [delete]
func (c *outputsApiController) patentDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = patentprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Project list
// @Tags Outputs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search		query	string	false	"title"
// @Param   year		query	int		false	"publication year"
// @Param   employee_id	query	string	false	"employee among the authors"
// @Param   approved	query	string	false	"true/false"
// @Param   page		query	int		false	"page"
// @Param   limit		query	int		false	"rows per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]outputsapimodels.ProjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects [get]
func (c *outputsApiController) projectList(ctx *fiber.Ctx) error {
	var filter outputsapimodels.OutputFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, rowCount, err := projectprovider.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendScroller(ctx, list, rowCount)
}

// @Summary Create project
// @Tags Outputs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 outputsapimodels.ProjectData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects [post]
func (c *outputsApiController) projectCreate(ctx *fiber.Ctx) error {
	var payload outputsapimodels.ProjectData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := projectprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, id)
}

// @Summary Get project
// @Tags Outputs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=outputsapimodels.ProjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/{id} [get]
func (c *outputsApiController) projectGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	item, err := projectprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, item)
}

// @Summary Update project
// @Tags Outputs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Param	body body	 outputsapimodels.ProjectData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/{id} [put]
func (c *outputsApiController) projectUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload outputsapimodels.ProjectData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err = projectprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Delete project
// @Description The contributions to the project are deleted as well.
// @Tags Outputs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/{id} [delete]
func (c *outputsApiController) projectDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = projectprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}
